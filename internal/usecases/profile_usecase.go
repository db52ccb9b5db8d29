package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/domain/repositories"
)

// ProfileUsecase handles profile viewing, editing and discovery
type ProfileUsecase struct {
	profileRepo  repositories.ProfileRepository
	startupRepo  repositories.StartupProfileRepository
	mentorRepo   repositories.MentorProfileRepository
	investorRepo repositories.InvestorProfileRepository
	activityRepo repositories.ActivityLogRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	profileRepo repositories.ProfileRepository,
	startupRepo repositories.StartupProfileRepository,
	mentorRepo repositories.MentorProfileRepository,
	investorRepo repositories.InvestorProfileRepository,
	activityRepo repositories.ActivityLogRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		profileRepo:  profileRepo,
		startupRepo:  startupRepo,
		mentorRepo:   mentorRepo,
		investorRepo: investorRepo,
		activityRepo: activityRepo,
	}
}

// Get returns a profile with its role extension
func (u *ProfileUsecase) Get(ctx context.Context, profileID uuid.UUID) (*entities.PublicProfile, error) {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return u.attachExtension(ctx, profile)
}

func (u *ProfileUsecase) attachExtension(ctx context.Context, profile *entities.Profile) (*entities.PublicProfile, error) {
	pub := &entities.PublicProfile{Profile: profile}

	var err error
	switch profile.Role {
	case entities.ProfileRoleStartup:
		pub.Startup, err = u.startupRepo.GetByProfileID(ctx, profile.ID)
	case entities.ProfileRoleMentor:
		pub.Mentor, err = u.mentorRepo.GetByProfileID(ctx, profile.ID)
	case entities.ProfileRoleInvestor:
		pub.Investor, err = u.investorRepo.GetByProfileID(ctx, profile.ID)
	}
	// a missing extension degrades to the base profile
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	return pub, nil
}

// Update applies base and role-specific changes to the caller's profile
func (u *ProfileUsecase) Update(ctx context.Context, profileID uuid.UUID, input *entities.UpdateProfileInput) (*entities.PublicProfile, error) {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		profile.FullName = input.FullName
	}
	if input.Bio != nil {
		profile.Bio = null.StringFrom(*input.Bio)
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = null.StringFrom(*input.AvatarURL)
	}

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	if err := u.updateExtension(ctx, profile, input); err != nil {
		return nil, err
	}

	_ = u.activityRepo.Append(ctx, &entities.ActivityLog{UserID: profileID, Action: "profile.updated"})

	return u.Get(ctx, profileID)
}

func (u *ProfileUsecase) updateExtension(ctx context.Context, profile *entities.Profile, input *entities.UpdateProfileInput) error {
	switch profile.Role {
	case entities.ProfileRoleStartup:
		if input.Startup == nil {
			return nil
		}
		existing, err := u.startupRepo.GetByProfileID(ctx, profile.ID)
		if err != nil {
			return err
		}
		in := input.Startup
		if in.CompanyName != "" {
			existing.CompanyName = in.CompanyName
		}
		if in.Industry != "" {
			existing.Industry = in.Industry
		}
		if in.Stage != "" {
			existing.Stage = in.Stage
		}
		if in.Website != "" {
			existing.Website = null.StringFrom(in.Website)
		}
		if in.PitchSummary != "" {
			existing.PitchSummary = null.StringFrom(in.PitchSummary)
		}
		if in.TeamSize > 0 {
			existing.TeamSize = in.TeamSize
		}
		if in.FundingGoal != "" {
			existing.FundingGoal = null.StringFrom(in.FundingGoal)
		}
		return u.startupRepo.Update(ctx, existing)

	case entities.ProfileRoleMentor:
		if input.Mentor == nil {
			return nil
		}
		existing, err := u.mentorRepo.GetByProfileID(ctx, profile.ID)
		if err != nil {
			return err
		}
		in := input.Mentor
		if in.ExpertiseTags != "" {
			existing.ExpertiseTags = in.ExpertiseTags
		}
		if in.YearsExperience > 0 {
			existing.YearsExperience = in.YearsExperience
		}
		if in.Availability != "" {
			existing.Availability = in.Availability
		}
		if in.HourlyRate != "" {
			existing.HourlyRate = null.StringFrom(in.HourlyRate)
		}
		return u.mentorRepo.Update(ctx, existing)

	case entities.ProfileRoleInvestor:
		if input.Investor == nil {
			return nil
		}
		existing, err := u.investorRepo.GetByProfileID(ctx, profile.ID)
		if err != nil {
			return err
		}
		in := input.Investor
		if in.FundName != "" {
			existing.FundName = in.FundName
		}
		if in.InvestmentStages != "" {
			existing.InvestmentStages = in.InvestmentStages
		}
		if in.Sectors != "" {
			existing.Sectors = in.Sectors
		}
		if in.TicketMin != "" {
			existing.TicketMin = null.StringFrom(in.TicketMin)
		}
		if in.TicketMax != "" {
			existing.TicketMax = null.StringFrom(in.TicketMax)
		}
		if in.PortfolioSize > 0 {
			existing.PortfolioSize = in.PortfolioSize
		}
		return u.investorRepo.Update(ctx, existing)
	}
	return nil
}

// Browse lists profiles by role with free-text search
func (u *ProfileUsecase) Browse(ctx context.Context, role entities.ProfileRole, search string, limit, offset int) ([]*entities.Profile, int64, error) {
	switch role {
	case "", entities.ProfileRoleStartup, entities.ProfileRoleMentor, entities.ProfileRoleInvestor:
	default:
		return nil, 0, domainerrors.ErrInvalidInput
	}
	return u.profileRepo.List(ctx, role, search, limit, offset)
}

// Recommendations suggests unconnected counterparts for the caller's role:
// startups see mentors and investors, mentors and investors see startups.
func (u *ProfileUsecase) Recommendations(ctx context.Context, profileID uuid.UUID, limit int) ([]*entities.Profile, error) {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 50 {
		limit = 10
	}

	switch profile.Role {
	case entities.ProfileRoleStartup:
		mentors, err := u.profileRepo.ListUnconnected(ctx, profileID, entities.ProfileRoleMentor, limit)
		if err != nil {
			return nil, err
		}
		investors, err := u.profileRepo.ListUnconnected(ctx, profileID, entities.ProfileRoleInvestor, limit)
		if err != nil {
			return nil, err
		}
		combined := append(mentors, investors...)
		if len(combined) > limit {
			combined = combined[:limit]
		}
		return combined, nil
	case entities.ProfileRoleMentor, entities.ProfileRoleInvestor:
		return u.profileRepo.ListUnconnected(ctx, profileID, entities.ProfileRoleStartup, limit)
	}
	return []*entities.Profile{}, nil
}
