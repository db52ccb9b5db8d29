package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/domain/repositories"
	"venture-link.backend/pkg/crypto"
	"venture-link.backend/pkg/jwt"
	"venture-link.backend/pkg/redis"
)

const sessionTTL = 24 * time.Hour

// AuthUsecase handles registration, login and credential management
type AuthUsecase struct {
	profileRepo  repositories.ProfileRepository
	startupRepo  repositories.StartupProfileRepository
	mentorRepo   repositories.MentorProfileRepository
	investorRepo repositories.InvestorProfileRepository
	activityRepo repositories.ActivityLogRepository
	uow          repositories.UnitOfWork
	jwtService   *jwt.JWTService
	sessions     *redis.SessionStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	profileRepo repositories.ProfileRepository,
	startupRepo repositories.StartupProfileRepository,
	mentorRepo repositories.MentorProfileRepository,
	investorRepo repositories.InvestorProfileRepository,
	activityRepo repositories.ActivityLogRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	sessions *redis.SessionStore,
) *AuthUsecase {
	return &AuthUsecase{
		profileRepo:  profileRepo,
		startupRepo:  startupRepo,
		mentorRepo:   mentorRepo,
		investorRepo: investorRepo,
		activityRepo: activityRepo,
		uow:          uow,
		jwtService:   jwtService,
		sessions:     sessions,
	}
}

// Register creates a profile and its role extension in one transaction
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.Profile, error) {
	if err := validateRolePayload(input); err != nil {
		return nil, err
	}

	_, err := u.profileRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	profile := &entities.Profile{
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: passwordHash,
		Role:         input.Role,
		Status:       entities.ProfileStatusActive,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.profileRepo.Create(txCtx, profile); err != nil {
			return err
		}
		if err := u.createRoleExtension(txCtx, profile.ID, input); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: profile.ID,
			Action: "account.registered",
			Detail: null.StringFrom(string(input.Role)),
		})
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func validateRolePayload(input *entities.RegisterInput) error {
	switch input.Role {
	case entities.ProfileRoleStartup:
		if input.Startup == nil {
			return domainerrors.ErrInvalidInput
		}
	case entities.ProfileRoleMentor:
		if input.Mentor == nil {
			return domainerrors.ErrInvalidInput
		}
	case entities.ProfileRoleInvestor:
		if input.Investor == nil {
			return domainerrors.ErrInvalidInput
		}
	default:
		// admin accounts are provisioned out of band
		return domainerrors.ErrInvalidInput
	}
	return nil
}

func (u *AuthUsecase) createRoleExtension(ctx context.Context, profileID uuid.UUID, input *entities.RegisterInput) error {
	switch input.Role {
	case entities.ProfileRoleStartup:
		in := input.Startup
		teamSize := in.TeamSize
		if teamSize <= 0 {
			teamSize = 1
		}
		return u.startupRepo.Create(ctx, &entities.StartupProfile{
			ProfileID:    profileID,
			CompanyName:  in.CompanyName,
			Industry:     in.Industry,
			Stage:        in.Stage,
			Website:      null.NewString(in.Website, in.Website != ""),
			PitchSummary: null.NewString(in.PitchSummary, in.PitchSummary != ""),
			TeamSize:     teamSize,
			FundingGoal:  null.NewString(in.FundingGoal, in.FundingGoal != ""),
		})
	case entities.ProfileRoleMentor:
		in := input.Mentor
		return u.mentorRepo.Create(ctx, &entities.MentorProfile{
			ProfileID:       profileID,
			ExpertiseTags:   in.ExpertiseTags,
			YearsExperience: in.YearsExperience,
			Availability:    in.Availability,
			HourlyRate:      null.NewString(in.HourlyRate, in.HourlyRate != ""),
		})
	case entities.ProfileRoleInvestor:
		in := input.Investor
		return u.investorRepo.Create(ctx, &entities.InvestorProfile{
			ProfileID:        profileID,
			FundName:         in.FundName,
			InvestmentStages: in.InvestmentStages,
			Sectors:          in.Sectors,
			TicketMin:        null.NewString(in.TicketMin, in.TicketMin != ""),
			TicketMax:        null.NewString(in.TicketMax, in.TicketMax != ""),
			PortfolioSize:    in.PortfolioSize,
		})
	}
	return domainerrors.ErrInvalidInput
}

// Login authenticates a profile and issues a token pair. With UseSession set
// the tokens additionally land in an encrypted redis session and the client
// gets the session id back.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	profile, err := u.profileRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, profile.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := checkAccountStatus(profile.Status); err != nil {
		return nil, err
	}

	pair, err := u.jwtService.GenerateTokenPair(profile.ID, profile.Email, string(profile.Role))
	if err != nil {
		return nil, err
	}

	resp := &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Profile:      profile,
	}

	if input.UseSession && u.sessions != nil {
		sessionID := uuid.NewString()
		err = u.sessions.CreateSession(ctx, sessionID, &redis.SessionData{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		}, sessionTTL)
		if err != nil {
			return nil, err
		}
		resp.SessionID = sessionID
	}

	_ = u.activityRepo.Append(ctx, &entities.ActivityLog{UserID: profile.ID, Action: "account.login"})

	return resp, nil
}

func checkAccountStatus(status entities.ProfileStatus) error {
	switch status {
	case entities.ProfileStatusSuspended:
		return domainerrors.ErrAccountSuspended
	case entities.ProfileStatusBanned:
		return domainerrors.ErrAccountBanned
	}
	return nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrUnauthorized
	}

	profile, err := u.profileRepo.GetByID(ctx, claims.ProfileID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}
	if err := checkAccountStatus(profile.Status); err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(profile.ID, profile.Email, string(profile.Role))
}

// Logout removes the redis session, if session auth was used
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" || u.sessions == nil {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// ChangePassword verifies the current password, then replaces it
func (u *AuthUsecase) ChangePassword(ctx context.Context, profileID uuid.UUID, input *entities.ChangePasswordInput) error {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, profile.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	newHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := u.profileRepo.UpdatePassword(ctx, profileID, newHash); err != nil {
		return err
	}

	_ = u.activityRepo.Append(ctx, &entities.ActivityLog{UserID: profileID, Action: "account.password_changed"})
	return nil
}
