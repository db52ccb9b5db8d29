package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/domain/repositories"
)

// AdminUsecase implements the back-office surface: platform stats, user
// moderation and cross-user listings.
type AdminUsecase struct {
	profileRepo    repositories.ProfileRepository
	connRepo       repositories.ConnectionRepository
	mentorshipRepo repositories.MentorshipRequestRepository
	investmentRepo repositories.InvestmentRequestRepository
	eventRepo      repositories.EventRepository
	regRepo        repositories.EventRegistrationRepository
	notifRepo      repositories.NotificationRepository
	activityRepo   repositories.ActivityLogRepository
	uow            repositories.UnitOfWork
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	profileRepo repositories.ProfileRepository,
	connRepo repositories.ConnectionRepository,
	mentorshipRepo repositories.MentorshipRequestRepository,
	investmentRepo repositories.InvestmentRequestRepository,
	eventRepo repositories.EventRepository,
	regRepo repositories.EventRegistrationRepository,
	notifRepo repositories.NotificationRepository,
	activityRepo repositories.ActivityLogRepository,
	uow repositories.UnitOfWork,
) *AdminUsecase {
	return &AdminUsecase{
		profileRepo:    profileRepo,
		connRepo:       connRepo,
		mentorshipRepo: mentorshipRepo,
		investmentRepo: investmentRepo,
		eventRepo:      eventRepo,
		regRepo:        regRepo,
		notifRepo:      notifRepo,
		activityRepo:   activityRepo,
		uow:            uow,
	}
}

// PlatformStats aggregates headline counters for the admin dashboard
type PlatformStats struct {
	UsersByRole        map[entities.ProfileRole]int64 `json:"users_by_role"`
	Connections        int64                          `json:"connections"`
	MentorshipRequests int64                          `json:"mentorship_requests"`
	InvestmentRequests int64                          `json:"investment_requests"`
	Events             int64                          `json:"events"`
	EventRegistrations int64                          `json:"event_registrations"`
}

// Stats returns platform-wide counters
func (u *AdminUsecase) Stats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}

	byRole, err := u.profileRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	stats.UsersByRole = byRole

	if stats.Connections, err = u.connRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.MentorshipRequests, err = u.mentorshipRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.InvestmentRequests, err = u.investmentRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Events, err = u.eventRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.EventRegistrations, err = u.regRepo.Count(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// ListUsers returns a filtered page of profiles
func (u *AdminUsecase) ListUsers(ctx context.Context, role entities.ProfileRole, search string, limit, offset int) ([]*entities.Profile, int64, error) {
	switch role {
	case "", entities.ProfileRoleStartup, entities.ProfileRoleMentor, entities.ProfileRoleInvestor, entities.ProfileRoleAdmin:
	default:
		return nil, 0, domainerrors.ErrInvalidInput
	}
	return u.profileRepo.List(ctx, role, search, limit, offset)
}

// UpdateUserStatus suspends, bans or reactivates a profile. Admin accounts
// cannot be moderated through this path.
func (u *AdminUsecase) UpdateUserStatus(ctx context.Context, actorID, userID uuid.UUID, status entities.ProfileStatus) (*entities.Profile, error) {
	switch status {
	case entities.ProfileStatusActive, entities.ProfileStatusSuspended, entities.ProfileStatusBanned:
	default:
		return nil, domainerrors.ErrInvalidInput
	}

	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Role == entities.ProfileRoleAdmin {
		return nil, domainerrors.ErrForbidden
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.profileRepo.UpdateStatus(txCtx, userID, status); err != nil {
			return err
		}
		if err := u.notifRepo.Create(txCtx, &entities.Notification{
			UserID:  userID,
			Type:    entities.NotificationAccountStatusChange,
			Title:   "Account status changed",
			Message: "Your account is now " + string(status),
		}); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: actorID,
			Action: "admin.user_status_changed",
			Detail: null.StringFrom(userID.String() + " -> " + string(status)),
		})
	})
	if err != nil {
		return nil, err
	}

	profile.Status = status
	return profile, nil
}

// DeleteUser soft deletes a profile. Admin accounts cannot be deleted here.
func (u *AdminUsecase) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if profile.Role == entities.ProfileRoleAdmin {
		return domainerrors.ErrForbidden
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.profileRepo.Delete(txCtx, userID); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: actorID,
			Action: "admin.user_deleted",
			Detail: null.StringFrom(userID.String()),
		})
	})
}

// ListEvents returns all events regardless of status
func (u *AdminUsecase) ListEvents(ctx context.Context, limit, offset int) ([]*entities.Event, int64, error) {
	return u.eventRepo.List(ctx, limit, offset)
}

// ListActivity returns the platform-wide audit trail, newest first
func (u *AdminUsecase) ListActivity(ctx context.Context, limit, offset int) ([]*entities.ActivityLog, int64, error) {
	return u.activityRepo.List(ctx, limit, offset)
}
