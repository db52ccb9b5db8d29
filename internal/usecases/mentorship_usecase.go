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

// MentorshipUsecase handles startup-to-mentor requests
type MentorshipUsecase struct {
	requestRepo  repositories.MentorshipRequestRepository
	profileRepo  repositories.ProfileRepository
	notifRepo    repositories.NotificationRepository
	activityRepo repositories.ActivityLogRepository
	uow          repositories.UnitOfWork
}

// NewMentorshipUsecase creates a new mentorship usecase
func NewMentorshipUsecase(
	requestRepo repositories.MentorshipRequestRepository,
	profileRepo repositories.ProfileRepository,
	notifRepo repositories.NotificationRepository,
	activityRepo repositories.ActivityLogRepository,
	uow repositories.UnitOfWork,
) *MentorshipUsecase {
	return &MentorshipUsecase{
		requestRepo:  requestRepo,
		profileRepo:  profileRepo,
		notifRepo:    notifRepo,
		activityRepo: activityRepo,
		uow:          uow,
	}
}

// Send creates a mentorship request. Only startups send them, only to mentors.
func (u *MentorshipUsecase) Send(ctx context.Context, startupID uuid.UUID, input *entities.SendMentorshipInput) (*entities.MentorshipRequest, error) {
	if startupID == input.MentorID {
		return nil, domainerrors.ErrSelfRequest
	}

	startup, err := u.profileRepo.GetByID(ctx, startupID)
	if err != nil {
		return nil, err
	}
	if startup.Role != entities.ProfileRoleStartup {
		return nil, domainerrors.ErrForbidden
	}

	mentor, err := u.profileRepo.GetByID(ctx, input.MentorID)
	if err != nil {
		return nil, err
	}
	if mentor.Role != entities.ProfileRoleMentor || mentor.Status != entities.ProfileStatusActive {
		return nil, domainerrors.ErrForbidden
	}

	if existing, err := u.requestRepo.GetLiveByPair(ctx, startupID, input.MentorID); err == nil {
		if existing.Status == entities.RequestStatusAccepted {
			return nil, domainerrors.ErrAlreadyConnected
		}
		return nil, domainerrors.ErrRequestPending
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	req := &entities.MentorshipRequest{
		StartupID: startupID,
		MentorID:  input.MentorID,
		Message:   input.Message,
		FocusArea: null.NewString(input.FocusArea, input.FocusArea != ""),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.requestRepo.Create(txCtx, req); err != nil {
			return err
		}
		if err := u.notifRepo.Create(txCtx, &entities.Notification{
			UserID:      input.MentorID,
			Type:        entities.NotificationMentorshipRequest,
			Title:       "New mentorship request",
			Message:     startup.FullName + " requested your mentorship",
			ReferenceID: null.StringFrom(req.ID.String()),
		}); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: startupID,
			Action: "mentorship.sent",
			Detail: null.StringFrom(input.MentorID.String()),
		})
	})
	if err != nil {
		return nil, err
	}

	return req, nil
}

// Respond lets the targeted mentor accept or reject a pending request
func (u *MentorshipUsecase) Respond(ctx context.Context, mentorID, requestID uuid.UUID, input *entities.RespondInput) (*entities.MentorshipRequest, error) {
	if input.Decision != entities.RequestStatusAccepted && input.Decision != entities.RequestStatusRejected {
		return nil, domainerrors.ErrInvalidInput
	}

	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.MentorID != mentorID {
		return nil, domainerrors.ErrForbidden
	}
	if req.Status != entities.RequestStatusPending {
		return nil, domainerrors.ErrRequestNotPending
	}

	mentor, err := u.profileRepo.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	verb := "accepted"
	if input.Decision == entities.RequestStatusRejected {
		verb = "rejected"
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.requestRepo.UpdateStatus(txCtx, requestID, input.Decision, input.ResponseMessage); err != nil {
			return err
		}
		if err := u.notifRepo.Create(txCtx, &entities.Notification{
			UserID:      req.StartupID,
			Type:        entities.NotificationMentorshipResponse,
			Title:       "Mentorship request " + verb,
			Message:     mentor.FullName + " " + verb + " your mentorship request",
			ReferenceID: null.StringFrom(requestID.String()),
		}); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: mentorID,
			Action: "mentorship." + verb,
			Detail: null.StringFrom(requestID.String()),
		})
	})
	if err != nil {
		return nil, err
	}

	return u.requestRepo.GetByID(ctx, requestID)
}

// Cancel withdraws the startup's own pending request
func (u *MentorshipUsecase) Cancel(ctx context.Context, startupID, requestID uuid.UUID) error {
	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.StartupID != startupID {
		return domainerrors.ErrForbidden
	}
	if req.Status != entities.RequestStatusPending {
		return domainerrors.ErrRequestNotPending
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.requestRepo.UpdateStatus(txCtx, requestID, entities.RequestStatusCancelled, ""); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: startupID,
			Action: "mentorship.cancelled",
			Detail: null.StringFrom(requestID.String()),
		})
	})
}

// ListSent lists requests the startup has sent
func (u *MentorshipUsecase) ListSent(ctx context.Context, startupID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	return u.requestRepo.ListByStartup(ctx, startupID)
}

// ListReceived lists requests targeting the mentor
func (u *MentorshipUsecase) ListReceived(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	return u.requestRepo.ListByMentor(ctx, mentorID)
}
