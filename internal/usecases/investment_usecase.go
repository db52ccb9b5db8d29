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

// InvestmentUsecase handles startup-to-investor pitch requests
type InvestmentUsecase struct {
	requestRepo  repositories.InvestmentRequestRepository
	profileRepo  repositories.ProfileRepository
	notifRepo    repositories.NotificationRepository
	activityRepo repositories.ActivityLogRepository
	uow          repositories.UnitOfWork
}

// NewInvestmentUsecase creates a new investment usecase
func NewInvestmentUsecase(
	requestRepo repositories.InvestmentRequestRepository,
	profileRepo repositories.ProfileRepository,
	notifRepo repositories.NotificationRepository,
	activityRepo repositories.ActivityLogRepository,
	uow repositories.UnitOfWork,
) *InvestmentUsecase {
	return &InvestmentUsecase{
		requestRepo:  requestRepo,
		profileRepo:  profileRepo,
		notifRepo:    notifRepo,
		activityRepo: activityRepo,
		uow:          uow,
	}
}

// Send creates an investment request. Only startups send them, only to investors.
func (u *InvestmentUsecase) Send(ctx context.Context, startupID uuid.UUID, input *entities.SendInvestmentInput) (*entities.InvestmentRequest, error) {
	if startupID == input.InvestorID {
		return nil, domainerrors.ErrSelfRequest
	}

	startup, err := u.profileRepo.GetByID(ctx, startupID)
	if err != nil {
		return nil, err
	}
	if startup.Role != entities.ProfileRoleStartup {
		return nil, domainerrors.ErrForbidden
	}

	investor, err := u.profileRepo.GetByID(ctx, input.InvestorID)
	if err != nil {
		return nil, err
	}
	if investor.Role != entities.ProfileRoleInvestor || investor.Status != entities.ProfileStatusActive {
		return nil, domainerrors.ErrForbidden
	}

	if existing, err := u.requestRepo.GetLiveByPair(ctx, startupID, input.InvestorID); err == nil {
		if existing.Status == entities.RequestStatusAccepted {
			return nil, domainerrors.ErrAlreadyConnected
		}
		return nil, domainerrors.ErrRequestPending
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	req := &entities.InvestmentRequest{
		StartupID:    startupID,
		InvestorID:   input.InvestorID,
		Message:      input.Message,
		PitchDeckURL: null.NewString(input.PitchDeckURL, input.PitchDeckURL != ""),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.requestRepo.Create(txCtx, req); err != nil {
			return err
		}
		if err := u.notifRepo.Create(txCtx, &entities.Notification{
			UserID:      input.InvestorID,
			Type:        entities.NotificationInvestmentRequest,
			Title:       "New investment request",
			Message:     startup.FullName + " pitched to you",
			ReferenceID: null.StringFrom(req.ID.String()),
		}); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: startupID,
			Action: "investment.sent",
			Detail: null.StringFrom(input.InvestorID.String()),
		})
	})
	if err != nil {
		return nil, err
	}

	return req, nil
}

// Respond lets the targeted investor accept or reject a pending request
func (u *InvestmentUsecase) Respond(ctx context.Context, investorID, requestID uuid.UUID, input *entities.RespondInput) (*entities.InvestmentRequest, error) {
	if input.Decision != entities.RequestStatusAccepted && input.Decision != entities.RequestStatusRejected {
		return nil, domainerrors.ErrInvalidInput
	}

	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.InvestorID != investorID {
		return nil, domainerrors.ErrForbidden
	}
	if req.Status != entities.RequestStatusPending {
		return nil, domainerrors.ErrRequestNotPending
	}

	investor, err := u.profileRepo.GetByID(ctx, investorID)
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
			Type:        entities.NotificationInvestmentResponse,
			Title:       "Investment request " + verb,
			Message:     investor.FullName + " " + verb + " your investment request",
			ReferenceID: null.StringFrom(requestID.String()),
		}); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: investorID,
			Action: "investment." + verb,
			Detail: null.StringFrom(requestID.String()),
		})
	})
	if err != nil {
		return nil, err
	}

	return u.requestRepo.GetByID(ctx, requestID)
}

// Cancel withdraws the startup's own pending request
func (u *InvestmentUsecase) Cancel(ctx context.Context, startupID, requestID uuid.UUID) error {
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
			Action: "investment.cancelled",
			Detail: null.StringFrom(requestID.String()),
		})
	})
}

// ListSent lists requests the startup has sent
func (u *InvestmentUsecase) ListSent(ctx context.Context, startupID uuid.UUID) ([]*entities.InvestmentRequest, error) {
	return u.requestRepo.ListByStartup(ctx, startupID)
}

// ListReceived lists requests targeting the investor
func (u *InvestmentUsecase) ListReceived(ctx context.Context, investorID uuid.UUID) ([]*entities.InvestmentRequest, error) {
	return u.requestRepo.ListByInvestor(ctx, investorID)
}
