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

// ConnectionUsecase handles peer-to-peer connection requests
type ConnectionUsecase struct {
	connRepo     repositories.ConnectionRepository
	profileRepo  repositories.ProfileRepository
	notifRepo    repositories.NotificationRepository
	activityRepo repositories.ActivityLogRepository
	uow          repositories.UnitOfWork
}

// NewConnectionUsecase creates a new connection usecase
func NewConnectionUsecase(
	connRepo repositories.ConnectionRepository,
	profileRepo repositories.ProfileRepository,
	notifRepo repositories.NotificationRepository,
	activityRepo repositories.ActivityLogRepository,
	uow repositories.UnitOfWork,
) *ConnectionUsecase {
	return &ConnectionUsecase{
		connRepo:     connRepo,
		profileRepo:  profileRepo,
		notifRepo:    notifRepo,
		activityRepo: activityRepo,
		uow:          uow,
	}
}

// Send creates a pending connection request and notifies the target
func (u *ConnectionUsecase) Send(ctx context.Context, requesterID uuid.UUID, input *entities.SendConnectionInput) (*entities.Connection, error) {
	if requesterID == input.TargetID {
		return nil, domainerrors.ErrSelfRequest
	}

	requester, err := u.profileRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	target, err := u.profileRepo.GetByID(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}
	if target.Status != entities.ProfileStatusActive {
		return nil, domainerrors.ErrForbidden
	}

	// Friendly error before the insert; the unique pair key still catches races
	if existing, err := u.connRepo.GetLiveByPair(ctx, requesterID, input.TargetID); err == nil {
		if existing.Status == entities.RequestStatusAccepted {
			return nil, domainerrors.ErrAlreadyConnected
		}
		return nil, domainerrors.ErrRequestPending
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	connType := input.ConnectionType
	if connType == "" {
		connType = "network"
	}

	conn := &entities.Connection{
		RequesterID:    requesterID,
		TargetID:       input.TargetID,
		ConnectionType: connType,
		Message:        null.NewString(input.Message, input.Message != ""),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.connRepo.Create(txCtx, conn); err != nil {
			return err
		}
		if err := u.notifRepo.Create(txCtx, &entities.Notification{
			UserID:      input.TargetID,
			Type:        entities.NotificationConnectionRequest,
			Title:       "New connection request",
			Message:     requester.FullName + " wants to connect with you",
			ReferenceID: null.StringFrom(conn.ID.String()),
		}); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: requesterID,
			Action: "connection.sent",
			Detail: null.StringFrom(input.TargetID.String()),
		})
	})
	if err != nil {
		return nil, err
	}

	return conn, nil
}

// Respond accepts or rejects a pending request. Only the target may respond,
// and only while the request is pending.
func (u *ConnectionUsecase) Respond(ctx context.Context, responderID, connectionID uuid.UUID, input *entities.RespondInput) (*entities.Connection, error) {
	if input.Decision != entities.RequestStatusAccepted && input.Decision != entities.RequestStatusRejected {
		return nil, domainerrors.ErrInvalidInput
	}

	conn, err := u.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.TargetID != responderID {
		return nil, domainerrors.ErrForbidden
	}
	if conn.Status != entities.RequestStatusPending {
		return nil, domainerrors.ErrRequestNotPending
	}

	responder, err := u.profileRepo.GetByID(ctx, responderID)
	if err != nil {
		return nil, err
	}

	verb := "accepted"
	if input.Decision == entities.RequestStatusRejected {
		verb = "rejected"
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.connRepo.UpdateStatus(txCtx, connectionID, input.Decision, input.ResponseMessage); err != nil {
			return err
		}
		if err := u.notifRepo.Create(txCtx, &entities.Notification{
			UserID:      conn.RequesterID,
			Type:        entities.NotificationConnectionResponse,
			Title:       "Connection request " + verb,
			Message:     responder.FullName + " " + verb + " your connection request",
			ReferenceID: null.StringFrom(connectionID.String()),
		}); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: responderID,
			Action: "connection." + verb,
			Detail: null.StringFrom(connectionID.String()),
		})
	})
	if err != nil {
		return nil, err
	}

	return u.connRepo.GetByID(ctx, connectionID)
}

// Cancel withdraws the caller's own pending request
func (u *ConnectionUsecase) Cancel(ctx context.Context, requesterID, connectionID uuid.UUID) error {
	conn, err := u.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if conn.RequesterID != requesterID {
		return domainerrors.ErrForbidden
	}
	if conn.Status != entities.RequestStatusPending {
		return domainerrors.ErrRequestNotPending
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.connRepo.UpdateStatus(txCtx, connectionID, entities.RequestStatusCancelled, ""); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: requesterID,
			Action: "connection.cancelled",
			Detail: null.StringFrom(connectionID.String()),
		})
	})
}

// ListConnections lists the caller's accepted connections
func (u *ConnectionUsecase) ListConnections(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*entities.Connection, error) {
	return u.connRepo.ListAccepted(ctx, profileID, limit, offset)
}

// ListIncoming lists pending requests awaiting the caller's response
func (u *ConnectionUsecase) ListIncoming(ctx context.Context, profileID uuid.UUID) ([]*entities.Connection, error) {
	return u.connRepo.ListPendingIncoming(ctx, profileID)
}

// ListOutgoing lists the caller's pending requests
func (u *ConnectionUsecase) ListOutgoing(ctx context.Context, profileID uuid.UUID) ([]*entities.Connection, error) {
	return u.connRepo.ListPendingOutgoing(ctx, profileID)
}
