package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/usecases"
)

func newConnectionUsecase() (*usecases.ConnectionUsecase, *MockConnectionRepository, *MockProfileRepository, *MockNotificationRepository, *MockActivityLogRepository, *MockUnitOfWork) {
	connRepo := new(MockConnectionRepository)
	profileRepo := new(MockProfileRepository)
	notifRepo := new(MockNotificationRepository)
	activityRepo := new(MockActivityLogRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewConnectionUsecase(connRepo, profileRepo, notifRepo, activityRepo, uow)
	return uc, connRepo, profileRepo, notifRepo, activityRepo, uow
}

func activeProfile(id uuid.UUID, role entities.ProfileRole) *entities.Profile {
	return &entities.Profile{
		ID:       id,
		Email:    id.String() + "@mail.com",
		FullName: "Member " + id.String()[:8],
		Role:     role,
		Status:   entities.ProfileStatusActive,
	}
}

func TestConnectionUsecase_Send_Success(t *testing.T) {
	uc, connRepo, profileRepo, notifRepo, activityRepo, uow := newConnectionUsecase()

	requesterID := uuid.New()
	targetID := uuid.New()

	profileRepo.On("GetByID", mock.Anything, requesterID).Return(activeProfile(requesterID, entities.ProfileRoleStartup), nil).Once()
	profileRepo.On("GetByID", mock.Anything, targetID).Return(activeProfile(targetID, entities.ProfileRoleMentor), nil).Once()
	connRepo.On("GetLiveByPair", mock.Anything, requesterID, targetID).Return(nil, domainerrors.ErrNotFound).Once()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	connRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Connection")).Return(nil).Once()
	notifRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Notification")).Return(nil).Once()
	activityRepo.On("Append", mock.Anything, mock.AnythingOfType("*entities.ActivityLog")).Return(nil).Once()

	conn, err := uc.Send(context.Background(), requesterID, &entities.SendConnectionInput{
		TargetID: targetID,
		Message:  "let's talk",
	})
	assert.NoError(t, err)
	assert.Equal(t, requesterID, conn.RequesterID)
	assert.Equal(t, targetID, conn.TargetID)
	assert.Equal(t, "network", conn.ConnectionType)

	notifRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(n *entities.Notification) bool {
		return n.UserID == targetID && n.Type == entities.NotificationConnectionRequest
	}))
	connRepo.AssertExpectations(t)
}

func TestConnectionUsecase_Send_ToSelf(t *testing.T) {
	uc, _, _, _, _, _ := newConnectionUsecase()

	id := uuid.New()
	_, err := uc.Send(context.Background(), id, &entities.SendConnectionInput{TargetID: id})
	assert.ErrorIs(t, err, domainerrors.ErrSelfRequest)
}

func TestConnectionUsecase_Send_SuspendedTarget(t *testing.T) {
	uc, _, profileRepo, _, _, _ := newConnectionUsecase()

	requesterID := uuid.New()
	targetID := uuid.New()
	target := activeProfile(targetID, entities.ProfileRoleMentor)
	target.Status = entities.ProfileStatusSuspended

	profileRepo.On("GetByID", mock.Anything, requesterID).Return(activeProfile(requesterID, entities.ProfileRoleStartup), nil).Once()
	profileRepo.On("GetByID", mock.Anything, targetID).Return(target, nil).Once()

	_, err := uc.Send(context.Background(), requesterID, &entities.SendConnectionInput{TargetID: targetID})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestConnectionUsecase_Send_AlreadyConnected(t *testing.T) {
	uc, connRepo, profileRepo, _, _, _ := newConnectionUsecase()

	requesterID := uuid.New()
	targetID := uuid.New()

	profileRepo.On("GetByID", mock.Anything, requesterID).Return(activeProfile(requesterID, entities.ProfileRoleStartup), nil).Once()
	profileRepo.On("GetByID", mock.Anything, targetID).Return(activeProfile(targetID, entities.ProfileRoleMentor), nil).Once()
	connRepo.On("GetLiveByPair", mock.Anything, requesterID, targetID).Return(&entities.Connection{
		Status: entities.RequestStatusAccepted,
	}, nil).Once()

	_, err := uc.Send(context.Background(), requesterID, &entities.SendConnectionInput{TargetID: targetID})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyConnected)
}

func TestConnectionUsecase_Send_AlreadyPending(t *testing.T) {
	uc, connRepo, profileRepo, _, _, _ := newConnectionUsecase()

	requesterID := uuid.New()
	targetID := uuid.New()

	profileRepo.On("GetByID", mock.Anything, requesterID).Return(activeProfile(requesterID, entities.ProfileRoleStartup), nil).Once()
	profileRepo.On("GetByID", mock.Anything, targetID).Return(activeProfile(targetID, entities.ProfileRoleMentor), nil).Once()
	connRepo.On("GetLiveByPair", mock.Anything, requesterID, targetID).Return(&entities.Connection{
		Status: entities.RequestStatusPending,
	}, nil).Once()

	_, err := uc.Send(context.Background(), requesterID, &entities.SendConnectionInput{TargetID: targetID})
	assert.ErrorIs(t, err, domainerrors.ErrRequestPending)
}

func TestConnectionUsecase_Respond_Accept(t *testing.T) {
	uc, connRepo, profileRepo, notifRepo, activityRepo, uow := newConnectionUsecase()

	requesterID := uuid.New()
	targetID := uuid.New()
	connID := uuid.New()
	pending := &entities.Connection{
		ID:          connID,
		RequesterID: requesterID,
		TargetID:    targetID,
		Status:      entities.RequestStatusPending,
	}
	accepted := &entities.Connection{
		ID:          connID,
		RequesterID: requesterID,
		TargetID:    targetID,
		Status:      entities.RequestStatusAccepted,
	}

	connRepo.On("GetByID", mock.Anything, connID).Return(pending, nil).Once()
	profileRepo.On("GetByID", mock.Anything, targetID).Return(activeProfile(targetID, entities.ProfileRoleMentor), nil).Once()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	connRepo.On("UpdateStatus", mock.Anything, connID, entities.RequestStatusAccepted, "happy to connect").Return(nil).Once()
	notifRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Notification")).Return(nil).Once()
	activityRepo.On("Append", mock.Anything, mock.AnythingOfType("*entities.ActivityLog")).Return(nil).Once()
	connRepo.On("GetByID", mock.Anything, connID).Return(accepted, nil).Once()

	conn, err := uc.Respond(context.Background(), targetID, connID, &entities.RespondInput{
		Decision:        entities.RequestStatusAccepted,
		ResponseMessage: "happy to connect",
	})
	assert.NoError(t, err)
	assert.Equal(t, entities.RequestStatusAccepted, conn.Status)

	notifRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(n *entities.Notification) bool {
		return n.UserID == requesterID && n.Type == entities.NotificationConnectionResponse
	}))
}

func TestConnectionUsecase_Respond_InvalidDecision(t *testing.T) {
	uc, _, _, _, _, _ := newConnectionUsecase()

	_, err := uc.Respond(context.Background(), uuid.New(), uuid.New(), &entities.RespondInput{
		Decision: entities.RequestStatusCancelled,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestConnectionUsecase_Respond_NotTarget(t *testing.T) {
	uc, connRepo, _, _, _, _ := newConnectionUsecase()

	connID := uuid.New()
	connRepo.On("GetByID", mock.Anything, connID).Return(&entities.Connection{
		ID:          connID,
		RequesterID: uuid.New(),
		TargetID:    uuid.New(),
		Status:      entities.RequestStatusPending,
	}, nil).Once()

	_, err := uc.Respond(context.Background(), uuid.New(), connID, &entities.RespondInput{
		Decision: entities.RequestStatusAccepted,
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestConnectionUsecase_Respond_NotPending(t *testing.T) {
	uc, connRepo, _, _, _, _ := newConnectionUsecase()

	targetID := uuid.New()
	connID := uuid.New()
	connRepo.On("GetByID", mock.Anything, connID).Return(&entities.Connection{
		ID:          connID,
		RequesterID: uuid.New(),
		TargetID:    targetID,
		Status:      entities.RequestStatusRejected,
	}, nil).Once()

	_, err := uc.Respond(context.Background(), targetID, connID, &entities.RespondInput{
		Decision: entities.RequestStatusAccepted,
	})
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotPending)
}

func TestConnectionUsecase_Cancel(t *testing.T) {
	uc, connRepo, _, _, activityRepo, uow := newConnectionUsecase()

	requesterID := uuid.New()
	connID := uuid.New()
	connRepo.On("GetByID", mock.Anything, connID).Return(&entities.Connection{
		ID:          connID,
		RequesterID: requesterID,
		TargetID:    uuid.New(),
		Status:      entities.RequestStatusPending,
	}, nil).Once()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	connRepo.On("UpdateStatus", mock.Anything, connID, entities.RequestStatusCancelled, "").Return(nil).Once()
	activityRepo.On("Append", mock.Anything, mock.AnythingOfType("*entities.ActivityLog")).Return(nil).Once()

	err := uc.Cancel(context.Background(), requesterID, connID)
	assert.NoError(t, err)
	connRepo.AssertExpectations(t)
}

func TestConnectionUsecase_Cancel_NotRequester(t *testing.T) {
	uc, connRepo, _, _, _, _ := newConnectionUsecase()

	connID := uuid.New()
	connRepo.On("GetByID", mock.Anything, connID).Return(&entities.Connection{
		ID:          connID,
		RequesterID: uuid.New(),
		TargetID:    uuid.New(),
		Status:      entities.RequestStatusPending,
	}, nil).Once()

	err := uc.Cancel(context.Background(), uuid.New(), connID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
