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

func newMessageUsecase() (*usecases.MessageUsecase, *MockMessageRepository, *MockConnectionRepository, *MockProfileRepository, *MockNotificationRepository, *MockUnitOfWork) {
	msgRepo := new(MockMessageRepository)
	connRepo := new(MockConnectionRepository)
	profileRepo := new(MockProfileRepository)
	notifRepo := new(MockNotificationRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewMessageUsecase(msgRepo, connRepo, profileRepo, notifRepo, uow)
	return uc, msgRepo, connRepo, profileRepo, notifRepo, uow
}

func TestMessageUsecase_Send_Success(t *testing.T) {
	uc, msgRepo, connRepo, profileRepo, notifRepo, uow := newMessageUsecase()

	senderID := uuid.New()
	recipientID := uuid.New()

	profileRepo.On("GetByID", mock.Anything, senderID).Return(activeProfile(senderID, entities.ProfileRoleStartup), nil).Once()
	connRepo.On("GetLiveByPair", mock.Anything, senderID, recipientID).Return(&entities.Connection{
		Status: entities.RequestStatusAccepted,
	}, nil).Once()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	msgRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Message")).Return(nil).Once()
	notifRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Notification")).Return(nil).Once()

	msg, err := uc.Send(context.Background(), senderID, &entities.SendMessageInput{
		RecipientID: recipientID,
		Body:        "hello there",
	})
	assert.NoError(t, err)
	assert.Equal(t, senderID, msg.SenderID)
	assert.Equal(t, "hello there", msg.Body)

	notifRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(n *entities.Notification) bool {
		return n.UserID == recipientID && n.Type == entities.NotificationNewMessage
	}))
}

func TestMessageUsecase_Send_NotConnected(t *testing.T) {
	uc, msgRepo, connRepo, profileRepo, _, _ := newMessageUsecase()

	senderID := uuid.New()
	recipientID := uuid.New()

	profileRepo.On("GetByID", mock.Anything, senderID).Return(activeProfile(senderID, entities.ProfileRoleStartup), nil).Once()
	connRepo.On("GetLiveByPair", mock.Anything, senderID, recipientID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Send(context.Background(), senderID, &entities.SendMessageInput{
		RecipientID: recipientID,
		Body:        "hello there",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotConnected)
	msgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageUsecase_Send_PendingConnectionNotEnough(t *testing.T) {
	uc, _, connRepo, profileRepo, _, _ := newMessageUsecase()

	senderID := uuid.New()
	recipientID := uuid.New()

	profileRepo.On("GetByID", mock.Anything, senderID).Return(activeProfile(senderID, entities.ProfileRoleStartup), nil).Once()
	connRepo.On("GetLiveByPair", mock.Anything, senderID, recipientID).Return(&entities.Connection{
		Status: entities.RequestStatusPending,
	}, nil).Once()

	_, err := uc.Send(context.Background(), senderID, &entities.SendMessageInput{
		RecipientID: recipientID,
		Body:        "hello there",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotConnected)
}

func TestMessageUsecase_Send_ToSelf(t *testing.T) {
	uc, _, _, _, _, _ := newMessageUsecase()

	id := uuid.New()
	_, err := uc.Send(context.Background(), id, &entities.SendMessageInput{RecipientID: id, Body: "hi"})
	assert.ErrorIs(t, err, domainerrors.ErrSelfRequest)
}

func TestMessageUsecase_Thread_MarksRead(t *testing.T) {
	uc, msgRepo, _, _, _, _ := newMessageUsecase()

	profileID := uuid.New()
	peerID := uuid.New()
	page := []*entities.Message{
		{ID: uuid.New(), SenderID: peerID, RecipientID: profileID, Body: "latest"},
		{ID: uuid.New(), SenderID: profileID, RecipientID: peerID, Body: "older"},
	}

	msgRepo.On("ListBetween", mock.Anything, profileID, peerID, 20, 0).Return(page, nil).Once()
	msgRepo.On("MarkConversationRead", mock.Anything, profileID, peerID).Return(nil).Once()

	msgs, err := uc.Thread(context.Background(), profileID, peerID, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	msgRepo.AssertExpectations(t)
}

func TestMessageUsecase_Conversations_HydratesPeers(t *testing.T) {
	uc, msgRepo, _, profileRepo, _, _ := newMessageUsecase()

	profileID := uuid.New()
	peerID := uuid.New()
	goneID := uuid.New()

	msgRepo.On("ListConversations", mock.Anything, profileID).Return([]*entities.Conversation{
		{PeerID: peerID, UnreadCount: 2},
		{PeerID: goneID},
	}, nil).Once()
	profileRepo.On("GetByID", mock.Anything, peerID).Return(activeProfile(peerID, entities.ProfileRoleMentor), nil).Once()
	profileRepo.On("GetByID", mock.Anything, goneID).Return(nil, domainerrors.ErrNotFound).Once()

	conversations, err := uc.Conversations(context.Background(), profileID)
	assert.NoError(t, err)
	assert.Len(t, conversations, 2)
	assert.NotNil(t, conversations[0].Peer)
	assert.Nil(t, conversations[1].Peer)
}
