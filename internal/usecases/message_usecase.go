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

// MessageUsecase handles direct messaging between connected profiles
type MessageUsecase struct {
	msgRepo     repositories.MessageRepository
	connRepo    repositories.ConnectionRepository
	profileRepo repositories.ProfileRepository
	notifRepo   repositories.NotificationRepository
	uow         repositories.UnitOfWork
}

// NewMessageUsecase creates a new message usecase
func NewMessageUsecase(
	msgRepo repositories.MessageRepository,
	connRepo repositories.ConnectionRepository,
	profileRepo repositories.ProfileRepository,
	notifRepo repositories.NotificationRepository,
	uow repositories.UnitOfWork,
) *MessageUsecase {
	return &MessageUsecase{
		msgRepo:     msgRepo,
		connRepo:    connRepo,
		profileRepo: profileRepo,
		notifRepo:   notifRepo,
		uow:         uow,
	}
}

// Send delivers a message to a connected peer. Messaging requires an accepted
// connection between the two profiles.
func (u *MessageUsecase) Send(ctx context.Context, senderID uuid.UUID, input *entities.SendMessageInput) (*entities.Message, error) {
	if senderID == input.RecipientID {
		return nil, domainerrors.ErrSelfRequest
	}

	sender, err := u.profileRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	if err := u.requireConnected(ctx, senderID, input.RecipientID); err != nil {
		return nil, err
	}

	msg := &entities.Message{
		SenderID:    senderID,
		RecipientID: input.RecipientID,
		Body:        input.Body,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.msgRepo.Create(txCtx, msg); err != nil {
			return err
		}
		return u.notifRepo.Create(txCtx, &entities.Notification{
			UserID:      input.RecipientID,
			Type:        entities.NotificationNewMessage,
			Title:       "New message",
			Message:     sender.FullName + " sent you a message",
			ReferenceID: null.StringFrom(msg.ID.String()),
		})
	})
	if err != nil {
		return nil, err
	}

	return msg, nil
}

func (u *MessageUsecase) requireConnected(ctx context.Context, a, b uuid.UUID) error {
	conn, err := u.connRepo.GetLiveByPair(ctx, a, b)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrNotConnected
		}
		return err
	}
	if conn.Status != entities.RequestStatusAccepted {
		return domainerrors.ErrNotConnected
	}
	return nil
}

// Thread returns the message history with a peer and marks the incoming
// half of it read.
func (u *MessageUsecase) Thread(ctx context.Context, profileID, peerID uuid.UUID, limit, offset int) ([]*entities.Message, error) {
	msgs, err := u.msgRepo.ListBetween(ctx, profileID, peerID, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := u.msgRepo.MarkConversationRead(ctx, profileID, peerID); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Conversations summarizes the caller's threads, hydrating peer profiles
func (u *MessageUsecase) Conversations(ctx context.Context, profileID uuid.UUID) ([]*entities.Conversation, error) {
	conversations, err := u.msgRepo.ListConversations(ctx, profileID)
	if err != nil {
		return nil, err
	}

	for _, conv := range conversations {
		peer, err := u.profileRepo.GetByID(ctx, conv.PeerID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				continue // deleted peer keeps the thread readable
			}
			return nil, err
		}
		conv.Peer = peer
	}
	return conversations, nil
}
