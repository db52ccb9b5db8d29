package repositories

import (
	"context"

	"github.com/google/uuid"
	"venture-link.backend/internal/domain/entities"
)

// MessageRepository defines direct message data operations
type MessageRepository interface {
	Create(ctx context.Context, msg *entities.Message) error
	ListBetween(ctx context.Context, a, b uuid.UUID, limit, offset int) ([]*entities.Message, error)
	ListConversations(ctx context.Context, profileID uuid.UUID) ([]*entities.Conversation, error)
	MarkConversationRead(ctx context.Context, recipientID, peerID uuid.UUID) error
}
