package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"venture-link.backend/internal/domain/entities"
	"venture-link.backend/internal/infrastructure/models"
	"venture-link.backend/pkg/utils"
)

// MessageRepository implements direct message data operations
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a message
func (r *MessageRepository) Create(ctx context.Context, msg *entities.Message) error {
	if msg.ID == uuid.Nil {
		msg.ID = utils.GenerateUUIDv7()
	}
	msg.CreatedAt = time.Now()

	m := &models.Message{
		ID:          msg.ID,
		SenderID:    msg.SenderID,
		RecipientID: msg.RecipientID,
		Body:        msg.Body,
		CreatedAt:   msg.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListBetween lists the message history between two profiles, newest first
func (r *MessageRepository) ListBetween(ctx context.Context, a, b uuid.UUID, limit, offset int) ([]*entities.Message, error) {
	if limit <= 0 {
		limit = 50
	}

	var msgModels []models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", a, b, b, a).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&msgModels).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]*entities.Message, 0, len(msgModels))
	for i := range msgModels {
		msgs = append(msgs, messageToEntity(&msgModels[i]))
	}
	return msgs, nil
}

// ListConversations summarizes the profile's threads: one entry per peer with
// the latest message and unread count.
func (r *MessageRepository) ListConversations(ctx context.Context, profileID uuid.UUID) ([]*entities.Conversation, error) {
	var msgModels []models.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", profileID, profileID).
		Order("created_at DESC").
		Find(&msgModels).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]*entities.Conversation)
	order := make([]uuid.UUID, 0)
	for i := range msgModels {
		m := &msgModels[i]
		peerID := m.SenderID
		if peerID == profileID {
			peerID = m.RecipientID
		}

		conv, ok := seen[peerID]
		if !ok {
			conv = &entities.Conversation{PeerID: peerID, LastMessage: messageToEntity(m)}
			seen[peerID] = conv
			order = append(order, peerID)
		}
		if m.RecipientID == profileID && m.ReadAt == nil {
			conv.UnreadCount++
		}
	}

	conversations := make([]*entities.Conversation, 0, len(order))
	for _, peerID := range order {
		conversations = append(conversations, seen[peerID])
	}
	return conversations, nil
}

// MarkConversationRead marks every message from peer to recipient as read
func (r *MessageRepository) MarkConversationRead(ctx context.Context, recipientID, peerID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Message{}).
		Where("recipient_id = ? AND sender_id = ? AND read_at IS NULL", recipientID, peerID).
		Update("read_at", time.Now()).Error
}

func messageToEntity(m *models.Message) *entities.Message {
	return &entities.Message{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		ReadAt:      null.TimeFromPtr(m.ReadAt),
		CreatedAt:   m.CreatedAt,
	}
}
