package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Message represents a direct message between two connected profiles
type Message struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Body        string    `json:"body"`
	ReadAt      null.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Conversation summarizes the message thread with one peer
type Conversation struct {
	PeerID      uuid.UUID `json:"peer_id"`
	Peer        *Profile  `json:"peer,omitempty"`
	LastMessage *Message  `json:"last_message,omitempty"`
	UnreadCount int64     `json:"unread_count"`
}

// SendMessageInput represents input for sending a direct message
type SendMessageInput struct {
	RecipientID uuid.UUID `json:"recipient_id" binding:"required"`
	Body        string    `json:"body" binding:"required,min=1,max=5000"`
}
