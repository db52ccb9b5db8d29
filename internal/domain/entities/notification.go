package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// NotificationType identifies the state transition a notification describes
type NotificationType string

const (
	NotificationConnectionRequest   NotificationType = "connection_request"
	NotificationConnectionResponse  NotificationType = "connection_response"
	NotificationMentorshipRequest   NotificationType = "mentorship_request"
	NotificationMentorshipResponse  NotificationType = "mentorship_response"
	NotificationInvestmentRequest   NotificationType = "investment_request"
	NotificationInvestmentResponse  NotificationType = "investment_response"
	NotificationEventRegistration   NotificationType = "event_registration"
	NotificationEventUpdate         NotificationType = "event_update"
	NotificationNewMessage          NotificationType = "new_message"
	NotificationAccountStatusChange NotificationType = "account_status_change"
)

// NotificationDispatch represents the outbox state of a notification.
// Rows are written in the same transaction as the mutation they describe
// and picked up by the dispatch job afterwards.
type NotificationDispatch string

const (
	DispatchPending NotificationDispatch = "pending"
	DispatchSent    NotificationDispatch = "sent"
)

// Notification represents a user-facing notification row
type Notification struct {
	ID          uuid.UUID            `json:"id"`
	UserID      uuid.UUID            `json:"user_id"`
	Type        NotificationType     `json:"type"`
	Title       string               `json:"title"`
	Message     string               `json:"message"`
	ReferenceID null.String          `json:"reference_id,omitempty"`
	IsRead      bool                 `json:"is_read"`
	Dispatch    NotificationDispatch `json:"-"`
	CreatedAt   time.Time            `json:"created_at"`
}

// ActivityLog represents an append-only audit trail entry
type ActivityLog struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Action    string      `json:"action"`
	Detail    null.String `json:"detail,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
