package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RequestStatus represents the lifecycle state shared by connections,
// mentorship requests and investment requests. Pending is the only
// non-terminal state.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions
func (s RequestStatus) IsTerminal() bool {
	return s != RequestStatusPending
}

// Connection represents a peer-to-peer connection request between two profiles
type Connection struct {
	ID              uuid.UUID     `json:"id"`
	RequesterID     uuid.UUID     `json:"requester_id"`
	TargetID        uuid.UUID     `json:"target_id"`
	ConnectionType  string        `json:"connection_type"`
	Message         null.String   `json:"message,omitempty"`
	Status          RequestStatus `json:"status"`
	ResponseMessage null.String   `json:"response_message,omitempty"`
	RespondedAt     null.Time     `json:"responded_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	// Joined for list responses
	Requester *Profile `json:"requester,omitempty"`
	Target    *Profile `json:"target,omitempty"`
}

// SendConnectionInput represents input for sending a connection request
type SendConnectionInput struct {
	TargetID       uuid.UUID `json:"target_id" binding:"required"`
	ConnectionType string    `json:"connection_type" binding:"omitempty,max=50"`
	Message        string    `json:"message" binding:"omitempty,max=1000"`
}

// RespondInput represents input for accepting or rejecting a pending request
type RespondInput struct {
	Decision        RequestStatus `json:"decision" binding:"required"`
	ResponseMessage string        `json:"response_message" binding:"omitempty,max=1000"`
}
