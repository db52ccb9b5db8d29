package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// EventStatus represents the publication state of an event
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// RegistrationStatus represents the state of an event registration
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
	RegistrationStatusRejected  RegistrationStatus = "rejected"
)

// Event represents a platform event with capacity and deadline constraints
type Event struct {
	ID                   uuid.UUID   `json:"id"`
	OrganizerID          uuid.UUID   `json:"organizer_id"`
	Title                string      `json:"title"`
	Description          null.String `json:"description,omitempty"`
	Location             null.String `json:"location,omitempty"`
	IsVirtual            bool        `json:"is_virtual"`
	StartDate            time.Time   `json:"start_date"`
	EndDate              time.Time   `json:"end_date"`
	RegistrationDeadline time.Time   `json:"registration_deadline"`
	MaxParticipants      int         `json:"max_participants"`
	RequiresApproval     bool        `json:"requires_approval"`
	TargetAudience       string      `json:"target_audience"` // comma separated roles
	Status               EventStatus `json:"status"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
	DeletedAt            *time.Time  `json:"-"`

	ConfirmedCount int64 `json:"confirmed_count,omitempty"`
}

// EventRegistration represents a member's registration for an event
type EventRegistration struct {
	ID        uuid.UUID          `json:"id"`
	EventID   uuid.UUID          `json:"event_id"`
	UserID    uuid.UUID          `json:"user_id"`
	Status    RegistrationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	Event *Event `json:"event,omitempty"`
}

// CreateEventInput represents input for creating an event
type CreateEventInput struct {
	Title                string    `json:"title" binding:"required,min=3,max=200"`
	Description          string    `json:"description" binding:"omitempty,max=5000"`
	Location             string    `json:"location" binding:"omitempty,max=500"`
	IsVirtual            bool      `json:"is_virtual"`
	StartDate            time.Time `json:"start_date" binding:"required"`
	EndDate              time.Time `json:"end_date" binding:"required"`
	RegistrationDeadline time.Time `json:"registration_deadline" binding:"required"`
	MaxParticipants      int       `json:"max_participants" binding:"required,min=1"`
	RequiresApproval     bool      `json:"requires_approval"`
	TargetAudience       string    `json:"target_audience" binding:"omitempty,max=100"`
}

// UpdateEventInput represents input for updating an event
type UpdateEventInput struct {
	Title                string      `json:"title" binding:"omitempty,min=3,max=200"`
	Description          string      `json:"description" binding:"omitempty,max=5000"`
	Location             string      `json:"location" binding:"omitempty,max=500"`
	StartDate            *time.Time  `json:"start_date"`
	EndDate              *time.Time  `json:"end_date"`
	RegistrationDeadline *time.Time  `json:"registration_deadline"`
	MaxParticipants      int         `json:"max_participants" binding:"omitempty,min=1"`
	TargetAudience       string      `json:"target_audience" binding:"omitempty,max=100"`
	Status               EventStatus `json:"status" binding:"omitempty"`
}
