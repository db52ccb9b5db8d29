package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MentorshipRequest represents a startup's directed request to a mentor
type MentorshipRequest struct {
	ID              uuid.UUID     `json:"id"`
	StartupID       uuid.UUID     `json:"startup_id"`
	MentorID        uuid.UUID     `json:"mentor_id"`
	Message         string        `json:"message"`
	FocusArea       null.String   `json:"focus_area,omitempty"`
	Status          RequestStatus `json:"status"`
	ResponseMessage null.String   `json:"response_message,omitempty"`
	RespondedAt     null.Time     `json:"responded_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// InvestmentRequest represents a startup's directed request to an investor,
// optionally carrying a pitch deck reference
type InvestmentRequest struct {
	ID              uuid.UUID     `json:"id"`
	StartupID       uuid.UUID     `json:"startup_id"`
	InvestorID      uuid.UUID     `json:"investor_id"`
	Message         string        `json:"message"`
	PitchDeckURL    null.String   `json:"pitch_deck_url,omitempty"`
	Status          RequestStatus `json:"status"`
	ResponseMessage null.String   `json:"response_message,omitempty"`
	RespondedAt     null.Time     `json:"responded_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// SendMentorshipInput represents input for sending a mentorship request
type SendMentorshipInput struct {
	MentorID  uuid.UUID `json:"mentor_id" binding:"required"`
	Message   string    `json:"message" binding:"required,max=2000"`
	FocusArea string    `json:"focus_area" binding:"omitempty,max=200"`
}

// SendInvestmentInput represents input for sending an investment request
type SendInvestmentInput struct {
	InvestorID   uuid.UUID `json:"investor_id" binding:"required"`
	Message      string    `json:"message" binding:"required,max=2000"`
	PitchDeckURL string    `json:"pitch_deck_url" binding:"omitempty,url"`
}
