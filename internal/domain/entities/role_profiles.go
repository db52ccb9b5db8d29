package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// StartupProfile holds startup-specific attributes, 1:1 with Profile
type StartupProfile struct {
	ID           uuid.UUID   `json:"id"`
	ProfileID    uuid.UUID   `json:"profile_id"`
	CompanyName  string      `json:"company_name"`
	Industry     string      `json:"industry"`
	Stage        string      `json:"stage"`
	Website      null.String `json:"website,omitempty"`
	PitchSummary null.String `json:"pitch_summary,omitempty"`
	TeamSize     int         `json:"team_size"`
	FundingGoal  null.String `json:"funding_goal,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// MentorProfile holds mentor-specific attributes, 1:1 with Profile
type MentorProfile struct {
	ID              uuid.UUID   `json:"id"`
	ProfileID       uuid.UUID   `json:"profile_id"`
	ExpertiseTags   string      `json:"expertise_tags"` // comma separated
	YearsExperience int         `json:"years_experience"`
	Availability    string      `json:"availability"`
	HourlyRate      null.String `json:"hourly_rate,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// InvestorProfile holds investor-specific attributes, 1:1 with Profile
type InvestorProfile struct {
	ID               uuid.UUID   `json:"id"`
	ProfileID        uuid.UUID   `json:"profile_id"`
	FundName         string      `json:"fund_name"`
	InvestmentStages string      `json:"investment_stages"` // comma separated
	Sectors          string      `json:"sectors"`           // comma separated
	TicketMin        null.String `json:"ticket_min,omitempty"`
	TicketMax        null.String `json:"ticket_max,omitempty"`
	PortfolioSize    int         `json:"portfolio_size"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// StartupProfileInput represents input for creating/updating a startup profile
type StartupProfileInput struct {
	CompanyName  string `json:"company_name" binding:"required,min=1,max=200"`
	Industry     string `json:"industry" binding:"required"`
	Stage        string `json:"stage" binding:"required"`
	Website      string `json:"website" binding:"omitempty,url"`
	PitchSummary string `json:"pitch_summary" binding:"omitempty,max=5000"`
	TeamSize     int    `json:"team_size" binding:"omitempty,min=1"`
	FundingGoal  string `json:"funding_goal"`
}

// MentorProfileInput represents input for creating/updating a mentor profile
type MentorProfileInput struct {
	ExpertiseTags   string `json:"expertise_tags" binding:"required"`
	YearsExperience int    `json:"years_experience" binding:"omitempty,min=0"`
	Availability    string `json:"availability"`
	HourlyRate      string `json:"hourly_rate"`
}

// InvestorProfileInput represents input for creating/updating an investor profile
type InvestorProfileInput struct {
	FundName         string `json:"fund_name" binding:"required,min=1,max=200"`
	InvestmentStages string `json:"investment_stages" binding:"required"`
	Sectors          string `json:"sectors"`
	TicketMin        string `json:"ticket_min"`
	TicketMax        string `json:"ticket_max"`
	PortfolioSize    int    `json:"portfolio_size" binding:"omitempty,min=0"`
}

// PublicProfile is the discovery-facing view of a profile with its role extension
type PublicProfile struct {
	Profile  *Profile         `json:"profile"`
	Startup  *StartupProfile  `json:"startup,omitempty"`
	Mentor   *MentorProfile   `json:"mentor,omitempty"`
	Investor *InvestorProfile `json:"investor,omitempty"`
}
