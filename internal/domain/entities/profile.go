package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProfileRole represents the role of a platform member
type ProfileRole string

const (
	ProfileRoleStartup  ProfileRole = "startup"
	ProfileRoleMentor   ProfileRole = "mentor"
	ProfileRoleInvestor ProfileRole = "investor"
	ProfileRoleAdmin    ProfileRole = "admin"
)

// ProfileStatus represents the moderation status of a profile
type ProfileStatus string

const (
	ProfileStatusActive    ProfileStatus = "active"
	ProfileStatusSuspended ProfileStatus = "suspended"
	ProfileStatusBanned    ProfileStatus = "banned"
)

// Profile represents the base identity of a platform member.
// Role-specific attributes live in the 1:1 startup/mentor/investor profiles.
type Profile struct {
	ID           uuid.UUID     `json:"id"`
	Email        string        `json:"email"`
	FullName     string        `json:"full_name"`
	PasswordHash string        `json:"-"`
	Role         ProfileRole   `json:"role"`
	Status       ProfileStatus `json:"status"`
	Bio          null.String   `json:"bio,omitempty"`
	AvatarURL    null.String   `json:"avatar_url,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	DeletedAt    *time.Time    `json:"-"`
}

// RegisterInput represents input for registering a new profile
type RegisterInput struct {
	Email    string      `json:"email" binding:"required,email"`
	FullName string      `json:"full_name" binding:"required,min=2,max=100"`
	Password string      `json:"password" binding:"required,min=8"`
	Role     ProfileRole `json:"role" binding:"required"`

	// Role-specific payloads, one of which must match Role
	Startup  *StartupProfileInput  `json:"startup,omitempty"`
	Mentor   *MentorProfileInput   `json:"mentor,omitempty"`
	Investor *InvestorProfileInput `json:"investor,omitempty"`
}

// LoginInput represents input for logging in
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"use_session"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	AccessToken  string   `json:"access_token,omitempty"`
	RefreshToken string   `json:"refresh_token,omitempty"`
	SessionID    string   `json:"session_id,omitempty"`
	Profile      *Profile `json:"profile"`
}

// ChangePasswordInput represents input for changing a password
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required,min=8"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// UpdateProfileInput represents input for updating the base profile
type UpdateProfileInput struct {
	FullName  string  `json:"full_name" binding:"omitempty,min=2,max=100"`
	Bio       *string `json:"bio" binding:"omitempty,max=2000"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`

	// Role-specific payloads; only the one matching the caller's role applies
	Startup  *StartupProfileInput  `json:"startup,omitempty"`
	Mentor   *MentorProfileInput   `json:"mentor,omitempty"`
	Investor *InvestorProfileInput `json:"investor,omitempty"`
}
