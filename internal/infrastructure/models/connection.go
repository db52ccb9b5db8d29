package models

import (
	"time"

	"github.com/google/uuid"
)

// Connection stores one row per request. PairKey holds the canonical
// "min:max" profile id pair while the row is pending or accepted and is
// cleared on terminal transitions; the unique index makes the at-most-one
// live row per pair invariant a database constraint instead of a
// check-then-act read.
type Connection struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterID     uuid.UUID `gorm:"type:uuid;not null;index"`
	TargetID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ConnectionType  string    `gorm:"type:varchar(50);default:'network'"`
	Message         *string   `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ResponseMessage *string   `gorm:"type:text"`
	RespondedAt     *time.Time
	PairKey         *string `gorm:"type:varchar(80);uniqueIndex"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Requester Profile `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	Target    Profile `gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE"`
}

type MentorshipRequest struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartupID       uuid.UUID `gorm:"type:uuid;not null;index"`
	MentorID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Message         string    `gorm:"type:text;not null"`
	FocusArea       *string   `gorm:"type:varchar(200)"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ResponseMessage *string   `gorm:"type:text"`
	RespondedAt     *time.Time
	PairKey         *string `gorm:"type:varchar(80);uniqueIndex"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Startup Profile `gorm:"foreignKey:StartupID;constraint:OnDelete:CASCADE"`
	Mentor  Profile `gorm:"foreignKey:MentorID;constraint:OnDelete:CASCADE"`
}

type InvestmentRequest struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartupID       uuid.UUID `gorm:"type:uuid;not null;index"`
	InvestorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Message         string    `gorm:"type:text;not null"`
	PitchDeckURL    *string   `gorm:"type:varchar(500)"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ResponseMessage *string   `gorm:"type:text"`
	RespondedAt     *time.Time
	PairKey         *string `gorm:"type:varchar(80);uniqueIndex"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Startup  Profile `gorm:"foreignKey:StartupID;constraint:OnDelete:CASCADE"`
	Investor Profile `gorm:"foreignKey:InvestorID;constraint:OnDelete:CASCADE"`
}
