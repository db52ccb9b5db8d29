package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'"`
	Bio          *string   `gorm:"type:text"`
	AvatarURL    *string   `gorm:"type:varchar(500)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

type StartupProfile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyName  string    `gorm:"type:varchar(200);not null"`
	Industry     string    `gorm:"type:varchar(100)"`
	Stage        string    `gorm:"type:varchar(50)"`
	Website      *string   `gorm:"type:varchar(500)"`
	PitchSummary *string   `gorm:"type:text"`
	TeamSize     int       `gorm:"default:1"`
	FundingGoal  *string   `gorm:"type:varchar(50)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

type MentorProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ExpertiseTags   string    `gorm:"type:varchar(500)"`
	YearsExperience int       `gorm:"default:0"`
	Availability    string    `gorm:"type:varchar(100)"`
	HourlyRate      *string   `gorm:"type:varchar(50)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

type InvestorProfile struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FundName         string    `gorm:"type:varchar(200);not null"`
	InvestmentStages string    `gorm:"type:varchar(200)"`
	Sectors          string    `gorm:"type:varchar(500)"`
	TicketMin        *string   `gorm:"type:varchar(50)"`
	TicketMax        *string   `gorm:"type:varchar(50)"`
	PortfolioSize    int       `gorm:"default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}
