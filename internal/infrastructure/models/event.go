package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizerID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Title                string    `gorm:"type:varchar(200);not null"`
	Description          *string   `gorm:"type:text"`
	Location             *string   `gorm:"type:varchar(500)"`
	IsVirtual            bool      `gorm:"default:false"`
	StartDate            time.Time `gorm:"not null"`
	EndDate              time.Time `gorm:"not null"`
	RegistrationDeadline time.Time `gorm:"not null"`
	MaxParticipants      int       `gorm:"not null"`
	RequiresApproval     bool      `gorm:"default:false"`
	TargetAudience       string    `gorm:"type:varchar(100)"`
	Status               string    `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`

	Organizer Profile `gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE"`
}

// EventRegistration keeps RegKey as "event:user" while the registration is
// not cancelled so the database rejects duplicate live registrations.
type EventRegistration struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	RegKey    *string   `gorm:"type:varchar(80);uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Event Event   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	User  Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
