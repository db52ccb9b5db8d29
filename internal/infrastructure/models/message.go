package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair"`
	Body        string    `gorm:"type:text;not null"`
	ReadAt      *time.Time
	CreatedAt   time.Time `gorm:"index"`

	Sender    Profile `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Recipient Profile `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
}

type Notification struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(50);not null"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Message     string    `gorm:"type:text;not null"`
	ReferenceID *string   `gorm:"type:varchar(80)"`
	IsRead      bool      `gorm:"default:false;index"`
	Dispatch    string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time

	User Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type ActivityLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Action    string    `gorm:"type:varchar(100);not null"`
	Detail    *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
}
