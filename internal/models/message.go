package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two users. ReadAt stays null
// until the recipient marks it read.
type Message struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FromUsername string    `gorm:"not null;index"`
	ToUsername   string    `gorm:"not null;index"`
	Body         string    `gorm:"not null"`
	SentAt       time.Time
	ReadAt       *time.Time

	FromUser User `gorm:"foreignKey:FromUsername;references:Username"`
	ToUser   User `gorm:"foreignKey:ToUsername;references:Username"`
}
