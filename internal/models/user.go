package models

import "time"

// User is keyed by username. PasswordHash is a bcrypt hash and must
// never be serialized into a response.
type User struct {
	Username     string `gorm:"primaryKey;size:50"`
	PasswordHash string `gorm:"not null"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Phone        string
	JoinAt       time.Time
	LastLoginAt  time.Time
}
