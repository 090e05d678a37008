package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Database struct {
	db         *gorm.DB
	bcryptCost int
}

// New returns a Database that still needs Connect. A zero or negative
// cost falls back to bcrypt.DefaultCost.
func New(bcryptCost int) *Database {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Database{bcryptCost: bcryptCost}
}

// NewDatabase wraps an already-open gorm.DB.
func NewDatabase(db *gorm.DB, bcryptCost int) *Database {
	d := New(bcryptCost)
	d.db = db
	return d
}
