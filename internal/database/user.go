package database

import (
	"errors"
	"time"

	"github.com/thereayou/messagely/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterUser stores a new user with a bcrypt hash of password.
// join_at and last_login_at are both set to the creation time, so a
// fresh registration counts as a login.
func (d *Database) RegisterUser(username, password, firstName, lastName, phone string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
		JoinAt:       now,
		LastLoginAt:  now,
	}

	if err := d.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return user, nil
}

// Authenticate reports whether username/password is valid. An unknown
// username or a wrong password both come back as false without error;
// an error means the store itself failed.
func (d *Database) Authenticate(username, password string) (bool, error) {
	var user models.User
	if err := d.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil, nil
}

// UpdateLoginTimestamp sets last_login_at to now. Callers are expected
// to have authenticated the username first.
func (d *Database) UpdateLoginTimestamp(username string) error {
	return d.db.Model(&models.User{}).Where("username = ?", username).Update("last_login_at", time.Now()).Error
}

func (d *Database) GetUser(username string) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users ordered by username.
func (d *Database) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := d.db.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
