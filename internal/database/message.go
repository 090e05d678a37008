package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/messagely/internal/models"
)

// CreateMessage persists a message from one existing user to another.
// Both participants are checked up front; the foreign keys are the
// backstop against a concurrent delete.
func (d *Database) CreateMessage(from, to, body string) (*models.Message, error) {
	for _, username := range []string{from, to} {
		if _, err := d.GetUser(username); err != nil {
			return nil, err
		}
	}

	message := &models.Message{
		FromUsername: from,
		ToUsername:   to,
		Body:         body,
		SentAt:       time.Now(),
	}
	if err := d.db.Create(message).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return d.GetMessage(message.ID.String())
}

// GetMessage returns the message with both participant summaries
// preloaded, so callers need no second lookup. A malformed id is
// reported as ErrNotFound rather than a store failure.
func (d *Database) GetMessage(id string) (*models.Message, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var message models.Message
	err = d.db.Preload("FromUser").Preload("ToUser").First(&message, "id = ?", uid).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &message, nil
}

// MarkMessageRead sets read_at once. Calling it again returns the
// message with the original timestamp untouched.
func (d *Database) MarkMessageRead(id string) (*models.Message, error) {
	message, err := d.GetMessage(id)
	if err != nil {
		return nil, err
	}
	if message.ReadAt != nil {
		return message, nil
	}

	now := time.Now()
	if err := d.db.Model(message).Update("read_at", now).Error; err != nil {
		return nil, err
	}
	message.ReadAt = &now
	return message, nil
}

// MessagesFrom returns the messages sent by username, each with the
// recipient summary preloaded.
func (d *Database) MessagesFrom(username string) ([]models.Message, error) {
	if _, err := d.GetUser(username); err != nil {
		return nil, err
	}

	var messages []models.Message
	err := d.db.
		Where("from_username = ?", username).
		Order("sent_at, id").
		Preload("ToUser").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MessagesTo returns the messages received by username, each with the
// sender summary preloaded.
func (d *Database) MessagesTo(username string) ([]models.Message, error) {
	if _, err := d.GetUser(username); err != nil {
		return nil, err
	}

	var messages []models.Message
	err := d.db.
		Where("to_username = ?", username).
		Order("sent_at, id").
		Preload("FromUser").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
