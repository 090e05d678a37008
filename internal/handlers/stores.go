package handlers

import "github.com/thereayou/messagely/internal/models"

// UserStore is the credential-store surface the handlers depend on,
// implemented by *database.Database.
type UserStore interface {
	RegisterUser(username, password, firstName, lastName, phone string) (*models.User, error)
	Authenticate(username, password string) (bool, error)
	UpdateLoginTimestamp(username string) error
	GetUser(username string) (*models.User, error)
	ListUsers() ([]models.User, error)
}

// MessageStore is the message-store surface the handlers depend on.
// The store is identity-agnostic; authorization happens in handlers.
type MessageStore interface {
	CreateMessage(from, to, body string) (*models.Message, error)
	GetMessage(id string) (*models.Message, error)
	MarkMessageRead(id string) (*models.Message, error)
	MessagesFrom(username string) ([]models.Message, error)
	MessagesTo(username string) ([]models.Message, error)
}
