package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/messagely/internal/models"
)

type CreateMessageRequest struct {
	ToUsername string `json:"to_username" binding:"required"`
	Body       string `json:"body" binding:"required"`
}

// MessageResponse embeds whichever participant summaries the caller
// needs: both for a detail view, only the counterpart for the sent and
// received listings.
type MessageResponse struct {
	ID       uuid.UUID    `json:"id"`
	Body     string       `json:"body"`
	SentAt   time.Time    `json:"sent_at"`
	ReadAt   *time.Time   `json:"read_at"`
	FromUser *UserSummary `json:"from_user,omitempty"`
	ToUser   *UserSummary `json:"to_user,omitempty"`
}

// ReadReceipt is the response to marking a message read.
type ReadReceipt struct {
	ID     uuid.UUID  `json:"id"`
	ReadAt *time.Time `json:"read_at"`
}

func NewMessageResponse(m *models.Message) MessageResponse {
	from := NewUserSummary(&m.FromUser)
	to := NewUserSummary(&m.ToUser)
	return MessageResponse{
		ID:       m.ID,
		Body:     m.Body,
		SentAt:   m.SentAt,
		ReadAt:   m.ReadAt,
		FromUser: &from,
		ToUser:   &to,
	}
}

// NewSentMessage keeps only the recipient summary.
func NewSentMessage(m *models.Message) MessageResponse {
	to := NewUserSummary(&m.ToUser)
	return MessageResponse{
		ID:     m.ID,
		Body:   m.Body,
		SentAt: m.SentAt,
		ReadAt: m.ReadAt,
		ToUser: &to,
	}
}

// NewReceivedMessage keeps only the sender summary.
func NewReceivedMessage(m *models.Message) MessageResponse {
	from := NewUserSummary(&m.FromUser)
	return MessageResponse{
		ID:       m.ID,
		Body:     m.Body,
		SentAt:   m.SentAt,
		ReadAt:   m.ReadAt,
		FromUser: &from,
	}
}
