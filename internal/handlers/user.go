package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/messagely/internal/database"
	"github.com/thereayou/messagely/internal/handlers/dto"
	"github.com/thereayou/messagely/internal/middleware"
)

type UserHandler struct {
	users    UserStore
	messages MessageStore
}

func NewUserHandler(users UserStore, messages MessageStore) *UserHandler {
	return &UserHandler{users: users, messages: messages}
}

// List returns public summaries for all users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	result := make([]dto.UserSummary, len(users))
	for i := range users {
		result[i] = dto.NewUserSummary(&users[i])
	}

	c.JSON(http.StatusOK, gin.H{"users": result})
}

// Get returns the full profile without the password hash.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetUser(c.Param("username"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.NewUserDetail(user)})
}

// MessagesFrom lists the messages the user sent. Users may only read
// their own listings.
func (h *UserHandler) MessagesFrom(c *gin.Context) {
	username := c.Param("username")
	if middleware.UsernameFromContext(c) != username {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	messages, err := h.messages.MessagesFrom(username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	result := make([]dto.MessageResponse, len(messages))
	for i := range messages {
		result[i] = dto.NewSentMessage(&messages[i])
	}

	c.JSON(http.StatusOK, gin.H{"messages": result})
}

// MessagesTo lists the messages the user received.
func (h *UserHandler) MessagesTo(c *gin.Context) {
	username := c.Param("username")
	if middleware.UsernameFromContext(c) != username {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	messages, err := h.messages.MessagesTo(username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	result := make([]dto.MessageResponse, len(messages))
	for i := range messages {
		result[i] = dto.NewReceivedMessage(&messages[i])
	}

	c.JSON(http.StatusOK, gin.H{"messages": result})
}
