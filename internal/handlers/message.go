package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/messagely/internal/database"
	"github.com/thereayou/messagely/internal/handlers/dto"
	"github.com/thereayou/messagely/internal/middleware"
	ws "github.com/thereayou/messagely/internal/websocket"
)

type MessageHandler struct {
	messages MessageStore
	hub      *ws.Hub
}

func NewMessageHandler(messages MessageStore, hub *ws.Hub) *MessageHandler {
	return &MessageHandler{messages: messages, hub: hub}
}

// Get returns the message detail. Only the sender or the recipient may
// see it; the store does not know the caller, so the check lives here.
func (h *MessageHandler) Get(c *gin.Context) {
	username := middleware.UsernameFromContext(c)

	message, err := h.messages.GetMessage(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get message"})
		return
	}

	if username != message.FromUsername && username != message.ToUsername {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.NewMessageResponse(message)})
}

// Create sends a message. The sender is always the authenticated
// username, never taken from the body.
func (h *MessageHandler) Create(c *gin.Context) {
	username := middleware.UsernameFromContext(c)

	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messages.CreateMessage(username, req.ToUsername, req.Body)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	h.hub.Notify(message.ToUsername, ws.TypeMessageNew, dto.NewMessageResponse(message))

	c.JSON(http.StatusCreated, gin.H{"message": dto.NewMessageResponse(message)})
}

// MarkRead transitions read_at. Only the recipient may do this; the
// sender and everyone else get a 403 whether or not it is already read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	username := middleware.UsernameFromContext(c)

	message, err := h.messages.GetMessage(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get message"})
		return
	}

	if username != message.ToUsername {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	read, err := h.messages.MarkMessageRead(message.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark message read"})
		return
	}

	receipt := dto.ReadReceipt{ID: read.ID, ReadAt: read.ReadAt}
	h.hub.Notify(read.FromUsername, ws.TypeMessageRead, receipt)

	c.JSON(http.StatusOK, gin.H{"message": receipt})
}
