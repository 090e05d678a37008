package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/thereayou/messagely/internal/database"
	"github.com/thereayou/messagely/internal/handlers/dto"
	"github.com/thereayou/messagely/pkg/auth"
)

type AuthHandler struct {
	users      UserStore
	jwtManager *auth.JWTManager
	redis      *redis.Client
}

func NewAuthHandler(users UserStore, jwtMgr *auth.JWTManager, rdb *redis.Client) *AuthHandler {
	return &AuthHandler{users: users, jwtManager: jwtMgr, redis: rdb}
}

// Register creates the user and logs them in with a fresh token.
// Registration itself sets last_login_at, so no separate timestamp
// update is needed here.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.RegisterUser(req.Username, req.Password, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateUser) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := h.jwtManager.Generate(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{Token: token})
}

// Login checks credentials, bumps last_login_at and issues a token.
// The failure response is the same whether the username exists or the
// password is wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
		return
	}

	if err := h.users.UpdateLoginTimestamp(req.Username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	token, err := h.jwtManager.Generate(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Logout blacklists the presented token in Redis until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.redis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "logout unavailable"})
		return
	}

	exp, err := h.jwtManager.Expiry(rawToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ttl := time.Until(exp)
	h.redis.Set(c.Request.Context(), "blacklist:"+rawToken, 1, ttl)

	c.Status(http.StatusOK)
}
