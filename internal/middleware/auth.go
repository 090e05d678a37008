package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/thereayou/messagely/pkg/auth"
)

const UsernameKey = "username"

// UsernameFromContext returns the username set by the auth middleware,
// or "" if the request is unauthenticated.
func UsernameFromContext(c *gin.Context) string {
	v, ok := c.Get(UsernameKey)
	if !ok {
		return ""
	}
	username, _ := v.(string)
	return username
}

// AuthMiddleware verifies the bearer JWT and binds the username it
// carries to the request context. With a Redis client present, tokens
// revoked by logout are rejected; with none, the check is skipped.
func AuthMiddleware(jwtManager *auth.JWTManager, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		if !authorize(c, jwtManager, redisClient, token) {
			return
		}
		c.Next()
	}
}

// WSAuthMiddleware accepts the token from the query string as well,
// since browser WebSocket clients cannot set headers.
func WSAuthMiddleware(jwtManager *auth.JWTManager, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
					token = parts[1]
				}
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		if !authorize(c, jwtManager, redisClient, token) {
			return
		}
		c.Next()
	}
}

func authorize(c *gin.Context, jwtManager *auth.JWTManager, redisClient *redis.Client, token string) bool {
	if redisClient != nil {
		exists, err := redisClient.Exists(c.Request.Context(), "blacklist:"+token).Result()
		if err != nil || exists > 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is revoked"})
			c.Abort()
			return false
		}
	}

	claims, err := jwtManager.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		c.Abort()
		return false
	}
	if claims.Subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		c.Abort()
		return false
	}

	c.Set(UsernameKey, claims.Subject)
	return true
}
