package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/thereayou/messagely/internal/handlers"
	"github.com/thereayou/messagely/internal/middleware"
	"github.com/thereayou/messagely/pkg/auth"
)

func APIEndpoints(r *gin.Engine, authH *handlers.AuthHandler, userH *handlers.UserHandler,
	messageH *handlers.MessageHandler, wsH *handlers.WebSocketHandler,
	jwtMgr *auth.JWTManager, rdb *redis.Client) {

	// Auth endpoints
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", middleware.AuthMiddleware(jwtMgr, rdb), authH.Logout)
	}

	// API endpoints
	api := r.Group("", middleware.AuthMiddleware(jwtMgr, rdb))
	{
		api.GET("/users", userH.List)
		api.GET("/users/:username", userH.Get)
		api.GET("/users/:username/from", userH.MessagesFrom)
		api.GET("/users/:username/to", userH.MessagesTo)

		api.POST("/messages", messageH.Create)
		api.GET("/messages/:id", messageH.Get)
		// POST /messages/:id marks the message read
		api.POST("/messages/:id", messageH.MarkRead)
	}

	r.GET("/ws", middleware.WSAuthMiddleware(jwtMgr, rdb), wsH.HandleWebSocket)
}
