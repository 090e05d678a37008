package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/thereayou/messagely/internal/config"
	"github.com/thereayou/messagely/internal/database"
	"github.com/thereayou/messagely/internal/handlers"
	ws "github.com/thereayou/messagely/internal/websocket"
	"github.com/thereayou/messagely/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	Config     *config.Config
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Hub        *ws.Hub
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db := database.New(cfg.BcryptCost)
	if err := db.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	// Redis is optional: without it tokens simply cannot be revoked.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}
	} else {
		log.Println("REDIS_URL not set, token revocation disabled")
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	hub := ws.NewHub()
	go hub.Run()

	authH := handlers.NewAuthHandler(db, jwtMgr, rdb)
	userH := handlers.NewUserHandler(db, db)
	messageH := handlers.NewMessageHandler(db, hub)
	wsH := handlers.NewWebSocketHandler(hub)

	router := gin.Default()
	APIEndpoints(router, authH, userH, messageH, wsH, jwtMgr, rdb)

	return &Server{
		Router:     router,
		Config:     cfg,
		DB:         db,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Hub:        hub,
	}
}

func (s *Server) Run() {
	log.Printf("Server starting on port %s", s.Config.Port)
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
