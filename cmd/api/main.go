package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Abdukarim17/fluentia/internal/config"
	"github.com/Abdukarim17/fluentia/internal/database"
	"github.com/Abdukarim17/fluentia/internal/http/handlers"
	"github.com/Abdukarim17/fluentia/internal/http/middleware"
	"github.com/Abdukarim17/fluentia/internal/llm"
	"github.com/Abdukarim17/fluentia/internal/match"
	"github.com/Abdukarim17/fluentia/internal/models"
	"github.com/Abdukarim17/fluentia/internal/store"
	"github.com/Abdukarim17/fluentia/internal/ws"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.DBDSN == "" || cfg.JWTSecret == "" {
		log.Fatal("database and JWT_SECRET configuration is required")
	}

	db, err := database.ConnectPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatal("failed connect db:", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatal("failed migrate:", err)
	}

	users := store.NewGormUsers(db)
	hub := ws.NewHub()

	groq := llm.NewGroqClient(cfg.GroqKey)
	tts := llm.NewOpenAIClient(cfg.OpenAIKey)

	matcher := &match.Service{
		Validator:  match.RegisteredValidator{Users: users},
		Skill:      match.ThresholdSkillChecker{Users: users, Threshold: cfg.SkillThreshold},
		Acceptance: hub,
		Matchmaker: hub,
		Notifier:   hub,
	}

	r := gin.Default()

	// Auth
	authH := &handlers.AuthHandler{Users: users, JWTSecret: cfg.JWTSecret}
	r.POST("/signup/", authH.Signup)
	r.POST("/login/", authH.Login)

	// Matchmaking
	roomH := &handlers.RoomHandler{Match: matcher}
	r.POST("/create-room/", roomH.CreateRoom)

	// Presence / call acceptance
	wsH := &handlers.WSHandler{
		Hub:                  hub,
		Users:                users,
		JWTSecret:            cfg.JWTSecret,
		WSInsecureSkipVerify: cfg.WSInsecureSkipVerify,
	}
	r.GET("/ws", wsH.Handle)

	// Protected routes
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware(cfg.JWTSecret, users))

	convH := &handlers.ConversationHandler{Transcriber: groq, Chat: groq, Speech: tts}
	authed.POST("/conversational-ai/", convH.Converse)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Println("listening on", addr)
	log.Fatal(r.Run(addr))
}
