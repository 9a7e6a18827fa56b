package main

import (
	"log"

	"quizapp/config"
	"quizapp/handlers"
	"quizapp/middleware"
	"quizapp/routes"
	"quizapp/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Migrate schema and seed the default admin and sample questions
	if err := config.Bootstrap(db, cfg); err != nil {
		log.Fatal("Failed to bootstrap database:", err)
	}

	// Initialize Redis for transient attempt state
	redisClient := config.InitRedis(cfg)
	attemptStore := services.NewRedisAttemptStore(redisClient, cfg.AttemptTTL)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.TokenExpiryHours)
	questionService := services.NewQuestionService(db)
	resultService := services.NewResultService(db)
	attemptService := services.NewAttemptService(db, attemptStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, attemptService)
	quizHandler := handlers.NewQuizHandler(attemptService, resultService)
	adminHandler := handlers.NewAdminHandler(questionService, resultService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, quizHandler, adminHandler, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
