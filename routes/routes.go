package routes

import (
	"net/http"

	"quizapp/handlers"
	"quizapp/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	adminHandler *handlers.AdminHandler,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Authenticated routes
		protected := api.Group("/")
		protected.Use(middleware.Auth(jwtSecret))
		{
			protected.GET("/auth/profile", authHandler.GetProfile)
			protected.POST("/auth/logout", authHandler.Logout)

			// Quiz-taking routes. Admins are blocked here before any quiz
			// state logic runs.
			quiz := protected.Group("/")
			quiz.Use(middleware.UserOnly())
			{
				quiz.GET("/dashboard", quizHandler.Dashboard)
				quiz.POST("/quiz/start", quizHandler.StartQuiz)
				quiz.GET("/quiz/question", quizHandler.GetQuestion)
				quiz.POST("/quiz/question", quizHandler.SubmitAnswer)
				quiz.GET("/quiz/result", quizHandler.GetResult)
			}

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/stats", adminHandler.GetStats)
				admin.GET("/questions", adminHandler.ListQuestions)
				admin.POST("/questions", adminHandler.CreateQuestion)
				admin.GET("/questions/:id", adminHandler.GetQuestion)
				admin.PUT("/questions/:id", adminHandler.UpdateQuestion)
				admin.DELETE("/questions/:id", adminHandler.DeleteQuestion)
				admin.GET("/results", adminHandler.ListResults)
			}
		}
	}

	// Landing and health check endpoints
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": "quizapp", "status": "ok"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
