package handlers

import (
	"errors"
	"net/http"

	"quizapp/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	attemptService *services.AttemptService
	resultService  *services.ResultService
}

func NewQuizHandler(attemptService *services.AttemptService, resultService *services.ResultService) *QuizHandler {
	return &QuizHandler{
		attemptService: attemptService,
		resultService:  resultService,
	}
}

type AnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// Dashboard returns the user's past results, newest first.
func (h *QuizHandler) Dashboard(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	results, err := h.resultService.GetByUser(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *QuizHandler) StartQuiz(c *gin.Context) {
	sessionID := c.GetString("session_id")

	err := h.attemptService.Start(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNoQuestions) {
			c.JSON(http.StatusConflict, gin.H{"error": "No questions available for the quiz"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quiz started"})
}

func (h *QuizHandler) GetQuestion(c *gin.Context) {
	sessionID := c.GetString("session_id")

	current, err := h.attemptService.Current(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNoAttempt) {
			c.JSON(http.StatusConflict, gin.H{"error": "No quiz in progress"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, current)
}

func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completed, err := h.attemptService.Answer(c.Request.Context(), sessionID, req.QuestionID, req.Answer)
	if err != nil {
		if errors.Is(err, services.ErrNoAttempt) {
			c.JSON(http.StatusConflict, gin.H{"error": "No quiz in progress"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed": completed})
}

// GetResult scores the attempt, persists the result row and clears the
// attempt state. A second call answers 409.
func (h *QuizHandler) GetResult(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	sessionID := c.GetString("session_id")

	summary, err := h.attemptService.Finish(c.Request.Context(), sessionID, userID.(uint))
	if err != nil {
		if errors.Is(err, services.ErrNoAttempt) {
			c.JSON(http.StatusConflict, gin.H{"error": "No quiz results available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
