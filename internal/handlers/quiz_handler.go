package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"quiz-session-service/internal/models"
	"quiz-session-service/internal/service"
)

const serviceVersion = "1.0.0"

// QuizHandler serves the stateless quiz endpoints: topics, one-shot
// generation and submission scoring.
type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

// Health reports service liveness.
func (h *QuizHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "Quiz Session Service",
		"version":   serviceVersion,
		"timestamp": time.Now().Unix(),
	})
}

// Topics returns the available topics per exam type.
func (h *QuizHandler) Topics(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Topics())
}

// GenerateRequest is the external quiz-generation contract. Topics arrive
// as a comma-separated string.
type GenerateRequest struct {
	ExamType     string `json:"examType"`
	Topics       string `json:"topics"`
	NumQuestions int    `json:"numQuestions"`
	Difficulty   string `json:"difficulty"`
}

func (r *GenerateRequest) toConfig() models.QuizConfig {
	cfg := models.QuizConfig{
		ExamType:     r.ExamType,
		Topics:       strings.Split(r.Topics, ","),
		NumQuestions: r.NumQuestions,
		Difficulty:   r.Difficulty,
		// The one-shot endpoint carries no time limit; scoring against
		// the clock only exists inside a live session.
		TimeLimitMin: models.MinMinutes,
	}
	if cfg.NumQuestions == 0 {
		cfg.NumQuestions = 10
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = string(models.DifficultyMixed)
	}
	return cfg
}

// GenerateQuiz builds a question list for an external caller.
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid JSON data",
		})
		return
	}
	if req.ExamType == "" || strings.TrimSpace(req.Topics) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required parameters: examType and topics",
		})
		return
	}
	cfg := req.toConfig()
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	questions := h.Service.Generate(cfg)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": questions,
		"metadata": gin.H{
			"examType":     cfg.ExamType,
			"topics":       req.Topics,
			"numQuestions": len(questions),
			"difficulty":   cfg.Difficulty,
			"generatedAt":  time.Now().Unix(),
		},
	})
}

// SubmitRequest carries a finished quiz for scoring. Answers map question
// indexes to selected option indexes, both as strings.
type SubmitRequest struct {
	Questions []models.Question `json:"questions"`
	Answers   map[string]string `json:"answers"`
	TimeSpent int               `json:"timeSpent"`
}

// SubmitQuiz computes detailed results for a submitted quiz.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid JSON data",
		})
		return
	}
	results := h.Service.EvaluateSubmission(req.Questions, req.Answers, req.TimeSpent)
	c.JSON(http.StatusOK, results)
}

// writeIntentError maps state machine errors onto HTTP statuses shared by
// the session handlers.
func writeIntentError(c *gin.Context, err error) {
	status := http.StatusConflict
	var validation *models.ValidationError
	switch {
	case errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNoSession):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
