package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quiz-session-service/internal/models"
	"quiz-session-service/internal/service"
)

// SessionHandler exposes the live session intents over HTTP.
type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// StartRequest configures and starts a new session, replacing any
// previous one.
type StartRequest struct {
	ExamType     string `json:"examType"`
	Topics       string `json:"topics"`
	NumQuestions int    `json:"numQuestions"`
	Difficulty   string `json:"difficulty"`
	TimeLimit    int    `json:"timeLimit"`
}

func (h *SessionHandler) StartSession(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	cfg := models.QuizConfig{
		ExamType:     req.ExamType,
		Topics:       strings.Split(req.Topics, ","),
		NumQuestions: req.NumQuestions,
		Difficulty:   req.Difficulty,
		TimeLimitMin: req.TimeLimit,
	}
	snap, err := h.Service.StartQuiz(cfg)
	if err != nil {
		writeIntentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// GetSession returns the current rendering snapshot.
func (h *SessionHandler) GetSession(c *gin.Context) {
	snap, err := h.Service.Snapshot()
	if err != nil {
		writeIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// AnswerRequest selects an option for the current question.
type AnswerRequest struct {
	Option *int `json:"option" binding:"required"`
}

func (h *SessionHandler) SelectAnswer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	result, err := h.Service.SelectAnswer(*req.Option)
	if err != nil {
		writeIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SessionHandler) NextQuestion(c *gin.Context) {
	snap, err := h.Service.Next()
	if err != nil {
		writeIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *SessionHandler) PreviousQuestion(c *gin.Context) {
	snap, err := h.Service.Previous()
	if err != nil {
		writeIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *SessionHandler) FinishSession(c *gin.Context) {
	result, err := h.Service.Finish()
	if err != nil {
		writeIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SessionHandler) PauseSession(c *gin.Context) {
	if err := h.Service.Pause(); err != nil {
		writeIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paused": true})
}

func (h *SessionHandler) ResumeSession(c *gin.Context) {
	if err := h.Service.Resume(); err != nil {
		writeIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paused": false})
}

func (h *SessionHandler) RestartSession(c *gin.Context) {
	if err := h.Service.Restart(); err != nil {
		writeIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": "setup"})
}

func (h *SessionHandler) GetResults(c *gin.Context) {
	result, err := h.Service.Results()
	if err != nil {
		writeIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
