package interviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumeiq-backend/internal/analyses"
	"resumeiq-backend/internal/shared/server/middleware"
	"resumeiq-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interviews/setup", h.setup)
	rg.GET("/interviews/questions", h.questions)
	rg.POST("/interviews/chat", h.chat)
}

type setupRequest struct {
	JobRole       string `json:"jobRole"`
	Company       string `json:"company"`
	Difficulty    string `json:"difficulty"`
	InterviewType string `json:"interviewType"`
	Rounds        int    `json:"rounds"`
}

func (h *Handler) setup(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req setupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	setup, err := h.Svc.Setup(c.Request.Context(), userID, SetupParams{
		JobRole:       req.JobRole,
		Company:       req.Company,
		Difficulty:    req.Difficulty,
		InterviewType: req.InterviewType,
		Rounds:        req.Rounds,
	})
	if err != nil {
		switch {
		case errors.Is(err, analyses.ErrNoResume):
			respond.Error(c, http.StatusBadRequest, "no_resume", "Upload resume first", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to generate questions.", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"message":   "Interview setup complete",
		"setupId":   setup.ID,
		"questions": setup.Questions,
	})
}

func (h *Handler) questions(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	page := 1
	pageSize := 5
	if v := c.Query("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			page = parsed
		}
	}
	if v := c.Query("pageSize"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			pageSize = parsed
		}
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 5
	}
	if pageSize > 20 {
		pageSize = 20
	}

	questions, err := h.Svc.Questions(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		switch {
		case errors.Is(err, analyses.ErrNoResume):
			respond.Error(c, http.StatusBadRequest, "no_resume", "Upload resume first", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to generate questions.", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"page":      page,
		"pageSize":  pageSize,
		"questions": questions,
	})
}

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
}

func (h *Handler) chat(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	outcome, err := h.Svc.Chat(c.Request.Context(), userID, req.SessionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, analyses.ErrNoResume):
			respond.Error(c, http.StatusBadRequest, "no_resume", "Upload resume first", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Interview turn failed.", nil)
		}
		return
	}
	if outcome.Failure != nil {
		respond.JSON(c, http.StatusOK, gin.H{"sessionId": outcome.SessionID, "turn": outcome.Failure})
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"sessionId":     outcome.SessionID,
		"evaluation":    outcome.Turn.Evaluation,
		"score":         outcome.Turn.Score,
		"next_question": outcome.Turn.NextQuestion,
	})
}
