package analyses

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/score", h.score)
	rg.POST("/resumes/ats-check", h.atsCheck)
	rg.POST("/resumes/jd-questions", h.jdQuestions)
}

func (h *Handler) score(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	outcome, err := h.Svc.Score(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNoResume) {
			respond.Error(c, http.StatusBadRequest, "no_resume", "Upload a resume first", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to score resume.", nil)
		return
	}
	if outcome.Failure != nil {
		respond.JSON(c, http.StatusOK, gin.H{"message": "Resume scored", "analysis": outcome.Failure})
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"message": "Resume scored", "analysis": outcome.Report})
}

func (h *Handler) atsCheck(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	res, err := h.Svc.ATSCheck(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNoResume) {
			respond.Error(c, http.StatusBadRequest, "no_resume", "Upload a resume first", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to generate ATS report.", nil)
		return
	}
	if res.Failure != nil {
		respond.JSON(c, http.StatusOK, gin.H{"message": "ATS report generated", "ats": res.Failure})
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"message": "ATS report generated", "ats": res.Value})
}

type jdQuestionsRequest struct {
	JD string `json:"jd"`
}

func (h *Handler) jdQuestions(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req jdQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.JD) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Job description (jd) required", nil)
		return
	}

	res, err := h.Svc.JDQuestions(c.Request.Context(), userID, req.JD)
	if err != nil {
		if errors.Is(err, ErrNoResume) {
			respond.Error(c, http.StatusBadRequest, "no_resume", "Upload resume first", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to generate JD-based questions.", nil)
		return
	}
	if !res.OK() {
		respond.JSON(c, http.StatusOK, gin.H{"message": "JD-based questions generated", "questions": res.Failure})
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"message": "JD-based questions generated", "questions": res.Value})
}
