package coverletters

import (
	"errors"
	"net/http"
	"strings"

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

// RegisterRoutes attaches cover letter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/cover-letter", h.generate)
	rg.GET("/cover-letters", h.list)
}

type generateRequest struct {
	JD string `json:"jd"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.JD) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Job description required", nil)
		return
	}

	outcome, err := h.Svc.Generate(c.Request.Context(), userID, req.JD)
	if err != nil {
		if errors.Is(err, analyses.ErrNoResume) {
			respond.Error(c, http.StatusBadRequest, "no_resume", "Upload resume first", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to generate cover letter.", nil)
		return
	}
	if outcome.Failure != nil {
		respond.JSON(c, http.StatusOK, gin.H{"message": "Cover letter generated", "cover_letter": outcome.Failure})
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"message":      "Cover letter generated",
		"cover_letter": outcome.Letter.Letter,
		"cover_id":     outcome.Letter.ID,
	})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	letters, err := h.Svc.List(c.Request.Context(), userID, 20)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list cover letters", nil)
		return
	}

	resp := make([]gin.H, 0, len(letters))
	for _, letter := range letters {
		resp = append(resp, gin.H{
			"coverId":        letter.ID,
			"jobDescription": letter.JobDescription,
			"coverLetter":    letter.Letter,
			"createdAt":      letter.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}
