package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeiq-backend/internal/analyses"
	googleauth "resumeiq-backend/internal/auth"
	"resumeiq-backend/internal/coverletters"
	"resumeiq-backend/internal/interviews"
	"resumeiq-backend/internal/resumes"
	"resumeiq-backend/internal/shared/config"
	"resumeiq-backend/internal/shared/metrics"
	"resumeiq-backend/internal/shared/server/middleware"
	"resumeiq-backend/internal/shared/server/respond"
	"resumeiq-backend/internal/users"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config             config.Config
	UsersHandler       *users.Handler
	GoogleAuth         *googleauth.GoogleService
	ResumesHandler     *resumes.Handler
	AnalysesHandler    *analyses.Handler
	CoverLetterHandler *coverletters.Handler
	InterviewsHandler  *interviews.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.AnalysesHandler != nil {
		deps.AnalysesHandler.RegisterRoutes(api)
	}
	if deps.CoverLetterHandler != nil {
		deps.CoverLetterHandler.RegisterRoutes(api)
	}
	if deps.InterviewsHandler != nil {
		deps.InterviewsHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
