package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeiq-backend/internal/analyses"
	googleauth "resumeiq-backend/internal/auth"
	"resumeiq-backend/internal/coverletters"
	"resumeiq-backend/internal/generate"
	"resumeiq-backend/internal/interviews"
	"resumeiq-backend/internal/llm"
	openai "resumeiq-backend/internal/llm/openai"
	"resumeiq-backend/internal/parse"
	"resumeiq-backend/internal/resumes"
	"resumeiq-backend/internal/shared/config"
	"resumeiq-backend/internal/shared/server"
	"resumeiq-backend/internal/shared/storage/db"
	"resumeiq-backend/internal/shared/storage/object"
	localstore "resumeiq-backend/internal/shared/storage/object/local"
	s3store "resumeiq-backend/internal/shared/storage/object/s3"
	"resumeiq-backend/internal/users"
)

// App holds shared dependencies after wiring.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	UsersRepo        users.Repo
	ResumesRepo      resumes.Repo
	AnalysesRepo     analyses.Repo
	CoverLettersRepo coverletters.Repo
	InterviewsRepo   interviews.Repo

	Pipeline  *parse.Pipeline
	Generator *generate.Generator

	UsersService        *users.Service
	ResumesService      *resumes.Service
	AnalysesService     *analyses.Service
	CoverLettersService *coverletters.Service
	InterviewsService   *interviews.Service
	GoogleAuth          *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		UsersHandler:       users.NewHandler(app.UsersService),
		GoogleAuth:         app.GoogleAuth,
		ResumesHandler:     resumes.NewHandler(app.ResumesService),
		AnalysesHandler:    analyses.NewHandler(app.AnalysesService),
		CoverLetterHandler: coverletters.NewHandler(app.CoverLettersService),
		InterviewsHandler:  interviews.NewHandler(app.InterviewsService),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) error {
	var userRepo users.Repo
	var resumeRepo resumes.Repo
	var analysisRepo analyses.Repo
	var coverRepo coverletters.Repo
	var interviewRepo interviews.Repo

	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		analysisRepo = &analyses.PGRepo{DB: app.DB}
		coverRepo = &coverletters.PGRepo{DB: app.DB}
		interviewRepo = &interviews.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
		coverRepo = coverletters.NewMemoryRepo()
		interviewRepo = interviews.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" {
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"))
		if err != nil {
			if !isDevLike(app.Config.Env) {
				return err
			}
			log.Printf("bootstrap: openai client unavailable; using placeholder: %v", err)
		} else {
			llmClient = client
		}
	}

	app.Pipeline = parse.NewPipeline(llmClient, app.Config.ParseModel)
	app.Generator = generate.NewGenerator(llmClient, app.Config.GenerateModel)

	app.UsersRepo = userRepo
	app.ResumesRepo = resumeRepo
	app.AnalysesRepo = analysisRepo
	app.CoverLettersRepo = coverRepo
	app.InterviewsRepo = interviewRepo

	app.UsersService = &users.Service{Repo: userRepo}
	app.ResumesService = &resumes.Service{
		Store:     app.Store,
		Repo:      resumeRepo,
		Extractor: app.Pipeline,
	}
	app.AnalysesService = &analyses.Service{
		Resumes: resumeRepo,
		Gen:     app.Generator,
		Repo:    analysisRepo,
	}
	app.CoverLettersService = &coverletters.Service{
		Resumes: resumeRepo,
		Gen:     app.Generator,
		Repo:    coverRepo,
	}
	app.InterviewsService = &interviews.Service{
		Resumes: resumeRepo,
		Gen:     app.Generator,
		Repo:    interviewRepo,
	}
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSec,
		app.Config.GoogleRedirect,
		app.Config.UIRedirectURL,
		app.UsersService,
	)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
