package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/llm"
	"resume-insight/internal/llm/gemini"
	"resume-insight/internal/resumes"
	"resume-insight/internal/shared/config"
	"resume-insight/internal/shared/server"
	"resume-insight/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	DB       *sql.DB
	Repo     resumes.Repo
	LLM      llm.Client
	Pipeline *resumes.Pipeline
	Handler  *resumes.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pipeline := &resumes.Pipeline{
		Repo:      repo,
		LLM:       llmClient,
		UploadDir: cfg.UploadDir,
	}
	handler := resumes.NewHandler(pipeline, repo)

	return &App{
		Config:   cfg,
		Router:   server.NewRouter(cfg, handler),
		DB:       sqlDB,
		Repo:     repo,
		LLM:      llmClient,
		Pipeline: pipeline,
		Handler:  handler,
	}, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if config.IsDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if config.IsDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

// buildLLM returns a retrying Gemini client, or nil when no API key is set.
// A nil client keeps the read endpoints usable; uploads fail with a clear error.
func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.GoogleAPIKey) == "" {
		log.Printf("bootstrap: GOOGLE_API_KEY empty; resume uploads disabled")
		return nil, nil
	}

	client, err := gemini.NewClient(ctx, cfg.GoogleAPIKey, cfg.LLMModel)
	if err != nil {
		return nil, fmt.Errorf("build llm client: %w", err)
	}
	return llm.WithRetry(client, llm.DefaultRetryPolicy()), nil
}
