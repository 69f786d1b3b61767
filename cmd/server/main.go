package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"lorebook/internal/auth"
	"lorebook/internal/config"
	"lorebook/internal/docstore"
	"lorebook/internal/domain/repositories"
	"lorebook/internal/handler"
	"lorebook/internal/middleware"
	"lorebook/internal/repository/memory"
	"lorebook/internal/repository/postgres"
	"lorebook/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, config.MaxLogFiles)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"operator", cfg.OperatorAccount,
	)

	jwtVerifier, err := auth.NewJWKSVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	ctx := context.Background()

	var repos repositories.Set
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, state will not survive a restart")
		repos = memory.NewSet()
	} else {
		if err := postgres.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		repos = postgres.NewSet(&postgres.RepositoryConfig{
			Pool:   pool,
			Logger: logger,
		})
	}

	store := docstore.New()
	if err := service.LoadStore(ctx, store, repos); err != nil {
		log.Fatalf("Failed to load store: %v", err)
	}

	gate := service.NewGate(cfg.OperatorAccount)

	candidateService := service.NewCandidateService(store, gate, repos.Candidates, logger)
	publicationService := service.NewPublicationService(store, gate, repos.Candidates, repos.Published, repos.Tx, time.Now, logger)
	roleService := service.NewRoleService(store, gate, repos.Authors, repos.Editors, logger)
	categoryService := service.NewCategoryService(store, gate, repos.Categories, logger)

	documentHandler := handler.NewDocumentHandler(candidateService, logger)
	publicationHandler := handler.NewPublicationHandler(publicationService, logger)
	roleHandler := handler.NewRoleHandler(roleService, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)

	mux.HandleFunc("POST /api/documents", documentHandler.AddDocument)
	mux.HandleFunc("GET /api/documents", documentHandler.ListDocuments)
	mux.HandleFunc("GET /api/documents/{item}/{faction}/{language}", documentHandler.GetDocument)
	mux.HandleFunc("DELETE /api/documents/{item}/{faction}/{language}", documentHandler.DeleteDocument)

	mux.HandleFunc("POST /api/published", publicationHandler.Publish)
	mux.HandleFunc("GET /api/published", publicationHandler.ListPublished)
	mux.HandleFunc("GET /api/published/{item}/{faction}/{language}", publicationHandler.GetPublished)
	mux.HandleFunc("DELETE /api/published/{item}/{faction}/{language}", publicationHandler.Unpublish)

	mux.HandleFunc("POST /api/authors", roleHandler.RegisterAuthor)
	mux.HandleFunc("GET /api/authors", roleHandler.ListAuthors)
	mux.HandleFunc("DELETE /api/authors/{account}/{faction}/{language}", roleHandler.DeleteAuthor)

	mux.HandleFunc("POST /api/editors", roleHandler.RegisterEditor)
	mux.HandleFunc("GET /api/editors", roleHandler.ListEditors)
	mux.HandleFunc("DELETE /api/editors/{account}/{faction}", roleHandler.DeleteEditor)

	mux.HandleFunc("PUT /api/categories/{id}", categoryHandler.SetCategory)
	mux.HandleFunc("GET /api/categories", categoryHandler.ListCategories)
	mux.HandleFunc("DELETE /api/categories/{id}", categoryHandler.DeleteCategory)

	var root http.Handler = mux
	root = middleware.Auth(jwtVerifier, logger)(root)
	root = middleware.Recovery(logger)(root)
	root = middleware.RequestID(root)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-shutdownCtx.Done()

	logger.Info("shutting down")
	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(timeoutCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
