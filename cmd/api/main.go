package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/ai"
	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/branding"
	"github.com/BruksfildServices01/barberpro/internal/config"
	infraRepo "github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/logging"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/routes"
	"github.com/BruksfildServices01/barberpro/internal/storage"
)

func main() {

	cfg := config.Load()

	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------------------------------------
	// Storage
	// --------------------------------------------------
	provider, err := storage.NewProvider(cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("failed to open storage")
	}
	store := storage.New(provider, cfg.StorageNamespace)
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("failed to close storage")
		}
	}()

	// --------------------------------------------------
	// Collaborators
	// --------------------------------------------------
	var generator ai.Generator
	if cfg.GeminiAPIKey != "" {
		g, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiTextModel, cfg.GeminiImageModel)
		if err != nil {
			logging.Warn().Err(err).Msg("AI disabled")
		} else {
			generator = g
		}
	}

	var optimizer *branding.Optimizer
	if cfg.LogoOptimize {
		optimizer = branding.NewOptimizer(cfg.LogoMaxSize)
	}

	auditDispatcher := audit.NewDispatcher(audit.New())

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	err = routes.RegisterRoutes(r, routes.Deps{
		Config:      cfg,
		Repos:       infraRepo.New(store),
		Audit:       auditDispatcher,
		AI:          ai.New(generator, cfg.AITimeout),
		Optimizer:   optimizer,
		RateLimiter: middleware.NewRateLimiter(ctx, cfg.PublicRateLimitRPS, cfg.PublicRateLimitBurst),
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to register routes")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().
			Str("addr", cfg.Addr()).
			Str("backend", cfg.StorageBackend).
			Bool("ai", generator != nil).
			Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}

	auditDispatcher.Close()
}
