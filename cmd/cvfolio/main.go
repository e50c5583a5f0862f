// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

// Command cvfolio runs the CV website backend: public CV and translation
// endpoints plus the session-gated admin API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ikowalczyk/cvfolio/internal/cache"
	"github.com/ikowalczyk/cvfolio/internal/config"
	"github.com/ikowalczyk/cvfolio/internal/cv"
	"github.com/ikowalczyk/cvfolio/internal/handler"
	"github.com/ikowalczyk/cvfolio/internal/logging"
	"github.com/ikowalczyk/cvfolio/internal/middleware"
	"github.com/ikowalczyk/cvfolio/internal/session"
	"github.com/ikowalczyk/cvfolio/internal/store"
	"github.com/ikowalczyk/cvfolio/internal/translate"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		return err
	}

	// Once the store is up, route WARN and above into the event log too.
	slog.SetDefault(slog.New(logging.NewEventLogHandler(logger.Handler(), db)))

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := store.SeedAdmin(context.Background(), db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return err
		}
	} else {
		slog.Warn("admin credentials not configured, admin login disabled", "category", "auth")
	}

	repo := cv.NewRepository(db)
	if cfg.DoSeed {
		seeded, err := repo.SeedStore(context.Background())
		if err != nil {
			return fmt.Errorf("seeding cv content: %w", err)
		}
		if seeded {
			slog.Info("seeded cv content into empty store", "category", "content")
		}
	}

	translateCache, err := cache.New(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      translate.DefaultCacheTTL,
		MaxEntries:      cfg.TranslateCacheMax,
		CleanupInterval: time.Minute,
	})
	if err != nil {
		return fmt.Errorf("creating translation cache: %w", err)
	}
	defer translateCache.Close()

	translator := translate.NewService(newProvider(cfg), translateCache)

	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions := session.NewManager(db, ttl, !cfg.IsDevelopment())

	sweeper := session.NewSweeper(db, slog.Default())
	if err := sweeper.Start(); err != nil {
		return fmt.Errorf("starting session sweeper: %w", err)
	}
	defer sweeper.Stop()

	protection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())

	router := handler.Routes(handler.Deps{
		Auth:       handler.NewAuthHandler(sessions, protection),
		CV:         handler.NewCVHandler(repo),
		Translate:  handler.NewTranslateHandler(translator),
		Health:     handler.NewHealthHandler(db),
		Sessions:   sessions,
		Protection: protection,
	})

	server := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newProvider selects the configured translation provider. A missing API
// key yields a provider that always fails, so translation requests fail
// closed while the rest of the application keeps serving.
func newProvider(cfg *config.Config) translate.Provider {
	var (
		provider translate.Provider
		err      error
	)
	switch cfg.TranslateProvider {
	case config.ProviderOpenAI:
		provider, err = translate.NewOpenAI(cfg.OpenAIAPIKey)
	default:
		provider, err = translate.NewDeepL(cfg.DeepLAPIKey)
	}
	if err != nil {
		slog.Warn("translation provider unavailable",
			"provider", cfg.TranslateProvider, "error", err, "category", "translate")
		return translate.Disabled{Reason: err}
	}
	return provider
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
