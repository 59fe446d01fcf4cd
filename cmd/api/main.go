// Copyright (c) 2026 Jhair Studio. All rights reserved.

// Command api is the entry point for the Jhair Studio content API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhairstudio/jhair-server/internal/api"
	"github.com/jhairstudio/jhair-server/internal/core/blog"
	"github.com/jhairstudio/jhair-server/internal/core/offering"
	"github.com/jhairstudio/jhair-server/internal/core/page"
	"github.com/jhairstudio/jhair-server/internal/core/partner"
	"github.com/jhairstudio/jhair-server/internal/core/submission"
	"github.com/jhairstudio/jhair-server/internal/core/tag"
	"github.com/jhairstudio/jhair-server/internal/media"
	"github.com/jhairstudio/jhair-server/internal/platform/config"
	"github.com/jhairstudio/jhair-server/internal/platform/constants"
	"github.com/jhairstudio/jhair-server/internal/platform/migration"
	pgstore "github.com/jhairstudio/jhair-server/internal/platform/postgres"
	redisstore "github.com/jhairstudio/jhair-server/internal/platform/redis"
	"github.com/jhairstudio/jhair-server/internal/platform/sec"
	"github.com/jhairstudio/jhair-server/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Jhair] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	authService := auth.NewService(userRepository, jwtSvc, log)
	authHandler := auth.NewHandler(authService)

	// Seed the first admin account when deployment provides credentials.
	if cfg.BootstrapAdminUser != "" && cfg.BootstrapAdminPassword != "" {
		must(log, authService.EnsureAccount(startupCtx, cfg.BootstrapAdminUser, cfg.BootstrapAdminPassword, sec.RoleAdmin),
			"seed admin account")
	}

	// Page records sit behind the Redis read-through cache.
	pageRepository := page.NewCachedRepository(page.NewPostgresRepository(pool), rdb, log)
	pageService := page.NewService(pageRepository, log)

	tagService := tag.NewService(tag.NewPostgresRepository(pool), log)
	blogService := blog.NewService(blog.NewPostgresRepository(pool), log)
	offeringService := offering.NewService(offering.NewPostgresRepository(pool), log)
	partnerService := partner.NewService(partner.NewPostgresRepository(pool), log)
	submissionService := submission.NewService(submission.NewPostgresRepository(pool), log)

	mediaService, err := media.NewService(cfg.UploadDir, cfg.UploadBaseURL, log)
	must(log, err, "initialize upload storage")

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,

		Auth:       authHandler,
		Page:       page.NewHandler(pageService),
		Blog:       blog.NewHandler(blogService),
		Tag:        tag.NewHandler(tagService),
		Offering:   offering.NewHandler(offeringService),
		Partner:    partner.NewHandler(partnerService),
		Submission: submission.NewHandler(submissionService),

		AdminPage:       page.NewAdminHandler(pageService),
		AdminBlog:       blog.NewAdminHandler(blogService),
		AdminTag:        tag.NewAdminHandler(tagService),
		AdminOffering:   offering.NewAdminHandler(offeringService),
		AdminPartner:    partner.NewAdminHandler(partnerService),
		AdminSubmission: submission.NewAdminHandler(submissionService),

		Media:     media.NewHandler(mediaService),
		UploadDir: mediaService.Dir(),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
