// Copyright (c) 2026 Jhair Studio. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Route layout:

  - /api/...        Public site content, localized via ?lang=
  - /api/admin/...  Studio panel, bearer token with editor role or above
  - /uploads/...    Static serving of managed image uploads
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jhairstudio/jhair-server/internal/core/blog"
	"github.com/jhairstudio/jhair-server/internal/core/offering"
	"github.com/jhairstudio/jhair-server/internal/core/page"
	"github.com/jhairstudio/jhair-server/internal/core/partner"
	"github.com/jhairstudio/jhair-server/internal/core/submission"
	"github.com/jhairstudio/jhair-server/internal/core/tag"
	"github.com/jhairstudio/jhair-server/internal/media"
	"github.com/jhairstudio/jhair-server/internal/platform/config"
	"github.com/jhairstudio/jhair-server/internal/platform/constants"
	"github.com/jhairstudio/jhair-server/internal/platform/middleware"
	"github.com/jhairstudio/jhair-server/internal/platform/sec"
	"github.com/jhairstudio/jhair-server/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here, no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler. Always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. Returns 200 when Postgres and Redis are healthy.
	Readiness http.HandlerFunc

	// Auth handles admin login and token verification.
	Auth *auth.Handler

	// Page serves the localized per-page content records.
	Page *page.Handler

	// Blog serves the public blog listing and single posts.
	Blog *blog.Handler

	// Tag serves the localized blog tag list.
	Tag *tag.Handler

	// Offering serves the treatment catalogue under /api/services.
	Offering *offering.Handler

	// Partner serves the partner brand strip.
	Partner *partner.Handler

	// Submission accepts the contact and service request forms.
	Submission *submission.Handler

	// AdminPage, AdminBlog, etc. are the authenticated management surfaces.
	AdminPage       *page.AdminHandler
	AdminBlog       *blog.AdminHandler
	AdminTag        *tag.AdminHandler
	AdminOffering   *offering.AdminHandler
	AdminPartner    *partner.AdminHandler
	AdminSubmission *submission.AdminHandler

	// Media handles image uploads for the admin panel.
	Media *media.Handler

	// UploadDir is the directory served read-only at /uploads.
	UploadDir string
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Static Uploads
	// Managed images, publicly readable.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.UploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	// # Public Site API
	// Everything the website reads, localized through the lang query parameter.
	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", h.Auth.RegisterRoutes)
		api.Route("/blogs", h.Blog.RegisterRoutes)
		api.Route("/tags", h.Tag.RegisterRoutes)
		api.Route("/services", h.Offering.RegisterRoutes)
		api.Route("/partners", h.Partner.RegisterRoutes)
		h.Submission.RegisterRoutes(api)

		// Page records live directly under /api: /api/home, /api/global, ...
		h.Page.RegisterRoutes(api)

		// # Admin Panel API
		// Editors manage content; admins additionally manage accounts.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireRole(sec.RoleEditor))

			admin.Route("/blogs", h.AdminBlog.RegisterRoutes)
			admin.Route("/tags", h.AdminTag.RegisterRoutes)
			admin.Route("/services", h.AdminOffering.RegisterRoutes)
			admin.Route("/partners", h.AdminPartner.RegisterRoutes)
			h.AdminSubmission.RegisterRoutes(admin)
			h.Media.RegisterRoutes(admin)

			// Wildcard page routes come last; chi prefers the static
			// routes above, so /blogs never matches {page}.
			h.AdminPage.RegisterRoutes(admin)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
