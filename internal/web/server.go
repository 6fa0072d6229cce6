// Package web provides the read-only HTTP surface over a city statistics
// dataset: the rendered fixed-width table and a JSON view of the sorted
// collection.
package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/citystats/internal/config"
	"github.com/JonMunkholm/citystats/internal/dataset"
	"github.com/JonMunkholm/citystats/internal/report"
	webmw "github.com/JonMunkholm/citystats/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves report views over one loaded dataset snapshot.
type Server struct {
	snapshot dataset.Snapshot
	opts     report.Options
	cfg      *config.Config
	router   *chi.Mux
	server   *http.Server
}

// NewServer creates a Server for the given snapshot and pipeline options.
func NewServer(snap dataset.Snapshot, opts report.Options, cfg *config.Config) *Server {
	s := &Server{
		snapshot: snap,
		opts:     opts,
		cfg:      cfg,
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(webmw.Logger)
	s.router.Use(middleware.Recoverer)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/table", s.handleTable)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/regions", s.handleRegions)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
