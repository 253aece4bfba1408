package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/mdsite/internal/config"
	"github.com/dgallion1/mdsite/internal/site"
	"github.com/dgallion1/mdsite/internal/stats"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for mdsite.
type Server struct {
	router       chi.Router
	orchestrator *site.Orchestrator
	stats        *stats.Renders
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *site.Orchestrator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		stats:        orch.Builder().Stats(),
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/render", s.handleRender)
		r.Post("/api/title", s.handleTitle)
		r.Post("/api/build", s.handleBuild)
		r.Get("/api/build/{buildID}/status", s.handleBuildStatus)
		r.Get("/api/stats/render", s.handleRenderStats)
	})

	// Everything else comes from the generated site.
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.PublicDir)))

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
