package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/repwise/internal/stats"
	"github.com/meltforce/repwise/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db         *storage.DB
	classifier stats.Classifier
	log        *slog.Logger
	apiKey     string
	router     chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, classifier stats.Classifier, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:         db,
		classifier: classifier,
		log:        log,
		apiKey:     apiKey,
		router:     chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Ingest endpoint (API key required)
	s.router.Route("/api/v1/ingest", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleIngest)
	})

	// Dashboard API endpoints (no auth; tsnet handles access)
	s.router.Get("/api/v1/dashboard", s.handleDashboard)
	s.router.Get("/api/v1/sessions", s.handleListSessions)
	s.router.Get("/api/v1/pins", s.handleListPins)
	s.router.Post("/api/v1/pins", s.handlePinExercise)
	s.router.Delete("/api/v1/pins/{name}", s.handleUnpinExercise)
	s.router.Put("/api/v1/prefs/unit", s.handleSetUnit)
}
