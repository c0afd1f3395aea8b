package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fredrikhm/artmatch/internal/api/handlers"
	appMiddleware "github.com/fredrikhm/artmatch/internal/api/middlewares"
	"github.com/fredrikhm/artmatch/internal/config"
	"github.com/fredrikhm/artmatch/internal/core"
	"github.com/fredrikhm/artmatch/internal/services"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, svc *services.MatchService, store core.ReportStore) *Server {
	matchHandler := handlers.NewMatchHandler(svc, cfg)
	reportHandler := handlers.NewReportHandler(store)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Minute))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8888"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(api chi.Router) {
		// Auth stays opt-in: without a secret the tool runs open, like the
		// desktop version it replaces.
		if cfg.JWTSecret != "" {
			api.Use(appMiddleware.JWTAuth(cfg.JWTSecret))
		}

		api.Post("/match", matchHandler.RunMatch)
		api.Get("/reports/{id}", reportHandler.GetReport)
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv}
}

// Start runs the HTTP server.
func (s *Server) Start() {
	log.Printf("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
