// Package api provides the HTTP API server and handlers for the PrepStock
// application. Catalog and ledger endpoints are plain chi handlers with
// envelope responses; the scan pipeline is registered through huma so the
// scanning client gets a typed, documented contract.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/prepstock/prepstock-server/internal/config"
	"github.com/prepstock/prepstock-server/internal/http/response"
	"github.com/prepstock/prepstock-server/internal/sse"
	"github.com/prepstock/prepstock-server/internal/store"
	"github.com/prepstock/prepstock-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store      *store.Store
	services   *Services
	sseManager *sse.Manager
	sseHandler *sse.Handler
	validator  *validation.Validator
	router     *chi.Mux
	api        huma.API
	logger     *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(store *store.Store, services *Services, sseManager *sse.Manager, sseHandler *sse.Handler, cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		store:      store,
		services:   services,
		sseManager: sseManager,
		sseHandler: sseHandler,
		validator:  validation.New(),
		router:     chi.NewRouter(),
		logger:     logger,
	}

	s.setupMiddleware(cfg)

	humaConfig := huma.DefaultConfig("PrepStock API", "1.0.0")
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware(cfg *config.Config) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	origins := []string{"*"}
	if cfg != nil && len(cfg.Server.CORSOrigins) > 0 {
		origins = cfg.Server.CORSOrigins
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Catalog.
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", s.handleGetCatalog)
			r.Post("/items", s.handleAddItem)
			r.Post("/temporary", s.handleAddTemporaryItem)
			r.Post("/promote", s.handlePromoteItem)
			r.Get("/{section}", s.handleGetSection)
			r.Delete("/{section}/{category}/{index}", s.handleRemoveItem)
			r.Patch("/{section}/{category}/{index}/par", s.handleUpdatePar)
		})

		// Ledger.
		r.Route("/ledger", func(r chi.Router) {
			r.Get("/", s.handleGetLedger)
			r.Delete("/", s.handleResetLedger)
			r.Put("/{name}/count", s.handleSetCount)
			r.Put("/{name}/status", s.handleSetStatus)
		})

		// Catalog search.
		r.Get("/search", s.handleSearch)

		// Live updates.
		r.Get("/events", s.sseHandler.ServeHTTP)
	})

	// Scan pipeline (huma-registered).
	s.registerScanRoutes()
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"

	// A snapshot read verifies badger is reachable.
	if s.store != nil {
		if _, err := s.store.Catalog(r.Context()); err != nil {
			status = "unhealthy"
		}
	}

	payload := map[string]any{
		"status": status,
	}
	if s.sseManager != nil {
		payload["sse_clients"] = s.sseManager.ClientCount()
	}

	if status != "healthy" {
		response.JSON(w, http.StatusServiceUnavailable, payload, s.logger)
		return
	}
	response.Success(w, payload, s.logger)
}
