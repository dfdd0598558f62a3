// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/findy-ai/property-engine/cmd/property-engine-api/handlers"
	"github.com/findy-ai/property-engine/cmd/property-engine-api/middleware"
	"github.com/findy-ai/property-engine/internal/config"
	"github.com/findy-ai/property-engine/internal/observability"
	"github.com/findy-ai/property-engine/internal/storage"
	"github.com/findy-ai/property-engine/pkg/engine"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config, eng *engine.Engine, db storage.DB) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"property-engine"}`))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ready"}`))
	})

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(logger, eng)
	searchHandler := handlers.NewSearchHandler(logger, eng)
	marketHandler := handlers.NewMarketHandler(logger, eng)
	savedSearchHandler := handlers.NewSavedSearchHandler(logger, storage.NewSavedSearchRepository(db))
	workPlanHandler := handlers.NewWorkPlanHandler(logger, storage.NewWorkPlanRepository(db))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", chatHandler.Chat)

		r.Route("/properties", func(r chi.Router) {
			r.Post("/search", searchHandler.Search)
		})

		r.Route("/market", func(r chi.Router) {
			r.Get("/stats", marketHandler.Stats)
			r.Get("/values", marketHandler.Values)
		})

		r.Post("/dataset/reload", marketHandler.Reload)

		r.Route("/saved-searches", func(r chi.Router) {
			r.Post("/", savedSearchHandler.Create)
			r.Get("/", savedSearchHandler.List)
			r.Get("/{id}", savedSearchHandler.Get)
			r.Delete("/{id}", savedSearchHandler.Delete)
		})

		r.Route("/workplans", func(r chi.Router) {
			r.Post("/", workPlanHandler.Create)
			r.Get("/", workPlanHandler.List)
			r.Get("/{id}", workPlanHandler.Get)
			r.Put("/{id}/status", workPlanHandler.UpdateStatus)
			r.Delete("/{id}", workPlanHandler.Delete)
		})
	})

	return r
}
