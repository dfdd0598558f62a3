package handlers

import (
	"net/http"

	"github.com/findy-ai/property-engine/internal/observability"
	"github.com/findy-ai/property-engine/pkg/engine"
)

// MarketHandler serves market statistics over the property snapshot.
type MarketHandler struct {
	logger *observability.Logger
	engine *engine.Engine
}

// NewMarketHandler creates a new market handler.
func NewMarketHandler(logger *observability.Logger, eng *engine.Engine) *MarketHandler {
	return &MarketHandler{
		logger: logger.WithComponent("market-handler"),
		engine: eng,
	}
}

// Stats handles GET /api/v1/market/stats. Optional propertyType and
// neighborhood query parameters narrow the snapshot.
func (h *MarketHandler) Stats(w http.ResponseWriter, r *http.Request) {
	propertyType := r.URL.Query().Get("propertyType")
	neighborhood := r.URL.Query().Get("neighborhood")

	stats := h.engine.StatsFiltered(propertyType, neighborhood)
	writeJSON(w, http.StatusOK, stats)
}

// Values handles GET /api/v1/market/values, listing the distinct
// neighborhoods and property types the snapshot contains.
func (h *MarketHandler) Values(w http.ResponseWriter, r *http.Request) {
	stats := h.engine.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"neighborhoods": stats.Neighborhoods,
		"propertyTypes": stats.PropertyTypes,
	})
}

// Reload handles POST /api/v1/dataset/reload, forcing a snapshot re-read.
func (h *MarketHandler) Reload(w http.ResponseWriter, r *http.Request) {
	count := h.engine.Reload(r.Context())
	h.logger.Info().Int("properties", count).Msg("snapshot reloaded")
	writeJSON(w, http.StatusOK, map[string]int{"properties": count})
}
