package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/findy-ai/property-engine/internal/dataset"
	"github.com/findy-ai/property-engine/internal/finder"
	"github.com/findy-ai/property-engine/internal/observability"
	"github.com/findy-ai/property-engine/pkg/engine"
)

const maxSearchPage = 100

// SearchHandler serves structured property searches.
type SearchHandler struct {
	logger *observability.Logger
	engine *engine.Engine
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(logger *observability.Logger, eng *engine.Engine) *SearchHandler {
	return &SearchHandler{
		logger: logger.WithComponent("search-handler"),
		engine: eng,
	}
}

// SearchRequestDTO accepts either free text or explicit criteria. When both
// are present the explicit criteria win.
type SearchRequestDTO struct {
	Query    string           `json:"query,omitempty"`
	Criteria *finder.Criteria `json:"criteria,omitempty"`
	Limit    int              `json:"limit,omitempty"`
}

// SearchResponseDTO represents the search API response.
type SearchResponseDTO struct {
	Criteria     finder.Criteria    `json:"criteria"`
	TotalMatches int                `json:"totalMatches"`
	Results      []dataset.Property `json:"results"`
}

// Search handles POST /api/v1/properties/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var reqDTO SearchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if reqDTO.Query == "" && reqDTO.Criteria == nil {
		writeError(w, http.StatusBadRequest, "query or criteria is required", "")
		return
	}

	var criteria finder.Criteria
	var results []dataset.Property
	if reqDTO.Criteria != nil {
		criteria = *reqDTO.Criteria
		results = h.engine.Search(criteria)
	} else {
		criteria, results = h.engine.SearchQuery(reqDTO.Query)
	}

	limit := reqDTO.Limit
	if limit <= 0 || limit > maxSearchPage {
		limit = maxSearchPage
	}
	page := results
	if len(page) > limit {
		page = page[:limit]
	}

	h.logger.Debug().
		Str("criteria", criteria.String()).
		Int("matches", len(results)).
		Msg("structured search")

	writeJSON(w, http.StatusOK, SearchResponseDTO{
		Criteria:     criteria,
		TotalMatches: len(results),
		Results:      page,
	})
}
