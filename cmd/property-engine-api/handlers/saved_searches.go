package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/findy-ai/property-engine/internal/observability"
	"github.com/findy-ai/property-engine/internal/storage"
)

// SavedSearchHandler serves saved search CRUD.
type SavedSearchHandler struct {
	logger *observability.Logger
	repo   *storage.SavedSearchRepository
}

// NewSavedSearchHandler creates a new saved search handler.
func NewSavedSearchHandler(logger *observability.Logger, repo *storage.SavedSearchRepository) *SavedSearchHandler {
	return &SavedSearchHandler{
		logger: logger.WithComponent("saved-search-handler"),
		repo:   repo,
	}
}

// Create handles POST /api/v1/saved-searches.
func (h *SavedSearchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var search storage.SavedSearch
	if err := json.NewDecoder(r.Body).Decode(&search); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if search.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", "")
		return
	}

	if err := h.repo.Create(r.Context(), &search); err != nil {
		h.logger.Error().Err(err).Msg("create saved search failed")
		writeError(w, http.StatusInternalServerError, "could not save search", "")
		return
	}
	writeJSON(w, http.StatusCreated, search)
}

// List handles GET /api/v1/saved-searches.
func (h *SavedSearchHandler) List(w http.ResponseWriter, r *http.Request) {
	searches, err := h.repo.List(r.Context(), 50)
	if err != nil {
		h.logger.Error().Err(err).Msg("list saved searches failed")
		writeError(w, http.StatusInternalServerError, "could not list searches", "")
		return
	}
	if searches == nil {
		searches = []*storage.SavedSearch{}
	}
	writeJSON(w, http.StatusOK, searches)
}

// Get handles GET /api/v1/saved-searches/{id}.
func (h *SavedSearchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}

	search, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "saved search not found", "")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("get saved search failed")
		writeError(w, http.StatusInternalServerError, "could not load search", "")
		return
	}
	writeJSON(w, http.StatusOK, search)
}

// Delete handles DELETE /api/v1/saved-searches/{id}.
func (h *SavedSearchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}

	err = h.repo.Delete(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "saved search not found", "")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("delete saved search failed")
		writeError(w, http.StatusInternalServerError, "could not delete search", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
