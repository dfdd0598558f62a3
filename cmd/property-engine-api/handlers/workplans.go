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

// WorkPlanHandler serves work plan CRUD.
type WorkPlanHandler struct {
	logger *observability.Logger
	repo   *storage.WorkPlanRepository
}

// NewWorkPlanHandler creates a new work plan handler.
func NewWorkPlanHandler(logger *observability.Logger, repo *storage.WorkPlanRepository) *WorkPlanHandler {
	return &WorkPlanHandler{
		logger: logger.WithComponent("workplan-handler"),
		repo:   repo,
	}
}

// Create handles POST /api/v1/workplans.
func (h *WorkPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var plan storage.WorkPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if plan.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", "")
		return
	}

	if err := h.repo.Create(r.Context(), &plan); err != nil {
		h.logger.Error().Err(err).Msg("create work plan failed")
		writeError(w, http.StatusInternalServerError, "could not save work plan", "")
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

// List handles GET /api/v1/workplans with an optional status filter.
func (h *WorkPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.repo.List(r.Context(), r.URL.Query().Get("status"), 50)
	if err != nil {
		h.logger.Error().Err(err).Msg("list work plans failed")
		writeError(w, http.StatusInternalServerError, "could not list work plans", "")
		return
	}
	if plans == nil {
		plans = []*storage.WorkPlan{}
	}
	writeJSON(w, http.StatusOK, plans)
}

// Get handles GET /api/v1/workplans/{id}.
func (h *WorkPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}

	plan, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "work plan not found", "")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("get work plan failed")
		writeError(w, http.StatusInternalServerError, "could not load work plan", "")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// UpdateStatus handles PUT /api/v1/workplans/{id}/status.
func (h *WorkPlanHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	switch body.Status {
	case storage.WorkPlanStatusOpen, storage.WorkPlanStatusDone, storage.WorkPlanStatusCancelled:
	default:
		writeError(w, http.StatusBadRequest, "invalid status", body.Status)
		return
	}

	err = h.repo.UpdateStatus(r.Context(), id, body.Status)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "work plan not found", "")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("update work plan failed")
		writeError(w, http.StatusInternalServerError, "could not update work plan", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/workplans/{id}.
func (h *WorkPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}

	err = h.repo.Delete(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "work plan not found", "")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("delete work plan failed")
		writeError(w, http.StatusInternalServerError, "could not delete work plan", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
