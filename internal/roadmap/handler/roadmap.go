package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nis2ready/nis2ready-backend/internal/roadmap/domain"
	"github.com/nis2ready/nis2ready-backend/internal/roadmap/repository"
	"github.com/nis2ready/nis2ready-backend/internal/roadmap/service"
	"github.com/nis2ready/nis2ready-backend/pkg/httputil"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
)

// RoadmapHandler handles roadmap HTTP requests
type RoadmapHandler struct {
	service *service.RoadmapService
	logger  *logger.Logger
}

// NewRoadmapHandler creates a new roadmap handler
func NewRoadmapHandler(svc *service.RoadmapService, log *logger.Logger) *RoadmapHandler {
	return &RoadmapHandler{
		service: svc,
		logger:  log,
	}
}

// List returns an organization's roadmap items
func (h *RoadmapHandler) List(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "id")

	filter := repository.ListFilter{
		Status:   domain.Status(r.URL.Query().Get("status")),
		Priority: r.URL.Query().Get("priority"),
	}

	items, err := h.service.List(r.Context(), organizationID, filter)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, items)
}

// Create adds a manual roadmap item
func (h *RoadmapHandler) Create(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "id")

	var req service.CreateItemRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	item, err := h.service.CreateItem(r.Context(), organizationID, &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, item)
}

// Get retrieves a roadmap item by ID
func (h *RoadmapHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	item, err := h.service.Get(r.Context(), itemID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, item)
}

// UpdateStatus transitions a roadmap item to a new status
func (h *RoadmapHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	var req service.UpdateStatusRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	item, err := h.service.UpdateStatus(r.Context(), itemID, &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, item)
}

// Delete removes a roadmap item
func (h *RoadmapHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	if err := h.service.DeleteItem(r.Context(), itemID); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.NoContent(w)
}
