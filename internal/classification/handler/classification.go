package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	classdomain "github.com/nis2ready/nis2ready-backend/internal/classification/domain"
	"github.com/nis2ready/nis2ready-backend/internal/classification/service"
	orgrepo "github.com/nis2ready/nis2ready-backend/internal/organization/repository"
	"github.com/nis2ready/nis2ready-backend/pkg/httputil"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
)

// ClassificationHandler handles classification endpoints
type ClassificationHandler struct {
	service *service.ClassificationService
	orgRepo *orgrepo.OrganizationRepository
	logger  *logger.Logger
}

// NewClassificationHandler creates a new classification handler
func NewClassificationHandler(svc *service.ClassificationService, orgRepo *orgrepo.OrganizationRepository, log *logger.Logger) *ClassificationHandler {
	return &ClassificationHandler{
		service: svc,
		orgRepo: orgRepo,
		logger:  log,
	}
}

// Preview classifies a submitted profile without storing anything
func (h *ClassificationHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var profile classdomain.OrganizationProfile
	if err := httputil.DecodeJSON(r, &profile); err != nil {
		httputil.Error(w, err)
		return
	}

	result, err := h.service.Preview(profile)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// Classify recomputes and stores the classification for an organization
func (h *ClassificationHandler) Classify(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	org, err := h.orgRepo.GetByID(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	result, err := h.service.ClassifyOrganization(r.Context(), org)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// Get returns the stored classification for an organization
func (h *ClassificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// ListSectors returns the NIS2 sector table
func (h *ClassificationHandler) ListSectors(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.Tables().Sectors.All())
}

// ListCountries returns the country rule table
func (h *ClassificationHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	tables := h.service.Tables()
	codes := tables.Countries.Codes()

	countries := make([]interface{}, 0, len(codes))
	for _, code := range codes {
		if rule, ok := tables.Countries.Lookup(code); ok {
			countries = append(countries, rule)
		}
	}

	httputil.JSON(w, http.StatusOK, countries)
}
