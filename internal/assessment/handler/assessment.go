package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nis2ready/nis2ready-backend/internal/assessment/catalog"
	"github.com/nis2ready/nis2ready-backend/internal/assessment/service"
	"github.com/nis2ready/nis2ready-backend/pkg/httputil"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
)

// AssessmentHandler handles answer, analysis and catalog endpoints
type AssessmentHandler struct {
	service *service.AssessmentService
	logger  *logger.Logger
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(svc *service.AssessmentService, log *logger.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		service: svc,
		logger:  log,
	}
}

// RecordAnswer records or replaces an answer
func (h *AssessmentHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "id")

	var req service.RecordAnswerRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	answer, err := h.service.RecordAnswer(r.Context(), organizationID, &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, answer)
}

// ListAnswers returns all answers for an organization
func (h *AssessmentHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "id")

	answers, err := h.service.GetAnswers(r.Context(), organizationID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, answers)
}

// DeleteAnswer removes an answer
func (h *AssessmentHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "id")
	questionID := chi.URLParam(r, "questionID")

	if err := h.service.DeleteAnswer(r.Context(), organizationID, questionID); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.NoContent(w)
}

// Analyze runs a compliance analysis over the recorded answers
func (h *AssessmentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "id")

	result, err := h.service.Analyze(r.Context(), organizationID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// AttachEvidence links an evidence descriptor to an answer
func (h *AssessmentHandler) AttachEvidence(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "id")
	questionID := chi.URLParam(r, "questionID")

	var req service.AttachEvidenceRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	descriptor, err := h.service.AttachEvidence(r.Context(), organizationID, questionID, &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, descriptor)
}

// DetachEvidence removes an evidence descriptor
func (h *AssessmentHandler) DetachEvidence(w http.ResponseWriter, r *http.Request) {
	evidenceID := chi.URLParam(r, "evidenceID")

	if err := h.service.DetachEvidence(r.Context(), evidenceID); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.NoContent(w)
}

// ListQuestions returns the question catalog
func (h *AssessmentHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.Catalog().Questions())
}

// ListControls returns the NIS2 control register
func (h *AssessmentHandler) ListControls(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.Catalog().Controls())
}

// ListCategories returns the weighted category definitions
func (h *AssessmentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.Catalog().Categories())
}

// ListMaturityLevels returns the reference maturity bands
func (h *AssessmentHandler) ListMaturityLevels(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, catalog.MaturityLevelDefinitions)
}
