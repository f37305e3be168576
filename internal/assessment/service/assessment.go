package service

import (
	"context"
	"time"

	"github.com/nis2ready/nis2ready-backend/internal/assessment/catalog"
	"github.com/nis2ready/nis2ready-backend/internal/assessment/domain"
	"github.com/nis2ready/nis2ready-backend/internal/assessment/events"
	"github.com/nis2ready/nis2ready-backend/internal/assessment/repository"
	"github.com/nis2ready/nis2ready-backend/internal/assessment/scoring"
	orgrepo "github.com/nis2ready/nis2ready-backend/internal/organization/repository"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
)

// AssessmentService handles questionnaire answers and compliance analysis
type AssessmentService struct {
	catalog    *catalog.Catalog
	policy     domain.RecommendationPolicy
	answerRepo *repository.AnswerRepository
	orgRepo    *orgrepo.OrganizationRepository
	publisher  *events.AssessmentEventPublisher
	logger     *logger.Logger
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	cat *catalog.Catalog,
	policy domain.RecommendationPolicy,
	answerRepo *repository.AnswerRepository,
	orgRepo *orgrepo.OrganizationRepository,
	publisher *events.AssessmentEventPublisher,
	log *logger.Logger,
) *AssessmentService {
	return &AssessmentService{
		catalog:    cat,
		policy:     policy,
		answerRepo: answerRepo,
		orgRepo:    orgRepo,
		publisher:  publisher,
		logger:     log,
	}
}

// RecordAnswerRequest represents an answer submission
type RecordAnswerRequest struct {
	QuestionID  string `json:"question_id" validate:"required"`
	OptionValue string `json:"option_value" validate:"required"`
}

// RecordAnswer stores an answer. Score and maturity level are copied from
// the catalog option at answer time so later catalog edits cannot rewrite
// recorded history. Re-answering the same question replaces the previous
// answer.
func (s *AssessmentService) RecordAnswer(ctx context.Context, organizationID string, req *RecordAnswerRequest) (*domain.Answer, error) {
	if _, err := s.orgRepo.GetByID(ctx, organizationID); err != nil {
		return nil, err
	}

	question, ok := s.catalog.Question(req.QuestionID)
	if !ok {
		return nil, errors.NotFound("question")
	}

	option, ok := question.Option(req.OptionValue)
	if !ok {
		return nil, errors.BadRequest("unknown option for question " + question.ID)
	}

	answer := &domain.Answer{
		QuestionID:    question.ID,
		OptionValue:   option.Value,
		Score:         option.Score,
		MaturityLevel: option.MaturityLevel,
		AnsweredAt:    time.Now().UTC(),
	}

	if err := s.answerRepo.Upsert(ctx, organizationID, answer); err != nil {
		return nil, err
	}

	s.publisher.PublishAnswerRecorded(ctx, organizationID, answer)

	return answer, nil
}

// GetAnswers returns all recorded answers in recording order
func (s *AssessmentService) GetAnswers(ctx context.Context, organizationID string) ([]domain.Answer, error) {
	if _, err := s.orgRepo.GetByID(ctx, organizationID); err != nil {
		return nil, err
	}
	return s.answerRepo.ListByOrganization(ctx, organizationID)
}

// DeleteAnswer removes an answer and its evidence
func (s *AssessmentService) DeleteAnswer(ctx context.Context, organizationID, questionID string) error {
	if err := s.answerRepo.Delete(ctx, organizationID, questionID); err != nil {
		return err
	}

	s.publisher.PublishAnswerDeleted(ctx, organizationID, questionID)

	return nil
}

// Analyze loads the organization's answers, runs the scoring engine and
// publishes the result for downstream consumers.
func (s *AssessmentService) Analyze(ctx context.Context, organizationID string) (*domain.AnalysisResult, error) {
	if _, err := s.orgRepo.GetByID(ctx, organizationID); err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	result := scoring.Analyze(answers, s.catalog, s.policy)

	for _, warning := range result.Warnings {
		s.logger.Warn().Str("organization_id", organizationID).Msg(warning)
	}

	s.publisher.PublishAnalysisUpdated(ctx, organizationID, &result)

	return &result, nil
}

// AttachEvidenceRequest describes an uploaded evidence file. Contents live
// in external storage; only the descriptor is tracked here.
type AttachEvidenceRequest struct {
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required,max=100"`
	SizeBytes   int64  `json:"size_bytes" validate:"gte=0"`
}

// AttachEvidence links an evidence descriptor to an answer
func (s *AssessmentService) AttachEvidence(ctx context.Context, organizationID, questionID string, req *AttachEvidenceRequest) (*domain.EvidenceDescriptor, error) {
	descriptor := &domain.EvidenceDescriptor{
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	}

	if err := s.answerRepo.AttachEvidence(ctx, organizationID, questionID, descriptor); err != nil {
		return nil, err
	}

	return descriptor, nil
}

// DetachEvidence removes an evidence descriptor
func (s *AssessmentService) DetachEvidence(ctx context.Context, evidenceID string) error {
	return s.answerRepo.DetachEvidence(ctx, evidenceID)
}

// Catalog exposes the loaded catalog for read endpoints
func (s *AssessmentService) Catalog() *catalog.Catalog {
	return s.catalog
}
