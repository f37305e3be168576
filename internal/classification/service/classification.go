package service

import (
	"context"
	"time"

	classdomain "github.com/nis2ready/nis2ready-backend/internal/classification/domain"
	"github.com/nis2ready/nis2ready-backend/internal/classification/engine"
	"github.com/nis2ready/nis2ready-backend/internal/classification/events"
	"github.com/nis2ready/nis2ready-backend/internal/classification/repository"
	"github.com/nis2ready/nis2ready-backend/internal/classification/rules"
	orgdomain "github.com/nis2ready/nis2ready-backend/internal/organization/domain"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
)

// ClassificationService runs the classification engine against stored
// organization profiles and keeps the verdict persisted.
type ClassificationService struct {
	tables    *rules.Tables
	repo      *repository.ClassificationRepository
	publisher *events.ClassificationEventPublisher
	logger    *logger.Logger
}

// NewClassificationService creates a new classification service
func NewClassificationService(
	tables *rules.Tables,
	repo *repository.ClassificationRepository,
	publisher *events.ClassificationEventPublisher,
	log *logger.Logger,
) *ClassificationService {
	return &ClassificationService{
		tables:    tables,
		repo:      repo,
		publisher: publisher,
		logger:    log,
	}
}

// Preview validates and classifies a profile without persisting anything.
// An invalid profile returns a validation error with the field map; no
// default entity type is ever guessed.
func (s *ClassificationService) Preview(profile classdomain.OrganizationProfile) (*classdomain.ClassificationResult, error) {
	if verr := engine.ValidateProfile(profile, s.tables); verr != nil {
		return nil, errors.Validation(verr.Details())
	}

	result := engine.Classify(profile, s.tables)
	result.ClassifiedAt = time.Now().UTC()
	return &result, nil
}

// ClassifyOrganization validates the organization's profile, runs the
// engine, stores the verdict and publishes classification.updated.
func (s *ClassificationService) ClassifyOrganization(ctx context.Context, org *orgdomain.Organization) (*classdomain.ClassificationResult, error) {
	result, err := s.Preview(org.Profile())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, org.ID, result); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("organization_id", org.ID).
		Str("entity_type", string(result.EntityType)).
		Str("rule", result.RuleName).
		Msg("organization classified")

	s.publisher.PublishClassificationUpdated(ctx, org.ID, org.Country, result)

	return result, nil
}

// Invalidate drops the stored classification. Called when a profile change
// makes the previous verdict meaningless.
func (s *ClassificationService) Invalidate(ctx context.Context, organizationID string) error {
	return s.repo.Delete(ctx, organizationID)
}

// Get returns the stored classification for an organization
func (s *ClassificationService) Get(ctx context.Context, organizationID string) (*classdomain.ClassificationResult, error) {
	return s.repo.Get(ctx, organizationID)
}

// Tables exposes the loaded rule tables for read endpoints
func (s *ClassificationService) Tables() *rules.Tables {
	return s.tables
}
