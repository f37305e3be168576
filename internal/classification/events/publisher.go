package events

import (
	"context"

	"github.com/nis2ready/nis2ready-backend/internal/classification/domain"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
	"github.com/nis2ready/nis2ready-backend/pkg/messaging"
)

// ClassificationEventPublisher publishes classification events
type ClassificationEventPublisher struct {
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewClassificationEventPublisher creates a new classification event publisher
func NewClassificationEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*ClassificationEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeAssessmentEvents, "assessment-service", log)
	if err != nil {
		return nil, err
	}

	return &ClassificationEventPublisher{
		publisher: publisher,
		logger:    log,
	}, nil
}

// PublishClassificationUpdated publishes a classification updated event
func (p *ClassificationEventPublisher) PublishClassificationUpdated(ctx context.Context, organizationID, country string, result *domain.ClassificationResult) {
	data := messaging.ClassificationUpdatedEvent{
		OrganizationID: organizationID,
		EntityType:     string(result.EntityType),
		Reason:         result.Reason,
		RuleName:       result.RuleName,
		SizeCategory:   string(result.SizeCategory),
		Country:        country,
	}

	if err := p.publisher.Publish(ctx, messaging.EventClassificationUpdated, data); err != nil {
		p.logger.Error().Err(err).Str("organization_id", organizationID).Msg("failed to publish classification updated event")
	}
}
