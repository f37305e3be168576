package events

import (
	"context"

	"github.com/nis2ready/nis2ready-backend/internal/organization/domain"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
	"github.com/nis2ready/nis2ready-backend/pkg/messaging"
)

// OrganizationEventPublisher publishes organization lifecycle events
type OrganizationEventPublisher struct {
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewOrganizationEventPublisher creates a new organization event publisher
func NewOrganizationEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*OrganizationEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeAssessmentEvents, "assessment-service", log)
	if err != nil {
		return nil, err
	}

	return &OrganizationEventPublisher{
		publisher: publisher,
		logger:    log,
	}, nil
}

// PublishOrganizationCreated publishes an organization created event
func (p *OrganizationEventPublisher) PublishOrganizationCreated(ctx context.Context, org *domain.Organization) {
	data := messaging.OrganizationCreatedEvent{
		OrganizationID: org.ID,
		Name:           org.Name,
		Sector:         org.Sector,
		Country:        org.Country,
	}

	if err := p.publisher.Publish(ctx, messaging.EventOrganizationCreated, data); err != nil {
		p.logger.Error().Err(err).Str("organization_id", org.ID).Msg("failed to publish organization created event")
	}
}

// PublishProfileUpdated publishes a profile updated event with the changed fields
func (p *OrganizationEventPublisher) PublishProfileUpdated(ctx context.Context, organizationID string, changes map[string]any) {
	data := messaging.OrganizationProfileUpdatedEvent{
		OrganizationID: organizationID,
		Fields:         changes,
	}

	if err := p.publisher.Publish(ctx, messaging.EventOrganizationProfileUpdated, data); err != nil {
		p.logger.Error().Err(err).Str("organization_id", organizationID).Msg("failed to publish profile updated event")
	}
}

// PublishOrganizationDeleted publishes an organization deleted event
func (p *OrganizationEventPublisher) PublishOrganizationDeleted(ctx context.Context, organizationID string) {
	data := messaging.OrganizationDeletedEvent{
		OrganizationID: organizationID,
	}

	if err := p.publisher.Publish(ctx, messaging.EventOrganizationDeleted, data); err != nil {
		p.logger.Error().Err(err).Str("organization_id", organizationID).Msg("failed to publish organization deleted event")
	}
}
