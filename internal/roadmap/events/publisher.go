package events

import (
	"context"

	"github.com/nis2ready/nis2ready-backend/internal/roadmap/domain"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
	"github.com/nis2ready/nis2ready-backend/pkg/messaging"
)

// RoadmapEventPublisher publishes roadmap events
type RoadmapEventPublisher struct {
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewRoadmapEventPublisher creates a new roadmap event publisher
func NewRoadmapEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*RoadmapEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeRoadmapEvents, "roadmap-service", log)
	if err != nil {
		return nil, err
	}

	return &RoadmapEventPublisher{
		publisher: publisher,
		logger:    log,
	}, nil
}

// PublishItemCreated publishes a roadmap item created event
func (p *RoadmapEventPublisher) PublishItemCreated(ctx context.Context, item *domain.RoadmapItem) {
	data := messaging.RoadmapItemCreatedEvent{
		ItemID:         item.ID,
		OrganizationID: item.OrganizationID,
		Title:          item.Title,
		Priority:       item.Priority,
	}
	if item.ControlRef != nil {
		data.ControlRef = *item.ControlRef
	}

	if err := p.publisher.Publish(ctx, messaging.EventRoadmapItemCreated, data); err != nil {
		p.logger.Error().Err(err).Str("item_id", item.ID).Msg("failed to publish roadmap item created event")
	}
}

// PublishItemStatusChanged publishes an item status changed event
func (p *RoadmapEventPublisher) PublishItemStatusChanged(ctx context.Context, item *domain.RoadmapItem, oldStatus domain.Status) {
	data := messaging.RoadmapItemStatusChangedEvent{
		ItemID:         item.ID,
		OrganizationID: item.OrganizationID,
		OldStatus:      string(oldStatus),
		NewStatus:      string(item.Status),
	}

	if err := p.publisher.Publish(ctx, messaging.EventRoadmapItemStatusChanged, data); err != nil {
		p.logger.Error().Err(err).Str("item_id", item.ID).Msg("failed to publish roadmap item status changed event")
	}
}

// PublishRoadmapRegenerated publishes the outcome of a reconciliation pass
func (p *RoadmapEventPublisher) PublishRoadmapRegenerated(ctx context.Context, organizationID string, created, closed, preserved int) {
	data := messaging.RoadmapRegeneratedEvent{
		OrganizationID: organizationID,
		Created:        created,
		Closed:         closed,
		Preserved:      preserved,
	}

	if err := p.publisher.Publish(ctx, messaging.EventRoadmapRegenerated, data); err != nil {
		p.logger.Error().Err(err).Str("organization_id", organizationID).Msg("failed to publish roadmap regenerated event")
	}
}
