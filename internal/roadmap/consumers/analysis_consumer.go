package consumers

import (
	"context"

	"github.com/nis2ready/nis2ready-backend/internal/roadmap/service"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
	"github.com/nis2ready/nis2ready-backend/pkg/messaging"
)

// AnalysisEventConsumer consumes assessment analysis events
type AnalysisEventConsumer struct {
	consumer       *messaging.Consumer
	roadmapService *service.RoadmapService
	logger         *logger.Logger
}

// NewAnalysisEventConsumer creates a new analysis event consumer
func NewAnalysisEventConsumer(rmq *messaging.RabbitMQ, roadmapService *service.RoadmapService, log *logger.Logger) (*AnalysisEventConsumer, error) {
	consumer, err := messaging.NewConsumer(rmq, "roadmap-service.assessment-events", log)
	if err != nil {
		return nil, err
	}

	// Subscribe to assessment events
	if err := consumer.Subscribe(messaging.ExchangeAssessmentEvents, "assessment.#"); err != nil {
		return nil, err
	}

	c := &AnalysisEventConsumer{
		consumer:       consumer,
		roadmapService: roadmapService,
		logger:         log,
	}

	// Register handlers
	consumer.RegisterHandler(messaging.EventAnalysisUpdated, c.handleAnalysisUpdated)

	return c, nil
}

// Start starts consuming messages
func (c *AnalysisEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Start(ctx)
}

func (c *AnalysisEventConsumer) handleAnalysisUpdated(ctx context.Context, event *messaging.Event) error {
	var data messaging.AnalysisUpdatedEvent
	if err := event.UnmarshalData(&data); err != nil {
		return err
	}

	c.logger.Info().
		Str("organization_id", data.OrganizationID).
		Int("overall_score", data.OverallScore).
		Int("recommendations", len(data.Recommendations)).
		Msg("received analysis updated event")

	return c.roadmapService.Reconcile(ctx, data.OrganizationID, data.Recommendations)
}
