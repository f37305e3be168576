package events

import (
	"context"
	"time"

	"github.com/nis2ready/nis2ready-backend/internal/assessment/domain"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
	"github.com/nis2ready/nis2ready-backend/pkg/messaging"
)

// AssessmentEventPublisher publishes assessment events
type AssessmentEventPublisher struct {
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewAssessmentEventPublisher creates a new assessment event publisher
func NewAssessmentEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*AssessmentEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeAssessmentEvents, "assessment-service", log)
	if err != nil {
		return nil, err
	}

	return &AssessmentEventPublisher{
		publisher: publisher,
		logger:    log,
	}, nil
}

// PublishAnswerRecorded publishes an answer recorded event
func (p *AssessmentEventPublisher) PublishAnswerRecorded(ctx context.Context, organizationID string, answer *domain.Answer) {
	data := messaging.AnswerRecordedEvent{
		OrganizationID: organizationID,
		QuestionID:     answer.QuestionID,
		OptionValue:    answer.OptionValue,
		Score:          answer.Score,
		MaturityLevel:  string(answer.MaturityLevel),
	}

	if err := p.publisher.Publish(ctx, messaging.EventAnswerRecorded, data); err != nil {
		p.logger.Error().Err(err).Str("organization_id", organizationID).Str("question_id", answer.QuestionID).Msg("failed to publish answer recorded event")
	}
}

// PublishAnswerDeleted publishes an answer deleted event
func (p *AssessmentEventPublisher) PublishAnswerDeleted(ctx context.Context, organizationID, questionID string) {
	data := messaging.AnswerDeletedEvent{
		OrganizationID: organizationID,
		QuestionID:     questionID,
	}

	if err := p.publisher.Publish(ctx, messaging.EventAnswerDeleted, data); err != nil {
		p.logger.Error().Err(err).Str("organization_id", organizationID).Str("question_id", questionID).Msg("failed to publish answer deleted event")
	}
}

// PublishAnalysisUpdated publishes the outcome of a scoring run.
// roadmap-service reconciles its items from the recommendation list.
func (p *AssessmentEventPublisher) PublishAnalysisUpdated(ctx context.Context, organizationID string, result *domain.AnalysisResult) {
	recommendations := make([]messaging.RecommendationPayload, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		recommendations = append(recommendations, messaging.RecommendationPayload{
			Priority:    string(rec.Priority),
			Title:       rec.Title,
			Description: rec.Description,
			Effort:      rec.Effort,
			Timeline:    rec.Timeline,
			Category:    rec.Category,
			ControlRef:  rec.ControlRef,
		})
	}

	data := messaging.AnalysisUpdatedEvent{
		OrganizationID:  organizationID,
		OverallScore:    result.OverallScore,
		CompletionRate:  result.CompletionRate,
		CriticalGaps:    len(result.CriticalGaps),
		Recommendations: recommendations,
		AnalyzedAt:      time.Now().UTC(),
	}

	if err := p.publisher.Publish(ctx, messaging.EventAnalysisUpdated, data); err != nil {
		p.logger.Error().Err(err).Str("organization_id", organizationID).Msg("failed to publish analysis updated event")
	}
}
