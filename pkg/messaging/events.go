package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	// Organization events
	EventOrganizationCreated        = "organization.created"
	EventOrganizationProfileUpdated = "organization.profile.updated"
	EventOrganizationDeleted        = "organization.deleted"

	// Classification events
	EventClassificationUpdated = "classification.updated"

	// Assessment events
	EventAnswerRecorded  = "assessment.answer.recorded"
	EventAnswerDeleted   = "assessment.answer.deleted"
	EventAnalysisUpdated = "assessment.analysis.updated"

	// Roadmap events
	EventRoadmapItemCreated       = "roadmap.item.created"
	EventRoadmapItemStatusChanged = "roadmap.item.status.changed"
	EventRoadmapRegenerated       = "roadmap.regenerated"
)

// Exchange names
const (
	ExchangeAssessmentEvents = "assessment.events"
	ExchangeRoadmapEvents    = "roadmap.events"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            GenerateEventID(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// Organization Events

// OrganizationCreatedEvent is published when an organization is registered
type OrganizationCreatedEvent struct {
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Sector         string `json:"sector"`
	Country        string `json:"country"`
}

// OrganizationProfileUpdatedEvent is published when profile fields change
type OrganizationProfileUpdatedEvent struct {
	OrganizationID string         `json:"organization_id"`
	Fields         map[string]any `json:"fields"` // Changed fields
}

// OrganizationDeletedEvent is published when an organization is removed
type OrganizationDeletedEvent struct {
	OrganizationID string `json:"organization_id"`
}

// Classification Events

// ClassificationUpdatedEvent is published when an organization's NIS2
// classification is computed or recomputed
type ClassificationUpdatedEvent struct {
	OrganizationID string `json:"organization_id"`
	EntityType     string `json:"entity_type"`
	Reason         string `json:"reason"`
	RuleName       string `json:"rule_name"`
	SizeCategory   string `json:"size_category"`
	Country        string `json:"country"`
}

// Assessment Events

// AnswerRecordedEvent is published when a questionnaire answer is saved
type AnswerRecordedEvent struct {
	OrganizationID string `json:"organization_id"`
	QuestionID     string `json:"question_id"`
	OptionValue    string `json:"option_value"`
	Score          int    `json:"score"`
	MaturityLevel  string `json:"maturity_level"`
}

// AnswerDeletedEvent is published when an answer is removed
type AnswerDeletedEvent struct {
	OrganizationID string `json:"organization_id"`
	QuestionID     string `json:"question_id"`
}

// RecommendationPayload is the wire form of an analysis recommendation.
// roadmap-service reconciles roadmap items from this list.
type RecommendationPayload struct {
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Effort      string `json:"effort"`
	Timeline    string `json:"timeline"`
	Category    string `json:"category"`
	ControlRef  string `json:"control_ref,omitempty"`
}

// AnalysisUpdatedEvent is published when a compliance analysis completes
type AnalysisUpdatedEvent struct {
	OrganizationID  string                  `json:"organization_id"`
	OverallScore    int                     `json:"overall_score"`
	CompletionRate  int                     `json:"completion_rate"`
	CriticalGaps    int                     `json:"critical_gaps"`
	Recommendations []RecommendationPayload `json:"recommendations"`
	AnalyzedAt      time.Time               `json:"analyzed_at"`
}

// Roadmap Events

// RoadmapItemCreatedEvent is published when a roadmap item is created
type RoadmapItemCreatedEvent struct {
	ItemID         string `json:"item_id"`
	OrganizationID string `json:"organization_id"`
	Title          string `json:"title"`
	Priority       string `json:"priority"`
	ControlRef     string `json:"control_ref,omitempty"`
}

// RoadmapItemStatusChangedEvent is published when an item status changes
type RoadmapItemStatusChangedEvent struct {
	ItemID         string `json:"item_id"`
	OrganizationID string `json:"organization_id"`
	OldStatus      string `json:"old_status"`
	NewStatus      string `json:"new_status"`
}

// RoadmapRegeneratedEvent is published after a reconciliation pass
type RoadmapRegeneratedEvent struct {
	OrganizationID string `json:"organization_id"`
	Created        int    `json:"created"`
	Closed         int    `json:"closed"`
	Preserved      int    `json:"preserved"`
}

// GenerateEventID generates a unique event ID
func GenerateEventID() string {
	return uuid.New().String()
}
