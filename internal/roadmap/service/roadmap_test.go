package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nis2ready/nis2ready-backend/internal/roadmap/domain"
	"github.com/nis2ready/nis2ready-backend/internal/roadmap/service"
	"github.com/nis2ready/nis2ready-backend/pkg/messaging"
)

func generatedItem(id, controlRef, title string, status domain.Status) domain.RoadmapItem {
	item := domain.RoadmapItem{
		ID:             id,
		OrganizationID: "org-1",
		Title:          title,
		Priority:       "Critical",
		Status:         status,
		Source:         domain.SourceGenerated,
	}
	if controlRef != "" {
		ref := controlRef
		item.ControlRef = &ref
	}
	return item
}

func recommendation(controlRef, title, priority string) messaging.RecommendationPayload {
	return messaging.RecommendationPayload{
		Priority:    priority,
		Title:       title,
		Description: "Implement " + title + " measures.",
		Effort:      "Medium",
		Timeline:    "1-3 months",
		Category:    "Risk Management",
		ControlRef:  controlRef,
	}
}

func TestPlanReconciliation_EmptyRoadmap(t *testing.T) {
	recs := []messaging.RecommendationPayload{
		recommendation("NIS2-20.1", "Address Cybersecurity Risk Analysis Policies", "Critical"),
		recommendation("", "Improve Risk Management", "High"),
	}

	plan := service.PlanReconciliation("org-1", nil, recs)

	require.Len(t, plan.Create, 2)
	assert.Empty(t, plan.Update)
	assert.Empty(t, plan.Close)
	assert.Zero(t, plan.Preserved)

	require.NotNil(t, plan.Create[0].ControlRef)
	assert.Equal(t, "NIS2-20.1", *plan.Create[0].ControlRef)
	assert.Equal(t, domain.StatusPending, plan.Create[0].Status)
	assert.Equal(t, domain.SourceGenerated, plan.Create[0].Source)

	// Recommendations without a control reference key on the title
	assert.Nil(t, plan.Create[1].ControlRef)
	assert.Equal(t, "Improve Risk Management", plan.Create[1].Title)
}

func TestPlanReconciliation_MatchingItemRefreshedInPlace(t *testing.T) {
	existing := []domain.RoadmapItem{
		generatedItem("item-1", "NIS2-20.1", "Address Cybersecurity Risk Analysis Policies", domain.StatusInProgress),
	}
	recs := []messaging.RecommendationPayload{
		recommendation("NIS2-20.1", "Address Cybersecurity Risk Analysis Policies", "High"),
	}

	plan := service.PlanReconciliation("org-1", existing, recs)

	assert.Empty(t, plan.Create)
	assert.Empty(t, plan.Close)
	require.Len(t, plan.Update, 1)
	assert.Equal(t, 1, plan.Preserved)

	// Priority tracks the new recommendation, status stays where the user put it
	assert.Equal(t, "item-1", plan.Update[0].ID)
	assert.Equal(t, "High", plan.Update[0].Priority)
	assert.Equal(t, domain.StatusInProgress, plan.Update[0].Status)
}

func TestPlanReconciliation_SupersededPendingItemClosed(t *testing.T) {
	existing := []domain.RoadmapItem{
		generatedItem("item-1", "NIS2-20.3", "Address Supply Chain Security", domain.StatusPending),
	}

	plan := service.PlanReconciliation("org-1", existing, nil)

	assert.Empty(t, plan.Create)
	assert.Empty(t, plan.Update)
	require.Len(t, plan.Close, 1)
	assert.Equal(t, "item-1", plan.Close[0].ID)
	assert.Zero(t, plan.Preserved)
}

func TestPlanReconciliation_StartedWorkSurvivesSupersession(t *testing.T) {
	existing := []domain.RoadmapItem{
		generatedItem("item-1", "NIS2-20.3", "Address Supply Chain Security", domain.StatusInProgress),
		generatedItem("item-2", "NIS2-20.5", "Address Network Security", domain.StatusCompleted),
	}

	plan := service.PlanReconciliation("org-1", existing, nil)

	assert.Empty(t, plan.Create)
	assert.Empty(t, plan.Update)
	assert.Empty(t, plan.Close)
	assert.Equal(t, 2, plan.Preserved)
}

func TestPlanReconciliation_MixedRun(t *testing.T) {
	existing := []domain.RoadmapItem{
		generatedItem("item-1", "NIS2-20.1", "Address Cybersecurity Risk Analysis Policies", domain.StatusPending),
		generatedItem("item-2", "NIS2-20.3", "Address Supply Chain Security", domain.StatusInProgress),
		generatedItem("item-3", "NIS2-20.5", "Address Network Security", domain.StatusPending),
	}
	recs := []messaging.RecommendationPayload{
		recommendation("NIS2-20.1", "Address Cybersecurity Risk Analysis Policies", "Critical"),
		recommendation("NIS2-20.7", "Address Cryptography and Encryption", "Critical"),
	}

	plan := service.PlanReconciliation("org-1", existing, recs)

	// 20.1 matched, 20.7 new, 20.5 pending and superseded, 20.3 in progress
	require.Len(t, plan.Create, 1)
	assert.Equal(t, "Address Cryptography and Encryption", plan.Create[0].Title)
	require.Len(t, plan.Update, 1)
	assert.Equal(t, "item-1", plan.Update[0].ID)
	require.Len(t, plan.Close, 1)
	assert.Equal(t, "item-3", plan.Close[0].ID)
	assert.Equal(t, 2, plan.Preserved)
}

func TestPlanReconciliation_DuplicateRecommendationKeysCollapsed(t *testing.T) {
	recs := []messaging.RecommendationPayload{
		recommendation("NIS2-20.1", "Address Cybersecurity Risk Analysis Policies", "Critical"),
		recommendation("NIS2-20.1", "Address Cybersecurity Risk Analysis Policies", "High"),
	}

	plan := service.PlanReconciliation("org-1", nil, recs)

	require.Len(t, plan.Create, 1)
	assert.Equal(t, "Critical", plan.Create[0].Priority)
}

func TestPlanReconciliation_TitleKeyedItemMatches(t *testing.T) {
	existing := []domain.RoadmapItem{
		generatedItem("item-1", "", "Improve Risk Management", domain.StatusPending),
	}
	recs := []messaging.RecommendationPayload{
		recommendation("", "Improve Risk Management", "High"),
	}

	plan := service.PlanReconciliation("org-1", existing, recs)

	assert.Empty(t, plan.Create)
	assert.Empty(t, plan.Close)
	require.Len(t, plan.Update, 1)
	assert.Equal(t, "item-1", plan.Update[0].ID)
}
