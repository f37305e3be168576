package repository_test

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nis2ready/nis2ready-backend/internal/roadmap/domain"
	"github.com/nis2ready/nis2ready-backend/internal/roadmap/repository"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
	"github.com/nis2ready/nis2ready-backend/pkg/testutil"
)

var suite *testutil.IntegrationSuite

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()

	var err error
	suite, err = testutil.NewIntegrationSuite(ctx)
	if err != nil {
		log.Fatalf("failed to create integration suite: %v", err)
	}
	if err := suite.SetupRoadmapSchema(ctx); err != nil {
		log.Fatalf("failed to create roadmap schema: %v", err)
	}

	code := m.Run()
	testutil.TerminateContainer(ctx)
	os.Exit(code)
}

func controlRef(s string) *string { return &s }

func generatedTestItem(organizationID string, ref *string, title string) *domain.RoadmapItem {
	return &domain.RoadmapItem{
		OrganizationID: organizationID,
		ControlRef:     ref,
		Title:          title,
		Description:    "Close the gap identified by the latest analysis",
		Priority:       "High",
		Effort:         "2-4 weeks",
		Timeline:       "Q1",
		Category:       "Risk Management",
		Source:         domain.SourceGenerated,
	}
}

func TestRoadmapRepository_GeneratedControlRefIsUniquePerOrganization(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	organizationID := uuid.New().String()
	repo := repository.NewRoadmapRepository(suite.DB)

	first := generatedTestItem(organizationID, controlRef("NIS2-21.2a"), "Establish risk analysis policy")
	require.NoError(t, repo.Create(ctx, first))
	assert.False(t, first.CreatedAt.IsZero())

	// A second generated item for the same control must be rejected.
	duplicate := generatedTestItem(organizationID, controlRef("NIS2-21.2a"), "Establish risk analysis policy again")
	err := repo.Create(ctx, duplicate)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConflict))

	// The same control for another organization is fine.
	other := generatedTestItem(uuid.New().String(), controlRef("NIS2-21.2a"), "Establish risk analysis policy")
	require.NoError(t, repo.Create(ctx, other))
}

func TestRoadmapRepository_ManualItemsMayRepeatControlRef(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	organizationID := uuid.New().String()
	repo := repository.NewRoadmapRepository(suite.DB)

	generated := generatedTestItem(organizationID, controlRef("NIS2-23.1"), "Set up incident reporting")
	require.NoError(t, repo.Create(ctx, generated))

	// Manually added items are not covered by the uniqueness rule, even when
	// they reference the same control.
	manual := generatedTestItem(organizationID, controlRef("NIS2-23.1"), "Track incident reporting follow-up")
	manual.Source = domain.SourceManual
	require.NoError(t, repo.Create(ctx, manual))

	// Nor are generated items without a control reference.
	require.NoError(t, repo.Create(ctx, generatedTestItem(organizationID, nil, "Review supplier contracts")))
	require.NoError(t, repo.Create(ctx, generatedTestItem(organizationID, nil, "Review supplier contracts again")))

	items, err := repo.ListByOrganization(ctx, organizationID, repository.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 4)
}
