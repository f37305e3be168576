package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nis2ready/nis2ready-backend/internal/roadmap/domain"
	"github.com/nis2ready/nis2ready-backend/internal/roadmap/repository"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
	"github.com/nis2ready/nis2ready-backend/pkg/testutil"
)

var itemColumns = []string{
	"id", "organization_id", "control_ref", "title", "description", "priority",
	"effort", "timeline", "category", "status", "source", "due_date",
	"created_at", "updated_at",
}

func TestRoadmapRepository_Create(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	now := time.Now().UTC()
	ref := "NIS2-20.5"
	mockDB.ExpectQuery("INSERT INTO roadmap_items").
		WithArgs(testutil.AnyUUID{}, "org-1", "NIS2-20.5", "Address Network Security", "Implement network segmentation.",
			"Critical", "Medium", "1-3 months", "Technical Security", "pending", "generated", nil).
		WillReturnRows(testutil.MockRows("created_at", "updated_at").AddRow(now, now))

	repo := repository.NewRoadmapRepository(mockDB.DB)

	item := &domain.RoadmapItem{
		OrganizationID: "org-1",
		ControlRef:     &ref,
		Title:          "Address Network Security",
		Description:    "Implement network segmentation.",
		Priority:       "Critical",
		Effort:         "Medium",
		Timeline:       "1-3 months",
		Category:       "Technical Security",
		Source:         domain.SourceGenerated,
	}
	err := repo.Create(context.Background(), item)
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, domain.StatusPending, item.Status)
	assert.Equal(t, now, item.CreatedAt)

	mockDB.ExpectationsWereMet(t)
}

func TestRoadmapRepository_ListByOrganization_Filters(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	now := time.Now().UTC()
	mockDB.ExpectQuery("AND status = $2 AND priority = $3").
		WithArgs("org-1", "pending", "Critical").
		WillReturnRows(testutil.MockRows(itemColumns...).
			AddRow("item-1", "org-1", "NIS2-20.1", "Address Cybersecurity Risk Analysis Policies", "",
				"Critical", "Medium", "1-3 months", "Risk Management", "pending", "generated", nil, now, now))

	repo := repository.NewRoadmapRepository(mockDB.DB)

	items, err := repo.ListByOrganization(context.Background(), "org-1", repository.ListFilter{
		Status:   domain.StatusPending,
		Priority: "Critical",
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item-1", items[0].ID)
	require.NotNil(t, items[0].ControlRef)
	assert.Equal(t, "NIS2-20.1", *items[0].ControlRef)

	mockDB.ExpectationsWereMet(t)
}

func TestRoadmapRepository_ListGenerated(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	now := time.Now().UTC()
	mockDB.ExpectQuery("source = 'generated'").
		WithArgs("org-1").
		WillReturnRows(testutil.MockRows(itemColumns...).
			AddRow("item-1", "org-1", "NIS2-20.3", "Address Supply Chain Security", "",
				"Critical", "Medium", "1-3 months", "Supply Chain", "in_progress", "generated", nil, now, now))

	repo := repository.NewRoadmapRepository(mockDB.DB)

	items, err := repo.ListGenerated(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.StatusInProgress, items[0].Status)
	assert.Equal(t, domain.SourceGenerated, items[0].Source)

	mockDB.ExpectationsWereMet(t)
}

func TestRoadmapRepository_UpdateStatus(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	mockDB.ExpectExec("UPDATE roadmap_items SET status").
		WithArgs("item-1", "completed").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := repository.NewRoadmapRepository(mockDB.DB)

	require.NoError(t, repo.UpdateStatus(context.Background(), "item-1", domain.StatusCompleted))

	mockDB.ExpectationsWereMet(t)
}

func TestRoadmapRepository_UpdateStatus_NotFound(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	mockDB.ExpectExec("UPDATE roadmap_items SET status").
		WithArgs("missing", "completed").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := repository.NewRoadmapRepository(mockDB.DB)

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusCompleted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	mockDB.ExpectationsWereMet(t)
}

func TestRoadmapRepository_Delete(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	mockDB.ExpectExec("DELETE FROM roadmap_items").
		WithArgs("item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := repository.NewRoadmapRepository(mockDB.DB)

	require.NoError(t, repo.Delete(context.Background(), "item-1"))

	mockDB.ExpectationsWereMet(t)
}
