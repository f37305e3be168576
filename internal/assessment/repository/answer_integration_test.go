package repository_test

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nis2ready/nis2ready-backend/internal/assessment/domain"
	"github.com/nis2ready/nis2ready-backend/internal/assessment/repository"
	orgdomain "github.com/nis2ready/nis2ready-backend/internal/organization/domain"
	orgrepo "github.com/nis2ready/nis2ready-backend/internal/organization/repository"
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
	if err := suite.SetupAssessmentSchema(ctx); err != nil {
		log.Fatalf("failed to create assessment schema: %v", err)
	}

	code := m.Run()
	testutil.TerminateContainer(ctx)
	os.Exit(code)
}

// Helper to create a parent organization for answer rows
func createTestOrganization(t *testing.T, ctx context.Context, name string) *orgdomain.Organization {
	t.Helper()
	org := &orgdomain.Organization{
		Name:            fmt.Sprintf("%s %s", name, uuid.New().String()[:8]),
		Sector:          "Banking",
		Country:         "DE",
		Employees:       300,
		RevenueMillions: 60,
	}
	err := orgrepo.NewOrganizationRepository(suite.DB).Create(ctx, org)
	require.NoError(t, err)
	return org
}

func recordAnswer(t *testing.T, ctx context.Context, repo *repository.AnswerRepository, orgID, questionID, option string, score int) {
	t.Helper()
	err := repo.Upsert(ctx, orgID, &domain.Answer{
		QuestionID:    questionID,
		OptionValue:   option,
		Score:         score,
		MaturityLevel: domain.MaturityDefined,
		AnsweredAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestAnswerRepository_UpsertKeepsRecordingOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	org := createTestOrganization(t, ctx, "Recording Order AG")
	repo := repository.NewAnswerRepository(suite.DB)

	recordAnswer(t, ctx, repo, org.ID, "risk-policy", "documented", 50)
	recordAnswer(t, ctx, repo, org.ID, "incident-process", "ad-hoc", 25)
	recordAnswer(t, ctx, repo, org.ID, "backup-testing", "quarterly", 75)

	// Re-answering the first question replaces the answer but must not move
	// it to the end of the list.
	recordAnswer(t, ctx, repo, org.ID, "risk-policy", "audited", 100)

	answers, err := repo.ListByOrganization(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, answers, 3)

	assert.Equal(t, "risk-policy", answers[0].QuestionID)
	assert.Equal(t, "incident-process", answers[1].QuestionID)
	assert.Equal(t, "backup-testing", answers[2].QuestionID)

	assert.Equal(t, "audited", answers[0].OptionValue)
	assert.Equal(t, 100, answers[0].Score)
}

func TestAnswerRepository_DeleteCascadesEvidence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	org := createTestOrganization(t, ctx, "Evidence Cascade GmbH")
	repo := repository.NewAnswerRepository(suite.DB)

	recordAnswer(t, ctx, repo, org.ID, "risk-policy", "documented", 50)

	descriptor := &domain.EvidenceDescriptor{
		FileName:    "risk-policy.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
	}
	err := repo.AttachEvidence(ctx, org.ID, "risk-policy", descriptor)
	require.NoError(t, err)
	require.NotEmpty(t, descriptor.ID)
	assert.False(t, descriptor.UploadedAt.IsZero())

	answer, err := repo.Get(ctx, org.ID, "risk-policy")
	require.NoError(t, err)
	require.Len(t, answer.Evidence, 1)
	assert.Equal(t, "risk-policy.pdf", answer.Evidence[0].FileName)

	// Deleting the answer removes its evidence rows with it.
	require.NoError(t, repo.Delete(ctx, org.ID, "risk-policy"))

	err = repo.DetachEvidence(ctx, descriptor.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
