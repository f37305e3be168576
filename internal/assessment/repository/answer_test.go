package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nis2ready/nis2ready-backend/internal/assessment/domain"
	"github.com/nis2ready/nis2ready-backend/internal/assessment/repository"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
	"github.com/nis2ready/nis2ready-backend/pkg/testutil"
)

var answerColumns = []string{
	"id", "organization_id", "question_id", "option_value", "score",
	"maturity_level", "answered_at", "created_at",
}

var evidenceColumns = []string{"id", "file_name", "content_type", "size_bytes", "uploaded_at"}

func TestAnswerRepository_Upsert(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	answeredAt := time.Now().UTC()
	mockDB.ExpectExec("INSERT INTO answers").
		WithArgs(testutil.AnyUUID{}, "org-1", "network-security", "largely-compliant", 75, "Managed", answeredAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := repository.NewAnswerRepository(mockDB.DB)

	err := repo.Upsert(context.Background(), "org-1", &domain.Answer{
		QuestionID:    "network-security",
		OptionValue:   "largely-compliant",
		Score:         75,
		MaturityLevel: domain.MaturityManaged,
		AnsweredAt:    answeredAt,
	})
	require.NoError(t, err)

	mockDB.ExpectationsWereMet(t)
}

func TestAnswerRepository_ListByOrganization(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	now := time.Now().UTC()
	mockDB.ExpectQuery("ORDER BY created_at ASC").
		WithArgs("org-1").
		WillReturnRows(testutil.MockRows(answerColumns...).
			AddRow("a-1", "org-1", "risk-mgmt-policies", "fully-compliant", 100, "Optimized", now, now.Add(-2*time.Hour)).
			AddRow("a-2", "org-1", "network-security", "non-compliant", 0, "Initial", now, now.Add(-time.Hour)))
	mockDB.ExpectQuery("FROM evidence").
		WithArgs("a-1").
		WillReturnRows(testutil.MockRows(evidenceColumns...).
			AddRow("e-1", "risk-policy.pdf", "application/pdf", int64(2048), now))
	mockDB.ExpectQuery("FROM evidence").
		WithArgs("a-2").
		WillReturnRows(testutil.MockRows(evidenceColumns...))

	repo := repository.NewAnswerRepository(mockDB.DB)

	answers, err := repo.ListByOrganization(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, answers, 2)

	// Recording order is preserved
	assert.Equal(t, "risk-mgmt-policies", answers[0].QuestionID)
	assert.Equal(t, "network-security", answers[1].QuestionID)

	require.Len(t, answers[0].Evidence, 1)
	assert.Equal(t, "risk-policy.pdf", answers[0].Evidence[0].FileName)
	assert.Empty(t, answers[1].Evidence)

	mockDB.ExpectationsWereMet(t)
}

func TestAnswerRepository_Delete_NotFound(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	mockDB.ExpectExec("DELETE FROM answers").
		WithArgs("org-1", "never-answered").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := repository.NewAnswerRepository(mockDB.DB)

	err := repo.Delete(context.Background(), "org-1", "never-answered")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	mockDB.ExpectationsWereMet(t)
}

func TestAnswerRepository_AttachEvidence(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	now := time.Now().UTC()
	mockDB.ExpectQuery("FROM answers").
		WithArgs("org-1", "network-security").
		WillReturnRows(testutil.MockRows(answerColumns...).
			AddRow("a-1", "org-1", "network-security", "largely-compliant", 75, "Managed", now, now))
	mockDB.ExpectQuery("INSERT INTO evidence").
		WithArgs(testutil.AnyUUID{}, "a-1", "firewall-config.pdf", "application/pdf", int64(4096)).
		WillReturnRows(testutil.MockRows("uploaded_at").AddRow(now))

	repo := repository.NewAnswerRepository(mockDB.DB)

	descriptor := &domain.EvidenceDescriptor{
		FileName:    "firewall-config.pdf",
		ContentType: "application/pdf",
		SizeBytes:   4096,
	}
	err := repo.AttachEvidence(context.Background(), "org-1", "network-security", descriptor)
	require.NoError(t, err)
	assert.NotEmpty(t, descriptor.ID)
	assert.Equal(t, now, descriptor.UploadedAt)

	mockDB.ExpectationsWereMet(t)
}

func TestAnswerRepository_AttachEvidence_AnswerMissing(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM answers").
		WithArgs("org-1", "never-answered").
		WillReturnRows(testutil.MockRows(answerColumns...))

	repo := repository.NewAnswerRepository(mockDB.DB)

	err := repo.AttachEvidence(context.Background(), "org-1", "never-answered", &domain.EvidenceDescriptor{
		FileName:    "doc.pdf",
		ContentType: "application/pdf",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	mockDB.ExpectationsWereMet(t)
}
