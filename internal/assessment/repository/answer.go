package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/nis2ready/nis2ready-backend/internal/assessment/domain"
	"github.com/nis2ready/nis2ready-backend/pkg/database"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
)

// StoredAnswer is the persisted form of an answer. The surrogate id exists
// only to key evidence rows; the domain identity is (organization, question).
type StoredAnswer struct {
	ID             string    `db:"id"`
	OrganizationID string    `db:"organization_id"`
	QuestionID     string    `db:"question_id"`
	OptionValue    string    `db:"option_value"`
	Score          int       `db:"score"`
	MaturityLevel  string    `db:"maturity_level"`
	AnsweredAt     time.Time `db:"answered_at"`
	CreatedAt      time.Time `db:"created_at"`
}

// AnswerRepository handles answer and evidence persistence
type AnswerRepository struct {
	db *database.DB
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *database.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// Upsert records an answer. Re-answering the same question replaces the
// previous answer (last write wins) but keeps its place in recording order.
func (r *AnswerRepository) Upsert(ctx context.Context, organizationID string, answer *domain.Answer) error {
	query := `
		INSERT INTO answers (id, organization_id, question_id, option_value, score, maturity_level, answered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (organization_id, question_id)
		DO UPDATE SET option_value = $4, score = $5, maturity_level = $6, answered_at = $7
	`

	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		organizationID,
		answer.QuestionID,
		answer.OptionValue,
		answer.Score,
		string(answer.MaturityLevel),
		answer.AnsweredAt,
	)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	return nil
}

// ListByOrganization returns all answers in recording order, with evidence
// descriptors attached.
func (r *AnswerRepository) ListByOrganization(ctx context.Context, organizationID string) ([]domain.Answer, error) {
	var rows []StoredAnswer
	query := `
		SELECT id, organization_id, question_id, option_value, score, maturity_level, answered_at, created_at
		FROM answers
		WHERE organization_id = $1
		ORDER BY created_at ASC
	`

	if err := r.db.SelectContext(ctx, &rows, query, organizationID); err != nil {
		return nil, err
	}

	answers := make([]domain.Answer, 0, len(rows))
	for _, row := range rows {
		evidence, err := r.listEvidence(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		answers = append(answers, domain.Answer{
			QuestionID:    row.QuestionID,
			OptionValue:   row.OptionValue,
			Score:         row.Score,
			MaturityLevel: domain.MaturityLevel(row.MaturityLevel),
			AnsweredAt:    row.AnsweredAt,
			Evidence:      evidence,
		})
	}

	return answers, nil
}

// Get returns a single answer for an organization and question
func (r *AnswerRepository) Get(ctx context.Context, organizationID, questionID string) (*domain.Answer, error) {
	row, err := r.getStored(ctx, organizationID, questionID)
	if err != nil {
		return nil, err
	}

	evidence, err := r.listEvidence(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	return &domain.Answer{
		QuestionID:    row.QuestionID,
		OptionValue:   row.OptionValue,
		Score:         row.Score,
		MaturityLevel: domain.MaturityLevel(row.MaturityLevel),
		AnsweredAt:    row.AnsweredAt,
		Evidence:      evidence,
	}, nil
}

// Delete removes an answer and its evidence
func (r *AnswerRepository) Delete(ctx context.Context, organizationID, questionID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM answers WHERE organization_id = $1 AND question_id = $2`,
		organizationID, questionID,
	)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("answer")
	}

	return nil
}

// AttachEvidence adds an evidence descriptor to an answer. Contents stay in
// external storage; only the descriptor is persisted.
func (r *AnswerRepository) AttachEvidence(ctx context.Context, organizationID, questionID string, descriptor *domain.EvidenceDescriptor) error {
	row, err := r.getStored(ctx, organizationID, questionID)
	if err != nil {
		return err
	}

	if descriptor.ID == "" {
		descriptor.ID = uuid.New().String()
	}

	query := `
		INSERT INTO evidence (id, answer_id, file_name, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING uploaded_at
	`

	return r.db.QueryRowxContext(ctx, query,
		descriptor.ID,
		row.ID,
		descriptor.FileName,
		descriptor.ContentType,
		descriptor.SizeBytes,
	).Scan(&descriptor.UploadedAt)
}

// DetachEvidence removes an evidence descriptor
func (r *AnswerRepository) DetachEvidence(ctx context.Context, evidenceID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM evidence WHERE id = $1`, evidenceID)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("evidence")
	}

	return nil
}

func (r *AnswerRepository) getStored(ctx context.Context, organizationID, questionID string) (*StoredAnswer, error) {
	var row StoredAnswer
	query := `
		SELECT id, organization_id, question_id, option_value, score, maturity_level, answered_at, created_at
		FROM answers
		WHERE organization_id = $1 AND question_id = $2
	`

	err := r.db.GetContext(ctx, &row, query, organizationID, questionID)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("answer")
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

func (r *AnswerRepository) listEvidence(ctx context.Context, answerID string) ([]domain.EvidenceDescriptor, error) {
	var evidence []domain.EvidenceDescriptor
	query := `
		SELECT id, file_name, content_type, size_bytes, uploaded_at
		FROM evidence
		WHERE answer_id = $1
		ORDER BY uploaded_at ASC
	`

	if err := r.db.SelectContext(ctx, &evidence, query, answerID); err != nil {
		return nil, err
	}

	return evidence, nil
}
