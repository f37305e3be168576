package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nis2ready/nis2ready-backend/internal/classification/domain"
	"github.com/nis2ready/nis2ready-backend/pkg/database"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
)

// ClassificationRepository stores the latest classification verdict per
// organization. History is not kept; re-classification replaces the row.
type ClassificationRepository struct {
	db *database.DB
}

// NewClassificationRepository creates a new classification repository
func NewClassificationRepository(db *database.DB) *ClassificationRepository {
	return &ClassificationRepository{db: db}
}

// Upsert stores the classification result for an organization
func (r *ClassificationRepository) Upsert(ctx context.Context, organizationID string, result *domain.ClassificationResult) error {
	requirements, err := json.Marshal(result.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}

	query := `
		INSERT INTO classifications (organization_id, entity_type, reason, rule_name, size_category, requirements, classified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (organization_id)
		DO UPDATE SET entity_type = $2, reason = $3, rule_name = $4, size_category = $5, requirements = $6, classified_at = $7
	`

	_, err = r.db.ExecContext(ctx, query,
		organizationID,
		string(result.EntityType),
		result.Reason,
		result.RuleName,
		string(result.SizeCategory),
		requirements,
		result.ClassifiedAt,
	)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	return nil
}

// Get returns the stored classification for an organization
func (r *ClassificationRepository) Get(ctx context.Context, organizationID string) (*domain.ClassificationResult, error) {
	var row struct {
		EntityType   string    `db:"entity_type"`
		Reason       string    `db:"reason"`
		RuleName     string    `db:"rule_name"`
		SizeCategory string    `db:"size_category"`
		Requirements []byte    `db:"requirements"`
		ClassifiedAt time.Time `db:"classified_at"`
	}

	query := `
		SELECT entity_type, reason, rule_name, size_category, requirements, classified_at
		FROM classifications
		WHERE organization_id = $1
	`

	err := r.db.GetContext(ctx, &row, query, organizationID)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("classification")
	}
	if err != nil {
		return nil, err
	}

	result := &domain.ClassificationResult{
		EntityType:   domain.EntityType(row.EntityType),
		Reason:       row.Reason,
		RuleName:     row.RuleName,
		SizeCategory: domain.SizeCategory(row.SizeCategory),
		ClassifiedAt: row.ClassifiedAt,
	}
	if err := json.Unmarshal(row.Requirements, &result.Requirements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
	}

	return result, nil
}

// Delete removes the stored classification for an organization
func (r *ClassificationRepository) Delete(ctx context.Context, organizationID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM classifications WHERE organization_id = $1`, organizationID)
	return err
}
