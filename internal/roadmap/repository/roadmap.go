package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/nis2ready/nis2ready-backend/internal/roadmap/domain"
	"github.com/nis2ready/nis2ready-backend/pkg/database"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
)

// RoadmapRepository handles roadmap item persistence
type RoadmapRepository struct {
	db *database.DB
}

// NewRoadmapRepository creates a new roadmap repository
func NewRoadmapRepository(db *database.DB) *RoadmapRepository {
	return &RoadmapRepository{db: db}
}

// Create inserts a roadmap item
func (r *RoadmapRepository) Create(ctx context.Context, item *domain.RoadmapItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Status == "" {
		item.Status = domain.StatusPending
	}

	query := `
		INSERT INTO roadmap_items (id, organization_id, control_ref, title, description, priority, effort, timeline, category, status, source, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		item.ID,
		item.OrganizationID,
		item.ControlRef,
		item.Title,
		item.Description,
		item.Priority,
		item.Effort,
		item.Timeline,
		item.Category,
		string(item.Status),
		string(item.Source),
		item.DueDate,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	return nil
}

// GetByID retrieves a roadmap item by ID
func (r *RoadmapRepository) GetByID(ctx context.Context, id string) (*domain.RoadmapItem, error) {
	var item domain.RoadmapItem
	query := `
		SELECT id, organization_id, control_ref, title, description, priority, effort, timeline, category, status, source, due_date, created_at, updated_at
		FROM roadmap_items
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &item, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("roadmap item")
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// ListFilter narrows ListByOrganization results. Zero values mean no filter.
type ListFilter struct {
	Status   domain.Status
	Priority string
}

// ListByOrganization returns an organization's roadmap items, critical first,
// oldest first within a priority.
func (r *RoadmapRepository) ListByOrganization(ctx context.Context, organizationID string, filter ListFilter) ([]domain.RoadmapItem, error) {
	query := `
		SELECT id, organization_id, control_ref, title, description, priority, effort, timeline, category, status, source, due_date, created_at, updated_at
		FROM roadmap_items
		WHERE organization_id = $1
	`
	args := []interface{}{organizationID}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}

	query += `
		ORDER BY CASE priority
			WHEN 'Critical' THEN 0
			WHEN 'High' THEN 1
			WHEN 'Medium' THEN 2
			ELSE 3
		END, created_at ASC
	`

	items := []domain.RoadmapItem{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}

	return items, nil
}

// ListGenerated returns the generated items only, for reconciliation
func (r *RoadmapRepository) ListGenerated(ctx context.Context, organizationID string) ([]domain.RoadmapItem, error) {
	items := []domain.RoadmapItem{}
	query := `
		SELECT id, organization_id, control_ref, title, description, priority, effort, timeline, category, status, source, due_date, created_at, updated_at
		FROM roadmap_items
		WHERE organization_id = $1 AND source = 'generated'
		ORDER BY created_at ASC
	`

	if err := r.db.SelectContext(ctx, &items, query, organizationID); err != nil {
		return nil, err
	}

	return items, nil
}

// Update rewrites the mutable fields of a generated item in place
func (r *RoadmapRepository) Update(ctx context.Context, item *domain.RoadmapItem) error {
	query := `
		UPDATE roadmap_items
		SET title = $2, description = $3, priority = $4, effort = $5, timeline = $6, category = $7, due_date = $8, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.Priority,
		item.Effort,
		item.Timeline,
		item.Category,
		item.DueDate,
	)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("roadmap item")
	}

	return nil
}

// UpdateStatus transitions an item to a new status
func (r *RoadmapRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE roadmap_items SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("roadmap item")
	}

	return nil
}

// Delete removes a roadmap item
func (r *RoadmapRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM roadmap_items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("roadmap item")
	}

	return nil
}
