package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/nis2ready/nis2ready-backend/internal/organization/domain"
	"github.com/nis2ready/nis2ready-backend/pkg/database"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
)

// OrganizationRepository handles organization persistence
type OrganizationRepository struct {
	db *database.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *database.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	if org.ID == "" {
		org.ID = uuid.New().String()
	}

	query := `
		INSERT INTO organizations (id, name, sector, subsector, country, employees,
		                           revenue_millions, population_served, cross_border,
		                           critical_services, onboarding_complete)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		org.ID,
		org.Name,
		org.Sector,
		org.Subsector,
		org.Country,
		org.Employees,
		org.RevenueMillions,
		org.PopulationServed,
		org.CrossBorder,
		org.CriticalServices,
		org.OnboardingComplete,
	).Scan(&org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	return nil
}

// GetByID gets an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	var org domain.Organization
	query := `
		SELECT id, name, sector, subsector, country, employees, revenue_millions,
		       population_served, cross_border, critical_services, onboarding_complete,
		       created_at, updated_at
		FROM organizations
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &org, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("organization")
	}
	if err != nil {
		return nil, err
	}

	return &org, nil
}

// GetByName gets an organization by its unique name
func (r *OrganizationRepository) GetByName(ctx context.Context, name string) (*domain.Organization, error) {
	var org domain.Organization
	query := `
		SELECT id, name, sector, subsector, country, employees, revenue_millions,
		       population_served, cross_border, critical_services, onboarding_complete,
		       created_at, updated_at
		FROM organizations
		WHERE name = $1
	`

	err := r.db.GetContext(ctx, &org, query, name)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("organization")
	}
	if err != nil {
		return nil, err
	}

	return &org, nil
}

// List lists organizations with pagination
func (r *OrganizationRepository) List(ctx context.Context, page, perPage int) ([]*domain.Organization, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM organizations`); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	query := `
		SELECT id, name, sector, subsector, country, employees, revenue_millions,
		       population_served, cross_border, critical_services, onboarding_complete,
		       created_at, updated_at
		FROM organizations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var orgs []*domain.Organization
	if err := r.db.SelectContext(ctx, &orgs, query, perPage, offset); err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

// Update updates an organization profile
func (r *OrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	query := `
		UPDATE organizations
		SET name = $2, sector = $3, subsector = $4, country = $5, employees = $6,
		    revenue_millions = $7, population_served = $8, cross_border = $9,
		    critical_services = $10, onboarding_complete = $11, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		org.ID,
		org.Name,
		org.Sector,
		org.Subsector,
		org.Country,
		org.Employees,
		org.RevenueMillions,
		org.PopulationServed,
		org.CrossBorder,
		org.CriticalServices,
		org.OnboardingComplete,
	)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("organization")
	}

	return nil
}

// Delete removes an organization. Classification, answers and evidence rows
// are removed by the cascading foreign keys.
func (r *OrganizationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("organization")
	}

	return nil
}
