package service

import (
	"context"

	classservice "github.com/nis2ready/nis2ready-backend/internal/classification/service"
	"github.com/nis2ready/nis2ready-backend/internal/organization/domain"
	"github.com/nis2ready/nis2ready-backend/internal/organization/events"
	"github.com/nis2ready/nis2ready-backend/internal/organization/repository"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
)

// OrganizationService handles organization business logic. Every profile
// mutation re-runs classification; the engine is cheap enough to call on
// each change.
type OrganizationService struct {
	repo           *repository.OrganizationRepository
	classification *classservice.ClassificationService
	publisher      *events.OrganizationEventPublisher
	logger         *logger.Logger
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	repo *repository.OrganizationRepository,
	classification *classservice.ClassificationService,
	publisher *events.OrganizationEventPublisher,
	log *logger.Logger,
) *OrganizationService {
	return &OrganizationService{
		repo:           repo,
		classification: classification,
		publisher:      publisher,
		logger:         log,
	}
}

// CreateOrganizationRequest represents a create organization request
type CreateOrganizationRequest struct {
	Name             string   `json:"name" validate:"required,min=2,max=255"`
	Sector           string   `json:"sector" validate:"required"`
	Subsector        *string  `json:"subsector"`
	Country          string   `json:"country" validate:"required,len=2"`
	Employees        int      `json:"employees" validate:"gte=0"`
	RevenueMillions  float64  `json:"revenue_millions" validate:"gte=0"`
	PopulationServed *float64 `json:"population_served_percent" validate:"omitempty,gte=0,lte=100"`
	CrossBorder      bool     `json:"cross_border"`
	CriticalServices bool     `json:"critical_services"`
}

// UpdateOrganizationRequest represents a partial profile update
type UpdateOrganizationRequest struct {
	Name               *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Sector             *string  `json:"sector"`
	Subsector          *string  `json:"subsector"`
	Country            *string  `json:"country" validate:"omitempty,len=2"`
	Employees          *int     `json:"employees" validate:"omitempty,gte=0"`
	RevenueMillions    *float64 `json:"revenue_millions" validate:"omitempty,gte=0"`
	PopulationServed   *float64 `json:"population_served_percent" validate:"omitempty,gte=0,lte=100"`
	CrossBorder        *bool    `json:"cross_border"`
	CriticalServices   *bool    `json:"critical_services"`
	OnboardingComplete *bool    `json:"onboarding_complete"`
}

// Create registers an organization and classifies it when the profile is
// already complete.
func (s *OrganizationService) Create(ctx context.Context, req *CreateOrganizationRequest) (*domain.Organization, error) {
	existing, _ := s.repo.GetByName(ctx, req.Name)
	if existing != nil {
		return nil, errors.Conflict("an organization with this name already exists")
	}

	org := &domain.Organization{
		Name:             req.Name,
		Sector:           req.Sector,
		Subsector:        req.Subsector,
		Country:          req.Country,
		Employees:        req.Employees,
		RevenueMillions:  req.RevenueMillions,
		PopulationServed: req.PopulationServed,
		CrossBorder:      req.CrossBorder,
		CriticalServices: req.CriticalServices,
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}

	s.publisher.PublishOrganizationCreated(ctx, org)
	s.reclassify(ctx, org)

	return org, nil
}

// GetByID gets an organization by ID
func (s *OrganizationService) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	return s.repo.GetByID(ctx, id)
}

// List lists organizations with pagination
func (s *OrganizationService) List(ctx context.Context, page, perPage int) ([]*domain.Organization, int64, error) {
	return s.repo.List(ctx, page, perPage)
}

// Update applies a partial profile update and re-runs classification.
func (s *OrganizationService) Update(ctx context.Context, id string, req *UpdateOrganizationRequest) (*domain.Organization, error) {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]any)

	if req.Name != nil && *req.Name != org.Name {
		existing, _ := s.repo.GetByName(ctx, *req.Name)
		if existing != nil && existing.ID != id {
			return nil, errors.Conflict("an organization with this name already exists")
		}
		changes["name"] = map[string]string{"from": org.Name, "to": *req.Name}
		org.Name = *req.Name
	}
	if req.Sector != nil && *req.Sector != org.Sector {
		changes["sector"] = map[string]string{"from": org.Sector, "to": *req.Sector}
		org.Sector = *req.Sector
	}
	if req.Subsector != nil {
		changes["subsector"] = *req.Subsector
		org.Subsector = req.Subsector
	}
	if req.Country != nil && *req.Country != org.Country {
		changes["country"] = map[string]string{"from": org.Country, "to": *req.Country}
		org.Country = *req.Country
	}
	if req.Employees != nil && *req.Employees != org.Employees {
		changes["employees"] = *req.Employees
		org.Employees = *req.Employees
	}
	if req.RevenueMillions != nil && *req.RevenueMillions != org.RevenueMillions {
		changes["revenue_millions"] = *req.RevenueMillions
		org.RevenueMillions = *req.RevenueMillions
	}
	if req.PopulationServed != nil {
		changes["population_served_percent"] = *req.PopulationServed
		org.PopulationServed = req.PopulationServed
	}
	if req.CrossBorder != nil && *req.CrossBorder != org.CrossBorder {
		changes["cross_border"] = *req.CrossBorder
		org.CrossBorder = *req.CrossBorder
	}
	if req.CriticalServices != nil && *req.CriticalServices != org.CriticalServices {
		changes["critical_services"] = *req.CriticalServices
		org.CriticalServices = *req.CriticalServices
	}
	if req.OnboardingComplete != nil && *req.OnboardingComplete != org.OnboardingComplete {
		changes["onboarding_complete"] = *req.OnboardingComplete
		org.OnboardingComplete = *req.OnboardingComplete
	}

	if len(changes) == 0 {
		return org, nil
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}

	s.publisher.PublishProfileUpdated(ctx, org.ID, changes)
	s.reclassify(ctx, org)

	return org, nil
}

// Delete removes an organization and its dependent records
func (s *OrganizationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publisher.PublishOrganizationDeleted(ctx, id)

	return nil
}

// reclassify re-runs classification after a profile change. An incomplete
// profile is not an error here; the stale verdict is dropped instead so a
// later read never reports a classification the current profile no longer
// supports.
func (s *OrganizationService) reclassify(ctx context.Context, org *domain.Organization) {
	if _, err := s.classification.ClassifyOrganization(ctx, org); err != nil {
		if errors.Is(err, errors.ErrValidation) {
			s.logger.Info().
				Str("organization_id", org.ID).
				Msg("profile incomplete, classification deferred")
			if err := s.classification.Invalidate(ctx, org.ID); err != nil {
				s.logger.Error().Err(err).Str("organization_id", org.ID).Msg("failed to drop stale classification")
			}
			return
		}
		s.logger.Error().Err(err).Str("organization_id", org.ID).Msg("failed to classify organization")
	}
}
