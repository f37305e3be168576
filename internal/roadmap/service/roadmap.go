package service

import (
	"context"
	"time"

	"github.com/nis2ready/nis2ready-backend/internal/roadmap/domain"
	"github.com/nis2ready/nis2ready-backend/internal/roadmap/events"
	"github.com/nis2ready/nis2ready-backend/internal/roadmap/repository"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
	"github.com/nis2ready/nis2ready-backend/pkg/logger"
	"github.com/nis2ready/nis2ready-backend/pkg/messaging"
)

// RoadmapService handles roadmap item management and reconciliation
type RoadmapService struct {
	repo      *repository.RoadmapRepository
	publisher *events.RoadmapEventPublisher
	logger    *logger.Logger
}

// NewRoadmapService creates a new roadmap service
func NewRoadmapService(repo *repository.RoadmapRepository, publisher *events.RoadmapEventPublisher, log *logger.Logger) *RoadmapService {
	return &RoadmapService{
		repo:      repo,
		publisher: publisher,
		logger:    log,
	}
}

// ReconcilePlan is the computed diff between the stored generated items and
// the latest recommendation list.
type ReconcilePlan struct {
	Create    []domain.RoadmapItem
	Update    []domain.RoadmapItem
	Close     []domain.RoadmapItem
	Preserved int
}

// PlanReconciliation diffs existing generated items against the latest
// recommendations. Matching items are refreshed in place and keep their
// status. Unmatched pending items are superseded and closed; items the user
// already moved past pending are preserved even when the recommendation that
// spawned them is gone. Manual items are not part of the plan at all.
func PlanReconciliation(organizationID string, existing []domain.RoadmapItem, recommendations []messaging.RecommendationPayload) ReconcilePlan {
	byKey := make(map[string]*domain.RoadmapItem, len(existing))
	for i := range existing {
		byKey[existing[i].Key()] = &existing[i]
	}

	plan := ReconcilePlan{}
	matched := make(map[string]bool, len(recommendations))

	for _, rec := range recommendations {
		key := rec.ControlRef
		if key == "" {
			key = rec.Title
		}
		if matched[key] {
			continue
		}
		matched[key] = true

		if item, ok := byKey[key]; ok {
			updated := *item
			updated.Title = rec.Title
			updated.Description = rec.Description
			updated.Priority = rec.Priority
			updated.Effort = rec.Effort
			updated.Timeline = rec.Timeline
			updated.Category = rec.Category
			plan.Update = append(plan.Update, updated)
			plan.Preserved++
			continue
		}

		item := domain.RoadmapItem{
			OrganizationID: organizationID,
			Title:          rec.Title,
			Description:    rec.Description,
			Priority:       rec.Priority,
			Effort:         rec.Effort,
			Timeline:       rec.Timeline,
			Category:       rec.Category,
			Status:         domain.StatusPending,
			Source:         domain.SourceGenerated,
		}
		if rec.ControlRef != "" {
			ref := rec.ControlRef
			item.ControlRef = &ref
		}
		plan.Create = append(plan.Create, item)
	}

	for i := range existing {
		item := &existing[i]
		if matched[item.Key()] {
			continue
		}
		if item.Status == domain.StatusPending {
			plan.Close = append(plan.Close, *item)
			continue
		}
		plan.Preserved++
	}

	return plan
}

// Reconcile applies the latest recommendation list to the stored roadmap
func (s *RoadmapService) Reconcile(ctx context.Context, organizationID string, recommendations []messaging.RecommendationPayload) error {
	existing, err := s.repo.ListGenerated(ctx, organizationID)
	if err != nil {
		return err
	}

	plan := PlanReconciliation(organizationID, existing, recommendations)

	for i := range plan.Create {
		item := &plan.Create[i]
		if err := s.repo.Create(ctx, item); err != nil {
			return err
		}
		s.publisher.PublishItemCreated(ctx, item)
	}

	for i := range plan.Update {
		if err := s.repo.Update(ctx, &plan.Update[i]); err != nil {
			return err
		}
	}

	for i := range plan.Close {
		if err := s.repo.Delete(ctx, plan.Close[i].ID); err != nil {
			return err
		}
	}

	s.logger.Info().
		Str("organization_id", organizationID).
		Int("created", len(plan.Create)).
		Int("closed", len(plan.Close)).
		Int("preserved", plan.Preserved).
		Msg("roadmap reconciled")

	s.publisher.PublishRoadmapRegenerated(ctx, organizationID, len(plan.Create), len(plan.Close), plan.Preserved)

	return nil
}

// CreateItemRequest represents a manually added roadmap item
type CreateItemRequest struct {
	Title       string     `json:"title" validate:"required,min=2,max=255"`
	Description string     `json:"description" validate:"max=2000"`
	Priority    string     `json:"priority" validate:"required,oneof=Critical High Medium Low"`
	Effort      string     `json:"effort" validate:"max=50"`
	Timeline    string     `json:"timeline" validate:"max=50"`
	Category    string     `json:"category" validate:"max=100"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateItem adds a manual roadmap item. Manual items are never touched by
// reconciliation.
func (s *RoadmapService) CreateItem(ctx context.Context, organizationID string, req *CreateItemRequest) (*domain.RoadmapItem, error) {
	item := &domain.RoadmapItem{
		OrganizationID: organizationID,
		Title:          req.Title,
		Description:    req.Description,
		Priority:       req.Priority,
		Effort:         req.Effort,
		Timeline:       req.Timeline,
		Category:       req.Category,
		Status:         domain.StatusPending,
		Source:         domain.SourceManual,
		DueDate:        req.DueDate,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().Str("item_id", item.ID).Str("organization_id", organizationID).Msg("roadmap item created")

	s.publisher.PublishItemCreated(ctx, item)

	return item, nil
}

// UpdateStatusRequest represents a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed overdue"`
}

// UpdateStatus transitions a roadmap item to a new status
func (s *RoadmapService) UpdateStatus(ctx context.Context, itemID string, req *UpdateStatusRequest) (*domain.RoadmapItem, error) {
	status := domain.Status(req.Status)
	if !domain.ValidStatus(status) {
		return nil, errors.BadRequest("unknown status " + req.Status)
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.Status == status {
		return item, nil
	}

	oldStatus := item.Status
	if err := s.repo.UpdateStatus(ctx, itemID, status); err != nil {
		return nil, err
	}
	item.Status = status

	s.logger.Info().
		Str("item_id", itemID).
		Str("old_status", string(oldStatus)).
		Str("new_status", string(status)).
		Msg("roadmap item status changed")

	s.publisher.PublishItemStatusChanged(ctx, item, oldStatus)

	return item, nil
}

// List returns an organization's roadmap items, optionally filtered
func (s *RoadmapService) List(ctx context.Context, organizationID string, filter repository.ListFilter) ([]domain.RoadmapItem, error) {
	if filter.Status != "" && !domain.ValidStatus(filter.Status) {
		return nil, errors.BadRequest("unknown status " + string(filter.Status))
	}
	return s.repo.ListByOrganization(ctx, organizationID, filter)
}

// Get retrieves a roadmap item by ID
func (s *RoadmapService) Get(ctx context.Context, itemID string) (*domain.RoadmapItem, error) {
	return s.repo.GetByID(ctx, itemID)
}

// DeleteItem removes a roadmap item
func (s *RoadmapService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.repo.Delete(ctx, itemID); err != nil {
		return err
	}

	s.logger.Info().Str("item_id", itemID).Msg("roadmap item deleted")

	return nil
}
