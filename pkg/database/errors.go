package database

import (
	"strings"

	"github.com/lib/pq"
	"github.com/nis2ready/nis2ready-backend/pkg/errors"
)

// MapPQError converts a PostgreSQL error to an AppError with meaningful messages.
// Returns nil if the error is not a pq.Error.
func MapPQError(err error) *errors.AppError {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return nil
	}

	switch pqErr.Code {
	// Check constraint violation (23514)
	case "23514":
		return mapCheckConstraint(pqErr)

	// Unique constraint violation (23505)
	case "23505":
		return errors.Conflict(formatConstraintMessage(pqErr))

	// Foreign key violation (23503)
	case "23503":
		return errors.BadRequest("referenced record does not exist")

	// Not null violation (23502)
	case "23502":
		col := pqErr.Column
		if col == "" {
			col = "required field"
		}
		return errors.Validation(map[string]string{
			col: "must not be empty",
		})

	default:
		return nil
	}
}

// mapCheckConstraint maps specific CHECK constraint names to user-friendly messages.
func mapCheckConstraint(pqErr *pq.Error) *errors.AppError {
	constraint := pqErr.Constraint

	switch {
	case strings.Contains(constraint, "maturity_score_range"):
		return errors.Validation(map[string]string{
			"maturity_score": "must be between 0 and 100",
		})

	case strings.Contains(constraint, "entity_type_valid"):
		return errors.Validation(map[string]string{
			"entity_type": "must be one of: essential, important, excluded, not-covered",
		})

	case strings.Contains(constraint, "item_status_valid"):
		return errors.Validation(map[string]string{
			"status": "must be one of: pending, in_progress, completed, overdue",
		})

	case strings.Contains(constraint, "country_code_valid"):
		return errors.Validation(map[string]string{
			"country": "must be a two-letter EU member state code",
		})

	default:
		return errors.BadRequest("data validation failed: " + constraint)
	}
}

// formatConstraintMessage creates a user-friendly message for unique constraint violations.
func formatConstraintMessage(pqErr *pq.Error) string {
	constraint := pqErr.Constraint

	switch {
	case strings.Contains(constraint, "organization_question"):
		return "an answer for this question already exists for the organization"
	case strings.Contains(constraint, "organization_name"):
		return "an organization with this name already exists"
	case strings.Contains(constraint, "organization_control"):
		return "a roadmap item for this control already exists for the organization"
	default:
		return "a record with these values already exists"
	}
}
