package domain

import "time"

// EntityType is the NIS2 regulatory tier assigned to an organization.
type EntityType string

const (
	EntityEssential  EntityType = "essential"
	EntityImportant  EntityType = "important"
	EntityExcluded   EntityType = "excluded"
	EntityNotCovered EntityType = "not-covered"
)

// Valid reports whether the entity type is one of the four known values.
func (t EntityType) Valid() bool {
	switch t {
	case EntityEssential, EntityImportant, EntityExcluded, EntityNotCovered:
		return true
	}
	return false
}

// SizeCategory is the EU enterprise size band derived from headcount and revenue.
type SizeCategory string

const (
	SizeMicro  SizeCategory = "micro"
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
)

// OrganizationProfile is the classification input. It is immutable per call;
// the profile store owns its lifecycle.
type OrganizationProfile struct {
	Sector          string  `json:"sector"`
	Subsector       string  `json:"subsector,omitempty"`
	Employees       int     `json:"employees"`
	RevenueMillions float64 `json:"revenue_millions"`
	Country         string  `json:"country"`
	CrossBorder     bool    `json:"cross_border"`
	CriticalService bool    `json:"critical_services"`

	// PopulationServedPercent is required only for Public Administration.
	// A nil value means not provided, which is distinct from 0.
	PopulationServedPercent *float64 `json:"population_served_percent,omitempty"`
}

// Requirements describes the obligations attached to a regulated entity type.
// The zero value means no obligations apply (excluded / not-covered).
type Requirements struct {
	RiskManagement    string   `json:"risk_management,omitempty"`
	IncidentReporting string   `json:"incident_reporting,omitempty"`
	AuditFrequency    string   `json:"audit_frequency,omitempty"`
	PenaltyCeiling    string   `json:"penalty_ceiling,omitempty"`
	CountrySpecific   []string `json:"country_specific,omitempty"`
}

// ClassificationResult is the verdict of the classification engine.
type ClassificationResult struct {
	EntityType   EntityType   `json:"entity_type"`
	Reason       string       `json:"reason"`
	RuleName     string       `json:"rule_name"`
	SizeCategory SizeCategory `json:"size_category"`
	Requirements Requirements `json:"requirements"`
	ClassifiedAt time.Time    `json:"classified_at,omitempty"`
}

// FieldError is a structured per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field errors. It crosses the engine boundary as
// a value, never as a panic.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid profile"
	}
	msg := "invalid profile: " + e.Fields[0].Field + " " + e.Fields[0].Message
	if len(e.Fields) > 1 {
		msg += " (and more)"
	}
	return msg
}

// Details converts the field errors to the map form used by the error envelope.
func (e *ValidationError) Details() map[string]string {
	details := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		details[f.Field] = f.Message
	}
	return details
}

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field failed validation.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
