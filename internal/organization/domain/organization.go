package domain

import (
	"time"

	classification "github.com/nis2ready/nis2ready-backend/internal/classification/domain"
)

// Organization is a stored company profile. It carries everything the
// classification engine needs plus onboarding state.
type Organization struct {
	ID                 string     `db:"id" json:"id"`
	Name               string     `db:"name" json:"name"`
	Sector             string     `db:"sector" json:"sector"`
	Subsector          *string    `db:"subsector" json:"subsector,omitempty"`
	Country            string     `db:"country" json:"country"`
	Employees          int        `db:"employees" json:"employees"`
	RevenueMillions    float64    `db:"revenue_millions" json:"revenue_millions"`
	PopulationServed   *float64   `db:"population_served" json:"population_served_percent,omitempty"`
	CrossBorder        bool       `db:"cross_border" json:"cross_border"`
	CriticalServices   bool       `db:"critical_services" json:"critical_services"`
	OnboardingComplete bool       `db:"onboarding_complete" json:"onboarding_complete"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// Profile converts the stored record into a classification input.
func (o *Organization) Profile() classification.OrganizationProfile {
	subsector := ""
	if o.Subsector != nil {
		subsector = *o.Subsector
	}
	return classification.OrganizationProfile{
		Sector:                  o.Sector,
		Subsector:               subsector,
		Employees:               o.Employees,
		RevenueMillions:         o.RevenueMillions,
		Country:                 o.Country,
		CrossBorder:             o.CrossBorder,
		CriticalService:         o.CriticalServices,
		PopulationServedPercent: o.PopulationServed,
	}
}
