package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nis2ready/nis2ready-backend/internal/classification/domain"
)

func TestValidateProfile_Valid(t *testing.T) {
	tables := testTables(t)

	err := ValidateProfile(domain.OrganizationProfile{
		Sector:          "Banking",
		Subsector:       "Credit institutions",
		Employees:       100,
		RevenueMillions: 30,
		Country:         "DE",
	}, tables)

	assert.Nil(t, err)
}

func TestValidateProfile_FieldErrors(t *testing.T) {
	tables := testTables(t)

	tests := []struct {
		name        string
		profile     domain.OrganizationProfile
		wantField   string
		wantMessage string
	}{
		{
			name:        "missing country",
			profile:     domain.OrganizationProfile{Sector: "Banking", Subsector: "Credit institutions"},
			wantField:   "country",
			wantMessage: "country selection is required",
		},
		{
			name: "unknown country",
			profile: domain.OrganizationProfile{
				Sector: "Banking", Subsector: "Credit institutions", Country: "US",
			},
			wantField:   "country",
			wantMessage: "selected country not yet supported",
		},
		{
			name:        "missing sector",
			profile:     domain.OrganizationProfile{Country: "DE"},
			wantField:   "sector",
			wantMessage: "sector selection is required",
		},
		{
			name:        "unknown sector",
			profile:     domain.OrganizationProfile{Sector: "Agriculture", Country: "DE"},
			wantField:   "sector",
			wantMessage: "selected sector is not recognized in NIS2",
		},
		{
			name:        "missing subsector",
			profile:     domain.OrganizationProfile{Sector: "Energy", Country: "DE"},
			wantField:   "subsector",
			wantMessage: "subsector selection is required",
		},
		{
			name: "subsector from another sector",
			profile: domain.OrganizationProfile{
				Sector: "Energy", Subsector: "Rail", Country: "DE",
			},
			wantField:   "subsector",
			wantMessage: "selected subsector does not belong to the sector",
		},
		{
			name: "negative employees",
			profile: domain.OrganizationProfile{
				Sector: "Banking", Subsector: "Credit institutions", Country: "DE", Employees: -1,
			},
			wantField:   "employees",
			wantMessage: "valid number of employees required",
		},
		{
			name: "negative revenue",
			profile: domain.OrganizationProfile{
				Sector: "Banking", Subsector: "Credit institutions", Country: "DE", RevenueMillions: -0.5,
			},
			wantField:   "revenue_millions",
			wantMessage: "valid annual revenue required",
		},
		{
			name: "public administration without population",
			profile: domain.OrganizationProfile{
				Sector: "Public Administration", Subsector: "Government entities", Country: "DE",
			},
			wantField:   "population_served_percent",
			wantMessage: "population served percentage required",
		},
		{
			name: "population out of range",
			profile: domain.OrganizationProfile{
				Sector: "Public Administration", Subsector: "Government entities", Country: "DE",
				PopulationServedPercent: floatPtr(120),
			},
			wantField:   "population_served_percent",
			wantMessage: "population served must be between 0 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateProfile(tt.profile, tables)
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantMessage, verr.Details()[tt.wantField])
		})
	}
}

func TestValidateProfile_CollectsAllErrors(t *testing.T) {
	tables := testTables(t)

	verr := ValidateProfile(domain.OrganizationProfile{
		Employees:       -1,
		RevenueMillions: -1,
	}, tables)

	require.NotNil(t, verr)
	details := verr.Details()
	assert.Len(t, details, 4)
	assert.Contains(t, details, "country")
	assert.Contains(t, details, "sector")
	assert.Contains(t, details, "employees")
	assert.Contains(t, details, "revenue_millions")
}
