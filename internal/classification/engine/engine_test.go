package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nis2ready/nis2ready-backend/internal/classification/domain"
	"github.com/nis2ready/nis2ready-backend/internal/classification/rules"
)

func floatPtr(f float64) *float64 { return &f }

func testTables(t *testing.T) *rules.Tables {
	t.Helper()
	tables := rules.Load()
	require.NoError(t, tables.Validate())
	return tables
}

func TestDetermineSize(t *testing.T) {
	tables := testTables(t)
	at, ok := tables.Countries.Lookup("AT")
	require.True(t, ok)

	tests := []struct {
		name      string
		employees int
		revenue   float64
		want      domain.SizeCategory
	}{
		{"micro when both under thresholds", 5, 1, domain.SizeMicro},
		{"micro boundary revenue inclusive", 9, 2, domain.SizeMicro},
		{"small when employees exceed micro", 10, 1, domain.SizeSmall},
		{"small when revenue exceeds micro", 5, 2.5, domain.SizeSmall},
		{"medium when revenue exceeds small", 40, 30, domain.SizeMedium},
		{"large at employee boundary", 250, 5, domain.SizeLarge},
		{"large when revenue alone exceeds all bands", 5, 100, domain.SizeLarge},
		{"large when both exceed", 1000, 500, domain.SizeLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineSize(tt.employees, tt.revenue, at)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetermineSize_CountryOverride(t *testing.T) {
	tables := testTables(t)
	de, ok := tables.Countries.Lookup("DE")
	require.True(t, ok)
	at, ok := tables.Countries.Lookup("AT")
	require.True(t, ok)

	// DE raises the micro revenue ceiling to 2.5M
	assert.Equal(t, domain.SizeMicro, DetermineSize(5, 2.3, de))
	assert.Equal(t, domain.SizeSmall, DetermineSize(5, 2.3, at))
}

func TestDetermineSize_OverrideDoesNotLeakIntoDefaults(t *testing.T) {
	tables := testTables(t)
	de, ok := tables.Countries.Lookup("DE")
	require.True(t, ok)
	at, ok := tables.Countries.Lookup("AT")
	require.True(t, ok)

	// Applying the DE override must leave the shared default bands intact
	// for subsequent calls without overrides.
	assert.Equal(t, domain.SizeMicro, DetermineSize(5, 2.3, de))
	assert.Equal(t, domain.SizeSmall, DetermineSize(5, 2.3, at))
	assert.Equal(t, domain.SizeMicro, DetermineSize(5, 2, at))
	assert.Equal(t, sizeThreshold{maxEmployees: 10, maxRevenueMillions: 2}, defaultSizeBands[domain.SizeMicro])
}

func TestClassify_PublicAdministration(t *testing.T) {
	tables := testTables(t)

	tests := []struct {
		name       string
		employees  int
		population *float64
		want       domain.EntityType
	}{
		{"large administration is essential", 60, floatPtr(1), domain.EntityEssential},
		{"population threshold alone triggers essential", 10, floatPtr(6), domain.EntityEssential},
		{"population boundary is inclusive", 10, floatPtr(5), domain.EntityEssential},
		{"employee boundary is inclusive", 50, floatPtr(0), domain.EntityEssential},
		{"below both thresholds is excluded", 10, floatPtr(1), domain.EntityExcluded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(domain.OrganizationProfile{
				Sector:                  "Public Administration",
				Subsector:               "Government entities",
				Employees:               tt.employees,
				RevenueMillions:         5,
				Country:                 "AT",
				PopulationServedPercent: tt.population,
			}, tables)

			assert.Equal(t, tt.want, result.EntityType)
			assert.Equal(t, "public-administration", result.RuleName)
		})
	}
}

func TestClassify_PublicAdministrationIgnoresOtherFlags(t *testing.T) {
	tables := testTables(t)

	// Cross-border and critical-services flags never override the public
	// administration branch.
	result := Classify(domain.OrganizationProfile{
		Sector:                  "Public Administration",
		Subsector:               "Government entities",
		Employees:               10,
		RevenueMillions:         5,
		Country:                 "AT",
		CrossBorder:             true,
		CriticalService:         true,
		PopulationServedPercent: floatPtr(1),
	}, tables)

	assert.Equal(t, domain.EntityExcluded, result.EntityType)
	assert.Equal(t, "public-administration", result.RuleName)
}

func TestClassify_MicroBankIsExcluded(t *testing.T) {
	tables := testTables(t)

	result := Classify(domain.OrganizationProfile{
		Sector:          "Banking",
		Subsector:       "Credit institutions",
		Employees:       5,
		RevenueMillions: 1,
		Country:         "AT",
	}, tables)

	assert.Equal(t, domain.EntityExcluded, result.EntityType)
	assert.Equal(t, "Micro/small enterprise in essential sector", result.Reason)
	assert.Equal(t, domain.SizeMicro, result.SizeCategory)
	assert.Empty(t, result.Requirements.IncidentReporting)
}

func TestClassify_MandatoryInclusionIgnoresSize(t *testing.T) {
	tables := testTables(t)

	for _, sector := range []string{
		"Trust service providers",
		"Top-level domain name registries",
		"DNS service providers",
	} {
		t.Run(sector, func(t *testing.T) {
			result := Classify(domain.OrganizationProfile{
				Sector:          sector,
				Employees:       3,
				RevenueMillions: 0.5,
				Country:         "AT",
			}, tables)

			assert.Equal(t, domain.EntityEssential, result.EntityType)
			assert.Equal(t, "mandatory-inclusion", result.RuleName)
			assert.Equal(t, "Mandatory inclusion based on sector", result.Reason)
		})
	}
}

func TestClassify_CountryMandatorySector(t *testing.T) {
	tables := testTables(t)

	// France forces Space into the essential tier regardless of size.
	fr := Classify(domain.OrganizationProfile{
		Sector:          "Space",
		Subsector:       "Space-based infrastructure operators",
		Employees:       5,
		RevenueMillions: 1,
		Country:         "FR",
	}, tables)
	assert.Equal(t, domain.EntityEssential, fr.EntityType)
	assert.Equal(t, "mandatory-inclusion", fr.RuleName)

	// Elsewhere the micro carve-out still applies.
	at := Classify(domain.OrganizationProfile{
		Sector:          "Space",
		Subsector:       "Space-based infrastructure operators",
		Employees:       5,
		RevenueMillions: 1,
		Country:         "AT",
	}, tables)
	assert.Equal(t, domain.EntityExcluded, at.EntityType)
}

func TestClassify_CrossBorderSizeGate(t *testing.T) {
	tables := testTables(t)

	// Medium cross-border provider in an important sector escalates.
	medium := Classify(domain.OrganizationProfile{
		Sector:          "Postal services",
		Subsector:       "Courier services",
		Employees:       100,
		RevenueMillions: 20,
		Country:         "AT",
		CrossBorder:     true,
	}, tables)
	assert.Equal(t, domain.EntityEssential, medium.EntityType)
	assert.Equal(t, "cross-border", medium.RuleName)
	assert.Equal(t, "Cross-border service provider", medium.Reason)

	// Micro cross-border provider without a size exemption does not.
	micro := Classify(domain.OrganizationProfile{
		Sector:          "Postal services",
		Subsector:       "Courier services",
		Employees:       3,
		RevenueMillions: 0.5,
		Country:         "AT",
		CrossBorder:     true,
	}, tables)
	assert.Equal(t, domain.EntityExcluded, micro.EntityType)
	assert.Equal(t, "sector-tier", micro.RuleName)
}

func TestClassify_CriticalServicesSizeGate(t *testing.T) {
	tables := testTables(t)

	result := Classify(domain.OrganizationProfile{
		Sector:          "Food",
		Subsector:       "Food producers",
		Employees:       300,
		RevenueMillions: 80,
		Country:         "AT",
		CriticalService: true,
	}, tables)

	assert.Equal(t, domain.EntityEssential, result.EntityType)
	assert.Equal(t, "critical-services", result.RuleName)
	assert.Equal(t, "Critical service provider", result.Reason)
}

func TestClassify_SectorTiers(t *testing.T) {
	tables := testTables(t)

	tests := []struct {
		name       string
		sector     string
		subsector  string
		employees  int
		revenue    float64
		wantType   domain.EntityType
		wantReason string
	}{
		{
			name:       "large energy operator is essential",
			sector:     "Energy",
			subsector:  "Electricity",
			employees:  500,
			revenue:    200,
			wantType:   domain.EntityEssential,
			wantReason: "Essential sector: Energy",
		},
		{
			name:       "medium manufacturer is important",
			sector:     "Manufacturing",
			subsector:  "Electronics",
			employees:  100,
			revenue:    30,
			wantType:   domain.EntityImportant,
			wantReason: "Important sector: Manufacturing",
		},
		{
			name:       "small manufacturer is excluded",
			sector:     "Manufacturing",
			subsector:  "Electronics",
			employees:  20,
			revenue:    5,
			wantType:   domain.EntityExcluded,
			wantReason: "Micro/small enterprise in important sector",
		},
		{
			name:       "unknown sector is not covered",
			sector:     "Agriculture",
			employees:  500,
			revenue:    200,
			wantType:   domain.EntityNotCovered,
			wantReason: "Sector not covered by NIS2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(domain.OrganizationProfile{
				Sector:          tt.sector,
				Subsector:       tt.subsector,
				Employees:       tt.employees,
				RevenueMillions: tt.revenue,
				Country:         "AT",
			}, tables)

			assert.Equal(t, tt.wantType, result.EntityType)
			assert.Equal(t, tt.wantReason, result.Reason)
		})
	}
}

func TestClassify_CountrySizeExemption(t *testing.T) {
	tables := testTables(t)

	profile := domain.OrganizationProfile{
		Sector:          "Health",
		Subsector:       "Healthcare providers",
		Employees:       20,
		RevenueMillions: 5,
	}

	// DE exempts healthcare providers from the small carve-out.
	profile.Country = "DE"
	de := Classify(profile, tables)
	assert.Equal(t, domain.EntityEssential, de.EntityType)

	profile.Country = "AT"
	at := Classify(profile, tables)
	assert.Equal(t, domain.EntityExcluded, at.EntityType)
}

func TestClassify_CountryNeutrality(t *testing.T) {
	tables := testTables(t)

	// AT and FI carry no overrides, so only the country code differs.
	profile := domain.OrganizationProfile{
		Sector:          "Banking",
		Subsector:       "Credit institutions",
		Employees:       300,
		RevenueMillions: 100,
	}

	profile.Country = "AT"
	at := Classify(profile, tables)
	profile.Country = "FI"
	fi := Classify(profile, tables)

	assert.Equal(t, at, fi)
}

func TestClassify_Idempotent(t *testing.T) {
	tables := testTables(t)

	profile := domain.OrganizationProfile{
		Sector:          "Transport",
		Subsector:       "Rail",
		Employees:       400,
		RevenueMillions: 90,
		Country:         "NL",
		CrossBorder:     true,
	}

	first := Classify(profile, tables)
	second := Classify(profile, tables)
	assert.Equal(t, first, second)
}

func TestClassify_SizeMonotonicity(t *testing.T) {
	tables := testTables(t)

	// Growing an essential-sector entity across size bands never moves it
	// from essential back to excluded.
	var wasEssential bool
	for _, employees := range []int{5, 20, 100, 500} {
		result := Classify(domain.OrganizationProfile{
			Sector:          "Banking",
			Subsector:       "Credit institutions",
			Employees:       employees,
			RevenueMillions: 1,
			Country:         "AT",
		}, tables)

		if wasEssential {
			assert.Equal(t, domain.EntityEssential, result.EntityType,
				"entity regressed to %s at %d employees", result.EntityType, employees)
		}
		if result.EntityType == domain.EntityEssential {
			wasEssential = true
		}
	}
	assert.True(t, wasEssential)
}

func TestClassify_Requirements(t *testing.T) {
	tables := testTables(t)

	essential := Classify(domain.OrganizationProfile{
		Sector:          "Energy",
		Subsector:       "Gas",
		Employees:       500,
		RevenueMillions: 200,
		Country:         "BE",
	}, tables)
	assert.Equal(t, "24-hour incident reporting", essential.Requirements.IncidentReporting)
	assert.Equal(t, "Annual external audit", essential.Requirements.AuditFrequency)
	assert.Equal(t, "Up to €10M or 2% of turnover", essential.Requirements.PenaltyCeiling)
	assert.Contains(t, essential.Requirements.CountrySpecific, "Cross-border notification")

	important := Classify(domain.OrganizationProfile{
		Sector:          "Food",
		Subsector:       "Food distributors",
		Employees:       100,
		RevenueMillions: 30,
		Country:         "AT",
	}, tables)
	assert.Equal(t, "72-hour incident reporting", important.Requirements.IncidentReporting)
	assert.Equal(t, "Bi-annual self-assessment", important.Requirements.AuditFrequency)
	assert.Equal(t, "Up to €7M or 1.4% of turnover", important.Requirements.PenaltyCeiling)
}
