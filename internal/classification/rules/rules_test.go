package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nis2ready/nis2ready-backend/internal/classification/domain"
)

func TestLoad_TablesAreConsistent(t *testing.T) {
	tables := Load()
	require.NoError(t, tables.Validate())

	assert.Len(t, tables.Countries.Codes(), 27)

	banking, ok := tables.Sectors.Lookup("Banking")
	require.True(t, ok)
	assert.Equal(t, TierEssential, banking.Tier)
	assert.False(t, banking.SizeExempt)

	trust, ok := tables.Sectors.Lookup("Trust service providers")
	require.True(t, ok)
	assert.True(t, trust.MandatoryInclusion)
	assert.True(t, trust.SizeExempt)

	de, ok := tables.Countries.Lookup("DE")
	require.True(t, ok)
	override := de.SizeOverrides[domain.SizeMicro]
	require.NotNil(t, override.MaxRevenueMillions)
	assert.Equal(t, 2.5, *override.MaxRevenueMillions)
	assert.Contains(t, de.SizeExemptSectors, "Healthcare providers")
}

func TestValidate_RejectsInconsistentTables(t *testing.T) {
	tests := []struct {
		name    string
		tables  *Tables
		wantErr string
	}{
		{
			name: "duplicate sector",
			tables: &Tables{
				Sectors: NewSectorTable([]Sector{
					{Name: "Energy", Tier: TierEssential},
					{Name: "Energy", Tier: TierImportant},
				}),
				Countries: NewCountryRuleTable(nil),
			},
			wantErr: "duplicate sector",
		},
		{
			name: "unknown tier",
			tables: &Tables{
				Sectors:   NewSectorTable([]Sector{{Name: "Energy", Tier: "critical"}}),
				Countries: NewCountryRuleTable(nil),
			},
			wantErr: "unknown tier",
		},
		{
			name: "mandatory sector missing from table",
			tables: &Tables{
				Sectors: NewSectorTable([]Sector{{Name: "Energy", Tier: TierEssential}}),
				Countries: NewCountryRuleTable([]CountryRule{
					{Code: "DE", MandatorySectors: []string{"Chemicals"}},
				}),
			},
			wantErr: "mandatory sector",
		},
		{
			name: "size-exempt sector missing from table",
			tables: &Tables{
				Sectors: NewSectorTable([]Sector{{Name: "Energy", Tier: TierEssential}}),
				Countries: NewCountryRuleTable([]CountryRule{
					{Code: "DE", SizeExemptSectors: []string{"Healthcare providers"}},
				}),
			},
			wantErr: "size-exempt sector",
		},
		{
			name: "override for unknown size band",
			tables: &Tables{
				Sectors: NewSectorTable([]Sector{{Name: "Energy", Tier: TierEssential}}),
				Countries: NewCountryRuleTable([]CountryRule{
					{Code: "DE", SizeOverrides: map[domain.SizeCategory]SizeOverride{
						"huge": {},
					}},
				}),
			},
			wantErr: "unknown size band",
		},
		{
			name: "malformed country code",
			tables: &Tables{
				Sectors:   NewSectorTable([]Sector{{Name: "Energy", Tier: TierEssential}}),
				Countries: NewCountryRuleTable([]CountryRule{{Code: "DEU"}}),
			},
			wantErr: "ISO-3166",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tables.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_AcceptsSubsectorExemption(t *testing.T) {
	tables := &Tables{
		Sectors: NewSectorTable([]Sector{
			{Name: "Health", Tier: TierEssential, Subsectors: []string{"Healthcare providers"}},
		}),
		Countries: NewCountryRuleTable([]CountryRule{
			{Code: "DE", SizeExemptSectors: []string{"Healthcare providers"}},
		}),
	}

	assert.NoError(t, tables.Validate())
}
