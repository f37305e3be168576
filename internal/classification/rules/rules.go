// Package rules holds the hand-authored NIS2 sector and country rule tables.
// The tables are versioned constant data: loaded once at startup, validated
// once, and passed into the classification engine as immutable parameters.
package rules

import (
	"fmt"

	"github.com/nis2ready/nis2ready-backend/internal/classification/domain"
)

// Tier is the regulatory tier a sector belongs to.
type Tier string

const (
	TierEssential Tier = "essential"
	TierImportant Tier = "important"
)

// Sector is one row of the NIS2 sector table.
type Sector struct {
	Name       string
	Tier       Tier
	Subsectors []string

	// SizeExempt removes the micro/small carve-out: entities in this sector
	// stay in scope regardless of size.
	SizeExempt bool

	// MandatoryInclusion forces essential classification regardless of size
	// or any other profile flag except Public Administration.
	MandatoryInclusion bool

	CrossBorder            bool
	CriticalInfrastructure bool
}

// SectorTable indexes sectors by name.
type SectorTable struct {
	sectors []Sector
	byName  map[string]*Sector
}

// NewSectorTable builds an indexed table from sector rows.
func NewSectorTable(sectors []Sector) *SectorTable {
	t := &SectorTable{
		sectors: sectors,
		byName:  make(map[string]*Sector, len(sectors)),
	}
	for i := range t.sectors {
		t.byName[t.sectors[i].Name] = &t.sectors[i]
	}
	return t
}

// Lookup returns the sector row by name.
func (t *SectorTable) Lookup(name string) (*Sector, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// All returns the sector rows in definition order.
func (t *SectorTable) All() []Sector {
	return t.sectors
}

// SizeOverride replaces individual size-band thresholds for a country.
// Nil fields keep the directive default.
type SizeOverride struct {
	MaxEmployees       *int
	MaxRevenueMillions *float64
}

// CountryRule captures one member state's transposition of the directive.
type CountryRule struct {
	Code                string
	TranspositionStatus string

	// SizeOverrides adjusts the micro/small/medium thresholds (DE raises the
	// micro revenue ceiling to 2.5M).
	SizeOverrides map[domain.SizeCategory]SizeOverride

	// MandatorySectors are additional sectors the country forces into the
	// essential tier.
	MandatorySectors []string

	// SizeExemptSectors are additional sectors the country exempts from the
	// micro/small carve-out.
	SizeExemptSectors []string

	SpecificRequirements []string
}

// CountryRuleTable indexes country rules by ISO-3166 alpha-2 code.
type CountryRuleTable struct {
	rules map[string]CountryRule
}

// NewCountryRuleTable builds an indexed table from country rules.
func NewCountryRuleTable(countryRules []CountryRule) *CountryRuleTable {
	t := &CountryRuleTable{rules: make(map[string]CountryRule, len(countryRules))}
	for _, r := range countryRules {
		t.rules[r.Code] = r
	}
	return t
}

// Lookup returns the rule for a country code.
func (t *CountryRuleTable) Lookup(code string) (CountryRule, bool) {
	r, ok := t.rules[code]
	return r, ok
}

// Codes returns all known country codes.
func (t *CountryRuleTable) Codes() []string {
	codes := make([]string, 0, len(t.rules))
	for code := range t.rules {
		codes = append(codes, code)
	}
	return codes
}

// Tables bundles the two rule tables for injection into the engine.
type Tables struct {
	Sectors   *SectorTable
	Countries *CountryRuleTable
}

// Load returns the built-in rule tables.
func Load() *Tables {
	return &Tables{
		Sectors:   NewSectorTable(nis2Sectors),
		Countries: NewCountryRuleTable(euCountryRules),
	}
}

// Validate checks the tables for internal consistency. An inconsistent table
// is a fatal startup error, not a per-call concern.
func (t *Tables) Validate() error {
	if t.Sectors == nil || t.Countries == nil {
		return fmt.Errorf("rule tables incomplete")
	}

	seen := make(map[string]bool)
	for _, s := range t.Sectors.All() {
		if s.Name == "" {
			return fmt.Errorf("sector with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate sector %q", s.Name)
		}
		seen[s.Name] = true
		if s.Tier != TierEssential && s.Tier != TierImportant {
			return fmt.Errorf("sector %q has unknown tier %q", s.Name, s.Tier)
		}
	}

	for _, code := range t.Countries.Codes() {
		rule, _ := t.Countries.Lookup(code)
		if len(code) != 2 {
			return fmt.Errorf("country code %q is not ISO-3166 alpha-2", code)
		}
		for _, name := range rule.MandatorySectors {
			if _, ok := t.Sectors.Lookup(name); !ok {
				return fmt.Errorf("country %s mandatory sector %q not in sector table", code, name)
			}
		}
		for _, name := range rule.SizeExemptSectors {
			if err := t.validateExemptSector(code, name); err != nil {
				return err
			}
		}
		for size := range rule.SizeOverrides {
			switch size {
			case domain.SizeMicro, domain.SizeSmall, domain.SizeMedium:
			default:
				return fmt.Errorf("country %s overrides unknown size band %q", code, size)
			}
		}
	}

	return nil
}

// validateExemptSector accepts sector names and subsector names: DE exempts
// "Healthcare providers", which is a subsector of Health.
func (t *Tables) validateExemptSector(code, name string) error {
	if _, ok := t.Sectors.Lookup(name); ok {
		return nil
	}
	for _, s := range t.Sectors.All() {
		for _, sub := range s.Subsectors {
			if sub == name {
				return nil
			}
		}
	}
	return fmt.Errorf("country %s size-exempt sector %q not in sector table", code, name)
}
