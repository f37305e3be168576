// Package engine implements NIS2 entity classification as a pure function
// over injected rule tables. Precedence is an explicit ordered list of named
// guard rules evaluated top to bottom; the first applicable rule wins.
package engine

import (
	"fmt"

	"github.com/nis2ready/nis2ready-backend/internal/classification/domain"
	"github.com/nis2ready/nis2ready-backend/internal/classification/rules"
)

// PublicAdministrationSector is the sector name that triggers the dedicated
// size/population branch.
const PublicAdministrationSector = "Public Administration"

// Public administration thresholds from Article 2(2)(f).
const (
	publicAdminEmployeeThreshold   = 50
	publicAdminPopulationThreshold = 5.0
)

type sizeThreshold struct {
	maxEmployees       int
	maxRevenueMillions float64
}

// defaultSizeBands holds the EU enterprise size thresholds from
// Recommendation 2003/361/EC. Never mutated; country overrides are applied
// to a per-call copy.
var defaultSizeBands = map[domain.SizeCategory]sizeThreshold{
	domain.SizeMicro:  {maxEmployees: 10, maxRevenueMillions: 2},
	domain.SizeSmall:  {maxEmployees: 50, maxRevenueMillions: 10},
	domain.SizeMedium: {maxEmployees: 250, maxRevenueMillions: 50},
}

// DetermineSize derives the EU enterprise size band. Both conditions must
// hold for the smaller band; failing either falls through to the next larger
// one. Country overrides replace individual thresholds.
func DetermineSize(employees int, revenueMillions float64, country rules.CountryRule) domain.SizeCategory {
	bands := defaultSizeBands
	if len(country.SizeOverrides) > 0 {
		bands = make(map[domain.SizeCategory]sizeThreshold, len(defaultSizeBands))
		for size, band := range defaultSizeBands {
			bands[size] = band
		}
		for size, override := range country.SizeOverrides {
			band, ok := bands[size]
			if !ok {
				continue
			}
			if override.MaxEmployees != nil {
				band.maxEmployees = *override.MaxEmployees
			}
			if override.MaxRevenueMillions != nil {
				band.maxRevenueMillions = *override.MaxRevenueMillions
			}
			bands[size] = band
		}
	}

	for _, size := range []domain.SizeCategory{domain.SizeMicro, domain.SizeSmall, domain.SizeMedium} {
		band := bands[size]
		if employees < band.maxEmployees && revenueMillions <= band.maxRevenueMillions {
			return size
		}
	}
	return domain.SizeLarge
}

// classifyInput is the resolved state a guard rule evaluates against.
type classifyInput struct {
	profile domain.OrganizationProfile
	sector  *rules.Sector // nil when the sector is not in the table
	country rules.CountryRule
	size    domain.SizeCategory
}

// guardRule is one named precedence step. Returns nil when not applicable.
type guardRule struct {
	name  string
	apply func(in classifyInput) *domain.ClassificationResult
}

// guardRules in precedence order. The final rule is total, so Classify
// always produces a verdict.
var guardRules = []guardRule{
	{name: "public-administration", apply: classifyPublicAdministration},
	{name: "mandatory-inclusion", apply: classifyMandatoryInclusion},
	{name: "cross-border", apply: classifyCrossBorder},
	{name: "critical-services", apply: classifyCriticalServices},
	{name: "sector-tier", apply: classifyBySectorTier},
}

// Classify maps an organization profile to its NIS2 entity type. Pure and
// deterministic; it never panics and yields exactly one verdict for any
// profile. Callers are expected to run ValidateProfile first so that unknown
// sectors or countries surface as field errors instead of a not-covered
// verdict.
func Classify(profile domain.OrganizationProfile, tables *rules.Tables) domain.ClassificationResult {
	country, _ := tables.Countries.Lookup(profile.Country)
	sector, _ := tables.Sectors.Lookup(profile.Sector)

	in := classifyInput{
		profile: profile,
		sector:  sector,
		country: country,
		size:    DetermineSize(profile.Employees, profile.RevenueMillions, country),
	}

	for _, rule := range guardRules {
		if result := rule.apply(in); result != nil {
			result.RuleName = rule.name
			result.SizeCategory = in.size
			return *result
		}
	}

	// Unreachable: the sector-tier rule is total.
	return domain.ClassificationResult{
		EntityType:   domain.EntityNotCovered,
		Reason:       "Sector not covered by NIS2",
		RuleName:     "sector-tier",
		SizeCategory: in.size,
	}
}

func classifyPublicAdministration(in classifyInput) *domain.ClassificationResult {
	if in.profile.Sector != PublicAdministrationSector {
		return nil
	}

	population := 0.0
	if in.profile.PopulationServedPercent != nil {
		population = *in.profile.PopulationServedPercent
	}

	if in.profile.Employees >= publicAdminEmployeeThreshold || population >= publicAdminPopulationThreshold {
		return &domain.ClassificationResult{
			EntityType:   domain.EntityEssential,
			Reason:       "Public administration meeting size/population criteria",
			Requirements: requirementsFor(rules.TierEssential, in.country),
		}
	}
	return &domain.ClassificationResult{
		EntityType: domain.EntityExcluded,
		Reason:     "Public administration below thresholds",
	}
}

func classifyMandatoryInclusion(in classifyInput) *domain.ClassificationResult {
	mandatory := in.sector != nil && in.sector.MandatoryInclusion
	for _, name := range in.country.MandatorySectors {
		if name == in.profile.Sector {
			mandatory = true
		}
	}
	if !mandatory {
		return nil
	}

	return &domain.ClassificationResult{
		EntityType:   domain.EntityEssential,
		Reason:       "Mandatory inclusion based on sector",
		Requirements: requirementsFor(rules.TierEssential, in.country),
	}
}

func classifyCrossBorder(in classifyInput) *domain.ClassificationResult {
	if !in.profile.CrossBorder || !passesSizeGate(in) {
		return nil
	}

	return &domain.ClassificationResult{
		EntityType:   domain.EntityEssential,
		Reason:       "Cross-border service provider",
		Requirements: requirementsFor(rules.TierEssential, in.country),
	}
}

func classifyCriticalServices(in classifyInput) *domain.ClassificationResult {
	if !in.profile.CriticalService || !passesSizeGate(in) {
		return nil
	}

	return &domain.ClassificationResult{
		EntityType:   domain.EntityEssential,
		Reason:       "Critical service provider",
		Requirements: requirementsFor(rules.TierEssential, in.country),
	}
}

func classifyBySectorTier(in classifyInput) *domain.ClassificationResult {
	if in.sector == nil {
		return &domain.ClassificationResult{
			EntityType: domain.EntityNotCovered,
			Reason:     "Sector not covered by NIS2",
		}
	}

	smallOrMicro := in.size == domain.SizeMicro || in.size == domain.SizeSmall

	switch in.sector.Tier {
	case rules.TierEssential:
		if smallOrMicro && !isSizeExempt(in) {
			return &domain.ClassificationResult{
				EntityType: domain.EntityExcluded,
				Reason:     "Micro/small enterprise in essential sector",
			}
		}
		return &domain.ClassificationResult{
			EntityType:   domain.EntityEssential,
			Reason:       fmt.Sprintf("Essential sector: %s", in.sector.Name),
			Requirements: requirementsFor(rules.TierEssential, in.country),
		}

	case rules.TierImportant:
		if smallOrMicro && !isSizeExempt(in) {
			return &domain.ClassificationResult{
				EntityType: domain.EntityExcluded,
				Reason:     "Micro/small enterprise in important sector",
			}
		}
		return &domain.ClassificationResult{
			EntityType:   domain.EntityImportant,
			Reason:       fmt.Sprintf("Important sector: %s", in.sector.Name),
			Requirements: requirementsFor(rules.TierImportant, in.country),
		}
	}

	return &domain.ClassificationResult{
		EntityType: domain.EntityNotCovered,
		Reason:     "Sector not covered by NIS2",
	}
}

// passesSizeGate reports whether a cross-border / critical-services flag may
// escalate the entity: medium and large always pass, micro/small only when
// the sector is size-exempt.
func passesSizeGate(in classifyInput) bool {
	if in.size != domain.SizeMicro && in.size != domain.SizeSmall {
		return true
	}
	return isSizeExempt(in)
}

// isSizeExempt checks the per-sector flag and the country's extra exemption
// list. Country exemptions may name a subsector (DE exempts "Healthcare
// providers" inside Health).
func isSizeExempt(in classifyInput) bool {
	if in.sector != nil && in.sector.SizeExempt {
		return true
	}
	for _, name := range in.country.SizeExemptSectors {
		if name == in.profile.Sector || name == in.profile.Subsector {
			return true
		}
	}
	return false
}

func requirementsFor(tier rules.Tier, country rules.CountryRule) domain.Requirements {
	var req domain.Requirements
	switch tier {
	case rules.TierEssential:
		req = domain.Requirements{
			RiskManagement:    "Comprehensive risk management measures",
			IncidentReporting: "24-hour incident reporting",
			AuditFrequency:    "Annual external audit",
			PenaltyCeiling:    "Up to €10M or 2% of turnover",
		}
	case rules.TierImportant:
		req = domain.Requirements{
			RiskManagement:    "Basic risk management measures",
			IncidentReporting: "72-hour incident reporting",
			AuditFrequency:    "Bi-annual self-assessment",
			PenaltyCeiling:    "Up to €7M or 1.4% of turnover",
		}
	}
	req.CountrySpecific = country.SpecificRequirements
	return req
}
