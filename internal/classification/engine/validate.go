package engine

import (
	"github.com/nis2ready/nis2ready-backend/internal/classification/domain"
	"github.com/nis2ready/nis2ready-backend/internal/classification/rules"
)

// ValidateProfile checks a profile against the rule tables and returns the
// full list of field errors, or nil when the profile is valid. It never
// guesses a default: an invalid profile must not reach Classify.
func ValidateProfile(profile domain.OrganizationProfile, tables *rules.Tables) *domain.ValidationError {
	verr := &domain.ValidationError{}

	if profile.Country == "" {
		verr.Add("country", "country selection is required")
	} else if _, ok := tables.Countries.Lookup(profile.Country); !ok {
		verr.Add("country", "selected country not yet supported")
	}

	if profile.Sector == "" {
		verr.Add("sector", "sector selection is required")
	} else if sector, ok := tables.Sectors.Lookup(profile.Sector); !ok {
		verr.Add("sector", "selected sector is not recognized in NIS2")
	} else if len(sector.Subsectors) > 0 {
		if profile.Subsector == "" {
			verr.Add("subsector", "subsector selection is required")
		} else if !containsString(sector.Subsectors, profile.Subsector) {
			verr.Add("subsector", "selected subsector does not belong to the sector")
		}
	}

	if profile.Employees < 0 {
		verr.Add("employees", "valid number of employees required")
	}
	if profile.RevenueMillions < 0 {
		verr.Add("revenue_millions", "valid annual revenue required")
	}

	if profile.Sector == PublicAdministrationSector {
		if profile.PopulationServedPercent == nil {
			verr.Add("population_served_percent", "population served percentage required")
		} else if *profile.PopulationServedPercent < 0 || *profile.PopulationServedPercent > 100 {
			verr.Add("population_served_percent", "population served must be between 0 and 100")
		}
	}

	if !verr.HasErrors() {
		return nil
	}
	return verr
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
