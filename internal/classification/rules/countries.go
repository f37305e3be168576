package rules

import "github.com/nis2ready/nis2ready-backend/internal/classification/domain"

func floatPtr(f float64) *float64 { return &f }

// euCountryRules covers the 27 EU member states. Most states carry no
// deviations from the directive defaults; the table still lists them so an
// unknown country code is a validation error rather than a silent fallback.
var euCountryRules = []CountryRule{
	{Code: "AT", TranspositionStatus: "In Progress"},
	{
		Code:                 "BE",
		TranspositionStatus:  "In Progress",
		SpecificRequirements: []string{"Critical infrastructure identification", "Cross-border notification"},
	},
	{Code: "BG", TranspositionStatus: "Pending"},
	{Code: "CY", TranspositionStatus: "Pending"},
	{Code: "CZ", TranspositionStatus: "In Progress"},
	{
		Code:                "DE",
		TranspositionStatus: "In Progress",
		SizeOverrides: map[domain.SizeCategory]SizeOverride{
			domain.SizeMicro: {MaxRevenueMillions: floatPtr(2.5)},
		},
		MandatorySectors:     []string{"Chemicals"},
		SizeExemptSectors:    []string{"Healthcare providers"},
		SpecificRequirements: []string{"IT-Sicherheitskatalog", "Critical infrastructure protection"},
	},
	{Code: "DK", TranspositionStatus: "In Progress"},
	{Code: "EE", TranspositionStatus: "Pending"},
	{
		Code:                 "ES",
		TranspositionStatus:  "In Progress",
		SpecificRequirements: []string{"Critical operator registration"},
	},
	{Code: "FI", TranspositionStatus: "In Progress"},
	{
		Code:                 "FR",
		TranspositionStatus:  "In Progress",
		MandatorySectors:     []string{"Space"},
		SpecificRequirements: []string{"OIV status consideration", "Security certification"},
	},
	{Code: "GR", TranspositionStatus: "Pending"},
	{Code: "HR", TranspositionStatus: "Pending"},
	{Code: "HU", TranspositionStatus: "Pending"},
	{Code: "IE", TranspositionStatus: "In Progress"},
	{
		Code:                 "IT",
		TranspositionStatus:  "In Progress",
		SpecificRequirements: []string{"National cybersecurity perimeter"},
	},
	{Code: "LT", TranspositionStatus: "Pending"},
	{Code: "LU", TranspositionStatus: "In Progress"},
	{Code: "LV", TranspositionStatus: "Pending"},
	{Code: "MT", TranspositionStatus: "Pending"},
	{
		Code:                 "NL",
		TranspositionStatus:  "In Progress",
		SpecificRequirements: []string{"Critical infrastructure designation"},
	},
	{Code: "PL", TranspositionStatus: "In Progress"},
	{Code: "PT", TranspositionStatus: "Pending"},
	{Code: "RO", TranspositionStatus: "Pending"},
	{Code: "SE", TranspositionStatus: "In Progress"},
	{Code: "SI", TranspositionStatus: "Pending"},
	{Code: "SK", TranspositionStatus: "Pending"},
}
