package rules

// nis2Sectors is the sector table from Annex I/II of Directive 2022/2555.
// Trust services, TLD registries and DNS providers are in scope regardless
// of size (Article 2(2)(a)), expressed here as mandatory inclusion plus
// size exemption.
var nis2Sectors = []Sector{
	// Essential sectors (Annex I)
	{
		Name:                   "Energy",
		Tier:                   TierEssential,
		Subsectors:             []string{"Electricity", "District heating/cooling", "Oil", "Gas", "Hydrogen"},
		CrossBorder:            true,
		CriticalInfrastructure: true,
	},
	{
		Name:                   "Transport",
		Tier:                   TierEssential,
		Subsectors:             []string{"Air", "Rail", "Water", "Road"},
		CrossBorder:            true,
		CriticalInfrastructure: true,
	},
	{
		Name:                   "Banking",
		Tier:                   TierEssential,
		Subsectors:             []string{"Credit institutions"},
		CrossBorder:            true,
		CriticalInfrastructure: true,
	},
	{
		Name:                   "Financial market infrastructures",
		Tier:                   TierEssential,
		Subsectors:             []string{"Trading venues", "Central counterparties"},
		CrossBorder:            true,
		CriticalInfrastructure: true,
	},
	{
		Name:                   "Health",
		Tier:                   TierEssential,
		Subsectors:             []string{"Healthcare providers", "EU reference laboratories", "Research entities"},
		CriticalInfrastructure: true,
	},
	{
		Name:                   "Drinking water",
		Tier:                   TierEssential,
		Subsectors:             []string{"Drinking water suppliers"},
		CriticalInfrastructure: true,
	},
	{
		Name:                   "Waste water",
		Tier:                   TierEssential,
		Subsectors:             []string{"Waste water service providers"},
		CriticalInfrastructure: true,
	},
	{
		Name:                   "Digital infrastructure",
		Tier:                   TierEssential,
		Subsectors:             []string{"Internet exchange points", "DNS providers", "TLD registries", "Cloud providers", "Data centers", "CDN providers"},
		CrossBorder:            true,
		CriticalInfrastructure: true,
	},
	{
		Name:        "ICT service management",
		Tier:        TierEssential,
		Subsectors:  []string{"Managed service providers", "Managed security service providers"},
		CrossBorder: true,
	},
	{
		Name:       "Public Administration",
		Tier:       TierEssential,
		Subsectors: []string{"Government entities", "Regional authorities"},
	},
	{
		Name:                   "Space",
		Tier:                   TierEssential,
		Subsectors:             []string{"Space-based infrastructure operators"},
		CrossBorder:            true,
		CriticalInfrastructure: true,
	},
	{
		Name:               "Trust service providers",
		Tier:               TierEssential,
		SizeExempt:         true,
		MandatoryInclusion: true,
		CrossBorder:        true,
	},
	{
		Name:               "Top-level domain name registries",
		Tier:               TierEssential,
		SizeExempt:         true,
		MandatoryInclusion: true,
		CrossBorder:        true,
	},
	{
		Name:               "DNS service providers",
		Tier:               TierEssential,
		SizeExempt:         true,
		MandatoryInclusion: true,
		CrossBorder:        true,
	},

	// Important sectors (Annex II)
	{
		Name:        "Postal services",
		Tier:        TierImportant,
		Subsectors:  []string{"Postal service providers", "Courier services"},
		CrossBorder: true,
	},
	{
		Name:       "Waste management",
		Tier:       TierImportant,
		Subsectors: []string{"Waste management operators"},
	},
	{
		Name:                   "Chemicals",
		Tier:                   TierImportant,
		Subsectors:             []string{"Chemical manufacturers", "Chemical distributors"},
		CriticalInfrastructure: true,
	},
	{
		Name:       "Food",
		Tier:       TierImportant,
		Subsectors: []string{"Food producers", "Food distributors"},
	},
	{
		Name:       "Manufacturing",
		Tier:       TierImportant,
		Subsectors: []string{"Medical devices", "Electronics", "Machinery", "Vehicles"},
	},
	{
		Name:        "Digital providers",
		Tier:        TierImportant,
		Subsectors:  []string{"Online marketplaces", "Online search engines", "Social networking platforms"},
		CrossBorder: true,
	},
	{
		Name:       "Research",
		Tier:       TierImportant,
		Subsectors: []string{"Research organizations"},
	},
}
