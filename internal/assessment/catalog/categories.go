package catalog

import "github.com/nis2ready/nis2ready-backend/internal/assessment/domain"

// questionCategories in fixed order. Order breaks ties when ranking the
// lowest-scoring categories for recommendations.
var questionCategories = []domain.Category{
	{
		ID:          "risk-management",
		Name:        "Risk Management",
		Description: "Cybersecurity risk analysis and management policies",
		Weight:      0.20,
	},
	{
		ID:          "incident-response",
		Name:        "Incident Response",
		Description: "Incident handling and business continuity management",
		Weight:      0.20,
	},
	{
		ID:          "supply-chain",
		Name:        "Supply Chain Security",
		Description: "Security measures for suppliers and vendors",
		Weight:      0.15,
	},
	{
		ID:          "system-security",
		Name:        "System Security",
		Description: "Security in system acquisition, development and maintenance",
		Weight:      0.15,
	},
	{
		ID:          "technical-security",
		Name:        "Technical Security",
		Description: "Network and information system security measures",
		Weight:      0.10,
	},
	{
		ID:          "human-resources",
		Name:        "Human Resources Security",
		Description: "Personnel security policies and procedures",
		Weight:      0.10,
	},
	{
		ID:          "cryptography",
		Name:        "Cryptography",
		Description: "Cryptographic controls and encryption",
		Weight:      0.05,
	},
	{
		ID:          "incident-reporting",
		Name:        "Incident Reporting",
		Description: "Incident classification and regulatory reporting",
		Weight:      0.03,
	},
	{
		ID:          "compliance",
		Name:        "Compliance",
		Description: "Compliance monitoring and assessment",
		Weight:      0.02,
	},
}

// MaturityLevelDefinition describes one maturity band for presentation.
type MaturityLevelDefinition struct {
	Level       domain.MaturityLevel `json:"level"`
	Score       int                  `json:"score"`
	Description string               `json:"description"`
}

// MaturityLevelDefinitions is the reference score-per-level mapping. The
// scoring engine never assumes it; options declare their own scores.
var MaturityLevelDefinitions = []MaturityLevelDefinition{
	{Level: domain.MaturityInitial, Score: 0, Description: "Ad-hoc processes, no formal procedures"},
	{Level: domain.MaturityDefined, Score: 50, Description: "Basic processes defined but not consistently implemented"},
	{Level: domain.MaturityManaged, Score: 75, Description: "Processes implemented and monitored"},
	{Level: domain.MaturityOptimized, Score: 100, Description: "Processes optimized and continuously improved"},
}
