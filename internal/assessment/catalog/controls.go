package catalog

import "github.com/nis2ready/nis2ready-backend/internal/assessment/domain"

var nis2Controls = []domain.Control{
	{
		ID:            "NIS2-20.1",
		Article:       "Article 20",
		Title:         "Cybersecurity Policies",
		Description:   "Policies on cybersecurity risk analysis and information system security",
		Category:      "risk-management",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Cybersecurity risk analysis policies",
			"Information system security policies",
			"Regular policy review and updates",
			"Board-level approval of cybersecurity policies",
		},
		Evidence: []string{
			"Cybersecurity policy document",
			"Risk analysis procedures",
			"Board meeting minutes approving policies",
			"Policy review and update records",
		},
	},
	{
		ID:            "NIS2-20.2",
		Article:       "Article 20",
		Title:         "Incident Handling",
		Description:   "Incident handling procedures and business continuity management",
		Category:      "incident-response",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Incident detection procedures",
			"Incident response procedures",
			"Business continuity plans",
			"Crisis management procedures",
			"Regular testing of incident response",
		},
		Evidence: []string{
			"Incident response plan",
			"Business continuity plan",
			"Incident response test results",
			"Crisis management procedures",
		},
	},
	{
		ID:            "NIS2-20.3",
		Article:       "Article 20",
		Title:         "Supply Chain Security",
		Description:   "Supply chain security including security-related aspects of relationships with suppliers",
		Category:      "supply-chain",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Supplier security assessment procedures",
			"Security requirements in supplier contracts",
			"Supply chain risk assessment",
			"Vendor security monitoring",
		},
		Evidence: []string{
			"Supplier security assessment reports",
			"Supplier contracts with security clauses",
			"Supply chain risk register",
			"Vendor security monitoring reports",
		},
	},
	{
		ID:            "NIS2-20.4",
		Article:       "Article 20",
		Title:         "Security in Network and Information Systems Acquisition",
		Description:   "Security measures for acquisition, development and maintenance of systems",
		Category:      "system-security",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Secure development lifecycle",
			"Security requirements in procurement",
			"System security testing",
			"Vulnerability management",
		},
		Evidence: []string{
			"Secure development procedures",
			"Procurement security requirements",
			"Security testing reports",
			"Vulnerability scan results",
		},
	},
	{
		ID:            "NIS2-20.5",
		Article:       "Article 20",
		Title:         "Security of Network and Information Systems",
		Description:   "Measures for network and information system security",
		Category:      "technical-security",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Network security controls",
			"Access control systems",
			"Security monitoring",
			"Encryption implementation",
		},
		Evidence: []string{
			"Network security architecture",
			"Access control policies",
			"Security monitoring logs",
			"Encryption implementation guide",
		},
	},
	{
		ID:            "NIS2-20.6",
		Article:       "Article 20",
		Title:         "Policies and Procedures for Human Resources Security",
		Description:   "Human resources security policies and procedures",
		Category:      "human-resources",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Security awareness training",
			"Background checks for critical roles",
			"Access management procedures",
			"Incident reporting training",
		},
		Evidence: []string{
			"Security training records",
			"Background check procedures",
			"Access management policies",
			"Training materials",
		},
	},
	{
		ID:            "NIS2-20.7",
		Article:       "Article 20",
		Title:         "Use of Cryptography and Encryption",
		Description:   "Appropriate use of cryptography and encryption",
		Category:      "cryptography",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Cryptographic standards",
			"Key management procedures",
			"Data encryption policies",
			"Cryptographic control implementation",
		},
		Evidence: []string{
			"Cryptographic policy",
			"Key management procedures",
			"Encryption implementation",
			"Cryptographic control audit",
		},
	},
	{
		ID:            "NIS2-21.1",
		Article:       "Article 21",
		Title:         "Early Warning Notification",
		Description:   "Early warning notification of significant cybersecurity incidents",
		Category:      "incident-reporting",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Incident classification procedures",
			"Early warning notification within 24 hours",
			"Incident impact assessment",
			"Communication with authorities",
		},
		Evidence: []string{
			"Incident classification matrix",
			"Notification procedures",
			"Historical incident reports",
			"Authority communication records",
		},
	},
	{
		ID:            "NIS2-21.2",
		Article:       "Article 21",
		Title:         "Incident Notification",
		Description:   "Detailed incident notification without undue delay",
		Category:      "incident-reporting",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Detailed incident reporting within 72 hours",
			"Root cause analysis",
			"Impact assessment",
			"Remediation measures",
		},
		Evidence: []string{
			"Incident report template",
			"Root cause analysis procedures",
			"Impact assessment methodology",
			"Remediation tracking",
		},
	},
	{
		ID:            "NIS2-21.3",
		Article:       "Article 21",
		Title:         "Final Report",
		Description:   "Final report on incident handling and lessons learned",
		Category:      "incident-reporting",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Final incident report within one month",
			"Lessons learned documentation",
			"Improvement recommendations",
			"Follow-up actions",
		},
		Evidence: []string{
			"Final incident reports",
			"Lessons learned register",
			"Improvement action plans",
			"Follow-up tracking",
		},
	},
	{
		ID:            "NIS2-22.1",
		Article:       "Article 22",
		Title:         "Compliance Monitoring",
		Description:   "Compliance monitoring and assessment procedures",
		Category:      "compliance",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Self-assessment procedures",
			"Compliance monitoring",
			"Internal audit program",
			"Management review",
		},
		Evidence: []string{
			"Self-assessment reports",
			"Compliance monitoring reports",
			"Internal audit reports",
			"Management review records",
		},
	},
	{
		ID:            "NIS2-23.1",
		Article:       "Article 23",
		Title:         "Penalty Awareness",
		Description:   "Understanding of penalties and enforcement measures",
		Category:      "compliance",
		Mandatory:     true,
		Applicability: []string{"essential", "important"},
		Requirements: []string{
			"Penalty framework understanding",
			"Compliance risk assessment",
			"Legal compliance procedures",
			"Regulatory change management",
		},
		Evidence: []string{
			"Legal compliance assessment",
			"Penalty framework documentation",
			"Regulatory monitoring procedures",
			"Change management records",
		},
	},
}
