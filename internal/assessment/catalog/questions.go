package catalog

import "github.com/nis2ready/nis2ready-backend/internal/assessment/domain"

// complianceLadder builds the standard four-step answer scale. Every
// question in the catalog uses the same values and scores with
// question-specific labels.
func complianceLadder(optimized, managed, defined, initial string) []domain.Option {
	return []domain.Option{
		{Value: "fully-compliant", Label: optimized, Score: 100, MaturityLevel: domain.MaturityOptimized},
		{Value: "largely-compliant", Label: managed, Score: 75, MaturityLevel: domain.MaturityManaged},
		{Value: "partially-compliant", Label: defined, Score: 50, MaturityLevel: domain.MaturityDefined},
		{Value: "non-compliant", Label: initial, Score: 0, MaturityLevel: domain.MaturityInitial},
	}
}

var assessmentQuestions = []domain.Question{
	{
		ID:              "risk-mgmt-policies",
		ControlID:       "NIS2-20.1",
		Category:        "risk-management",
		Title:           "Cybersecurity Risk Analysis Policies",
		Description:     "Does your organization have documented cybersecurity risk analysis policies that are approved by senior management?",
		BusinessContext: "Risk analysis policies provide the foundation for systematic identification and assessment of cybersecurity risks across your organization.",
		LegalBasis:      "Article 20(1)(a) of the NIS2 Directive requires policies on cybersecurity risk analysis.",
		Options: complianceLadder(
			"We have comprehensive, board-approved cybersecurity risk analysis policies that are regularly reviewed",
			"We have documented policies approved by senior management, but they may need updates",
			"We have some risk analysis procedures but they are not formally documented as policies",
			"We do not have documented cybersecurity risk analysis policies",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Cybersecurity risk analysis policy document",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Risk Management Policy", "Cybersecurity Risk Framework"},
			},
			{
				Type:        "mandatory",
				Description: "Board or senior management approval documentation",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Board meeting minutes", "Management approval memo"},
			},
			{
				Type:        "optional",
				Description: "Policy review and update records",
				Formats:     []string{"pdf", "doc", "docx", "xls", "xlsx"},
				Examples:    []string{"Policy review log", "Update tracking document"},
			},
		},
	},
	{
		ID:              "risk-assessment-process",
		ControlID:       "NIS2-20.1",
		Category:        "risk-management",
		Title:           "Regular Risk Assessment Process",
		Description:     "Does your organization conduct regular, systematic cybersecurity risk assessments of your network and information systems?",
		BusinessContext: "Regular risk assessments help identify vulnerabilities and threats before they can impact your business operations.",
		LegalBasis:      "Article 20(1)(a) requires systematic risk analysis to identify cybersecurity risks.",
		Options: complianceLadder(
			"We conduct comprehensive risk assessments at least annually with formal methodology",
			"We conduct risk assessments regularly but may lack some formal procedures",
			"We conduct ad-hoc risk assessments but not on a regular schedule",
			"We do not conduct formal cybersecurity risk assessments",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Most recent risk assessment report",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Annual Risk Assessment Report", "Risk Register"},
			},
			{
				Type:        "mandatory",
				Description: "Risk assessment methodology or procedures",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Risk Assessment Methodology", "Risk Analysis Procedures"},
			},
			{
				Type:        "optional",
				Description: "Historical risk assessment reports",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Previous year assessments", "Quarterly risk updates"},
			},
		},
	},
	{
		ID:              "incident-response-plan",
		ControlID:       "NIS2-20.2",
		Category:        "incident-response",
		Title:           "Incident Response Plan",
		Description:     "Does your organization have a documented incident response plan that covers detection, response, and recovery procedures?",
		BusinessContext: "A comprehensive incident response plan minimizes business disruption and ensures quick recovery from cybersecurity incidents.",
		LegalBasis:      "Article 20(1)(b) requires incident handling procedures.",
		Options: complianceLadder(
			"We have a comprehensive, tested incident response plan with clear procedures and roles",
			"We have an incident response plan but it may need updates or more testing",
			"We have basic incident response procedures but they are not comprehensive",
			"We do not have a documented incident response plan",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Incident response plan document",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Incident Response Plan", "Cyber Incident Procedures"},
			},
			{
				Type:        "mandatory",
				Description: "Incident response team structure and contact information",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"CSIRT Team Structure", "Emergency Contact List"},
			},
			{
				Type:        "optional",
				Description: "Incident response test results or exercises",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Tabletop exercise results", "Incident simulation reports"},
			},
		},
	},
	{
		ID:              "business-continuity",
		ControlID:       "NIS2-20.2",
		Category:        "incident-response",
		Title:           "Business Continuity Management",
		Description:     "Does your organization have business continuity plans that address cybersecurity incidents and their impact on operations?",
		BusinessContext: "Business continuity plans ensure your organization can maintain critical operations during and after cybersecurity incidents.",
		LegalBasis:      "Article 20(1)(b) requires business continuity management.",
		Options: complianceLadder(
			"We have comprehensive business continuity plans that specifically address cybersecurity incidents",
			"We have business continuity plans but they may not fully address cybersecurity scenarios",
			"We have basic business continuity procedures but they are not comprehensive",
			"We do not have business continuity plans",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Business continuity plan document",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Business Continuity Plan", "Disaster Recovery Plan"},
			},
			{
				Type:        "optional",
				Description: "Business impact analysis",
				Formats:     []string{"pdf", "doc", "docx", "xls", "xlsx"},
				Examples:    []string{"Business Impact Analysis", "Critical Process Mapping"},
			},
			{
				Type:        "optional",
				Description: "Business continuity test results",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"DR Test Results", "Continuity Exercise Report"},
			},
		},
	},
	{
		ID:              "supplier-security-assessment",
		ControlID:       "NIS2-20.3",
		Category:        "supply-chain",
		Title:           "Supplier Security Assessment",
		Description:     "Does your organization assess the cybersecurity risks of suppliers and vendors that have access to your systems or data?",
		BusinessContext: "Supplier security assessments help identify and mitigate risks from third-party relationships that could impact your operations.",
		LegalBasis:      "Article 20(1)(c) requires supply chain security measures.",
		Options: complianceLadder(
			"We systematically assess cybersecurity risks of all relevant suppliers with formal procedures",
			"We assess most suppliers but may lack systematic procedures for all categories",
			"We assess some critical suppliers but not comprehensively",
			"We do not formally assess supplier cybersecurity risks",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Supplier security assessment procedures",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Vendor Risk Assessment Procedure", "Third-Party Security Evaluation"},
			},
			{
				Type:        "mandatory",
				Description: "Sample supplier security assessments",
				Formats:     []string{"pdf", "doc", "docx", "xls", "xlsx"},
				Examples:    []string{"Vendor Security Assessment Report", "Supplier Risk Evaluation"},
			},
			{
				Type:        "optional",
				Description: "Supplier security requirements or contracts",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Vendor Security Requirements", "Service Level Agreements"},
			},
		},
	},
	{
		ID:              "supply-chain-monitoring",
		ControlID:       "NIS2-20.3",
		Category:        "supply-chain",
		Title:           "Supply Chain Monitoring",
		Description:     "Does your organization monitor the ongoing cybersecurity posture of critical suppliers and vendors?",
		BusinessContext: "Continuous monitoring of supplier security helps detect changes in risk levels and ensures ongoing compliance.",
		LegalBasis:      "Article 20(1)(c) requires ongoing supply chain security management.",
		Options: complianceLadder(
			"We continuously monitor critical suppliers with formal procedures and regular reviews",
			"We monitor most critical suppliers but may lack systematic ongoing procedures",
			"We have some monitoring of suppliers but it is not comprehensive",
			"We do not monitor supplier cybersecurity posture after initial assessment",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Supplier monitoring procedures",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Vendor Monitoring Procedure", "Third-Party Review Process"},
			},
			{
				Type:        "optional",
				Description: "Supplier monitoring reports",
				Formats:     []string{"pdf", "doc", "docx", "xls", "xlsx"},
				Examples:    []string{"Quarterly Vendor Review", "Supplier Risk Dashboard"},
			},
			{
				Type:        "optional",
				Description: "Supplier incident or issue reports",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Vendor Incident Report", "Supply Chain Risk Event"},
			},
		},
	},
	{
		ID:              "secure-development",
		ControlID:       "NIS2-20.4",
		Category:        "system-security",
		Title:           "Secure Development and Procurement",
		Description:     "Does your organization follow secure development practices and include security requirements in system procurement?",
		BusinessContext: "Secure development and procurement practices ensure that security is built into systems from the beginning.",
		LegalBasis:      "Article 20(1)(d) requires security in acquisition, development and maintenance of systems.",
		Options: complianceLadder(
			"We follow comprehensive secure development lifecycle and procurement security requirements",
			"We have secure development practices but may not cover all aspects systematically",
			"We have some secure development practices but they are not comprehensive",
			"We do not follow formal secure development or procurement practices",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Secure development lifecycle documentation",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"SDLC Security Procedures", "Secure Coding Standards"},
			},
			{
				Type:        "mandatory",
				Description: "Security requirements for procurement",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Procurement Security Requirements", "RFP Security Template"},
			},
			{
				Type:        "optional",
				Description: "Security testing or code review results",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Security Test Results", "Code Review Report"},
			},
		},
	},
	{
		ID:              "vulnerability-management",
		ControlID:       "NIS2-20.4",
		Category:        "system-security",
		Title:           "Vulnerability Management",
		Description:     "Does your organization have a systematic approach to identifying, assessing, and remediating vulnerabilities in your systems?",
		BusinessContext: "Vulnerability management helps identify and fix security weaknesses before they can be exploited by attackers.",
		LegalBasis:      "Article 20(1)(d) requires measures for system security including vulnerability management.",
		Options: complianceLadder(
			"We have comprehensive vulnerability management with regular scanning and timely remediation",
			"We have vulnerability management but may lack some systematic procedures",
			"We have basic vulnerability scanning but remediation is not systematic",
			"We do not have a formal vulnerability management process",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Vulnerability management procedures",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Vulnerability Management Process", "Patch Management Procedure"},
			},
			{
				Type:        "mandatory",
				Description: "Recent vulnerability scan results",
				Formats:     []string{"pdf", "doc", "docx", "xml"},
				Examples:    []string{"Vulnerability Scan Report", "Security Assessment Results"},
			},
			{
				Type:        "optional",
				Description: "Vulnerability remediation tracking",
				Formats:     []string{"pdf", "doc", "docx", "xls", "xlsx"},
				Examples:    []string{"Remediation Tracking Log", "Patch Management Dashboard"},
			},
		},
	},
	{
		ID:              "network-security",
		ControlID:       "NIS2-20.5",
		Category:        "technical-security",
		Title:           "Network Security Controls",
		Description:     "Does your organization implement appropriate network security controls including firewalls, intrusion detection, and network segmentation?",
		BusinessContext: "Network security controls protect your systems from unauthorized access and help detect malicious activity.",
		LegalBasis:      "Article 20(1)(e) requires measures for network and information system security.",
		Options: complianceLadder(
			"We have comprehensive network security controls with monitoring and regular updates",
			"We have most network security controls but may need enhancements",
			"We have basic network security controls but they are not comprehensive",
			"We do not have adequate network security controls",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Network security architecture documentation",
				Formats:     []string{"pdf", "doc", "docx", "vsd", "png"},
				Examples:    []string{"Network Architecture Diagram", "Security Zone Documentation"},
			},
			{
				Type:        "mandatory",
				Description: "Network security control configuration",
				Formats:     []string{"pdf", "doc", "docx", "txt"},
				Examples:    []string{"Firewall Configuration", "IDS/IPS Settings"},
			},
			{
				Type:        "optional",
				Description: "Network security monitoring reports",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Security Monitoring Report", "Network Traffic Analysis"},
			},
		},
	},
	{
		ID:              "access-control",
		ControlID:       "NIS2-20.5",
		Category:        "technical-security",
		Title:           "Access Control Systems",
		Description:     "Does your organization implement proper access control systems including user authentication, authorization, and access monitoring?",
		BusinessContext: "Access control systems ensure that only authorized users can access your systems and data.",
		LegalBasis:      "Article 20(1)(e) requires access control as part of system security measures.",
		Options: complianceLadder(
			"We have comprehensive access control with multi-factor authentication and regular access reviews",
			"We have good access control but may lack some advanced features",
			"We have basic access control but it may not be comprehensive",
			"We do not have adequate access control systems",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Access control policy and procedures",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Access Control Policy", "User Access Procedures"},
			},
			{
				Type:        "mandatory",
				Description: "User access review reports",
				Formats:     []string{"pdf", "doc", "docx", "xls", "xlsx"},
				Examples:    []string{"Access Review Report", "User Account Audit"},
			},
			{
				Type:        "optional",
				Description: "Access control system configuration",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Identity Management Configuration", "Authentication Settings"},
			},
		},
	},
	{
		ID:              "security-awareness",
		ControlID:       "NIS2-20.6",
		Category:        "human-resources",
		Title:           "Security Awareness Training",
		Description:     "Does your organization provide regular cybersecurity awareness training to all employees?",
		BusinessContext: "Security awareness training helps employees recognize and respond appropriately to cybersecurity threats.",
		LegalBasis:      "Article 20(1)(f) requires human resources security policies including awareness training.",
		Options: complianceLadder(
			"We provide comprehensive, regular security awareness training to all employees",
			"We provide security awareness training but may not cover all employees or topics",
			"We provide some security awareness training but it is not comprehensive",
			"We do not provide regular security awareness training",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Security awareness training program documentation",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Security Training Program", "Awareness Training Plan"},
			},
			{
				Type:        "mandatory",
				Description: "Training completion records",
				Formats:     []string{"pdf", "doc", "docx", "xls", "xlsx"},
				Examples:    []string{"Training Completion Report", "Employee Training Records"},
			},
			{
				Type:        "optional",
				Description: "Training materials or content",
				Formats:     []string{"pdf", "doc", "docx", "ppt", "pptx"},
				Examples:    []string{"Training Slides", "Security Awareness Materials"},
			},
		},
	},
	{
		ID:              "personnel-security",
		ControlID:       "NIS2-20.6",
		Category:        "human-resources",
		Title:           "Personnel Security Screening",
		Description:     "Does your organization conduct appropriate background checks and security screening for employees in sensitive positions?",
		BusinessContext: "Personnel security screening helps ensure that employees in critical roles are trustworthy and suitable for their positions.",
		LegalBasis:      "Article 20(1)(f) requires human resources security policies and procedures.",
		Options: complianceLadder(
			"We conduct comprehensive background checks for all employees in sensitive positions",
			"We conduct background checks but may not cover all relevant positions",
			"We conduct some background checks but not systematically",
			"We do not conduct background checks for security-sensitive positions",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Personnel security screening procedures",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Background Check Procedure", "Personnel Security Policy"},
			},
			{
				Type:        "optional",
				Description: "Position risk classification",
				Formats:     []string{"pdf", "doc", "docx", "xls", "xlsx"},
				Examples:    []string{"Position Risk Assessment", "Role Classification Matrix"},
			},
			{
				Type:        "optional",
				Description: "Screening completion records (anonymized)",
				Formats:     []string{"pdf", "doc", "docx", "xls", "xlsx"},
				Examples:    []string{"Screening Completion Report", "Background Check Log"},
			},
		},
	},
	{
		ID:              "cryptographic-controls",
		ControlID:       "NIS2-20.7",
		Category:        "cryptography",
		Title:           "Cryptographic Controls",
		Description:     "Does your organization implement appropriate cryptographic controls for data protection including encryption and key management?",
		BusinessContext: "Cryptographic controls protect sensitive data from unauthorized access and ensure data integrity.",
		LegalBasis:      "Article 20(1)(g) requires the use of cryptography and encryption.",
		Options: complianceLadder(
			"We implement comprehensive cryptographic controls with proper key management",
			"We implement cryptographic controls but may need enhancements in some areas",
			"We use some encryption but it is not comprehensive",
			"We do not implement adequate cryptographic controls",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Cryptographic policy and standards",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Cryptographic Policy", "Encryption Standards"},
			},
			{
				Type:        "mandatory",
				Description: "Key management procedures",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Key Management Procedure", "Cryptographic Key Lifecycle"},
			},
			{
				Type:        "optional",
				Description: "Encryption implementation documentation",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Encryption Implementation Guide", "Data Classification and Encryption"},
			},
		},
	},
	{
		ID:              "incident-classification",
		ControlID:       "NIS2-21.1",
		Category:        "incident-reporting",
		Title:           "Incident Classification and Reporting",
		Description:     "Does your organization have procedures for classifying cybersecurity incidents and reporting significant incidents to authorities?",
		BusinessContext: "Proper incident classification and reporting ensures compliance with regulatory requirements and helps improve sector-wide security.",
		LegalBasis:      "Article 21 requires incident reporting including early warning within 24 hours.",
		Options: complianceLadder(
			"We have comprehensive incident classification and reporting procedures that meet NIS2 requirements",
			"We have incident classification and reporting procedures but they may need updates for NIS2",
			"We have basic incident reporting but it may not meet all NIS2 requirements",
			"We do not have procedures for incident classification and regulatory reporting",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Incident classification procedures",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Incident Classification Matrix", "Incident Severity Definitions"},
			},
			{
				Type:        "mandatory",
				Description: "Incident reporting procedures",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Regulatory Reporting Procedure", "Incident Notification Process"},
			},
			{
				Type:        "optional",
				Description: "Historical incident reports (anonymized)",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Sample Incident Report", "Incident Reporting Log"},
			},
		},
	},
	{
		ID:              "compliance-monitoring",
		ControlID:       "NIS2-22.1",
		Category:        "compliance",
		Title:           "Compliance Monitoring and Assessment",
		Description:     "Does your organization have procedures for monitoring and assessing compliance with cybersecurity requirements?",
		BusinessContext: "Compliance monitoring ensures that your cybersecurity measures remain effective and meet regulatory requirements.",
		LegalBasis:      "Article 22 addresses supervision and enforcement including compliance monitoring.",
		Options: complianceLadder(
			"We have comprehensive compliance monitoring with regular assessments and management review",
			"We have compliance monitoring but it may not be comprehensive",
			"We have some compliance monitoring but it is not systematic",
			"We do not have formal compliance monitoring procedures",
		),
		EvidenceRequirements: []domain.EvidenceRequirement{
			{
				Type:        "mandatory",
				Description: "Compliance monitoring procedures",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Compliance Monitoring Process", "Self-Assessment Procedure"},
			},
			{
				Type:        "mandatory",
				Description: "Recent compliance assessment reports",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Compliance Assessment Report", "Internal Audit Report"},
			},
			{
				Type:        "optional",
				Description: "Management review of compliance",
				Formats:     []string{"pdf", "doc", "docx"},
				Examples:    []string{"Management Review Minutes", "Compliance Status Report"},
			},
		},
	},
}
