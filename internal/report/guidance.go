package report

// guidance carries the static negotiation guidance shown in the detailed
// risk analysis section for a risk category.
type guidance struct {
	Explanation       string
	RedFlags          []string
	NegotiationPoints []string
	MarketStandard    string
}

var negotiationGuidance = map[string]guidance{
	"Payment Terms": {
		Explanation: "Payment terms define when and how payments are made, including late fees and penalties.",
		RedFlags: []string{
			"Payment due immediately upon signing",
			"Late fees exceeding 2% per month",
			"No grace period for payments",
			"Unreasonable payment schedules",
		},
		NegotiationPoints: []string{
			"Request 30-60 day payment terms",
			"Negotiate late fees to 1-2% per month",
			"Include grace period of 5-10 days",
			"Request milestone-based payments for large contracts",
		},
		MarketStandard: "Standard payment terms are typically 30-60 days with 1-2% late fees.",
	},
	"Liability Limitations": {
		Explanation: "Liability clauses limit the amount of damages one party can claim from the other.",
		RedFlags: []string{
			"Unlimited liability exposure",
			"No liability caps",
			"Exclusion of consequential damages",
			"One-sided indemnification",
		},
		NegotiationPoints: []string{
			"Request liability caps (e.g., 12 months of fees)",
			"Include mutual indemnification",
			"Limit consequential damages",
			"Request insurance requirements",
		},
		MarketStandard: "Typical liability caps are 12-24 months of contract value.",
	},
	"Termination Clauses": {
		Explanation: "Termination clauses define how and when the contract can be ended.",
		RedFlags: []string{
			"Immediate termination without cause",
			"No cure period for breaches",
			"Unilateral termination rights",
			"Excessive notice periods",
		},
		NegotiationPoints: []string{
			"Request 30-60 day notice period",
			"Include cure periods for breaches",
			"Request mutual termination rights",
			"Define material breach clearly",
		},
		MarketStandard: "Standard notice periods are 30-60 days with cure periods for breaches.",
	},
	"Confidentiality": {
		Explanation: "Confidentiality clauses protect sensitive information shared during the contract.",
		RedFlags: []string{
			"Unlimited confidentiality period",
			"No exceptions for public information",
			"Overly broad definition of confidential information",
			"No return/destruction requirements",
		},
		NegotiationPoints: []string{
			"Limit confidentiality period to 3-5 years",
			"Include exceptions for public information",
			"Define confidential information narrowly",
			"Request return/destruction of materials",
		},
		MarketStandard: "Standard confidentiality periods are 3-5 years after contract termination.",
	},
	"Intellectual Property": {
		Explanation: "IP clauses define ownership and usage rights for intellectual property.",
		RedFlags: []string{
			"Assignment of all IP to one party",
			"No license to use background IP",
			"Unlimited use of deliverables",
			"No protection of existing IP",
		},
		NegotiationPoints: []string{
			"Retain ownership of background IP",
			"Request license to use deliverables",
			"Limit use of deliverables",
			"Protect existing IP rights",
		},
		MarketStandard: "Each party typically retains ownership of their background IP.",
	},
	"Data Protection": {
		Explanation: "Data protection clauses ensure compliance with privacy regulations.",
		RedFlags: []string{
			"No data protection requirements",
			"Unlimited data usage rights",
			"No data breach notification",
			"No data retention limits",
		},
		NegotiationPoints: []string{
			"Include GDPR/CCPA compliance",
			"Limit data usage to contract purposes",
			"Request data breach notification",
			"Set data retention limits",
		},
		MarketStandard: "Data should be used only for contract purposes and retained for limited periods.",
	},
}

// riskDescriptions maps a risk level to the one-line assessment shown on
// the title page.
var riskDescriptions = map[string]string{
	"CRITICAL": "Immediate legal review required. Significant risks present.",
	"HIGH":     "Extensive negotiations recommended. Multiple concerning terms.",
	"MEDIUM":   "Some negotiation needed. Standard contract with risks.",
	"LOW":      "Generally acceptable terms. Minor improvements possible.",
	"MINIMAL":  "Very low risk. Standard contract terms.",
}

func riskDescription(level string) string {
	if d, ok := riskDescriptions[level]; ok {
		return d
	}
	return "Risk level unclear."
}
