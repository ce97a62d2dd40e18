package catalog

// recommendations maps (category, severity) to a fixed negotiation
// recommendation. Unmapped combinations fall through to a generic string.
var recommendations = map[string]map[string]string{
	"Payment Terms": {
		SeverityLow:    "Review payment terms for reasonableness",
		SeverityMedium: "Negotiate more favorable payment terms",
		SeverityHigh:   "Seek legal review of payment terms immediately",
	},
	"Liability Limitations": {
		SeverityLow:    "Consider liability insurance coverage",
		SeverityMedium: "Negotiate liability caps and exclusions",
		SeverityHigh:   "Require legal review before signing",
	},
	"Termination Clauses": {
		SeverityLow:    "Ensure adequate notice periods",
		SeverityMedium: "Negotiate termination rights and cure periods",
		SeverityHigh:   "Review termination provisions carefully",
	},
	"Confidentiality": {
		SeverityLow:    "Standard confidentiality terms",
		SeverityMedium: "Review confidentiality scope and duration",
		SeverityHigh:   "Ensure adequate protection of sensitive information",
	},
	"Intellectual Property": {
		SeverityLow:    "Clarify IP ownership terms",
		SeverityMedium: "Negotiate IP rights and licensing terms",
		SeverityHigh:   "Require legal review of IP provisions",
	},
	"Data Protection": {
		SeverityLow:    "Ensure basic data protection measures",
		SeverityMedium: "Implement comprehensive data protection policies",
		SeverityHigh:   "Require data protection officer review",
	},
}

// Recommendation returns the negotiation recommendation for a category and
// severity, falling back to a generic answer for unmapped combinations.
func Recommendation(category, severity string) string {
	if bySeverity, ok := recommendations[category]; ok {
		if rec, ok := bySeverity[severity]; ok {
			return rec
		}
	}
	return "Seek legal review"
}
