package catalog

import "regexp"

// Severity levels used by risk rules.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Rule is one detection rule: a named category with a set of
// case-insensitive patterns, a severity label and a score weight.
// Compliance rules reuse the same shape with Category holding the
// regulation name.
type Rule struct {
	Category string
	Severity string
	Weight   int
	Patterns []*regexp.Regexp
}

// SeverityValue maps a severity label to its score multiplier.
func SeverityValue(severity string) int {
	switch severity {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

// RiskRules is the fixed catalog of contractual risk rules. Slice order is
// the scan order; findings are emitted in this order, not document order.
var RiskRules = []Rule{
	{
		Category: "Payment Terms",
		Severity: SeverityMedium,
		Weight:   2,
		Patterns: compile(
			`payment.*due.*(\d+).*days`,
			`late.*payment.*(\d+%)`,
			`interest.*charge.*(\d+%)`,
			`penalty.*(\d+%)`,
			`default.*rate.*(\d+%)`,
		),
	},
	{
		Category: "Liability Limitations",
		Severity: SeverityHigh,
		Weight:   3,
		Patterns: compile(
			`limitation.*liability`,
			`total.*liability.*not.*exceed.*(\$[\d,]+)`,
			`damages.*limited.*(\$[\d,]+)`,
			`exclude.*consequential.*damages`,
			`indemnification.*unlimited`,
		),
	},
	{
		Category: "Termination Clauses",
		Severity: SeverityMedium,
		Weight:   2,
		Patterns: compile(
			`terminate.*(\d+).*days.*notice`,
			`termination.*without.*cause`,
			`immediate.*termination`,
			`breach.*(\d+).*days.*cure`,
			`material.*breach`,
		),
	},
	{
		Category: "Confidentiality",
		Severity: SeverityLow,
		Weight:   1,
		Patterns: compile(
			`confidential.*information`,
			`non-disclosure.*(\d+).*years`,
			`trade.*secrets`,
			`proprietary.*information`,
			`return.*confidential.*information`,
		),
	},
	{
		Category: "Intellectual Property",
		Severity: SeverityHigh,
		Weight:   3,
		Patterns: compile(
			`intellectual.*property`,
			`copyright.*assignment`,
			`patent.*rights`,
			`trademark.*usage`,
			`work.*for.*hire`,
		),
	},
	{
		Category: "Data Protection",
		Severity: SeverityHigh,
		Weight:   3,
		Patterns: compile(
			`personal.*data`,
			`data.*protection`,
			`privacy.*policy`,
			`gdpr.*compliance`,
			`data.*breach.*notification`,
		),
	},
	{
		Category: "Force Majeure",
		Severity: SeverityLow,
		Weight:   1,
		Patterns: compile(
			`force.*majeure`,
			`act.*of.*god`,
			`unforeseen.*circumstances`,
			`beyond.*reasonable.*control`,
		),
	},
	{
		Category: "Governing Law",
		Severity: SeverityMedium,
		Weight:   2,
		Patterns: compile(
			`governing.*law.*([A-Za-z\s]+)`,
			`jurisdiction.*([A-Za-z\s]+)`,
			`venue.*([A-Za-z\s]+)`,
			`dispute.*resolution`,
		),
	},
}

// ComplianceRules is the fixed catalog of regulatory rules. Category holds
// the regulation name; Severity is unused for compliance scoring.
var ComplianceRules = []Rule{
	{
		Category: "GDPR",
		Severity: SeverityHigh,
		Weight:   3,
		Patterns: compile(
			`personal.*data.*processing`,
			`data.*subject.*rights`,
			`data.*protection.*officer`,
			`privacy.*impact.*assessment`,
			`right.*to.*erasure`,
		),
	},
	{
		Category: "SOX",
		Severity: SeverityHigh,
		Weight:   3,
		Patterns: compile(
			`financial.*reporting`,
			`internal.*controls`,
			`audit.*committee`,
			`material.*weakness`,
			`disclosure.*controls`,
		),
	},
	{
		Category: "HIPAA",
		Severity: SeverityHigh,
		Weight:   3,
		Patterns: compile(
			`health.*information`,
			`medical.*records`,
			`phi.*protected.*health`,
			`privacy.*rule`,
			`security.*rule`,
		),
	},
	{
		Category: "CCPA",
		Severity: SeverityMedium,
		Weight:   2,
		Patterns: compile(
			`california.*privacy`,
			`consumer.*privacy.*act`,
			`right.*to.*know`,
			`right.*to.*delete`,
			`opt.*out.*sale`,
		),
	},
}
