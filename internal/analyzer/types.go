package analyzer

// Finding is one risk pattern match enriched with category, severity and
// the surrounding clause text. Findings are created by the scanner and
// never mutated afterwards.
type Finding struct {
	Category       string `json:"category"`
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	Clause         string `json:"clause"`
	PatternMatched string `json:"pattern_matched"`
	MonetaryValue  string `json:"monetary_value,omitempty"`
	RiskScore      int    `json:"risk_score"`
	Recommendation string `json:"recommendation"`
}

// ComplianceFinding is one compliance pattern match tagged with the
// regulation it relates to.
type ComplianceFinding struct {
	Regulation     string `json:"regulation"`
	Status         string `json:"status"`
	Description    string `json:"description"`
	Clause         string `json:"clause"`
	PatternMatched string `json:"pattern_matched"`
	Weight         int    `json:"weight"`
	Recommendation string `json:"recommendation"`
}

// Result is the full outcome of analyzing one document. It is computed per
// request and not persisted.
type Result struct {
	RiskLevel  string              `json:"risk_level"`
	RiskScore  int                 `json:"risk_score"`
	Risks      []Finding           `json:"risks"`
	Compliance []ComplianceFinding `json:"compliance"`
	Summary    string              `json:"summary"`
}
