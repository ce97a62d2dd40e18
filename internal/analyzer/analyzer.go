// Package analyzer implements the deterministic contract analysis
// pipeline: text extraction, pattern scanning, scoring and summary
// generation. Everything here is a pure function over the immutable
// pattern catalogs, so analyses are safe to run concurrently.
package analyzer

// Analyze runs the full local pipeline over already-extracted text.
func Analyze(text string) Result {
	risks, score := ScanRisks(text)
	compliance := ScanCompliance(text)

	return Result{
		RiskLevel:  RiskLevel(score),
		RiskScore:  score,
		Risks:      risks,
		Compliance: compliance,
		Summary:    Summarize(risks, compliance, score),
	}
}
