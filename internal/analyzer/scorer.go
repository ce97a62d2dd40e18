package analyzer

// Risk levels derived from the aggregate score.
const (
	LevelCritical = "CRITICAL"
	LevelHigh     = "HIGH"
	LevelMedium   = "MEDIUM"
	LevelLow      = "LOW"
	LevelMinimal  = "MINIMAL"
)

// ScoreDenominator is the fixed denominator shown next to risk scores
// ("14/30"). It is a display constant, not the catalog's maximum.
const ScoreDenominator = 30

// Threshold constants for the level step function.
const (
	criticalThreshold = 20
	highThreshold     = 15
	mediumThreshold   = 10
	lowThreshold      = 5
)

// RiskLevel maps an aggregate risk score to its discrete level.
func RiskLevel(score int) string {
	switch {
	case score >= criticalThreshold:
		return LevelCritical
	case score >= highThreshold:
		return LevelHigh
	case score >= mediumThreshold:
		return LevelMedium
	case score >= lowThreshold:
		return LevelLow
	default:
		return LevelMinimal
	}
}
