package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_NoRisks(t *testing.T) {
	summary := Summarize(nil, nil, 0)

	assert.Contains(t, summary, "Overall risk level: MINIMAL")
	assert.Contains(t, summary, "Risk score: 0/30")
	assert.Contains(t, summary, "No significant risks detected")
	assert.Contains(t, summary, "standard terms")
}

func TestSummarize_CountsBySeverity(t *testing.T) {
	risks := []Finding{
		{Category: "Liability Limitations", Severity: "high"},
		{Category: "Liability Limitations", Severity: "high"},
		{Category: "Payment Terms", Severity: "medium"},
		{Category: "Confidentiality", Severity: "low"},
	}
	summary := Summarize(risks, nil, 16)

	assert.Contains(t, summary, "Found 4 risk items (2 high, 1 medium)")
	assert.Contains(t, summary, "Legal review required before signing")
}

func TestSummarize_TopCategories(t *testing.T) {
	risks := []Finding{
		{Category: "Payment Terms", Severity: "medium"},
		{Category: "Liability Limitations", Severity: "high"},
		{Category: "Liability Limitations", Severity: "high"},
		{Category: "Confidentiality", Severity: "low"},
	}
	summary := Summarize(risks, nil, 12)

	assert.Contains(t, summary, "Top risk categories: Liability Limitations, Payment Terms, Confidentiality")
	assert.Contains(t, summary, "Consider legal review for high-risk terms")
}

func TestSummarize_TopCategoriesTieOrder(t *testing.T) {
	// Equal counts keep scan order: Payment Terms was seen first.
	risks := []Finding{
		{Category: "Payment Terms", Severity: "medium"},
		{Category: "Liability Limitations", Severity: "high"},
	}
	summary := Summarize(risks, nil, 7)

	idx1 := strings.Index(summary, "Payment Terms")
	idx2 := strings.Index(summary, "Liability Limitations")
	assert.True(t, idx1 >= 0 && idx2 >= 0)
	assert.Less(t, idx1, idx2)
}

func TestSummarize_Compliance(t *testing.T) {
	compliance := []ComplianceFinding{
		{Regulation: "GDPR"},
		{Regulation: "GDPR"},
		{Regulation: "SOX"},
	}
	summary := Summarize(nil, compliance, 0)

	assert.Contains(t, summary, "Identified 3 compliance considerations (GDPR, SOX)")
}

func TestAnalyze_EndToEnd(t *testing.T) {
	result := Analyze(sampleContract)

	assert.Equal(t, RiskLevel(result.RiskScore), result.RiskLevel)
	assert.NotEmpty(t, result.Risks)
	assert.Contains(t, result.Summary, "Contract analysis completed")

	sum := 0
	for _, f := range result.Risks {
		sum += f.RiskScore
	}
	assert.Equal(t, result.RiskScore, sum)
}

func TestAnalyze_CleanText(t *testing.T) {
	result := Analyze("This is a plain conversation with no legal terms.")

	assert.Equal(t, 0, result.RiskScore)
	assert.Equal(t, LevelMinimal, result.RiskLevel)
	assert.Empty(t, result.Risks)
	assert.Contains(t, result.Summary, "No significant risks")
}
