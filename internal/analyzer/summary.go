package analyzer

import (
	"fmt"
	"strings"
)

// Summarize builds the narrative summary for an analysis: overall level and
// score, finding counts by severity, compliance count, and a strategic
// recommendation sentence bucketed by score.
func Summarize(risks []Finding, compliance []ComplianceFinding, score int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Contract analysis completed. Overall risk level: %s. ", RiskLevel(score)))
	b.WriteString(fmt.Sprintf("Risk score: %d/%d. ", score, ScoreDenominator))

	if len(risks) > 0 {
		high, medium := 0, 0
		for _, r := range risks {
			switch r.Severity {
			case "high":
				high++
			case "medium":
				medium++
			}
		}
		b.WriteString(fmt.Sprintf("Found %d risk items (%d high, %d medium). ", len(risks), high, medium))
		if top := topCategories(risks, 3); len(top) > 0 {
			b.WriteString(fmt.Sprintf("Top risk categories: %s. ", strings.Join(top, ", ")))
		}
	} else {
		b.WriteString("No significant risks detected. ")
	}

	if len(compliance) > 0 {
		b.WriteString(fmt.Sprintf("Identified %d compliance considerations (%s). ",
			len(compliance), strings.Join(regulations(compliance), ", ")))
	}

	switch {
	case score >= highThreshold:
		b.WriteString("RECOMMENDATION: Legal review required before signing.")
	case score >= mediumThreshold:
		b.WriteString("RECOMMENDATION: Consider legal review for high-risk terms.")
	default:
		b.WriteString("Contract appears to have standard terms.")
	}

	return b.String()
}

// topCategories returns up to n category names ordered by finding count.
// Ties keep first-seen order, which is the catalog scan order.
func topCategories(risks []Finding, n int) []string {
	counts := make(map[string]int)
	var order []string
	for _, r := range risks {
		if _, seen := counts[r.Category]; !seen {
			order = append(order, r.Category)
		}
		counts[r.Category]++
	}

	// Stable selection sort; the category list is small.
	for i := 0; i < len(order); i++ {
		best := i
		for j := i + 1; j < len(order); j++ {
			if counts[order[j]] > counts[order[best]] {
				best = j
			}
		}
		if best != i {
			picked := order[best]
			copy(order[i+1:best+1], order[i:best])
			order[i] = picked
		}
	}

	if len(order) > n {
		order = order[:n]
	}
	return order
}

// regulations returns the distinct regulation names in first-seen order.
func regulations(compliance []ComplianceFinding) []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range compliance {
		if !seen[c.Regulation] {
			seen[c.Regulation] = true
			names = append(names, c.Regulation)
		}
	}
	return names
}
