package report

import (
	"strings"

	"github.com/clausecheck/clausecheck/internal/analyzer"
)

type categoryCounts struct {
	high, medium, low int
}

func severityCounts(risks []analyzer.Finding) (high, medium, low int) {
	for _, r := range risks {
		switch r.Severity {
		case "high":
			high++
		case "medium":
			medium++
		default:
			low++
		}
	}
	return
}

// severityByCategory tallies findings per category, preserving the order in
// which categories first appear.
func severityByCategory(risks []analyzer.Finding) ([]string, map[string]categoryCounts) {
	var order []string
	counts := make(map[string]categoryCounts)
	for _, r := range risks {
		c, seen := counts[r.Category]
		if !seen {
			order = append(order, r.Category)
		}
		switch r.Severity {
		case "high":
			c.high++
		case "medium":
			c.medium++
		default:
			c.low++
		}
		counts[r.Category] = c
	}
	return order, counts
}

func groupByCategory(risks []analyzer.Finding) ([]string, map[string][]analyzer.Finding) {
	var order []string
	grouped := make(map[string][]analyzer.Finding)
	for _, r := range risks {
		if _, seen := grouped[r.Category]; !seen {
			order = append(order, r.Category)
		}
		grouped[r.Category] = append(grouped[r.Category], r)
	}
	return order, grouped
}

func groupByRegulation(compliance []analyzer.ComplianceFinding) ([]string, map[string][]analyzer.ComplianceFinding) {
	var order []string
	grouped := make(map[string][]analyzer.ComplianceFinding)
	for _, c := range compliance {
		if _, seen := grouped[c.Regulation]; !seen {
			order = append(order, c.Regulation)
		}
		grouped[c.Regulation] = append(grouped[c.Regulation], c)
	}
	return order, grouped
}

// detectedRedFlags returns the guidance red flags whose text appears inside
// the clause excerpt, case-insensitively.
func detectedRedFlags(flags []string, clause string) []string {
	clauseLower := strings.ToLower(clause)
	var found []string
	for _, f := range flags {
		if strings.Contains(clauseLower, strings.ToLower(f)) {
			found = append(found, f)
		}
	}
	return found
}

func upper(s string) string {
	return strings.ToUpper(s)
}
