package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/clausecheck/clausecheck/internal/catalog"
)

// contextWindow is the number of characters captured on each side of a
// match when building the clause excerpt.
const contextWindow = 100

var monetaryRe = regexp.MustCompile(`\$[\d,]+`)

// ScanRisks applies every risk rule to the text and returns one finding per
// match together with the aggregate risk score. Matches from the same rule
// are not merged and overlapping matches from different rules are all kept.
func ScanRisks(text string) ([]Finding, int) {
	findings := []Finding{}
	totalScore := 0

	for _, rule := range catalog.RiskRules {
		score := rule.Weight * catalog.SeverityValue(rule.Severity)
		for _, re := range rule.Patterns {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				matched := text[loc[0]:loc[1]]
				findings = append(findings, Finding{
					Category:       rule.Category,
					Severity:       rule.Severity,
					Description:    fmt.Sprintf("Potential %s risk detected", strings.ToLower(rule.Category)),
					Clause:         contextAround(text, loc[0], loc[1]),
					PatternMatched: matched,
					MonetaryValue:  monetaryRe.FindString(matched),
					RiskScore:      score,
					Recommendation: catalog.Recommendation(rule.Category, rule.Severity),
				})
				totalScore += score
			}
		}
	}

	return findings, totalScore
}

// ScanCompliance applies every compliance rule to the text and returns one
// finding per match.
func ScanCompliance(text string) []ComplianceFinding {
	findings := []ComplianceFinding{}

	for _, rule := range catalog.ComplianceRules {
		for _, re := range rule.Patterns {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				findings = append(findings, ComplianceFinding{
					Regulation:     rule.Category,
					Status:         "check",
					Description:    fmt.Sprintf("Potential %s compliance requirement", rule.Category),
					Clause:         contextAround(text, loc[0], loc[1]),
					PatternMatched: text[loc[0]:loc[1]],
					Weight:         rule.Weight,
					Recommendation: fmt.Sprintf("Review %s compliance requirements with legal counsel", rule.Category),
				})
			}
		}
	}

	return findings
}

// contextAround returns the text surrounding a match span, clipped to the
// text boundaries and trimmed of leading/trailing whitespace. Window edges
// are moved back to rune boundaries so the excerpt stays valid UTF-8.
func contextAround(text string, start, end int) string {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	to := end + contextWindow
	if to > len(text) {
		to = len(text)
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to--
	}
	return strings.TrimSpace(text[from:to])
}
