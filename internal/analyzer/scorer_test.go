package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevel_Thresholds(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{0, LevelMinimal},
		{4, LevelMinimal},
		{5, LevelLow},
		{9, LevelLow},
		{10, LevelMedium},
		{14, LevelMedium},
		{15, LevelHigh},
		{19, LevelHigh},
		{20, LevelCritical},
		{100, LevelCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RiskLevel(tt.score), "score %d", tt.score)
	}
}

func TestRiskLevel_Exhaustive(t *testing.T) {
	// Every non-negative score maps to exactly one of the five levels and
	// levels never regress as the score grows.
	levels := map[string]int{LevelMinimal: 0, LevelLow: 1, LevelMedium: 2, LevelHigh: 3, LevelCritical: 4}

	prev := -1
	for score := 0; score <= 50; score++ {
		rank, ok := levels[RiskLevel(score)]
		assert.True(t, ok, "score %d produced unknown level", score)
		assert.GreaterOrEqual(t, rank, prev, "level regressed at score %d", score)
		prev = rank
	}
}

func TestScoreDenominator(t *testing.T) {
	assert.Equal(t, 30, ScoreDenominator)
}
