package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCadenceFormula verifies the move cadence stays positive across the difficulty range
func TestCadenceFormula(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		expected   int
	}{
		{name: "Zero difficulty", difficulty: 0, expected: 1000},
		{name: "Mid difficulty", difficulty: 500, expected: 500},
		{name: "Max difficulty", difficulty: MaxDifficulty, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormationBaseCadence-tt.difficulty)
		})
	}
}

// TestKillQuotaMatchesFormation verifies one full formation satisfies the quota
func TestKillQuotaMatchesFormation(t *testing.T) {
	assert.Equal(t, KillQuota, FormationRows*FormationColumns)
}

// TestDifficultyReachesCap verifies the per-kill scaling saturates before the quota
func TestDifficultyReachesCap(t *testing.T) {
	assert.Greater(t, DifficultyPerKill*KillQuota, MaxDifficulty)
}

// TestDescentAlignsWithGrid verifies a descent spans a whole number of steps
func TestDescentAlignsWithGrid(t *testing.T) {
	steps := FormationRowHeight / FormationStep
	assert.Equal(t, float64(int(steps)), steps)
	assert.Equal(t, 0.0, float64(int(FormationSpacing)%int(FormationStep)))
}

// TestLabelCounts verifies menu tables match their entry counts
func TestLabelCounts(t *testing.T) {
	assert.Len(t, MenuLabels, MenuEntryCount)
	assert.Len(t, LevelLabels, LevelSelectEntryCount)
	assert.Equal(t, InfiniteLevel, LevelSelectEntryCount)
}
