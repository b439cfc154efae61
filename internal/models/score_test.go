package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreHistoryStats(t *testing.T) {
	testCases := []struct {
		name    string
		history ScoreHistory
		want    ScoreStats
	}{
		{
			name:    "empty history uses sentinels",
			history: ScoreHistory{},
			want:    ScoreStats{Best: NoScore, Worst: NoScore, AvgLast5: 0},
		},
		{
			name:    "single score",
			history: ScoreHistory{78},
			want:    ScoreStats{Best: 78, Worst: 78, AvgLast5: 78, Count: 1},
		},
		{
			name:    "average only covers the last five",
			history: ScoreHistory{90, 10, 20, 30, 40, 50},
			want:    ScoreStats{Best: 10, Worst: 90, AvgLast5: 30, Count: 6},
		},
		{
			name:    "fractional average",
			history: ScoreHistory{1, 2},
			want:    ScoreStats{Best: 1, Worst: 2, AvgLast5: 1.5, Count: 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.history.Stats())
		})
	}
}

func TestScoreHistoryLast(t *testing.T) {
	_, ok := ScoreHistory{}.Last()
	assert.False(t, ok)

	last, ok := ScoreHistory{3, 9}.Last()
	assert.True(t, ok)
	assert.Equal(t, 9, last)
}

func TestRoundRemainingSeconds(t *testing.T) {
	r := &Round{DurationSeconds: 90, ElapsedSeconds: 12}
	assert.Equal(t, 78, r.RemainingSeconds())

	r.ElapsedSeconds = 95
	assert.Equal(t, 0, r.RemainingSeconds())
}

func TestRoundStateTerminal(t *testing.T) {
	assert.False(t, RoundStateNotStarted.Terminal())
	assert.False(t, RoundStateRunning.Terminal())
	assert.True(t, RoundStateWon.Terminal())
	assert.True(t, RoundStateExpired.Terminal())
}
