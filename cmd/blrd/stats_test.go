package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/blrd/internal/common/clock/mocks"
	"github.com/KirkDiggler/blrd/internal/models"
	"github.com/KirkDiggler/blrd/internal/puzzle"
	"github.com/KirkDiggler/blrd/internal/repositories/score"
	scoreMocks "github.com/KirkDiggler/blrd/internal/repositories/score/mocks"
)

func TestPrintStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 18, 0, 0, 0, time.Local)

	ctrl := gomock.NewController(t)
	clk := mocks.NewMockClock(ctrl)
	clk.EXPECT().Now().Return(now).AnyTimes()

	repo, err := score.NewSQLite(&score.SQLiteConfig{Path: filepath.Join(t.TempDir(), "blrd.db")})
	require.NoError(t, err)
	defer repo.Close()

	var buf bytes.Buffer
	require.NoError(t, printStats(ctx, &buf, repo, clk))
	assert.Contains(t, buf.String(), "No scores recorded yet.")
	assert.Contains(t, buf.String(), "Played today:       no")

	for _, s := range []int{40, 12, 77} {
		_, err := repo.AppendScore(ctx, &score.AppendScoreInput{Score: s})
		require.NoError(t, err)
	}
	require.NoError(t, repo.RecordPlayedToday(ctx, &score.RecordPlayedTodayInput{Now: now}))

	buf.Reset()
	require.NoError(t, printStats(ctx, &buf, repo, clk))
	out := buf.String()
	assert.Contains(t, out, "Rounds solved:      3")
	assert.Contains(t, out, "Last score:         77s")
	assert.Contains(t, out, "Best:               12s")
	assert.Contains(t, out, "Worst:              77s")
	assert.Contains(t, out, "Average of last 3:  43.0s")
	assert.Contains(t, out, "Played today:       yes")
}

func TestPrintStatsErrors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	clk := mocks.NewMockClock(ctrl)
	clk.EXPECT().Now().Return(time.Now()).AnyTimes()
	repo := scoreMocks.NewMockRepository(ctrl)

	t.Run("ambiguous gate", func(t *testing.T) {
		repo.EXPECT().LoadHistory(ctx, gomock.Any()).Return(&score.LoadHistoryOutput{History: models.ScoreHistory{9}}, nil)
		repo.EXPECT().HasPlayedToday(ctx, gomock.Any()).Return(false, score.ErrGateAmbiguous)

		var buf bytes.Buffer
		require.NoError(t, printStats(ctx, &buf, repo, clk))
		assert.True(t, strings.HasSuffix(buf.String(), "Played today:       unknown\n"))
	})

	t.Run("load failure", func(t *testing.T) {
		repo.EXPECT().LoadHistory(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))

		var buf bytes.Buffer
		assert.Error(t, printStats(ctx, &buf, repo, clk))
	})
}

func TestPickPuzzle(t *testing.T) {
	catalog, err := puzzle.Load(&puzzle.Config{})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	clk := mocks.NewMockClock(ctrl)
	day := time.Date(2026, 10, 15, 7, 0, 0, 0, time.Local)
	clk.EXPECT().Now().Return(day).AnyTimes()

	t.Run("today", func(t *testing.T) {
		pz, err := pickPuzzle(catalog, "", clk)
		require.NoError(t, err)
		assert.Equal(t, catalog.ForDate(day), pz)
	})

	t.Run("known answer", func(t *testing.T) {
		pz, err := pickPuzzle(catalog, "bees", clk)
		require.NoError(t, err)
		assert.Equal(t, "BEES", pz.Answer)
		assert.NotEqual(t, "Custom puzzle", pz.Title)
	})

	t.Run("unknown answer", func(t *testing.T) {
		pz, err := pickPuzzle(catalog, "zebra", clk)
		require.NoError(t, err)
		assert.Equal(t, "ZEBRA", pz.Answer)
		assert.Equal(t, "Custom puzzle", pz.Title)
		assert.Len(t, pz.Art, 4)
	})
}
