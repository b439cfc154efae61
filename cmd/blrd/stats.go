package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/blrd/internal/common/clock"
	"github.com/KirkDiggler/blrd/internal/repositories/score"
)

func newStatsCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your recorded scores",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}

			logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			repo, closeStore, err := openStore(cfg, &logger)
			if err != nil {
				return err
			}
			defer closeStore()

			return printStats(cmd.Context(), cmd.OutOrStdout(), repo, &clock.DefaultClock{})
		},
	}
}

func printStats(ctx context.Context, w io.Writer, repo score.Repository, clk clock.Clock) error {
	out, err := repo.LoadHistory(ctx, &score.LoadHistoryInput{})
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}

	played, err := repo.HasPlayedToday(ctx, &score.HasPlayedTodayInput{Now: clk.Now()})
	if err != nil && !errors.Is(err, score.ErrGateAmbiguous) {
		return fmt.Errorf("failed to check today's play: %w", err)
	}

	stats := out.History.Stats()
	if stats.Count == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
	} else {
		last, _ := out.History.Last()
		fmt.Fprintf(w, "Rounds solved:      %d\n", stats.Count)
		fmt.Fprintf(w, "Last score:         %ds\n", last)
		fmt.Fprintf(w, "Best:               %ds\n", stats.Best)
		fmt.Fprintf(w, "Worst:              %ds\n", stats.Worst)
		fmt.Fprintf(w, "Average of last %d:  %.1fs\n", min(stats.Count, 5), stats.AvgLast5)
	}

	switch {
	case err != nil:
		fmt.Fprintln(w, "Played today:       unknown")
	case played:
		fmt.Fprintln(w, "Played today:       yes")
	default:
		fmt.Fprintln(w, "Played today:       no")
	}

	return nil
}
