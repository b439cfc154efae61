package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/blrd/internal/audio"
	"github.com/KirkDiggler/blrd/internal/common/clock"
	"github.com/KirkDiggler/blrd/internal/common/uuid"
	"github.com/KirkDiggler/blrd/internal/handlers/tui"
	"github.com/KirkDiggler/blrd/internal/models"
	"github.com/KirkDiggler/blrd/internal/puzzle"
	"github.com/KirkDiggler/blrd/internal/services/messaging"
	"github.com/KirkDiggler/blrd/internal/services/round"
)

func runPlay(ctx context.Context, cfg *Config) error {
	logger, closeLog, err := newLogger(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	repo, closeStore, err := openStore(cfg, &logger)
	if err != nil {
		return err
	}
	defer closeStore()

	catalog, err := puzzle.Load(&puzzle.Config{Salt: cfg.Salt})
	if err != nil {
		return fmt.Errorf("failed to load puzzles: %w", err)
	}

	clk := &clock.DefaultClock{}
	pz, err := pickPuzzle(catalog, cfg.Answer, clk)
	if err != nil {
		return err
	}

	roundSvc, err := round.New(&round.Config{
		Answer:          pz.Answer,
		DurationSeconds: cfg.Duration,
		TickInterval:    cfg.Tick,
		FallbackScore:   cfg.FallbackScore,
		ScoreRepo:       repo,
		Clock:           clk,
		UUIDGenerator:   uuid.New(),
		Logger:          &logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create round: %w", err)
	}

	messagingSvc, err := messaging.New(&messaging.Config{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	player := audio.New(&audio.Config{Enabled: cfg.Sound, Logger: &logger})
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise screen: %w", err)
	}
	defer screen.Fini()

	ui, err := tui.New(&tui.Config{
		Screen:           screen,
		RoundService:     roundSvc,
		MessagingService: messagingSvc,
		Puzzle:           pz,
		Listeners:        []round.Listener{audio.Listener(player)},
		Logger:           &logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create UI: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("store", cfg.Store).Str("puzzle", pz.Title).Msg("starting round")
	return ui.Run(ctx)
}

// pickPuzzle returns today's puzzle, or the one for a fixed answer. An
// answer missing from the catalog gets a plain placeholder picture.
func pickPuzzle(catalog *puzzle.Catalog, answer string, clk clock.Clock) (*models.Puzzle, error) {
	if answer == "" {
		return catalog.ForDate(clk.Now()), nil
	}

	pz, err := catalog.Get(answer)
	if err == nil {
		return pz, nil
	}
	if !errors.Is(err, puzzle.ErrPuzzleNotFound) {
		return nil, err
	}

	row := strings.Repeat("#", 4*len(answer))
	return &models.Puzzle{
		Answer: strings.ToUpper(answer),
		Title:  "Custom puzzle",
		Art:    []string{row, row, row, row},
	}, nil
}
