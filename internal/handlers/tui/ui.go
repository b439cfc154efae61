// Package tui draws a round in the terminal and turns key presses into
// round inputs.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/blrd/internal/models"
	"github.com/KirkDiggler/blrd/internal/roundclock"
	"github.com/KirkDiggler/blrd/internal/services/messaging"
	"github.com/KirkDiggler/blrd/internal/services/round"
)

// UI represents a terminal session for one round
type UI struct {
	screen       tcell.Screen
	roundService round.Service
	messaging    messaging.Service
	puzzle       *models.Puzzle
	initialBlur  float64
	listeners    []round.Listener
	logger       zerolog.Logger

	state  viewState
	redraw chan struct{}
}

// Config holds the configuration for the UI
type Config struct {
	// Screen must already be initialised; the caller finalises it
	Screen tcell.Screen

	// Round service
	RoundService round.Service

	// MessagingService adds flavour lines; optional
	MessagingService messaging.Service

	// Puzzle is the picture being guessed
	Puzzle *models.Puzzle

	// InitialBlur must match the round's, defaults to roundclock.DefaultInitialBlur
	InitialBlur float64

	// Listeners are subscribed alongside the UI for the lifetime of Run
	Listeners []round.Listener

	// Logger is optional
	Logger *zerolog.Logger
}

// New creates a new UI
func New(cfg *Config) (*UI, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Screen == nil {
		return nil, errors.New("screen cannot be nil")
	}
	if cfg.RoundService == nil {
		return nil, errors.New("round service cannot be nil")
	}
	if cfg.Puzzle == nil {
		return nil, errors.New("puzzle cannot be nil")
	}

	initialBlur := cfg.InitialBlur
	if initialBlur <= 0 {
		initialBlur = roundclock.DefaultInitialBlur
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "tui").Logger()
	}

	return &UI{
		screen:       cfg.Screen,
		roundService: cfg.RoundService,
		messaging:    cfg.MessagingService,
		puzzle:       cfg.Puzzle,
		initialBlur:  initialBlur,
		listeners:    cfg.Listeners,
		logger:       logger,
		redraw:       make(chan struct{}, 1),
	}, nil
}

// Run drives the round and the screen until the player quits or ctx is done
func (u *UI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	unsubscribe := u.roundService.Subscribe(u.onEvent)
	defer unsubscribe()
	for _, l := range u.listeners {
		defer u.roundService.Subscribe(l)()
	}

	inputs := make(chan round.Input)
	roundDone := make(chan error, 1)
	go func() {
		roundDone <- u.roundService.Run(ctx, inputs)
	}()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	u.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-roundDone:
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("round stopped: %w", err)
			}
			return nil

		case <-u.redraw:
			u.draw()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				u.screen.Sync()
				u.draw()
			case *tcell.EventKey:
				in, act := inputFor(ev, u.roundService.Snapshot())
				switch act {
				case actionQuit:
					u.logger.Debug().Msg("player quit")
					return nil
				case actionInput:
					select {
					case inputs <- in:
					case <-ctx.Done():
						return nil
					}
				}
			}
		}
	}
}

// onEvent runs on the round goroutine and must not block on the draw loop
func (u *UI) onEvent(e *models.Event) {
	u.state.apply(e)
	if quip := u.quipFor(e); quip != "" {
		u.state.setQuip(quip)
	}
	select {
	case u.redraw <- struct{}{}:
	default:
	}
}

func (u *UI) draw() {
	draw(u.screen, u.puzzle, u.initialBlur, u.roundService.Snapshot(), u.state.get())
}

func (u *UI) quipFor(e *models.Event) string {
	if u.messaging == nil {
		return ""
	}
	ctx := context.Background()

	switch e.Type {
	case models.EventGuessRejected:
		out, err := u.messaging.GetIncorrectGuessMessage(ctx, &messaging.GetIncorrectGuessMessageInput{
			Guess:     e.Guess,
			Remaining: e.Remaining,
		})
		if err != nil {
			u.logger.Warn().Err(err).Msg("no message for incorrect guess")
			return ""
		}
		return out.Message

	case models.EventScoreCard:
		if e.ScoreCard == nil {
			return ""
		}
		out, err := u.messaging.GetResultMessage(ctx, &messaging.GetResultMessageInput{
			State: e.State,
			Gated: e.State == models.RoundStateNotStarted,
			Score: e.ScoreCard.Score,
			Stats: e.ScoreCard.Stats,
		})
		if err != nil {
			u.logger.Warn().Err(err).Msg("no message for score card")
			return ""
		}
		return out.Message
	}
	return ""
}
