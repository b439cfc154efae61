package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/blrd/internal/models"
)

const (
	// fastScore is the score at or under which a win counts as quick
	fastScore = 15

	// hurryRemaining is the seconds left at which wrong guesses get urgent
	hurryRemaining = 10
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetResultMessage returns a message for the score card
func (s *service) GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	tone := input.PreferredTone

	switch {
	case input.Gated:
		if tone == "" {
			tone = ToneNeutral
		}
		messages = []string{
			"One picture a day. A new one unblurs at midnight.",
			"You've had today's go. Same time tomorrow?",
			"No peeking twice! Come back tomorrow.",
		}

	case input.State == models.RoundStateExpired:
		if tone == "" {
			tone = ToneEncouraging
		}
		messages = []string{
			"So close! The picture was clearer than it looked.",
			"Time's up. Tomorrow's picture won't know what hit it.",
			"The blur wins this round.",
			"Even squinting has its limits.",
		}

	case input.State == models.RoundStateWon && input.Stats.Count > 1 && input.Score <= input.Stats.Best:
		if tone == "" {
			tone = ToneCelebration
		}
		messages = []string{
			fmt.Sprintf("New personal best: %d seconds!", input.Score),
			fmt.Sprintf("%d seconds. That's your fastest yet!", input.Score),
		}

	case input.State == models.RoundStateWon && input.Score <= fastScore:
		if tone == "" {
			tone = ToneCelebration
		}
		messages = []string{
			"Eagle eyes!",
			"You barely needed the picture.",
			"Did you see it before the blur did?",
		}

	case input.State == models.RoundStateWon:
		if tone == "" {
			tone = ToneFunny
		}
		messages = []string{
			"Got there in the end!",
			"Slow and steady unblurs the picture.",
			"A win is a win.",
			"Your eyes adjusted just in time.",
		}

	default:
		return nil, fmt.Errorf("no result message for round state %q", input.State)
	}

	return &GetResultMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetIncorrectGuessMessage returns a message for a wrong guess
func (s *service) GetIncorrectGuessMessage(ctx context.Context, input *GetIncorrectGuessMessageInput) (*GetIncorrectGuessMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Remaining <= hurryRemaining {
		return &GetIncorrectGuessMessageOutput{
			Message: s.pick([]string{
				fmt.Sprintf("Only %d seconds left!", input.Remaining),
				"Quick, one more try!",
				"The clock is not on your side.",
			}),
			Tone: ToneEncouraging,
		}, nil
	}

	messages := []string{
		"Not quite. Look again.",
		"Nope! Keep squinting.",
		"The blur is lifting, try again.",
	}
	if input.Guess != "" {
		messages = append(messages, fmt.Sprintf("Definitely not %s.", input.Guess))
	}

	return &GetIncorrectGuessMessageOutput{
		Message: s.pick(messages),
		Tone:    ToneFunny,
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
