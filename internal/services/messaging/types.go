package messaging

import (
	"github.com/KirkDiggler/blrd/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// Config contains configuration for the messaging service
type Config struct {
	// Seed fixes message selection, for tests
	Seed int64
}

// GetResultMessageInput contains parameters for a score card message
type GetResultMessageInput struct {
	// State is the round's final state
	State models.RoundState

	// Gated is set when the round was refused because it was already played
	Gated bool

	// Score is this round's score, or the last one for a gated round
	Score int

	// Stats include this round's score
	Stats models.ScoreStats

	// PreferredTone is optional
	PreferredTone MessageTone
}

// GetResultMessageOutput contains the result of getting a score card message
type GetResultMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetIncorrectGuessMessageInput contains parameters for a wrong guess message
type GetIncorrectGuessMessageInput struct {
	// Guess is what the player submitted
	Guess string

	// Remaining is the seconds left on the countdown
	Remaining int
}

// GetIncorrectGuessMessageOutput contains the result of getting a wrong guess message
type GetIncorrectGuessMessageOutput struct {
	Message string
	Tone    MessageTone
}
