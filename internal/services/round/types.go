package round

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/blrd/internal/common/clock"
	"github.com/KirkDiggler/blrd/internal/common/uuid"
	"github.com/KirkDiggler/blrd/internal/models"
	scoreRepo "github.com/KirkDiggler/blrd/internal/repositories/score"
)

// Config holds configuration for the round service
type Config struct {
	// Answer is the word to guess
	Answer string

	// DurationSeconds is the countdown length, defaults to 90
	DurationSeconds int

	// InitialBlur is the blur at the start of the countdown, defaults to 15
	InitialBlur float64

	// TickInterval is the wall time per counted second, defaults to 1s
	TickInterval time.Duration

	// FallbackScore is shown when the play gate refuses a round and no score exists
	FallbackScore int

	// Repository dependencies
	ScoreRepo scoreRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional, logging is disabled when nil
	Logger *zerolog.Logger
}

// InputKind identifies a player action
type InputKind int

const (
	InputPlay InputKind = iota
	InputSetChar
	InputBackspace
	InputSubmit
)

// Input is one player action delivered to Run
type Input struct {
	Kind InputKind

	// Position is the guess box for SetChar and Backspace
	Position int

	// AtCursor uses the round's cursor, as it is when the input is
	// handled, instead of Position
	AtCursor bool

	// Char is the character for SetChar
	Char rune
}

// PlayInput contains parameters for starting a round
type PlayInput struct {
}

// PlayOutput contains the result of starting a round
type PlayOutput struct {
	// Started is true when the countdown began
	Started bool

	// Gated is true when the play gate refused the round
	Gated bool

	Round  *models.Round
	Events []*models.Event
}

// SetCharInput contains parameters for typing a character
type SetCharInput struct {
	Position int
	Char     rune
}

// SetCharOutput contains the result of typing a character
type SetCharOutput struct {
	// Accepted is false for ignored characters or when input is disabled
	Accepted bool

	Round  *models.Round
	Events []*models.Event
}

// BackspaceInput contains parameters for erasing
type BackspaceInput struct {
	Position int
}

// BackspaceOutput contains the result of erasing
type BackspaceOutput struct {
	Round  *models.Round
	Events []*models.Event
}

// SubmitInput contains parameters for submitting a guess
type SubmitInput struct {
}

// SubmitOutput contains the result of submitting a guess
type SubmitOutput struct {
	Matched bool

	// ScoreCard is set when the guess won the round
	ScoreCard *models.ScoreCard

	Round  *models.Round
	Events []*models.Event
}

// TickInput contains parameters for counting a second
type TickInput struct {
}

// TickOutput contains the result of counting a second
type TickOutput struct {
	// Advanced is false when the round is not running
	Advanced bool

	// Expired is true on the tick that ended the round
	Expired bool

	Round  *models.Round
	Events []*models.Event
}
