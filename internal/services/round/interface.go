package round

import (
	"context"

	"github.com/KirkDiggler/blrd/internal/models"
)

// Listener receives every event a round publishes, on the goroutine that
// caused it
type Listener func(event *models.Event)

// Service runs one round: the play gate, the countdown, the guess boxes and scoring
type Service interface {
	// Play dismisses the welcome prompt and starts the round if the play gate allows
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// SetChar stores a character in a guess box
	SetChar(ctx context.Context, input *SetCharInput) (*SetCharOutput, error)

	// Backspace erases at or before a guess box
	Backspace(ctx context.Context, input *BackspaceInput) (*BackspaceOutput, error)

	// Submit checks the guess boxes against the answer
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// Tick counts one second of the countdown
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// Snapshot returns a copy of the round's current state
	Snapshot() *models.Round

	// Subscribe registers a listener and returns a function that removes it
	Subscribe(listener Listener) func()

	// Run serialises clock ticks and player inputs until ctx is done or
	// inputs is closed
	Run(ctx context.Context, inputs <-chan Input) error
}
