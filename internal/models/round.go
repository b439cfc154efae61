package models

// RoundState represents where a round is in its lifecycle
type RoundState string

const (
	// RoundStateNotStarted indicates the welcome prompt has not been dismissed
	RoundStateNotStarted RoundState = "not_started"

	// RoundStateRunning indicates the countdown is ticking
	RoundStateRunning RoundState = "running"

	// RoundStateWon indicates the player guessed the answer in time
	RoundStateWon RoundState = "won"

	// RoundStateExpired indicates the countdown reached zero
	RoundStateExpired RoundState = "expired"
)

// Terminal reports whether no further transition is possible
func (s RoundState) Terminal() bool {
	return s == RoundStateWon || s == RoundStateExpired
}

// Round is a snapshot of one timed attempt at the day's answer
type Round struct {
	// ID identifies the round in logs and events
	ID string

	// Answer is the uppercase solution
	Answer string

	// DurationSeconds is the length of the countdown
	DurationSeconds int

	// ElapsedSeconds is how far the countdown has run
	ElapsedSeconds int

	// State is the current lifecycle state
	State RoundState

	// Gated is set when the play gate refused to start the round
	Gated bool

	// BlurPx is the current blur intensity
	BlurPx float64

	// Slots holds the player's guess, one string per position ("" when empty)
	Slots []string

	// Cursor is the position that receives the next character
	Cursor int

	// InputDisabled is set once the round can no longer accept guesses
	InputDisabled bool
}

// RemainingSeconds returns the seconds left on the countdown
func (r *Round) RemainingSeconds() int {
	remaining := r.DurationSeconds - r.ElapsedSeconds
	if remaining < 0 {
		return 0
	}
	return remaining
}
