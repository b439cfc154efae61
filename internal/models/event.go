package models

// EventType identifies what changed in a round
type EventType string

const (
	EventRoundStarted   EventType = "round_started"
	EventTick           EventType = "tick"
	EventBufferChanged  EventType = "buffer_changed"
	EventGuessRejected  EventType = "guess_rejected"
	EventGuessMatched   EventType = "guess_matched"
	EventAnswerRevealed EventType = "answer_revealed"
	EventInputDisabled  EventType = "input_disabled"
	EventClockStopped   EventType = "clock_stopped"
	EventScoreCard      EventType = "score_card"
)

// Event is published to the presentation layer on every round change
type Event struct {
	Type    EventType
	RoundID string
	State   RoundState

	// Elapsed, Remaining and BlurPx are set on every event
	Elapsed   int
	Remaining int
	BlurPx    float64

	// Cursor and Slots describe the guess boxes
	Cursor int
	Slots  []string

	// Matched is set on guess_matched
	Matched bool

	// Guess is the rejected guess on guess_rejected
	Guess string

	// Answer is set on answer_revealed
	Answer string

	// ScoreCard is set on score_card
	ScoreCard *ScoreCard
}
