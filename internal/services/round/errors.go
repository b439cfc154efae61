package round

// RoundError is a custom error type for round-related errors
type RoundError string

// Error implements the error interface
func (e RoundError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          RoundError = "config cannot be nil"
	ErrNilScoreRepo       RoundError = "score repository cannot be nil"
	ErrNilClock           RoundError = "clock cannot be nil"
	ErrNilUUIDGenerator   RoundError = "UUID generator cannot be nil"
	ErrEmptyAnswer        RoundError = "answer cannot be empty"
	ErrInvalidAnswer      RoundError = "answer must contain only letters or digits"
	ErrInvalidDuration    RoundError = "duration must be positive"
	ErrInvalidRoundState  RoundError = "invalid round state"
	ErrPositionOutOfRange RoundError = "position out of range"
	ErrUnknownInput       RoundError = "unknown input kind"
)
