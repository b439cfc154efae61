package score

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/blrd/internal/repositories/score Repository

import (
	"context"
)

// Repository persists the score history and the play gate on this device
type Repository interface {
	// LoadHistory returns every recorded score. Missing or corrupt data
	// yields an empty history, not an error.
	LoadHistory(ctx context.Context, input *LoadHistoryInput) (*LoadHistoryOutput, error)

	// AppendScore adds a score to the end of the history
	AppendScore(ctx context.Context, input *AppendScoreInput) (*AppendScoreOutput, error)

	// HasPlayedToday reports whether a round was started on input.Now's local day
	HasPlayedToday(ctx context.Context, input *HasPlayedTodayInput) (bool, error)

	// RecordPlayedToday stores input.Now as the last-played timestamp
	RecordPlayedToday(ctx context.Context, input *RecordPlayedTodayInput) error
}
