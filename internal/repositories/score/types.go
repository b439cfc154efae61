package score

import (
	"time"

	"github.com/KirkDiggler/blrd/internal/models"
)

type LoadHistoryInput struct {
}

type LoadHistoryOutput struct {
	History models.ScoreHistory

	// Recovered is set when stored data was unreadable and was discarded
	Recovered bool
}

type AppendScoreInput struct {
	Score int
}

type AppendScoreOutput struct {
	History models.ScoreHistory
}

type HasPlayedTodayInput struct {
	Now time.Time
}

type RecordPlayedTodayInput struct {
	Now time.Time
}
