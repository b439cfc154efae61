package score

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/blrd/internal/common/clock"
	"github.com/KirkDiggler/blrd/internal/models"
)

const (
	// DefaultKeyPrefix namespaces every key this package writes
	DefaultKeyPrefix = "blrd:"

	scoresKey     = "scores"
	lastPlayedKey = "lastPlayedTimestamp"
)

var (
	// ErrGateAmbiguous is returned when the last-played timestamp cannot be
	// trusted: unparsable or later than now
	ErrGateAmbiguous = errors.New("last played timestamp is ambiguous")

	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilInput  = errors.New("input cannot be nil")
	ErrNegative  = errors.New("score cannot be negative")
)

func keys(prefix string) (scores, lastPlayed string) {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return prefix + scoresKey, prefix + lastPlayedKey
}

// decodeHistory parses a stored JSON array of integers. Anything else,
// including negative entries, is reported as corrupt.
func decodeHistory(raw string) (models.ScoreHistory, error) {
	if strings.TrimSpace(raw) == "" {
		return models.ScoreHistory{}, nil
	}

	var history models.ScoreHistory
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
	}
	for i, s := range history {
		if s < 0 {
			return nil, fmt.Errorf("score %d at index %d: %w", s, i, ErrNegative)
		}
	}
	if history == nil {
		history = models.ScoreHistory{}
	}
	return history, nil
}

func encodeHistory(history models.ScoreHistory) (string, error) {
	if history == nil {
		history = models.ScoreHistory{}
	}
	b, err := json.Marshal(history)
	if err != nil {
		return "", fmt.Errorf("failed to marshal scores: %w", err)
	}
	return string(b), nil
}

func encodeTimestamp(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// decodeTimestamp accepts epoch milliseconds or RFC 3339
func decodeTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrGateAmbiguous, raw)
}

// playedToday compares the last-played time against the start of now's
// local day. A timestamp in the future is ambiguous.
func playedToday(last, now time.Time) (bool, error) {
	if last.After(now) {
		return false, fmt.Errorf("%w: %s is after %s", ErrGateAmbiguous, last.Format(time.RFC3339), now.Format(time.RFC3339))
	}
	return !last.Before(clock.StartOfDay(now)), nil
}

func storeLogger(l *zerolog.Logger, backend string) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return l.With().Str("store", backend).Logger()
}
