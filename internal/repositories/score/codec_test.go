package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/blrd/internal/models"
)

func TestDecodeHistory(t *testing.T) {
	h, err := decodeHistory("")
	require.NoError(t, err)
	assert.Equal(t, models.ScoreHistory{}, h)

	h, err = decodeHistory("null")
	require.NoError(t, err)
	assert.Equal(t, models.ScoreHistory{}, h)

	h, err = decodeHistory("[1, 2 ,3]")
	require.NoError(t, err)
	assert.Equal(t, models.ScoreHistory{1, 2, 3}, h)

	_, err = decodeHistory("[1.5]")
	assert.Error(t, err)

	_, err = decodeHistory("[-1]")
	assert.ErrorIs(t, err, ErrNegative)
}

func TestTimestampRoundTrip(t *testing.T) {
	now := time.Date(2026, 10, 15, 8, 30, 0, 0, time.Local)

	got, err := decodeTimestamp(encodeTimestamp(now))
	require.NoError(t, err)
	assert.True(t, now.Equal(got))

	_, err = decodeTimestamp("soon")
	assert.ErrorIs(t, err, ErrGateAmbiguous)
}

func TestPlayedToday(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.Local)
	midnight := time.Date(2026, 10, 15, 0, 0, 0, 0, time.Local)

	played, err := playedToday(midnight, now)
	require.NoError(t, err)
	assert.True(t, played)

	played, err = playedToday(midnight.Add(-time.Millisecond), now)
	require.NoError(t, err)
	assert.False(t, played)

	_, err = playedToday(now.Add(time.Second), now)
	assert.ErrorIs(t, err, ErrGateAmbiguous)
}

func TestKeys(t *testing.T) {
	scores, last := keys("")
	assert.Equal(t, "blrd:scores", scores)
	assert.Equal(t, "blrd:lastPlayedTimestamp", last)

	scores, _ = keys("x/")
	assert.Equal(t, "x/scores", scores)
}
