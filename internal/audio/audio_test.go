package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/blrd/internal/models"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if v := smp[0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	n, peak := drain(t, NewTone(440, 100*time.Millisecond, WaveSine, SampleRate))
	assert.Equal(t, SampleRate.N(100*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.9)
}

func TestSquareWaveIsBinary(t *testing.T) {
	buf := make([][2]float64, 64)
	n, ok := NewTone(220, 10*time.Millisecond, WaveSquare, SampleRate).Stream(buf)
	require.True(t, ok)
	for _, smp := range buf[:n] {
		assert.Contains(t, []float64{-1, 1}, smp[0])
		assert.Equal(t, smp[0], smp[1])
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	d := 50 * time.Millisecond
	s := NewEnvelope(NewTone(440, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate)

	buf := make([][2]float64, SampleRate.N(d))
	n, _ := s.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Equal(t, 0.0, buf[0][0])
	assert.Less(t, abs(buf[n-1][0]), 0.01)
	assert.Equal(t, 1.0, abs(buf[n/2][0]))
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		cue  Cue
		want int
	}{
		{CueIncorrect, SampleRate.N(incorrectLength)},
		{CueSolved, SampleRate.N(noteLength) + SampleRate.N(2*noteLength)},
		{CueExpired, SampleRate.N(expiredLength)},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			n, peak := drain(t, Streamer(tt.cue, 1))
			assert.Equal(t, tt.want, n)
			assert.Greater(t, peak, 0.0)
		})
	}

	assert.Nil(t, Streamer(Cue(99), 1))
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, Incorrect(0))
	assert.Equal(t, 0.0, peak)
}

type recordingPlayer struct {
	cues []Cue
}

func (r *recordingPlayer) Play(c Cue) { r.cues = append(r.cues, c) }
func (r *recordingPlayer) Close()     {}

func TestListenerMapsEvents(t *testing.T) {
	p := &recordingPlayer{}
	l := Listener(p)

	for _, e := range []*models.Event{
		{Type: models.EventTick, State: models.RoundStateRunning},
		{Type: models.EventGuessRejected, State: models.RoundStateRunning},
		{Type: models.EventClockStopped, State: models.RoundStateWon},
		{Type: models.EventGuessMatched, State: models.RoundStateWon},
		{Type: models.EventClockStopped, State: models.RoundStateExpired},
	} {
		l(e)
	}

	assert.Equal(t, []Cue{CueIncorrect, CueSolved, CueExpired}, p.cues)
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	assert.Equal(t, Silent{}, New(nil))
	assert.Equal(t, Silent{}, New(&Config{Enabled: false}))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
