// Package audio synthesises the short cues played when a guess is wrong,
// when the round is solved and when the countdown runs out.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every cue is rendered at
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound
type Cue int

const (
	CueIncorrect Cue = iota
	CueSolved
	CueExpired
)

// String returns the cue name used in logs
func (c Cue) String() string {
	switch c {
	case CueIncorrect:
		return "incorrect"
	case CueSolved:
		return "solved"
	case CueExpired:
		return "expired"
	}
	return "unknown"
}

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a fixed-length oscillator gliding linearly from one frequency to another
type tone struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	pos      int
	length   int
}

// NewTone returns a streamer of d at freq
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, d, wave, rate)
}

// NewGlide returns a streamer sweeping from one frequency to another over d
func NewGlide(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{from: from, to: to, wave: wave, rate: rate, length: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		}
		samples[i][0] = v
		samples[i][1] = v

		freq := t.from + (t.to-t.from)*float64(t.pos)/float64(t.length)
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope ramps volume up over attack and down over release
type envelope struct {
	s       beep.Streamer
	attack  int
	release int
	length  int
	pos     int
}

// NewEnvelope shapes s, which is expected to last d
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{s: s, attack: rate.N(attack), release: rate.N(release), length: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.length - e.pos; e.release > 0 && left < e.release {
			gain = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales s by a linear gain; zero or less is silent
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

const (
	incorrectLength = 180 * time.Millisecond
	noteLength      = 120 * time.Millisecond
	expiredLength   = 600 * time.Millisecond
	attackLength    = 5 * time.Millisecond
)

// Incorrect is a low saw buzz
func Incorrect(volume float64) beep.Streamer {
	buzz := NewTone(110, incorrectLength, WaveSaw, SampleRate)
	return withVolume(NewEnvelope(buzz, incorrectLength, attackLength, 60*time.Millisecond, SampleRate), volume)
}

// Solved is a rising two-note chime (B5, E6)
func Solved(volume float64) beep.Streamer {
	first := NewEnvelope(NewTone(987.77, noteLength, WaveSquare, SampleRate), noteLength, attackLength, 40*time.Millisecond, SampleRate)
	second := NewEnvelope(NewTone(1318.51, 2*noteLength, WaveSquare, SampleRate), 2*noteLength, attackLength, 150*time.Millisecond, SampleRate)
	return withVolume(beep.Seq(first, second), volume*0.5)
}

// Expired is a falling sine from A4 to A3
func Expired(volume float64) beep.Streamer {
	fall := NewGlide(440, 220, expiredLength, WaveSine, SampleRate)
	return withVolume(NewEnvelope(fall, expiredLength, attackLength, 250*time.Millisecond, SampleRate), volume)
}

// Streamer renders cue at volume, nil for unknown cues
func Streamer(cue Cue, volume float64) beep.Streamer {
	switch cue {
	case CueIncorrect:
		return Incorrect(volume)
	case CueSolved:
		return Solved(volume)
	case CueExpired:
		return Expired(volume)
	}
	return nil
}
