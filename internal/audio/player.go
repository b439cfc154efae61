package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/blrd/internal/models"
)

// DefaultVolume is the linear gain applied to every cue
const DefaultVolume = 0.6

// Player plays cues without blocking the caller
type Player interface {
	Play(cue Cue)
	Close()
}

// Config holds configuration for a Player
type Config struct {
	// Enabled turns the speaker on; a silent player is returned otherwise
	Enabled bool

	// Volume is a linear gain, defaults to DefaultVolume
	Volume float64

	// Logger is optional
	Logger *zerolog.Logger
}

// New returns a speaker-backed player, or a silent one when sound is
// disabled or no audio device can be opened
func New(cfg *Config) Player {
	if cfg == nil || !cfg.Enabled {
		return Silent{}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "audio").Logger()
	}

	volume := cfg.Volume
	if volume == 0 {
		volume = DefaultVolume
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		return Silent{}
	}

	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	return &speakerPlayer{mixer: mixer, volume: volume, logger: logger}
}

type speakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	logger zerolog.Logger
	closed bool
}

func (p *speakerPlayer) Play(cue Cue) {
	s := Streamer(cue, p.volume)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	p.logger.Debug().Stringer("cue", cue).Msg("playing cue")
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *speakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Silent drops every cue
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}

// CueFor maps a round event to the cue it should sound, if any
func CueFor(e *models.Event) (Cue, bool) {
	switch e.Type {
	case models.EventGuessRejected:
		return CueIncorrect, true
	case models.EventGuessMatched:
		return CueSolved, true
	case models.EventClockStopped:
		if e.State == models.RoundStateExpired {
			return CueExpired, true
		}
	}
	return 0, false
}

// Listener returns a round listener that plays p's cue for each event
func Listener(p Player) func(*models.Event) {
	return func(e *models.Event) {
		if cue, ok := CueFor(e); ok {
			p.Play(cue)
		}
	}
}
