// Package roundclock counts a round down one tick at a time and derives
// the blur intensity from the elapsed time.
package roundclock

import (
	"errors"
	"time"

	"github.com/KirkDiggler/blrd/internal/common/clock"
)

const (
	// DefaultDuration is the length of a round in seconds
	DefaultDuration = 90

	// DefaultInitialBlur is the blur at elapsed zero, in pixels
	DefaultInitialBlur = 15.0

	// DefaultInterval is the wall time between ticks
	DefaultInterval = time.Second
)

var (
	ErrNilClock        = errors.New("clock cannot be nil")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrAlreadyStarted  = errors.New("round clock already started")
)

// Config holds configuration for a round clock
type Config struct {
	// Clock supplies the ticker
	Clock clock.Clock

	// Duration is the countdown length in seconds
	Duration int

	// InitialBlur is the blur at elapsed zero
	InitialBlur float64

	// Interval is the wall time per tick; one tick is one counted second
	Interval time.Duration
}

// Tick is emitted for every counted second
type Tick struct {
	Elapsed   int
	Remaining int
	BlurPx    float64

	// Expired is set on the final tick only
	Expired bool
}

// RoundClock is the only writer of a round's elapsed time
type RoundClock struct {
	clock       clock.Clock
	duration    int
	initialBlur float64
	interval    time.Duration

	elapsed int
	ticker  clock.Ticker
	started bool
	stopped bool
	expired bool
}

// New creates a stopped round clock
func New(cfg *Config) (*RoundClock, error) {
	if cfg == nil || cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.Duration <= 0 {
		return nil, ErrInvalidDuration
	}

	initialBlur := cfg.InitialBlur
	if initialBlur <= 0 {
		initialBlur = DefaultInitialBlur
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &RoundClock{
		clock:       cfg.Clock,
		duration:    cfg.Duration,
		initialBlur: initialBlur,
		interval:    interval,
	}, nil
}

// BlurPx returns initialBlur * (1 - elapsed/duration) clamped to [0, initialBlur]
func BlurPx(elapsed, duration int, initialBlur float64) float64 {
	if duration <= 0 {
		return 0
	}
	blur := initialBlur * (1 - float64(elapsed)/float64(duration))
	if blur < 0 {
		return 0
	}
	if blur > initialBlur {
		return initialBlur
	}
	return blur
}

// Start begins the countdown. A clock can only be started once.
func (c *RoundClock) Start() error {
	if c.started {
		return ErrAlreadyStarted
	}
	c.started = true
	c.ticker = c.clock.NewTicker(c.interval)
	return nil
}

// Ticks returns the tick channel while running and nil otherwise, so a
// select on it never fires once the clock has stopped
func (c *RoundClock) Ticks() <-chan time.Time {
	if !c.Running() {
		return nil
	}
	return c.ticker.C()
}

// Advance counts one second. It returns false when the clock is not running.
// When the countdown reaches zero the returned tick is marked Expired and
// the clock stops itself.
func (c *RoundClock) Advance() (Tick, bool) {
	if !c.Running() {
		return Tick{}, false
	}

	c.elapsed++
	tick := c.Current()
	if tick.Remaining <= 0 {
		c.expired = true
		tick.Expired = true
		c.Stop()
	}
	return tick, true
}

// Stop halts ticking. Calling it more than once has no further effect.
func (c *RoundClock) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	if c.ticker != nil {
		c.ticker.Stop()
	}
}

// Current reports the clock's position without advancing it
func (c *RoundClock) Current() Tick {
	remaining := c.duration - c.elapsed
	if remaining < 0 {
		remaining = 0
	}
	return Tick{
		Elapsed:   c.elapsed,
		Remaining: remaining,
		BlurPx:    BlurPx(c.elapsed, c.duration, c.initialBlur),
		Expired:   c.expired,
	}
}

// Running reports whether the clock has started and not stopped
func (c *RoundClock) Running() bool {
	return c.started && !c.stopped
}

// Expired reports whether the countdown ran out
func (c *RoundClock) Expired() bool {
	return c.expired
}

// Duration returns the countdown length in seconds
func (c *RoundClock) Duration() int {
	return c.duration
}

// InitialBlur returns the blur at elapsed zero
func (c *RoundClock) InitialBlur() float64 {
	return c.initialBlur
}
