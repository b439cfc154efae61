package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	now := time.Date(2026, 10, 15, 23, 59, 59, 0, loc)

	got := StartOfDay(now)

	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestDefaultClockTicker(t *testing.T) {
	c := &DefaultClock{}
	tk := c.NewTicker(time.Millisecond)
	defer tk.Stop()

	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("ticker never fired")
	}
}
