package guess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(b *Buffer, s string) {
	for i, r := range s {
		if r != '_' {
			b.SetChar(i, r)
		}
	}
}

func TestSetCharRejectsNonAlphanumeric(t *testing.T) {
	b := NewBuffer(3)

	for _, r := range []rune{' ', '-', '!', 'é', '\n', '_'} {
		assert.False(t, b.SetChar(0, r), "rune %q", r)
	}
	assert.False(t, b.Filled(0))

	assert.True(t, b.SetChar(0, 'a'))
	assert.True(t, b.SetChar(1, 'Z'))
	assert.True(t, b.SetChar(2, '7'))
	assert.Equal(t, "AZ7", b.Current())
}

func TestSetCharOutOfRangePanics(t *testing.T) {
	b := NewBuffer(2)

	assert.Panics(t, func() { b.SetChar(2, 'a') })
	assert.Panics(t, func() { b.SetChar(-1, 'a') })
	assert.Panics(t, func() { b.ClearAt(5) })
}

func TestMatchesIsCaseInsensitive(t *testing.T) {
	b := NewBuffer(4)
	fill(b, "bEeS")

	assert.True(t, b.Matches("BEES"))
	assert.True(t, b.Matches("bees"))
	assert.False(t, b.Matches("BEET"))
}

func TestPartialBufferNeverMatches(t *testing.T) {
	b := NewBuffer(6)
	fill(b, "CAST_E")

	assert.False(t, b.Full())
	assert.Equal(t, "CASTE", b.Current())
	assert.False(t, b.Matches("CASTLE"))
	assert.False(t, b.Matches("CASTE"))
}

func TestClear(t *testing.T) {
	b := NewBuffer(3)
	fill(b, "abc")

	b.Clear()

	assert.Equal(t, "", b.Current())
	assert.Equal(t, []string{"", "", ""}, b.Slots())
}

func TestRevealOverridesInput(t *testing.T) {
	b := NewBuffer(6)
	fill(b, "xx")

	b.Reveal("castle")

	require.True(t, b.Full())
	assert.Equal(t, []string{"C", "A", "S", "T", "L", "E"}, b.Slots())
	assert.True(t, b.Matches("CASTLE"))
}
