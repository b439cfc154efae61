// Package guess holds the per-position guess buffer and the cursor policy
// that moves focus between positions.
package guess

import (
	"fmt"
	"strings"
)

// Buffer is a fixed-length row of single-character slots
type Buffer struct {
	slots []rune
}

// NewBuffer creates an empty buffer with length slots
func NewBuffer(length int) *Buffer {
	return &Buffer{slots: make([]rune, length)}
}

// Len returns the number of slots
func (b *Buffer) Len() int {
	return len(b.slots)
}

// Valid reports whether ch is accepted in a slot
func Valid(ch rune) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}

// SetChar stores ch at pos. Characters outside [A-Za-z0-9] are ignored
// and false is returned. pos outside the buffer panics.
func (b *Buffer) SetChar(pos int, ch rune) bool {
	b.check(pos)
	if !Valid(ch) {
		return false
	}
	b.slots[pos] = ch
	return true
}

// ClearAt empties the slot at pos
func (b *Buffer) ClearAt(pos int) {
	b.check(pos)
	b.slots[pos] = 0
}

// Clear empties every slot
func (b *Buffer) Clear() {
	for i := range b.slots {
		b.slots[i] = 0
	}
}

// Filled reports whether pos holds a character
func (b *Buffer) Filled(pos int) bool {
	b.check(pos)
	return b.slots[pos] != 0
}

// Full reports whether every slot holds a character
func (b *Buffer) Full() bool {
	for _, r := range b.slots {
		if r == 0 {
			return false
		}
	}
	return true
}

// Current concatenates the slots, skipping empty ones, folded to upper case
func (b *Buffer) Current() string {
	var sb strings.Builder
	for _, r := range b.slots {
		if r != 0 {
			sb.WriteRune(r)
		}
	}
	return strings.ToUpper(sb.String())
}

// Matches reports whether the buffer is full and equals answer ignoring case
func (b *Buffer) Matches(answer string) bool {
	if !b.Full() {
		return false
	}
	return strings.EqualFold(b.Current(), answer)
}

// Reveal overwrites every slot with the answer, bypassing validation
func (b *Buffer) Reveal(answer string) {
	answer = strings.ToUpper(answer)
	for i := range b.slots {
		if i < len(answer) {
			b.slots[i] = rune(answer[i])
		} else {
			b.slots[i] = 0
		}
	}
}

// Slots returns the slots as strings, "" for empty ones
func (b *Buffer) Slots() []string {
	out := make([]string, len(b.slots))
	for i, r := range b.slots {
		if r != 0 {
			out[i] = strings.ToUpper(string(r))
		}
	}
	return out
}

func (b *Buffer) check(pos int) {
	if pos < 0 || pos >= len(b.slots) {
		panic(fmt.Sprintf("guess: position %d out of range [0,%d)", pos, len(b.slots)))
	}
}
