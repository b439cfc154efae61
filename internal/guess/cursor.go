package guess

// Key is the kind of keystroke applied to a position
type Key int

const (
	// KeyChar is a character that was just stored at the position
	KeyChar Key = iota

	// KeyBackspace erases at or before the position
	KeyBackspace
)

// Move is where focus goes after a key, and which slot to clear, if any
type Move struct {
	Index int

	// Clear is the slot to empty, -1 for none
	Clear int
}

// Focus computes the next cursor position from the current index, the
// buffer contents and the key pressed. It does not modify the buffer.
//
// After a character, focus advances to the next empty slot after index.
// With nothing empty ahead it moves one slot on, stopping at the last.
// Backspace on a filled slot clears it in place; on an empty slot focus
// retreats one position and that slot is cleared.
func Focus(index int, b *Buffer, key Key) Move {
	last := b.Len() - 1
	if last < 0 {
		return Move{Index: 0, Clear: -1}
	}
	if index < 0 {
		index = 0
	}
	if index > last {
		index = last
	}

	switch key {
	case KeyChar:
		for i := index + 1; i <= last; i++ {
			if !b.Filled(i) {
				return Move{Index: i, Clear: -1}
			}
		}
		if index+1 <= last {
			return Move{Index: index + 1, Clear: -1}
		}
		return Move{Index: last, Clear: -1}
	case KeyBackspace:
		if b.Filled(index) {
			return Move{Index: index, Clear: index}
		}
		if index == 0 {
			return Move{Index: 0, Clear: -1}
		}
		return Move{Index: index - 1, Clear: index - 1}
	}

	return Move{Index: index, Clear: -1}
}
