package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/blrd/internal/models"
	"github.com/KirkDiggler/blrd/internal/services/round"
)

// action is what a key press asks for
type action int

const (
	actionNone action = iota
	actionInput
	actionQuit
)

// inputFor maps a key to a round input. Typing is always forwarded; the
// round ignores it unless it is running.
func inputFor(ev *tcell.EventKey, r *models.Round) (round.Input, action) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return round.Input{}, actionQuit
	case tcell.KeyEnter:
		if r.State == models.RoundStateNotStarted && !r.Gated {
			return round.Input{Kind: round.InputPlay}, actionInput
		}
		if !r.State.Terminal() && !r.Gated {
			return round.Input{Kind: round.InputSubmit}, actionInput
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return round.Input{Kind: round.InputBackspace, AtCursor: true}, actionInput
	case tcell.KeyRune:
		return round.Input{Kind: round.InputSetChar, AtCursor: true, Char: ev.Rune()}, actionInput
	}
	return round.Input{}, actionNone
}
