package tui

import (
	"sync"

	"github.com/KirkDiggler/blrd/internal/models"
)

// view is what the screen shows beyond the round snapshot
type view struct {
	incorrect bool
	card      *models.ScoreCard

	// quip is a flavour line for the last rejection or the score card
	quip string
}

// viewState collects events from the round goroutine for the draw loop
type viewState struct {
	mu sync.Mutex
	v  view
}

func (s *viewState) apply(e *models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e.Type {
	case models.EventGuessRejected:
		s.v.incorrect = true
		s.v.quip = ""
	case models.EventBufferChanged, models.EventGuessMatched:
		s.v.incorrect = false
		s.v.quip = ""
	case models.EventScoreCard:
		s.v.incorrect = false
		s.v.card = e.ScoreCard
		s.v.quip = ""
	}
}

func (s *viewState) setQuip(quip string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.quip = quip
}

func (s *viewState) get() view {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}
