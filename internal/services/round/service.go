package round

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/blrd/internal/common/clock"
	"github.com/KirkDiggler/blrd/internal/guess"
	"github.com/KirkDiggler/blrd/internal/models"
	scoreRepo "github.com/KirkDiggler/blrd/internal/repositories/score"
	"github.com/KirkDiggler/blrd/internal/roundclock"
)

// service implements the Service interface
type service struct {
	// mu guards everything below; listeners are called after it is released
	mu sync.Mutex

	id            string
	answer        string
	fallbackScore int

	scoreRepo scoreRepo.Repository
	clock     clock.Clock
	logger    zerolog.Logger

	roundClock *roundclock.RoundClock
	buffer     *guess.Buffer

	state         models.RoundState
	gated         bool
	cursor        int
	inputDisabled bool

	listeners      map[int]Listener
	listenerOrder  []int
	nextListenerID int
}

// New creates a round in the NotStarted state
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	answer := strings.ToUpper(strings.TrimSpace(cfg.Answer))
	if answer == "" {
		return nil, ErrEmptyAnswer
	}
	for _, r := range answer {
		if !guess.Valid(r) {
			return nil, ErrInvalidAnswer
		}
	}

	duration := cfg.DurationSeconds
	if duration == 0 {
		duration = roundclock.DefaultDuration
	}
	if duration < 0 {
		return nil, ErrInvalidDuration
	}

	rc, err := roundclock.New(&roundclock.Config{
		Clock:       cfg.Clock,
		Duration:    duration,
		InitialBlur: cfg.InitialBlur,
		Interval:    cfg.TickInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create round clock: %w", err)
	}

	id := cfg.UUIDGenerator.NewUUID()

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("round_id", id).Logger()
	}

	return &service{
		id:            id,
		answer:        answer,
		fallbackScore: cfg.FallbackScore,
		scoreRepo:     cfg.ScoreRepo,
		clock:         cfg.Clock,
		logger:        logger,
		roundClock:    rc,
		buffer:        guess.NewBuffer(len(answer)),
		state:         models.RoundStateNotStarted,
		listeners:     make(map[int]Listener),
	}, nil
}

// Play starts the countdown unless a round was already started today, in
// which case the answer and the last score are shown instead
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	s.mu.Lock()

	if s.gated {
		events := s.gatedViewLocked(ctx)
		round := s.snapshotLocked()
		s.mu.Unlock()
		s.emit(events)
		return &PlayOutput{Gated: true, Round: round, Events: events}, nil
	}

	if s.state != models.RoundStateNotStarted {
		s.mu.Unlock()
		return nil, ErrInvalidRoundState
	}

	now := s.clock.Now()
	played, err := s.scoreRepo.HasPlayedToday(ctx, &scoreRepo.HasPlayedTodayInput{Now: now})
	if err != nil {
		// Gate errors permit play.
		s.logger.Warn().Err(err).Msg("play gate check failed, permitting play")
		played = false
	}

	if played {
		s.gated = true
		s.inputDisabled = true
		s.buffer.Reveal(s.answer)
		events := s.gatedViewLocked(ctx)
		round := s.snapshotLocked()
		s.mu.Unlock()

		s.logger.Info().Msg("already played today, showing last score")
		s.emit(events)
		return &PlayOutput{Gated: true, Round: round, Events: events}, nil
	}

	if err := s.scoreRepo.RecordPlayedToday(ctx, &scoreRepo.RecordPlayedTodayInput{Now: now}); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record play date")
	}

	if err := s.roundClock.Start(); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to start round clock: %w", err)
	}
	s.state = models.RoundStateRunning
	s.cursor = 0

	events := []*models.Event{
		s.eventLocked(models.EventRoundStarted),
		s.eventLocked(models.EventTick),
	}
	round := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info().Int("duration", round.DurationSeconds).Msg("round started")
	s.emit(events)

	return &PlayOutput{Started: true, Round: round, Events: events}, nil
}

// gatedViewLocked builds the terminal view for a refused round
func (s *service) gatedViewLocked(ctx context.Context) []*models.Event {
	history := s.loadHistoryLocked(ctx)
	last, ok := history.Last()
	if !ok {
		last = s.fallbackScore
	}

	card := &models.ScoreCard{
		Solved: ok,
		Score:  last,
		Stats:  history.Stats(),
	}
	if ok {
		card.Share = shareCaption(last)
	}

	revealed := s.eventLocked(models.EventAnswerRevealed)
	revealed.Answer = s.answer
	scored := s.eventLocked(models.EventScoreCard)
	scored.ScoreCard = card

	return []*models.Event{
		revealed,
		s.eventLocked(models.EventInputDisabled),
		scored,
	}
}

// SetChar stores a character and moves the cursor forward
func (s *service) SetChar(ctx context.Context, input *SetCharInput) (*SetCharOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.mu.Lock()

	if !s.acceptingInputLocked() {
		round := s.snapshotLocked()
		s.mu.Unlock()
		return &SetCharOutput{Round: round}, nil
	}
	if input.Position < 0 || input.Position >= s.buffer.Len() {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %d", ErrPositionOutOfRange, input.Position)
	}

	if !s.buffer.SetChar(input.Position, input.Char) {
		round := s.snapshotLocked()
		s.mu.Unlock()
		return &SetCharOutput{Round: round}, nil
	}

	move := guess.Focus(input.Position, s.buffer, guess.KeyChar)
	s.cursor = move.Index

	events := []*models.Event{s.eventLocked(models.EventBufferChanged)}
	round := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(events)
	return &SetCharOutput{Accepted: true, Round: round, Events: events}, nil
}

// Backspace clears the box at Position, or the one before it when it is already empty
func (s *service) Backspace(ctx context.Context, input *BackspaceInput) (*BackspaceOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.mu.Lock()

	if !s.acceptingInputLocked() {
		round := s.snapshotLocked()
		s.mu.Unlock()
		return &BackspaceOutput{Round: round}, nil
	}
	if input.Position < 0 || input.Position >= s.buffer.Len() {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %d", ErrPositionOutOfRange, input.Position)
	}

	move := guess.Focus(input.Position, s.buffer, guess.KeyBackspace)
	if move.Clear >= 0 {
		s.buffer.ClearAt(move.Clear)
	}
	s.cursor = move.Index

	events := []*models.Event{s.eventLocked(models.EventBufferChanged)}
	round := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(events)
	return &BackspaceOutput{Round: round, Events: events}, nil
}

// Submit wins the round on a full, matching guess. Anything else clears
// the boxes and returns focus to the first one.
func (s *service) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	s.mu.Lock()

	if !s.acceptingInputLocked() {
		round := s.snapshotLocked()
		s.mu.Unlock()
		return &SubmitOutput{Round: round}, nil
	}

	if !s.buffer.Matches(s.answer) {
		guessed := s.buffer.Current()
		s.logger.Debug().Str("guess", guessed).Msg("incorrect guess")
		s.buffer.Clear()
		s.cursor = 0

		rejected := s.eventLocked(models.EventGuessRejected)
		rejected.Guess = guessed
		events := []*models.Event{rejected}
		round := s.snapshotLocked()
		s.mu.Unlock()

		s.emit(events)
		return &SubmitOutput{Round: round, Events: events}, nil
	}

	s.roundClock.Stop()
	tick := s.roundClock.Current()
	score := s.roundClock.Duration() - tick.Remaining
	s.state = models.RoundStateWon
	s.inputDisabled = true

	history := s.appendScoreLocked(ctx, score)
	card := &models.ScoreCard{
		Solved: true,
		Score:  score,
		Stats:  history.Stats(),
		Share:  shareCaption(score),
	}

	matched := s.eventLocked(models.EventGuessMatched)
	matched.Matched = true
	scored := s.eventLocked(models.EventScoreCard)
	scored.ScoreCard = card

	events := []*models.Event{
		s.eventLocked(models.EventClockStopped),
		matched,
		s.eventLocked(models.EventInputDisabled),
		scored,
	}
	round := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info().Int("score", score).Msg("round won")
	s.emit(events)

	return &SubmitOutput{Matched: true, ScoreCard: card, Round: round, Events: events}, nil
}

// Tick counts one second; the final second expires the round
func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	s.mu.Lock()

	if s.state != models.RoundStateRunning {
		round := s.snapshotLocked()
		s.mu.Unlock()
		return &TickOutput{Round: round}, nil
	}

	tick, ok := s.roundClock.Advance()
	if !ok {
		round := s.snapshotLocked()
		s.mu.Unlock()
		return &TickOutput{Round: round}, nil
	}

	if !tick.Expired {
		events := []*models.Event{s.eventLocked(models.EventTick)}
		round := s.snapshotLocked()
		s.mu.Unlock()

		s.emit(events)
		return &TickOutput{Advanced: true, Round: round, Events: events}, nil
	}

	s.roundClock.Stop()
	s.state = models.RoundStateExpired
	s.inputDisabled = true
	s.buffer.Reveal(s.answer)

	// Expired rounds never record a score.
	history := s.loadHistoryLocked(ctx)

	revealed := s.eventLocked(models.EventAnswerRevealed)
	revealed.Answer = s.answer
	scored := s.eventLocked(models.EventScoreCard)
	scored.ScoreCard = &models.ScoreCard{Stats: history.Stats()}

	events := []*models.Event{
		s.eventLocked(models.EventTick),
		s.eventLocked(models.EventClockStopped),
		revealed,
		s.eventLocked(models.EventInputDisabled),
		scored,
	}
	round := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info().Msg("round expired")
	s.emit(events)

	return &TickOutput{Advanced: true, Expired: true, Round: round, Events: events}, nil
}

// Snapshot returns a copy of the round
func (s *service) Snapshot() *models.Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a listener
func (s *service) Subscribe(listener Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	s.listenerOrder = append(s.listenerOrder, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
		for i, v := range s.listenerOrder {
			if v == id {
				s.listenerOrder = append(s.listenerOrder[:i], s.listenerOrder[i+1:]...)
				break
			}
		}
	}
}

// Run is the round's event loop. Ticks and inputs are handled one at a
// time, so a guess and an expiry can never interleave.
func (s *service) Run(ctx context.Context, inputs <-chan Input) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.ticks():
			if _, err := s.Tick(ctx, &TickInput{}); err != nil {
				s.logger.Error().Err(err).Msg("tick failed")
			}
		case in, ok := <-inputs:
			if !ok {
				return nil
			}
			if err := s.dispatch(ctx, in); err != nil {
				s.logger.Warn().Err(err).Int("kind", int(in.Kind)).Msg("input rejected")
			}
		}
	}
}

func (s *service) dispatch(ctx context.Context, in Input) error {
	if in.AtCursor {
		s.mu.Lock()
		in.Position = s.cursor
		s.mu.Unlock()
	}

	var err error
	switch in.Kind {
	case InputPlay:
		_, err = s.Play(ctx, &PlayInput{})
	case InputSetChar:
		_, err = s.SetChar(ctx, &SetCharInput{Position: in.Position, Char: in.Char})
	case InputBackspace:
		_, err = s.Backspace(ctx, &BackspaceInput{Position: in.Position})
	case InputSubmit:
		_, err = s.Submit(ctx, &SubmitInput{})
	default:
		err = ErrUnknownInput
	}
	return err
}

// ticks is nil unless the countdown is running
func (s *service) ticks() <-chan time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roundClock.Ticks()
}

func (s *service) emit(events []*models.Event) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, id := range s.listenerOrder {
		if l, ok := s.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	s.mu.Unlock()

	for _, e := range events {
		for _, l := range listeners {
			l(e)
		}
	}
}

func (s *service) acceptingInputLocked() bool {
	return s.state == models.RoundStateRunning && !s.inputDisabled
}

func (s *service) blurLocked() float64 {
	if s.state != models.RoundStateRunning {
		if s.state == models.RoundStateNotStarted && !s.gated {
			return s.roundClock.InitialBlur()
		}
		return 0
	}
	return s.roundClock.Current().BlurPx
}

func (s *service) snapshotLocked() *models.Round {
	tick := s.roundClock.Current()
	return &models.Round{
		ID:              s.id,
		Answer:          s.answer,
		DurationSeconds: s.roundClock.Duration(),
		ElapsedSeconds:  tick.Elapsed,
		State:           s.state,
		Gated:           s.gated,
		BlurPx:          s.blurLocked(),
		Slots:           s.buffer.Slots(),
		Cursor:          s.cursor,
		InputDisabled:   s.inputDisabled,
	}
}

func (s *service) eventLocked(t models.EventType) *models.Event {
	tick := s.roundClock.Current()
	return &models.Event{
		Type:      t,
		RoundID:   s.id,
		State:     s.state,
		Elapsed:   tick.Elapsed,
		Remaining: tick.Remaining,
		BlurPx:    s.blurLocked(),
		Cursor:    s.cursor,
		Slots:     s.buffer.Slots(),
	}
}

// loadHistoryLocked treats any load failure as an empty history
func (s *service) loadHistoryLocked(ctx context.Context) models.ScoreHistory {
	out, err := s.scoreRepo.LoadHistory(ctx, &scoreRepo.LoadHistoryInput{})
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load score history")
		return models.ScoreHistory{}
	}
	if out.Recovered {
		s.logger.Warn().Msg("score history was corrupt and has been reset")
	}
	return out.History
}

// appendScoreLocked persists score and returns the history including it.
// Storage is best effort: on failure the score still counts for this card.
func (s *service) appendScoreLocked(ctx context.Context, score int) models.ScoreHistory {
	out, err := s.scoreRepo.AppendScore(ctx, &scoreRepo.AppendScoreInput{Score: score})
	if err != nil {
		s.logger.Error().Err(err).Int("score", score).Msg("failed to save score")
		return append(s.loadHistoryLocked(ctx), score)
	}
	return out.History
}

func shareCaption(score int) string {
	return fmt.Sprintf("I solved today's BLRD game in %d seconds!", score)
}
