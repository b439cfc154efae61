package score

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/blrd/internal/models"
)

// RepositoryTestSuite holds the behaviour every backend must share. Backend
// suites embed it and set repo plus writeRaw in SetupTest.
type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    Repository
	testNow time.Time

	// writeRaw stores a value under an unprefixed key, bypassing the codec
	writeRaw func(key, value string)
}

func (s *RepositoryTestSuite) setupShared() {
	s.ctx = context.Background()
	s.testNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.Local)
}

func (s *RepositoryTestSuite) TestLoadEmptyHistory() {
	out, err := s.repo.LoadHistory(s.ctx, &LoadHistoryInput{})
	s.Require().NoError(err)
	s.Empty(out.History)
	s.False(out.Recovered)
	s.Equal(models.ScoreStats{Best: models.NoScore, Worst: models.NoScore}, out.History.Stats())
}

func (s *RepositoryTestSuite) TestAppendThenLoad() {
	for _, score := range []int{40, 78, 12} {
		_, err := s.repo.AppendScore(s.ctx, &AppendScoreInput{Score: score})
		s.Require().NoError(err)
	}

	appended, err := s.repo.AppendScore(s.ctx, &AppendScoreInput{Score: 55})
	s.Require().NoError(err)
	s.Equal(models.ScoreHistory{40, 78, 12, 55}, appended.History)

	out, err := s.repo.LoadHistory(s.ctx, &LoadHistoryInput{})
	s.Require().NoError(err)
	s.Equal(models.ScoreHistory{40, 78, 12, 55}, out.History)

	stats := out.History.Stats()
	s.Equal(12, stats.Best)
	s.Equal(78, stats.Worst)
	s.InDelta(46.25, stats.AvgLast5, 1e-9)
}

func (s *RepositoryTestSuite) TestAppendRejectsNegative() {
	_, err := s.repo.AppendScore(s.ctx, &AppendScoreInput{Score: -1})
	s.ErrorIs(err, ErrNegative)

	_, err = s.repo.AppendScore(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *RepositoryTestSuite) TestCorruptHistoryLoadsEmpty() {
	for _, raw := range []string{"not json", `{"a":1}`, `[1,"two"]`, `[5,-3]`} {
		s.writeRaw(DefaultKeyPrefix+scoresKey, raw)

		out, err := s.repo.LoadHistory(s.ctx, &LoadHistoryInput{})
		s.Require().NoError(err, raw)
		s.Empty(out.History, raw)
		s.True(out.Recovered, raw)
	}
}

func (s *RepositoryTestSuite) TestAppendOverCorruptHistory() {
	s.writeRaw(DefaultKeyPrefix+scoresKey, "garbage")

	out, err := s.repo.AppendScore(s.ctx, &AppendScoreInput{Score: 30})
	s.Require().NoError(err)
	s.Equal(models.ScoreHistory{30}, out.History)
}

func (s *RepositoryTestSuite) TestNeverPlayed() {
	played, err := s.repo.HasPlayedToday(s.ctx, &HasPlayedTodayInput{Now: s.testNow})
	s.Require().NoError(err)
	s.False(played)
}

func (s *RepositoryTestSuite) TestPlayGateSameDayAndNextDay() {
	err := s.repo.RecordPlayedToday(s.ctx, &RecordPlayedTodayInput{Now: s.testNow})
	s.Require().NoError(err)

	played, err := s.repo.HasPlayedToday(s.ctx, &HasPlayedTodayInput{Now: s.testNow.Add(13 * time.Hour)})
	s.Require().NoError(err)
	s.True(played, "same calendar day")

	tomorrow := time.Date(2026, 10, 16, 0, 0, 1, 0, time.Local)
	played, err = s.repo.HasPlayedToday(s.ctx, &HasPlayedTodayInput{Now: tomorrow})
	s.Require().NoError(err)
	s.False(played, "next calendar day")
}

func (s *RepositoryTestSuite) TestPlayGateFutureTimestampIsAmbiguous() {
	err := s.repo.RecordPlayedToday(s.ctx, &RecordPlayedTodayInput{Now: s.testNow.Add(time.Hour)})
	s.Require().NoError(err)

	played, err := s.repo.HasPlayedToday(s.ctx, &HasPlayedTodayInput{Now: s.testNow})
	s.ErrorIs(err, ErrGateAmbiguous)
	s.False(played)
}

func (s *RepositoryTestSuite) TestPlayGateUnreadableTimestamp() {
	s.writeRaw(DefaultKeyPrefix+lastPlayedKey, "yesterday-ish")

	played, err := s.repo.HasPlayedToday(s.ctx, &HasPlayedTodayInput{Now: s.testNow})
	s.ErrorIs(err, ErrGateAmbiguous)
	s.False(played)
}

func (s *RepositoryTestSuite) TestPlayGateAcceptsRFC3339() {
	s.writeRaw(DefaultKeyPrefix+lastPlayedKey, s.testNow.Add(-time.Hour).Format(time.RFC3339))

	played, err := s.repo.HasPlayedToday(s.ctx, &HasPlayedTodayInput{Now: s.testNow})
	s.Require().NoError(err)
	s.True(played)
}
