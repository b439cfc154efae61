package messaging

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/blrd/internal/models"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	svc *service
	ctx context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := New(&Config{Seed: 42})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestResultMessageTones() {
	tests := []struct {
		name  string
		input *GetResultMessageInput
		tone  MessageTone
	}{
		{"gated", &GetResultMessageInput{Gated: true, State: models.RoundStateNotStarted}, ToneNeutral},
		{"expired", &GetResultMessageInput{State: models.RoundStateExpired}, ToneEncouraging},
		{"personal best", &GetResultMessageInput{
			State: models.RoundStateWon, Score: 20,
			Stats: models.ScoreHistory{40, 20}.Stats(),
		}, ToneCelebration},
		{"fast first win", &GetResultMessageInput{
			State: models.RoundStateWon, Score: 9,
			Stats: models.ScoreHistory{9}.Stats(),
		}, ToneCelebration},
		{"slow win", &GetResultMessageInput{
			State: models.RoundStateWon, Score: 70,
			Stats: models.ScoreHistory{30, 70}.Stats(),
		}, ToneFunny},
		{"preferred tone wins", &GetResultMessageInput{
			State: models.RoundStateExpired, PreferredTone: ToneFunny,
		}, ToneFunny},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			out, err := s.svc.GetResultMessage(s.ctx, tt.input)
			s.Require().NoError(err)
			s.Equal(tt.tone, out.Tone)
			s.NotEmpty(out.Message)
		})
	}
}

func (s *MessagingServiceTestSuite) TestPersonalBestMentionsScore() {
	out, err := s.svc.GetResultMessage(s.ctx, &GetResultMessageInput{
		State: models.RoundStateWon,
		Score: 18,
		Stats: models.ScoreHistory{25, 18}.Stats(),
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "18 seconds")
}

func (s *MessagingServiceTestSuite) TestResultMessageRunningRound() {
	_, err := s.svc.GetResultMessage(s.ctx, &GetResultMessageInput{State: models.RoundStateRunning})
	s.Error(err)

	_, err = s.svc.GetResultMessage(s.ctx, nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestIncorrectGuessMessage() {
	s.Run("plenty of time", func() {
		out, err := s.svc.GetIncorrectGuessMessage(s.ctx, &GetIncorrectGuessMessageInput{Guess: "BEEF", Remaining: 60})
		s.Require().NoError(err)
		s.Equal(ToneFunny, out.Tone)
		s.NotEmpty(out.Message)
	})

	s.Run("hurry", func() {
		for i := 0; i < 20; i++ {
			out, err := s.svc.GetIncorrectGuessMessage(s.ctx, &GetIncorrectGuessMessageInput{Remaining: 7})
			s.Require().NoError(err)
			s.Equal(ToneEncouraging, out.Tone)
			if strings.HasPrefix(out.Message, "Only") {
				s.Equal("Only 7 seconds left!", out.Message)
			}
		}
	})
}

func (s *MessagingServiceTestSuite) TestSeedIsRepeatable() {
	other, err := New(&Config{Seed: 42})
	s.Require().NoError(err)

	input := &GetIncorrectGuessMessageInput{Guess: "CAT", Remaining: 50}
	for i := 0; i < 10; i++ {
		a, err := s.svc.GetIncorrectGuessMessage(s.ctx, input)
		s.Require().NoError(err)
		b, err := other.GetIncorrectGuessMessage(s.ctx, input)
		s.Require().NoError(err)
		s.Equal(a.Message, b.Message)
	}
}
