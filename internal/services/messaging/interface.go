package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/blrd/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetResultMessage returns a line to show with the score card
	GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error)

	// GetIncorrectGuessMessage returns a line to show after a wrong guess
	GetIncorrectGuessMessage(ctx context.Context, input *GetIncorrectGuessMessageInput) (*GetIncorrectGuessMessageOutput, error)
}
