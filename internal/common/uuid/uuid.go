package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/blrd/internal/common/uuid UUID

// UUID hands out round IDs
type UUID interface {
	NewUUID() string
}

// DefaultUUID issues version 7 UUIDs so round IDs sort by start time
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a time-ordered round ID. If the v7 generator fails it
// falls back to a random v4 ID.
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
