//go:build unit

package builder

import (
	"time"

	"barkeep/internal/domain/session"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	Token         string
	IsOrderPaused bool
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

func NewSessionBuilder() *SessionBuilder {
	now := time.Date(2025, 6, 21, 19, 0, 0, 0, time.UTC)
	return &SessionBuilder{
		ID:            uuid.New(),
		HostID:        uuid.New(),
		Token:         "abc123def456",
		IsOrderPaused: false,
		ExpiresAt:     now.Add(12 * time.Hour),
		CreatedAt:     now,
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) BuildDomain() *session.Session {
	s, err := session.ReconstructSession(b.ID, b.HostID, b.Token, b.IsOrderPaused, b.ExpiresAt, b.CreatedAt)
	if err != nil {
		panic("builder produced invalid session: " + err.Error())
	}
	return s
}
