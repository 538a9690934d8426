package session

import (
	"errors"
	"time"

	"barkeep/internal/pkg/token"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid share token")
	ErrAlreadyExpired = errors.New("session is already expired")
)

// Session is one time-bounded party. It is never hard-deleted: ending a party
// rewrites expiresAt into the past and the row becomes inert.
type Session struct {
	id            uuid.UUID
	hostID        uuid.UUID
	token         string
	isOrderPaused bool
	expiresAt     time.Time
	createdAt     time.Time
}

// NewSession issues a fresh session with a newly generated share token,
// valid for ttl from now.
func NewSession(hostID uuid.UUID, now time.Time, ttl time.Duration) (*Session, error) {
	shareToken, err := token.NewShareToken()
	if err != nil {
		return nil, err
	}

	return &Session{
		id:            uuid.New(),
		hostID:        hostID,
		token:         shareToken,
		isOrderPaused: false,
		expiresAt:     now.Add(ttl),
		createdAt:     now,
	}, nil
}

func ReconstructSession(
	id, hostID uuid.UUID,
	shareToken string,
	isOrderPaused bool,
	expiresAt, createdAt time.Time,
) (*Session, error) {
	if !token.Valid(shareToken) {
		return nil, ErrInvalidToken
	}
	return &Session{
		id:            id,
		hostID:        hostID,
		token:         shareToken,
		isOrderPaused: isOrderPaused,
		expiresAt:     expiresAt,
		createdAt:     createdAt,
	}, nil
}

// IsExpired uses a strict comparison: a session whose expiry equals now is
// already over. Expiry is evaluated lazily on access, never by a sweeper.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.expiresAt.After(now)
}

func (s *Session) AcceptsOrders(now time.Time) bool {
	return !s.IsExpired(now) && !s.isOrderPaused
}

// End forces expiry into the past. The operation is irreversible.
func (s *Session) End(now time.Time) error {
	if s.IsExpired(now) {
		return ErrAlreadyExpired
	}
	s.expiresAt = now.Add(-time.Second)
	return nil
}

func (s *Session) SetOrderPaused(paused bool) {
	s.isOrderPaused = paused
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) HostID() uuid.UUID    { return s.hostID }
func (s *Session) Token() string        { return s.token }
func (s *Session) IsOrderPaused() bool  { return s.isOrderPaused }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
