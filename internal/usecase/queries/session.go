package queries

import (
	"context"

	"barkeep/internal/infra"
	"barkeep/internal/pkg/clock"
	"barkeep/internal/pkg/errs"

	"github.com/google/uuid"
)

type SessionReadStore interface {
	FindByToken(ctx context.Context, token string) (*SessionView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
}

type SessionQueries interface {
	// ValidateToken resolves a guest share token. An expired session is
	// reported as expired, not missing, so clients can tell the party is over
	// rather than the link being wrong.
	ValidateToken(ctx context.Context, token string) (*SessionView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
}

type sessionQueriesImpl struct {
	store SessionReadStore
	clock clock.Clock
}

func NewSessionQueries(store SessionReadStore, clk clock.Clock) SessionQueries {
	return &sessionQueriesImpl{store: store, clock: clk}
}

func (q *sessionQueriesImpl) ValidateToken(ctx context.Context, token string) (*SessionView, error) {
	view, err := q.store.FindByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to look up session by token")
	}

	if !view.ExpiresAt.After(q.clock.Now()) {
		return nil, errs.ErrSessionExpired
	}
	return view, nil
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to look up session")
	}
	return view, nil
}
