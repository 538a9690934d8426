//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barkeep/internal/infra"
	"barkeep/internal/pkg/clock"
	"barkeep/internal/pkg/errs"
	"barkeep/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionReadStore struct {
	byToken map[string]*queries.SessionView
}

func (s *stubSessionReadStore) FindByToken(_ context.Context, token string) (*queries.SessionView, error) {
	if v, ok := s.byToken[token]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("session not found", errors.New("no rows"), infra.KindNotFound)
}

func (s *stubSessionReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.SessionView, error) {
	for _, v := range s.byToken {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, infra.WrapRepoErr("session not found", errors.New("no rows"), infra.KindNotFound)
}

func TestSessionQueries_ValidateToken(t *testing.T) {
	now := time.Date(2025, 6, 21, 19, 0, 0, 0, time.UTC)

	view := &queries.SessionView{
		ID:        uuid.New(),
		HostID:    uuid.New(),
		Token:     "abc123def456",
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now.Add(-time.Hour),
	}
	store := &stubSessionReadStore{byToken: map[string]*queries.SessionView{view.Token: view}}

	t.Run("resolves a live token", func(t *testing.T) {
		q := queries.NewSessionQueries(store, clock.NewMockClock(now))
		got, err := q.ValidateToken(context.Background(), view.Token)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		q := queries.NewSessionQueries(store, clock.NewMockClock(now))
		_, err := q.ValidateToken(context.Background(), "zzzzzzzzzzzz")
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("a token expiring exactly now is expired, not missing", func(t *testing.T) {
		q := queries.NewSessionQueries(store, clock.NewMockClock(view.ExpiresAt))
		_, err := q.ValidateToken(context.Background(), view.Token)
		assert.ErrorIs(t, err, errs.ErrSessionExpired)
	})

	t.Run("one nanosecond before expiry is still valid", func(t *testing.T) {
		q := queries.NewSessionQueries(store, clock.NewMockClock(view.ExpiresAt.Add(-time.Nanosecond)))
		_, err := q.ValidateToken(context.Background(), view.Token)
		assert.NoError(t, err)
	})
}
