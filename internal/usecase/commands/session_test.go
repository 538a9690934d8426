//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"barkeep/internal/pkg/clock"
	"barkeep/internal/pkg/errs"
	"barkeep/internal/pkg/token"
	"barkeep/internal/usecase/commands"
	"barkeep/internal/usecase/shared"
	"barkeep/tests/common/builder"
	"barkeep/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionTTL = 12 * time.Hour

func newSessionCommands(t *testing.T, now time.Time) (commands.SessionCommands, *fake.UnitOfWork, *fake.EventRecorder, *clock.MockClock) {
	t.Helper()
	uow := fake.NewUnitOfWork()
	events := &fake.EventRecorder{}
	clk := clock.NewMockClock(now)
	return commands.NewSessionCommands(uow, events, clk, sessionTTL), uow, events, clk
}

func TestSessionCommands_CreateOrGet(t *testing.T) {
	now := time.Date(2025, 6, 21, 19, 0, 0, 0, time.UTC)
	hostID := uuid.New()

	t.Run("issues a fresh session when the host has none", func(t *testing.T) {
		svc, uow, _, _ := newSessionCommands(t, now)

		view, err := svc.CreateOrGet(context.Background(), hostID)
		require.NoError(t, err)

		assert.Equal(t, hostID, view.HostID)
		assert.True(t, token.Valid(view.Token))
		assert.Equal(t, now.Add(sessionTTL), view.ExpiresAt)
		assert.False(t, view.IsOrderPaused)
		assert.Equal(t, []uuid.UUID{hostID}, uow.TxFake.SessionRepo.LockedHosts)
	})

	t.Run("returns the existing session while it is still valid", func(t *testing.T) {
		svc, uow, _, _ := newSessionCommands(t, now)
		existing := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.HostID = hostID
			b.ExpiresAt = now.Add(2 * time.Hour)
		}).BuildDomain()
		uow.TxFake.SessionRepo.Seed(existing)

		first, err := svc.CreateOrGet(context.Background(), hostID)
		require.NoError(t, err)
		second, err := svc.CreateOrGet(context.Background(), hostID)
		require.NoError(t, err)

		assert.Equal(t, existing.ID(), first.ID)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Token, second.Token)
	})

	t.Run("mints a new session once the old one has expired", func(t *testing.T) {
		svc, uow, _, _ := newSessionCommands(t, now)
		expired := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.HostID = hostID
			b.ExpiresAt = now.Add(-time.Minute)
		}).BuildDomain()
		uow.TxFake.SessionRepo.Seed(expired)

		view, err := svc.CreateOrGet(context.Background(), hostID)
		require.NoError(t, err)

		assert.NotEqual(t, expired.ID(), view.ID)
		assert.NotEqual(t, expired.Token(), view.Token)
	})

	t.Run("a session expiring exactly now is not reused", func(t *testing.T) {
		svc, uow, _, _ := newSessionCommands(t, now)
		boundary := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.HostID = hostID
			b.ExpiresAt = now
		}).BuildDomain()
		uow.TxFake.SessionRepo.Seed(boundary)

		view, err := svc.CreateOrGet(context.Background(), hostID)
		require.NoError(t, err)
		assert.NotEqual(t, boundary.ID(), view.ID)
	})
}

func TestSessionCommands_End(t *testing.T) {
	now := time.Date(2025, 6, 21, 23, 0, 0, 0, time.UTC)

	t.Run("ends a live session and publishes an update", func(t *testing.T) {
		svc, uow, events, clk := newSessionCommands(t, now)
		live := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.ExpiresAt = now.Add(time.Hour)
		}).BuildDomain()
		uow.TxFake.SessionRepo.Seed(live)

		require.NoError(t, svc.End(context.Background(), live.ID()))

		stored, err := uow.TxFake.SessionRepo.FindByID(context.Background(), live.ID())
		require.NoError(t, err)
		assert.True(t, stored.IsExpired(clk.Now()))

		require.Len(t, events.SessionEvents, 1)
		assert.Equal(t, shared.EventSessionUpdated, events.SessionEvents[0].Type)
		assert.Equal(t, live.ID(), events.SessionEvents[0].SessionID)
	})

	t.Run("ending an already-expired session fails with expired", func(t *testing.T) {
		svc, uow, events, _ := newSessionCommands(t, now)
		gone := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.ExpiresAt = now.Add(-time.Hour)
		}).BuildDomain()
		uow.TxFake.SessionRepo.Seed(gone)

		err := svc.End(context.Background(), gone.ID())
		assert.ErrorIs(t, err, errs.ErrSessionExpired)
		assert.Empty(t, events.SessionEvents)
	})

	t.Run("unknown session fails with not found", func(t *testing.T) {
		svc, _, _, _ := newSessionCommands(t, now)
		err := svc.End(context.Background(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}

func TestSessionCommands_SetOrderPaused(t *testing.T) {
	now := time.Date(2025, 6, 21, 21, 0, 0, 0, time.UTC)

	t.Run("pauses and resumes ordering", func(t *testing.T) {
		svc, uow, events, _ := newSessionCommands(t, now)
		live := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.ExpiresAt = now.Add(time.Hour)
		}).BuildDomain()
		uow.TxFake.SessionRepo.Seed(live)

		require.NoError(t, svc.SetOrderPaused(context.Background(), live.ID(), true))
		stored, err := uow.TxFake.SessionRepo.FindByID(context.Background(), live.ID())
		require.NoError(t, err)
		assert.True(t, stored.IsOrderPaused())

		require.NoError(t, svc.SetOrderPaused(context.Background(), live.ID(), false))
		stored, err = uow.TxFake.SessionRepo.FindByID(context.Background(), live.ID())
		require.NoError(t, err)
		assert.False(t, stored.IsOrderPaused())

		assert.Len(t, events.SessionEvents, 2)
	})

	t.Run("unknown session fails with not found", func(t *testing.T) {
		svc, _, _, _ := newSessionCommands(t, now)
		err := svc.SetOrderPaused(context.Background(), uuid.New(), true)
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}
