//go:build unit

package notifier_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"barkeep/internal/infra/notifier"
	"barkeep/internal/pkg/config"
	"barkeep/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotifier(t *testing.T) *notifier.RedisNotifier {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return notifier.NewRedisNotifier(client, config.RedisConfig{Prefix: "barkeep_test"}, slog.Default())
}

func receiveEvent(t *testing.T, events <-chan shared.Event) shared.Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "event channel closed early")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return shared.Event{}
	}
}

func TestRedisNotifierSessionRoundTrip(t *testing.T) {
	n := setupNotifier(t)
	ctx := context.Background()
	sessionID := uuid.New()

	events, cancel, err := n.SubscribeSession(ctx, sessionID)
	require.NoError(t, err)
	defer cancel()

	sent := shared.Event{
		Type:       shared.EventOrderCreated,
		SessionID:  sessionID,
		EntityID:   uuid.New(),
		GuestID:    "guest-1",
		Status:     "pending",
		OccurredAt: time.Date(2025, 6, 21, 22, 0, 0, 0, time.UTC),
	}
	require.NoError(t, n.PublishSession(ctx, sessionID, sent))

	got := receiveEvent(t, events)
	assert.Equal(t, sent, got)
}

func TestRedisNotifierChannelIsolation(t *testing.T) {
	n := setupNotifier(t)
	ctx := context.Background()
	sessionA, sessionB := uuid.New(), uuid.New()

	eventsA, cancelA, err := n.SubscribeSession(ctx, sessionA)
	require.NoError(t, err)
	defer cancelA()

	require.NoError(t, n.PublishSession(ctx, sessionB, shared.Event{
		Type:     shared.EventOrderCreated,
		EntityID: uuid.New(),
	}))
	require.NoError(t, n.PublishSession(ctx, sessionA, shared.Event{
		Type:     shared.EventSessionUpdated,
		EntityID: sessionA,
	}))

	// Only the sessionA event may arrive on sessionA's channel.
	got := receiveEvent(t, eventsA)
	assert.Equal(t, shared.EventSessionUpdated, got.Type)
	assert.Equal(t, sessionA, got.EntityID)
}

func TestRedisNotifierCatalogBroadcast(t *testing.T) {
	n := setupNotifier(t)
	ctx := context.Background()

	events1, cancel1, err := n.SubscribeCatalog(ctx)
	require.NoError(t, err)
	defer cancel1()

	events2, cancel2, err := n.SubscribeCatalog(ctx)
	require.NoError(t, err)
	defer cancel2()

	ingredientID := uuid.New()
	require.NoError(t, n.PublishCatalog(ctx, shared.Event{
		Type:     shared.EventIngredientUpdated,
		EntityID: ingredientID,
	}))

	for _, events := range []<-chan shared.Event{events1, events2} {
		got := receiveEvent(t, events)
		assert.Equal(t, shared.EventIngredientUpdated, got.Type)
		assert.Equal(t, ingredientID, got.EntityID)
	}
}

func TestRedisNotifierCancelReleasesChannel(t *testing.T) {
	n := setupNotifier(t)
	ctx := context.Background()

	events, cancel, err := n.SubscribeCatalog(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "expected closed channel after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
