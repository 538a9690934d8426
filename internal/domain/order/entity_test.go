//go:build unit

package order_test

import (
	"testing"
	"time"

	"barkeep/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 21, 21, 30, 0, 0, time.UTC)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		uuid.New(), "guest-1", "Dana", uuid.New(), "Mojito",
		order.Customizations{LessIce: true, Memo: "extra mint"}, now,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts pending and unrated", func(t *testing.T) {
		o := newOrder(t)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.Rating())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("blank guest name falls back to default", func(t *testing.T) {
		o, err := order.NewOrder(uuid.New(), "guest-1", "  ", uuid.New(), "Mojito", order.Customizations{}, now)
		require.NoError(t, err)
		assert.Equal(t, "Guest", o.GuestName())
	})

	t.Run("nil exclusions normalize to empty slice", func(t *testing.T) {
		o, err := order.NewOrder(uuid.New(), "guest-1", "Dana", uuid.New(), "Mojito", order.Customizations{}, now)
		require.NoError(t, err)
		assert.NotNil(t, o.Customizations().ExcludeIngredients)
		assert.Empty(t, o.Customizations().ExcludeIngredients)
	})

	t.Run("empty guest id is rejected", func(t *testing.T) {
		_, err := order.NewOrder(uuid.New(), " ", "Dana", uuid.New(), "Mojito", order.Customizations{}, now)
		assert.ErrorIs(t, err, order.ErrEmptyGuestID)
	})
}

func TestTransitionTo(t *testing.T) {
	t.Run("full legal path", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.TransitionTo(order.StatusMaking, now.Add(time.Minute)))
		assert.Equal(t, order.StatusMaking, o.Status())

		require.NoError(t, o.TransitionTo(order.StatusDone, now.Add(2*time.Minute)))
		assert.Equal(t, order.StatusDone, o.Status())
		assert.Equal(t, now.Add(2*time.Minute), o.UpdatedAt())
	})

	t.Run("illegal transitions", func(t *testing.T) {
		cases := []struct {
			name string
			path []order.Status
			next order.Status
		}{
			{"skip pending to done", nil, order.StatusDone},
			{"repeat pending", nil, order.StatusPending},
			{"regress making to pending", []order.Status{order.StatusMaking}, order.StatusPending},
			{"repeat making", []order.Status{order.StatusMaking}, order.StatusMaking},
			{"regress done to making", []order.Status{order.StatusMaking, order.StatusDone}, order.StatusMaking},
			{"leave terminal done", []order.Status{order.StatusMaking, order.StatusDone}, order.StatusDone},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				o := newOrder(t)
				for _, st := range tc.path {
					require.NoError(t, o.TransitionTo(st, now))
				}
				assert.ErrorIs(t, o.TransitionTo(tc.next, now), order.ErrInvalidTransition)
			})
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		o := newOrder(t)
		assert.ErrorIs(t, o.TransitionTo(order.Status("cancelled"), now), order.ErrInvalidStatus)
	})
}

func TestRate(t *testing.T) {
	t.Run("rejected before done", func(t *testing.T) {
		o := newOrder(t)
		assert.ErrorIs(t, o.Rate("guest-1", order.RatingLike, now), order.ErrNotRatable)

		require.NoError(t, o.TransitionTo(order.StatusMaking, now))
		assert.ErrorIs(t, o.Rate("guest-1", order.RatingLike, now), order.ErrNotRatable)
	})

	t.Run("settable and overwritable once done", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusMaking, now))
		require.NoError(t, o.TransitionTo(order.StatusDone, now))

		require.NoError(t, o.Rate("guest-1", order.RatingLike, now))
		require.NotNil(t, o.Rating())
		assert.Equal(t, order.RatingLike, *o.Rating())

		require.NoError(t, o.Rate("guest-1", order.RatingDislike, now))
		assert.Equal(t, order.RatingDislike, *o.Rating())

		require.NoError(t, o.Rate("guest-1", order.RatingLike, now))
		assert.Equal(t, order.RatingLike, *o.Rating())
	})

	t.Run("only the owning guest may rate", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusMaking, now))
		require.NoError(t, o.TransitionTo(order.StatusDone, now))

		assert.ErrorIs(t, o.Rate("guest-2", order.RatingLike, now), order.ErrNotOwner)
	})

	t.Run("unknown rating value", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusMaking, now))
		require.NoError(t, o.TransitionTo(order.StatusDone, now))

		assert.ErrorIs(t, o.Rate("guest-1", order.Rating("meh"), now), order.ErrInvalidRating)
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	assert.True(t, order.StatusPending.CanTransitionTo(order.StatusMaking))
	assert.True(t, order.StatusMaking.CanTransitionTo(order.StatusDone))
	assert.False(t, order.StatusPending.CanTransitionTo(order.StatusDone))
	assert.False(t, order.StatusDone.CanTransitionTo(order.StatusMaking))
	assert.False(t, order.StatusDone.CanTransitionTo(order.StatusPending))
}
