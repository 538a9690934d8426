//go:build unit

package session_test

import (
	"testing"
	"time"

	"barkeep/internal/domain/session"
	"barkeep/internal/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 21, 20, 0, 0, 0, time.UTC)

func TestNewSession(t *testing.T) {
	hostID := uuid.New()

	s, err := session.NewSession(hostID, baseTime, 12*time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, hostID, s.HostID())
	assert.True(t, token.Valid(s.Token()))
	assert.False(t, s.IsOrderPaused())
	assert.Equal(t, baseTime.Add(12*time.Hour), s.ExpiresAt())
	assert.Equal(t, baseTime, s.CreatedAt())
}

func TestIsExpired(t *testing.T) {
	s, err := session.NewSession(uuid.New(), baseTime, 12*time.Hour)
	require.NoError(t, err)

	expiry := baseTime.Add(12 * time.Hour)

	cases := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"well before expiry", baseTime, false},
		{"one second before expiry", expiry.Add(-time.Second), false},
		{"exactly at expiry", expiry, true},
		{"one second after expiry", expiry.Add(time.Second), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expired, s.IsExpired(tc.now))
		})
	}
}

func TestEnd(t *testing.T) {
	t.Run("forces expiry into the past", func(t *testing.T) {
		s, err := session.NewSession(uuid.New(), baseTime, 12*time.Hour)
		require.NoError(t, err)

		require.NoError(t, s.End(baseTime.Add(time.Hour)))
		assert.True(t, s.IsExpired(baseTime.Add(time.Hour)))
	})

	t.Run("ending an expired session fails", func(t *testing.T) {
		s, err := session.NewSession(uuid.New(), baseTime, 12*time.Hour)
		require.NoError(t, err)

		require.NoError(t, s.End(baseTime))
		assert.ErrorIs(t, s.End(baseTime), session.ErrAlreadyExpired)
	})
}

func TestAcceptsOrders(t *testing.T) {
	s, err := session.NewSession(uuid.New(), baseTime, 12*time.Hour)
	require.NoError(t, err)

	assert.True(t, s.AcceptsOrders(baseTime))

	s.SetOrderPaused(true)
	assert.False(t, s.AcceptsOrders(baseTime))

	s.SetOrderPaused(false)
	assert.True(t, s.AcceptsOrders(baseTime))
	assert.False(t, s.AcceptsOrders(baseTime.Add(13*time.Hour)))
}

func TestReconstructSession(t *testing.T) {
	t.Run("rejects malformed token", func(t *testing.T) {
		_, err := session.ReconstructSession(uuid.New(), uuid.New(), "NOPE", false, baseTime.Add(time.Hour), baseTime)
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("round trips", func(t *testing.T) {
		id, hostID := uuid.New(), uuid.New()
		s, err := session.ReconstructSession(id, hostID, "abc123def456", true, baseTime.Add(time.Hour), baseTime)
		require.NoError(t, err)

		assert.Equal(t, id, s.ID())
		assert.Equal(t, hostID, s.HostID())
		assert.True(t, s.IsOrderPaused())
	})
}
