package response

import (
	"time"

	"barkeep/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionResponse struct {
	ID            uuid.UUID `json:"id"`
	HostID        uuid.UUID `json:"host_id"`
	Token         string    `json:"token"`
	IsOrderPaused bool      `json:"is_order_paused"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromSessionView(v *queries.SessionView) *SessionResponse {
	return &SessionResponse{
		ID:            v.ID,
		HostID:        v.HostID,
		Token:         v.Token,
		IsOrderPaused: v.IsOrderPaused,
		ExpiresAt:     v.ExpiresAt,
		CreatedAt:     v.CreatedAt,
	}
}

// GuestSessionResponse is what token validation returns to guests. The host
// identity stays server-side.
type GuestSessionResponse struct {
	ID            uuid.UUID `json:"id"`
	Token         string    `json:"token"`
	IsOrderPaused bool      `json:"is_order_paused"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func FromSessionViewForGuest(v *queries.SessionView) *GuestSessionResponse {
	return &GuestSessionResponse{
		ID:            v.ID,
		Token:         v.Token,
		IsOrderPaused: v.IsOrderPaused,
		ExpiresAt:     v.ExpiresAt,
	}
}
