package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types pushed to live subscribers. Events are change notifications,
// not state: subscribers re-read through the query side after receiving one.
const (
	EventOrderCreated      = "order.created"
	EventOrderUpdated      = "order.updated"
	EventSessionUpdated    = "session.updated"
	EventIngredientUpdated = "ingredient.updated"
	EventCocktailUpdated   = "cocktail.updated"
)

type Event struct {
	Type       string    `json:"type"`
	SessionID  uuid.UUID `json:"session_id,omitempty"`
	EntityID   uuid.UUID `json:"entity_id"`
	GuestID    string    `json:"guest_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher fans committed changes out to live subscribers. Publishing
// happens strictly after commit; a lost event degrades to a missed refresh,
// never to inconsistent state.
type EventPublisher interface {
	PublishSession(ctx context.Context, sessionID uuid.UUID, ev Event) error
	PublishCatalog(ctx context.Context, ev Event) error
}

// EventStream is the subscriber side. The returned cancel func releases the
// channel; no events are delivered after it returns.
type EventStream interface {
	SubscribeSession(ctx context.Context, sessionID uuid.UUID) (<-chan Event, func(), error)
	SubscribeCatalog(ctx context.Context) (<-chan Event, func(), error)
}
