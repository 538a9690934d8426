//go:build unit

package fake

import (
	"context"

	"barkeep/internal/usecase/shared"

	"github.com/google/uuid"
)

// EventRecorder captures published events for assertions.
type EventRecorder struct {
	SessionEvents []shared.Event
	CatalogEvents []shared.Event
	// FailWith, when set, is returned from every publish.
	FailWith error
}

func (r *EventRecorder) PublishSession(_ context.Context, _ uuid.UUID, ev shared.Event) error {
	if r.FailWith != nil {
		return r.FailWith
	}
	r.SessionEvents = append(r.SessionEvents, ev)
	return nil
}

func (r *EventRecorder) PublishCatalog(_ context.Context, ev shared.Event) error {
	if r.FailWith != nil {
		return r.FailWith
	}
	r.CatalogEvents = append(r.CatalogEvents, ev)
	return nil
}

func (r *EventRecorder) TypesOnCatalog() []string {
	out := make([]string, 0, len(r.CatalogEvents))
	for _, ev := range r.CatalogEvents {
		out = append(out, ev.Type)
	}
	return out
}
