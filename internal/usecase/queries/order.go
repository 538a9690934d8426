package queries

import (
	"context"

	"barkeep/internal/infra"
	"barkeep/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*OrderView, error)
	ListByGuest(ctx context.Context, sessionID uuid.UUID, guestID string) ([]*OrderView, error)
	FindByID(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
}

type OrderQueries interface {
	// ListBySession returns the full queue in creation order. The host view.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*OrderView, error)
	// ListByGuest narrows the queue to one guest's own orders.
	ListByGuest(ctx context.Context, sessionID uuid.UUID, guestID string) ([]*OrderView, error)
	GetByID(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*OrderView, error) {
	orders, err := q.store.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list session orders")
	}
	return orders, nil
}

func (q *orderQueriesImpl) ListByGuest(ctx context.Context, sessionID uuid.UUID, guestID string) ([]*OrderView, error) {
	orders, err := q.store.ListByGuest(ctx, sessionID, guestID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list guest orders")
	}
	return orders, nil
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	return view, nil
}
