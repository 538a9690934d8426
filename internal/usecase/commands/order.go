package commands

import (
	"context"
	"errors"
	"log/slog"

	"barkeep/internal/domain/order"
	"barkeep/internal/infra"
	"barkeep/internal/pkg/clock"
	"barkeep/internal/pkg/errs"
	"barkeep/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateOrderInput struct {
	SessionToken   string
	GuestID        string
	GuestName      string
	CocktailID     uuid.UUID
	Customizations order.Customizations
}

type OrderCommands interface {
	Create(ctx context.Context, input CreateOrderInput) (uuid.UUID, error)
	// UpdateStatus applies a host-side transition. Only pending to making and
	// making to done are legal.
	UpdateStatus(ctx context.Context, sessionID, orderID uuid.UUID, next order.Status) error
	// Rate records the ordering guest's verdict on a completed order. Repeat
	// ratings overwrite.
	Rate(ctx context.Context, sessionID, orderID uuid.UUID, guestID string, rating order.Rating) error
}

type orderCommandsImpl struct {
	uow    shared.UnitOfWork
	events shared.EventPublisher
	clock  clock.Clock
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	events shared.EventPublisher,
	clk clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		uow:    uow,
		events: events,
		clock:  clk,
	}
}

func (o *orderCommandsImpl) Create(ctx context.Context, input CreateOrderInput) (uuid.UUID, error) {
	var created *order.Order

	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sess, err := tx.Sessions().FindByToken(ctx, input.SessionToken)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrSessionNotFound
			}
			return err
		}

		now := o.clock.Now()
		if sess.IsExpired(now) {
			return errs.ErrSessionExpired
		}
		if sess.IsOrderPaused() {
			return errs.ErrOrdersPaused
		}

		cocktail, err := tx.Cocktails().FindByID(ctx, input.CocktailID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCocktailUnavailable
			}
			return err
		}
		if !cocktail.IsActive() {
			return errs.ErrCocktailUnavailable
		}

		// Name is denormalized from the catalog row, not from the request, so
		// the host queue always shows what the kitchen actually knows.
		newOrder, err := order.NewOrder(
			sess.ID(),
			input.GuestID,
			input.GuestName,
			cocktail.ID(),
			cocktail.Name(),
			input.Customizations,
			now,
		)
		if err != nil {
			return errs.Wrap(err, "failed to build order")
		}

		if err := tx.Orders().Create(ctx, newOrder); err != nil {
			return err
		}
		created = newOrder
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	o.publishOrderEvent(ctx, shared.EventOrderCreated, created.SessionID(), created.ID(), created.GuestID(), created.Status().String())
	return created.ID(), nil
}

func (o *orderCommandsImpl) UpdateStatus(ctx context.Context, sessionID, orderID uuid.UUID, next order.Status) error {
	var updated *order.Order

	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Re-read under a row lock: concurrent transitions race on the stored
		// status, so the second writer must see the first one's result.
		found, err := tx.Orders().FindByIDForUpdate(ctx, sessionID, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return err
		}

		now := o.clock.Now()
		if err := found.TransitionTo(next, now); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}
		if err := tx.Orders().SetStatus(ctx, sessionID, orderID, next, now); err != nil {
			return err
		}
		updated = found
		return nil
	})
	if err != nil {
		return err
	}

	o.publishOrderEvent(ctx, shared.EventOrderUpdated, sessionID, orderID, updated.GuestID(), updated.Status().String())
	return nil
}

func (o *orderCommandsImpl) Rate(ctx context.Context, sessionID, orderID uuid.UUID, guestID string, rating order.Rating) error {
	var updated *order.Order

	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Orders().FindByIDForUpdate(ctx, sessionID, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return err
		}

		now := o.clock.Now()
		if err := found.Rate(guestID, rating, now); err != nil {
			// A guest probing someone else's order gets the same answer as a
			// missing order.
			if errors.Is(err, order.ErrNotOwner) {
				return errs.ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrOrderNotRatable)
		}
		if err := tx.Orders().SetRating(ctx, sessionID, orderID, rating, now); err != nil {
			return err
		}
		updated = found
		return nil
	})
	if err != nil {
		return err
	}

	o.publishOrderEvent(ctx, shared.EventOrderUpdated, sessionID, orderID, updated.GuestID(), updated.Status().String())
	return nil
}

func (o *orderCommandsImpl) publishOrderEvent(ctx context.Context, eventType string, sessionID, orderID uuid.UUID, guestID, status string) {
	ev := shared.Event{
		Type:       eventType,
		SessionID:  sessionID,
		EntityID:   orderID,
		GuestID:    guestID,
		Status:     status,
		OccurredAt: o.clock.Now(),
	}
	if err := o.events.PublishSession(ctx, sessionID, ev); err != nil {
		slog.Warn("failed to publish order event", "session_id", sessionID, "order_id", orderID, "error", err.Error())
	}
}
