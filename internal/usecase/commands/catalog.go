package commands

import (
	"context"
	"log/slog"

	"barkeep/internal/domain/catalog"
	"barkeep/internal/infra"
	"barkeep/internal/pkg/clock"
	"barkeep/internal/pkg/errs"
	"barkeep/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogCommands interface {
	// ToggleIngredientStock flips one ingredient's sold-out flag and, in the
	// same transaction, recomputes availability for every cocktail that
	// requires it. Readers never see the flag and the derived availability
	// disagree.
	ToggleIngredientStock(ctx context.Context, ingredientID uuid.UUID) (*ToggleResult, error)
}

type ToggleResult struct {
	IngredientID uuid.UUID
	IsSoldOut    bool
	Changes      []catalog.AvailabilityChange
}

type catalogCommandsImpl struct {
	uow    shared.UnitOfWork
	events shared.EventPublisher
	clock  clock.Clock
}

func NewCatalogCommands(
	uow shared.UnitOfWork,
	events shared.EventPublisher,
	clk clock.Clock,
) CatalogCommands {
	return &catalogCommandsImpl{
		uow:    uow,
		events: events,
		clock:  clk,
	}
}

func (c *catalogCommandsImpl) ToggleIngredientStock(ctx context.Context, ingredientID uuid.UUID) (*ToggleResult, error) {
	var result *ToggleResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ing, err := tx.Ingredients().FindByIDForUpdate(ctx, ingredientID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrIngredientNotFound
			}
			return err
		}

		now := c.clock.Now()
		soldOut := ing.ToggleSoldOut(now)
		if err := tx.Ingredients().SetSoldOut(ctx, ingredientID, soldOut, now); err != nil {
			return err
		}

		ingredients, err := tx.Ingredients().FindAll(ctx)
		if err != nil {
			return err
		}
		cocktails, err := tx.Cocktails().FindAll(ctx)
		if err != nil {
			return err
		}

		changes := catalog.RecomputeAvailability(cocktails, catalog.SoldOutNames(ingredients))
		for _, ch := range changes {
			if err := tx.Cocktails().SetActive(ctx, ch.CocktailID, ch.IsActive); err != nil {
				return err
			}
		}

		result = &ToggleResult{
			IngredientID: ingredientID,
			IsSoldOut:    soldOut,
			Changes:      changes,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.publishCatalogEvents(ctx, result)
	return result, nil
}

func (c *catalogCommandsImpl) publishCatalogEvents(ctx context.Context, result *ToggleResult) {
	now := c.clock.Now()

	events := []shared.Event{{
		Type:       shared.EventIngredientUpdated,
		EntityID:   result.IngredientID,
		OccurredAt: now,
	}}
	for _, ch := range result.Changes {
		events = append(events, shared.Event{
			Type:       shared.EventCocktailUpdated,
			EntityID:   ch.CocktailID,
			OccurredAt: now,
		})
	}

	for _, ev := range events {
		if err := c.events.PublishCatalog(ctx, ev); err != nil {
			slog.Warn("failed to publish catalog event", "type", ev.Type, "entity_id", ev.EntityID, "error", err.Error())
		}
	}
}
