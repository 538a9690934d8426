//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"barkeep/internal/domain/catalog"
	"barkeep/internal/pkg/clock"
	"barkeep/internal/pkg/errs"
	"barkeep/internal/usecase/commands"
	"barkeep/internal/usecase/shared"
	"barkeep/tests/common/builder"
	"barkeep/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogCommands(t *testing.T, now time.Time) (commands.CatalogCommands, *fake.UnitOfWork, *fake.EventRecorder) {
	t.Helper()
	uow := fake.NewUnitOfWork()
	events := &fake.EventRecorder{}
	return commands.NewCatalogCommands(uow, events, clock.NewMockClock(now)), uow, events
}

func TestCatalogCommands_ToggleIngredientStock(t *testing.T) {
	now := time.Date(2025, 6, 21, 20, 0, 0, 0, time.UTC)

	lime := builder.NewIngredientBuilder().With(func(b *builder.IngredientBuilder) {
		b.Name = "Lime"
	}).BuildDomain()

	ginTonic := builder.NewCocktailBuilder().With(func(b *builder.CocktailBuilder) {
		b.Name = "Gin Tonic"
		b.Ingredients = catalog.IngredientGroups{Fruits: []string{"Lime"}, Beverages: []string{"Tonic Water"}}
	}).BuildDomain()
	mojito := builder.NewCocktailBuilder().With(func(b *builder.CocktailBuilder) {
		b.Name = "Mojito"
		b.BaseSpirits = []string{"Rum"}
		b.Ingredients = catalog.IngredientGroups{Fruits: []string{"Lime"}, Herbs: []string{"Mint"}}
	}).BuildDomain()
	cubaLibre := builder.NewCocktailBuilder().With(func(b *builder.CocktailBuilder) {
		b.Name = "Cuba Libre"
		b.BaseSpirits = []string{"Rum"}
		b.Ingredients = catalog.IngredientGroups{Beverages: []string{"Cola"}}
	}).BuildDomain()

	seed := func(uow *fake.UnitOfWork) {
		uow.TxFake.IngredientRepo.Seed(lime)
		uow.TxFake.CocktailRepo.Seed(ginTonic)
		uow.TxFake.CocktailRepo.Seed(mojito)
		uow.TxFake.CocktailRepo.Seed(cubaLibre)
	}

	t.Run("marking an ingredient sold out deactivates every cocktail requiring it", func(t *testing.T) {
		svc, uow, events := newCatalogCommands(t, now)
		seed(uow)

		result, err := svc.ToggleIngredientStock(context.Background(), lime.ID())
		require.NoError(t, err)

		assert.True(t, result.IsSoldOut)
		require.Len(t, result.Changes, 2)

		changed := map[uuid.UUID]bool{}
		for _, ch := range result.Changes {
			changed[ch.CocktailID] = ch.IsActive
		}
		assert.Equal(t, map[uuid.UUID]bool{ginTonic.ID(): false, mojito.ID(): false}, changed)
		assert.False(t, uow.TxFake.CocktailRepo.Get(ginTonic.ID()).IsActive())
		assert.True(t, uow.TxFake.CocktailRepo.Get(cubaLibre.ID()).IsActive())

		assert.Equal(t,
			[]string{shared.EventIngredientUpdated, shared.EventCocktailUpdated, shared.EventCocktailUpdated},
			events.TypesOnCatalog())
	})

	t.Run("restocking reactivates only cocktails with no other missing ingredient", func(t *testing.T) {
		svc, uow, _ := newCatalogCommands(t, now)
		seed(uow)
		mint := builder.NewIngredientBuilder().With(func(b *builder.IngredientBuilder) {
			b.Name = "Mint"
			b.Category = catalog.CategoryHerb
			b.IsSoldOut = true
		}).BuildDomain()
		uow.TxFake.IngredientRepo.Seed(mint)

		// Lime out: both go dark. Lime back: Gin Tonic returns, Mojito stays
		// down because Mint is still out.
		_, err := svc.ToggleIngredientStock(context.Background(), lime.ID())
		require.NoError(t, err)
		result, err := svc.ToggleIngredientStock(context.Background(), lime.ID())
		require.NoError(t, err)

		assert.False(t, result.IsSoldOut)
		require.Len(t, result.Changes, 1)
		assert.Equal(t, ginTonic.ID(), result.Changes[0].CocktailID)
		assert.True(t, result.Changes[0].IsActive)
		assert.False(t, uow.TxFake.CocktailRepo.Get(mojito.ID()).IsActive())
	})

	t.Run("a toggle that changes no availability writes no cocktail rows", func(t *testing.T) {
		svc, uow, events := newCatalogCommands(t, now)
		seed(uow)
		syrup := builder.NewIngredientBuilder().With(func(b *builder.IngredientBuilder) {
			b.Name = "Simple Syrup"
			b.Category = catalog.CategoryOther
		}).BuildDomain()
		uow.TxFake.IngredientRepo.Seed(syrup)

		result, err := svc.ToggleIngredientStock(context.Background(), syrup.ID())
		require.NoError(t, err)

		assert.True(t, result.IsSoldOut)
		assert.Empty(t, result.Changes)
		assert.Empty(t, uow.TxFake.CocktailRepo.SetActiveCalls)
		assert.Equal(t, []string{shared.EventIngredientUpdated}, events.TypesOnCatalog())
	})

	t.Run("unknown ingredient fails with not found", func(t *testing.T) {
		svc, _, events := newCatalogCommands(t, now)
		_, err := svc.ToggleIngredientStock(context.Background(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrIngredientNotFound)
		assert.Empty(t, events.CatalogEvents)
	})
}
