//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"barkeep/internal/domain/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 21, 18, 0, 0, 0, time.UTC)

func cocktail(name string, active bool, baseSpirits []string, groups catalog.IngredientGroups) *catalog.Cocktail {
	return catalog.ReconstructCocktail(
		uuid.New(), name, baseSpirits, groups,
		"12%", "shake with ice", "", "", []string{"sour"}, 3, active, now,
	)
}

func ingredient(t *testing.T, name string, category catalog.Category, soldOut bool) *catalog.Ingredient {
	t.Helper()
	ing, err := catalog.ReconstructIngredient(uuid.New(), name, category, soldOut, now)
	require.NoError(t, err)
	return ing
}

func TestRequiredIngredients(t *testing.T) {
	c := cocktail("Mojito", true, []string{"White Rum"}, catalog.IngredientGroups{
		Fruits:    []string{"Lime"},
		Beverages: []string{"Soda Water"},
		Herbs:     []string{"Mint"},
		Others:    []string{"Sugar"},
	})

	want := []string{"White Rum", "Lime", "Soda Water", "Mint", "Sugar"}
	if diff := cmp.Diff(want, c.RequiredIngredients()); diff != "" {
		t.Errorf("required ingredients mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveActive(t *testing.T) {
	c := cocktail("Gin Tonic", true, []string{"Gin"}, catalog.IngredientGroups{
		Beverages: []string{"Tonic Water"},
		Fruits:    []string{"Lime"},
	})

	cases := []struct {
		name    string
		soldOut map[string]struct{}
		active  bool
	}{
		{"nothing sold out", map[string]struct{}{}, true},
		{"base spirit sold out", map[string]struct{}{"Gin": {}}, false},
		{"grouped ingredient sold out", map[string]struct{}{"Lime": {}}, false},
		{"unrelated ingredient sold out", map[string]struct{}{"Mint": {}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.active, catalog.DeriveActive(c, tc.soldOut))
		})
	}
}

// Toggling "Lime" to sold-out must flip every cocktail referencing lime
// anywhere in its groups, and leave the rest untouched.
func TestRecomputeAvailability(t *testing.T) {
	mojito := cocktail("Mojito", true, []string{"White Rum"}, catalog.IngredientGroups{
		Fruits: []string{"Lime"},
		Herbs:  []string{"Mint"},
	})
	gimlet := cocktail("Gimlet", true, []string{"Gin"}, catalog.IngredientGroups{
		Others: []string{"Lime"},
	})
	espressoMartini := cocktail("Espresso Martini", true, []string{"Vodka"}, catalog.IngredientGroups{
		Beverages: []string{"Espresso"},
	})

	ingredients := []*catalog.Ingredient{
		ingredient(t, "Lime", catalog.CategoryFruit, true),
		ingredient(t, "Mint", catalog.CategoryHerb, false),
		ingredient(t, "Espresso", catalog.CategoryBeverage, false),
	}

	t.Run("lime cascade flips only lime cocktails", func(t *testing.T) {
		soldOut := catalog.SoldOutNames(ingredients)
		changes := catalog.RecomputeAvailability(
			[]*catalog.Cocktail{mojito, gimlet, espressoMartini}, soldOut)

		require.Len(t, changes, 2)
		byID := map[uuid.UUID]bool{}
		for _, ch := range changes {
			byID[ch.CocktailID] = ch.IsActive
		}
		assert.Equal(t, map[uuid.UUID]bool{
			mojito.ID(): false,
			gimlet.ID(): false,
		}, byID)
	})

	t.Run("already consistent state yields no writes", func(t *testing.T) {
		inactiveMojito := cocktail("Mojito", false, []string{"White Rum"}, catalog.IngredientGroups{
			Fruits: []string{"Lime"},
		})
		soldOut := catalog.SoldOutNames(ingredients)

		changes := catalog.RecomputeAvailability(
			[]*catalog.Cocktail{inactiveMojito, espressoMartini}, soldOut)
		assert.Empty(t, changes)
	})

	t.Run("restock flips cocktails back on", func(t *testing.T) {
		inactiveGimlet := cocktail("Gimlet", false, []string{"Gin"}, catalog.IngredientGroups{
			Others: []string{"Lime"},
		})

		changes := catalog.RecomputeAvailability(
			[]*catalog.Cocktail{inactiveGimlet}, map[string]struct{}{})

		require.Len(t, changes, 1)
		assert.Equal(t, inactiveGimlet.ID(), changes[0].CocktailID)
		assert.True(t, changes[0].IsActive)
	})

	t.Run("matching is exact on names", func(t *testing.T) {
		limey := cocktail("Limey", true, []string{"Gin"}, catalog.IngredientGroups{
			Fruits: []string{"Lime Juice"},
		})
		changes := catalog.RecomputeAvailability(
			[]*catalog.Cocktail{limey}, map[string]struct{}{"Lime": {}})
		assert.Empty(t, changes)
	})
}

func TestIngredientToggleSoldOut(t *testing.T) {
	ing := ingredient(t, "Lime", catalog.CategoryFruit, false)

	later := now.Add(time.Minute)
	assert.True(t, ing.ToggleSoldOut(later))
	assert.True(t, ing.IsSoldOut())
	assert.Equal(t, later, ing.UpdatedAt())

	assert.False(t, ing.ToggleSoldOut(later.Add(time.Minute)))
	assert.False(t, ing.IsSoldOut())
}

func TestNewIngredient(t *testing.T) {
	t.Run("trims the join key", func(t *testing.T) {
		ing, err := catalog.NewIngredient("  Lime ", catalog.CategoryFruit, now)
		require.NoError(t, err)
		assert.Equal(t, "Lime", ing.Name())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := catalog.NewIngredient("   ", catalog.CategoryFruit, now)
		assert.ErrorIs(t, err, catalog.ErrEmptyIngredientName)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := catalog.NewIngredient("Lime", catalog.Category("garnish"), now)
		assert.ErrorIs(t, err, catalog.ErrInvalidCategory)
	})
}
