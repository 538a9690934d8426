//go:build unit

package builder

import (
	"time"

	"barkeep/internal/domain/catalog"

	"github.com/google/uuid"
)

type IngredientBuilder struct {
	ID        uuid.UUID
	Name      string
	Category  catalog.Category
	IsSoldOut bool
	UpdatedAt time.Time
}

func NewIngredientBuilder() *IngredientBuilder {
	return &IngredientBuilder{
		ID:        uuid.New(),
		Name:      "Lime",
		Category:  catalog.CategoryFruit,
		IsSoldOut: false,
		UpdatedAt: time.Date(2025, 6, 21, 18, 0, 0, 0, time.UTC),
	}
}

func (b *IngredientBuilder) With(mutate func(*IngredientBuilder)) *IngredientBuilder {
	mutate(b)
	return b
}

func (b *IngredientBuilder) BuildDomain() *catalog.Ingredient {
	i, err := catalog.ReconstructIngredient(b.ID, b.Name, b.Category, b.IsSoldOut, b.UpdatedAt)
	if err != nil {
		panic("builder produced invalid ingredient: " + err.Error())
	}
	return i
}

type CocktailBuilder struct {
	ID          uuid.UUID
	Name        string
	BaseSpirits []string
	Ingredients catalog.IngredientGroups
	ABV         string
	Recipe      string
	Note        string
	ImageURL    string
	FlavorTags  []string
	Sweetness   int
	IsActive    bool
	CreatedAt   time.Time
}

func NewCocktailBuilder() *CocktailBuilder {
	return &CocktailBuilder{
		ID:          uuid.New(),
		Name:        "Gin Tonic",
		BaseSpirits: []string{"Gin"},
		Ingredients: catalog.IngredientGroups{
			Fruits:    []string{"Lime"},
			Beverages: []string{"Tonic Water"},
		},
		ABV:        "10%",
		Recipe:     "Build over ice, top with tonic.",
		FlavorTags: []string{"refreshing"},
		Sweetness:  2,
		IsActive:   true,
		CreatedAt:  time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CocktailBuilder) With(mutate func(*CocktailBuilder)) *CocktailBuilder {
	mutate(b)
	return b
}

func (b *CocktailBuilder) BuildDomain() *catalog.Cocktail {
	return catalog.ReconstructCocktail(
		b.ID, b.Name, b.BaseSpirits, b.Ingredients,
		b.ABV, b.Recipe, b.Note, b.ImageURL,
		b.FlavorTags, b.Sweetness, b.IsActive, b.CreatedAt,
	)
}
