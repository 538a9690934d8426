package catalog

import (
	"time"

	"github.com/google/uuid"
)

// IngredientGroups splits a recipe's non-spirit ingredients the way the menu
// displays them. Entries are ingredient names, matched exactly against stock.
type IngredientGroups struct {
	Fruits    []string
	Beverages []string
	Herbs     []string
	Others    []string
}

// Cocktail is a menu entry. isActive is derived state: it caches whether any
// required ingredient is sold out, and only the availability recomputation
// may write it.
type Cocktail struct {
	id          uuid.UUID
	name        string
	baseSpirits []string
	ingredients IngredientGroups
	abv         string
	recipe      string
	note        string
	imageURL    string
	flavorTags  []string
	sweetness   int
	isActive    bool
	createdAt   time.Time
}

func ReconstructCocktail(
	id uuid.UUID,
	name string,
	baseSpirits []string,
	ingredients IngredientGroups,
	abv, recipe, note, imageURL string,
	flavorTags []string,
	sweetness int,
	isActive bool,
	createdAt time.Time,
) *Cocktail {
	return &Cocktail{
		id:          id,
		name:        name,
		baseSpirits: baseSpirits,
		ingredients: ingredients,
		abv:         abv,
		recipe:      recipe,
		note:        note,
		imageURL:    imageURL,
		flavorTags:  flavorTags,
		sweetness:   sweetness,
		isActive:    isActive,
		createdAt:   createdAt,
	}
}

// RequiredIngredients is the union of base spirits and all ingredient groups.
func (c *Cocktail) RequiredIngredients() []string {
	required := make([]string, 0,
		len(c.baseSpirits)+
			len(c.ingredients.Fruits)+
			len(c.ingredients.Beverages)+
			len(c.ingredients.Herbs)+
			len(c.ingredients.Others))
	required = append(required, c.baseSpirits...)
	required = append(required, c.ingredients.Fruits...)
	required = append(required, c.ingredients.Beverages...)
	required = append(required, c.ingredients.Herbs...)
	required = append(required, c.ingredients.Others...)
	return required
}

func (c *Cocktail) ID() uuid.UUID                 { return c.id }
func (c *Cocktail) Name() string                  { return c.name }
func (c *Cocktail) BaseSpirits() []string         { return c.baseSpirits }
func (c *Cocktail) Ingredients() IngredientGroups { return c.ingredients }
func (c *Cocktail) ABV() string                   { return c.abv }
func (c *Cocktail) Recipe() string                { return c.recipe }
func (c *Cocktail) Note() string                  { return c.note }
func (c *Cocktail) ImageURL() string              { return c.imageURL }
func (c *Cocktail) FlavorTags() []string          { return c.flavorTags }
func (c *Cocktail) Sweetness() int                { return c.sweetness }
func (c *Cocktail) IsActive() bool                { return c.isActive }
func (c *Cocktail) CreatedAt() time.Time          { return c.createdAt }
