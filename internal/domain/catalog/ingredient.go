package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyIngredientName = errors.New("ingredient name cannot be empty")
	ErrInvalidCategory     = errors.New("invalid ingredient category")
)

// Ingredient is a stock item. Cocktails reference ingredients by exact name;
// the name is the join key, so it is trimmed but otherwise stored verbatim.
type Ingredient struct {
	id        uuid.UUID
	name      string
	category  Category
	isSoldOut bool
	updatedAt time.Time
}

func NewIngredient(name string, category Category, now time.Time) (*Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyIngredientName
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	return &Ingredient{
		id:        uuid.New(),
		name:      name,
		category:  category,
		isSoldOut: false,
		updatedAt: now,
	}, nil
}

func ReconstructIngredient(
	id uuid.UUID,
	name string,
	category Category,
	isSoldOut bool,
	updatedAt time.Time,
) (*Ingredient, error) {
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return &Ingredient{
		id:        id,
		name:      name,
		category:  category,
		isSoldOut: isSoldOut,
		updatedAt: updatedAt,
	}, nil
}

// ToggleSoldOut flips the stock flag and returns the new value.
func (i *Ingredient) ToggleSoldOut(now time.Time) bool {
	i.isSoldOut = !i.isSoldOut
	i.updatedAt = now
	return i.isSoldOut
}

func (i *Ingredient) ID() uuid.UUID        { return i.id }
func (i *Ingredient) Name() string         { return i.name }
func (i *Ingredient) Category() Category   { return i.category }
func (i *Ingredient) IsSoldOut() bool      { return i.isSoldOut }
func (i *Ingredient) UpdatedAt() time.Time { return i.updatedAt }
