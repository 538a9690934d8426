package catalog

import "github.com/google/uuid"

// AvailabilityChange is one cocktail whose derived isActive flag must be
// rewritten after a stock change.
type AvailabilityChange struct {
	CocktailID uuid.UUID
	IsActive   bool
}

// SoldOutNames builds the lookup set the derivation runs against.
func SoldOutNames(ingredients []*Ingredient) map[string]struct{} {
	soldOut := make(map[string]struct{})
	for _, ing := range ingredients {
		if ing.IsSoldOut() {
			soldOut[ing.Name()] = struct{}{}
		}
	}
	return soldOut
}

// DeriveActive evaluates the availability predicate for one cocktail:
// active iff none of its required ingredient names is sold out.
func DeriveActive(c *Cocktail, soldOut map[string]struct{}) bool {
	for _, name := range c.RequiredIngredients() {
		if _, ok := soldOut[name]; ok {
			return false
		}
	}
	return true
}

// RecomputeAvailability returns the cocktails whose cached isActive differs
// from the derived value. Unchanged cocktails produce no entry, keeping the
// write batch minimal. Callers must persist the returned changes and the
// triggering stock flip in one transaction.
func RecomputeAvailability(cocktails []*Cocktail, soldOut map[string]struct{}) []AvailabilityChange {
	var changes []AvailabilityChange
	for _, c := range cocktails {
		if active := DeriveActive(c, soldOut); active != c.IsActive() {
			changes = append(changes, AvailabilityChange{CocktailID: c.ID(), IsActive: active})
		}
	}
	return changes
}
