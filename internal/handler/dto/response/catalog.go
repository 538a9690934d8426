package response

import (
	"time"

	"barkeep/internal/usecase/queries"

	"github.com/google/uuid"
)

type CocktailResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	BaseSpirits []string  `json:"base_spirits"`
	Fruits      []string  `json:"fruits"`
	Beverages   []string  `json:"beverages"`
	Herbs       []string  `json:"herbs"`
	Others      []string  `json:"others"`
	ABV         string    `json:"abv"`
	Recipe      string    `json:"recipe"`
	Note        string    `json:"note,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	FlavorTags  []string  `json:"flavor_tags"`
	Sweetness   int       `json:"sweetness"`
	IsActive    bool      `json:"is_active"`
}

type IngredientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	IsSoldOut bool      `json:"is_sold_out"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ToggleStockResponse struct {
	IngredientID uuid.UUID                  `json:"ingredient_id"`
	IsSoldOut    bool                       `json:"is_sold_out"`
	Changed      []CocktailAvailabilityItem `json:"changed_cocktails"`
}

type CocktailAvailabilityItem struct {
	CocktailID uuid.UUID `json:"cocktail_id"`
	IsActive   bool      `json:"is_active"`
}

func FromCocktailView(v *queries.CocktailView) *CocktailResponse {
	return &CocktailResponse{
		ID:          v.ID,
		Name:        v.Name,
		BaseSpirits: v.BaseSpirits,
		Fruits:      v.Fruits,
		Beverages:   v.Beverages,
		Herbs:       v.Herbs,
		Others:      v.Others,
		ABV:         v.ABV,
		Recipe:      v.Recipe,
		Note:        v.Note,
		ImageURL:    v.ImageURL,
		FlavorTags:  v.FlavorTags,
		Sweetness:   v.Sweetness,
		IsActive:    v.IsActive,
	}
}

func FromCocktailList(views []*queries.CocktailView) []*CocktailResponse {
	out := make([]*CocktailResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCocktailView(v))
	}
	return out
}

func FromIngredientView(v *queries.IngredientView) *IngredientResponse {
	return &IngredientResponse{
		ID:        v.ID,
		Name:      v.Name,
		Category:  v.Category,
		IsSoldOut: v.IsSoldOut,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromIngredientList(views []*queries.IngredientView) []*IngredientResponse {
	out := make([]*IngredientResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromIngredientView(v))
	}
	return out
}
