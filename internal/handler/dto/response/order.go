package response

import (
	"time"

	"barkeep/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID                 uuid.UUID `json:"id"`
	SessionID          uuid.UUID `json:"session_id"`
	GuestID            string    `json:"guest_id"`
	GuestName          string    `json:"guest_name"`
	CocktailID         uuid.UUID `json:"cocktail_id"`
	CocktailName       string    `json:"cocktail_name"`
	LessSugar          bool      `json:"less_sugar"`
	LessIce            bool      `json:"less_ice"`
	ExcludeIngredients []string  `json:"exclude_ingredients"`
	Memo               string    `json:"memo,omitempty"`
	Status             string    `json:"status"`
	Rating             *string   `json:"rating"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:                 v.ID,
		SessionID:          v.SessionID,
		GuestID:            v.GuestID,
		GuestName:          v.GuestName,
		CocktailID:         v.CocktailID,
		CocktailName:       v.CocktailName,
		LessSugar:          v.LessSugar,
		LessIce:            v.LessIce,
		ExcludeIngredients: v.ExcludeIngredients,
		Memo:               v.Memo,
		Status:             v.Status,
		Rating:             v.Rating,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromOrderList(views []*queries.OrderView) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromOrderView(v))
	}
	return out
}
