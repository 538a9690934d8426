package request

import (
	"strings"

	"barkeep/internal/domain/order"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	Token              string    `json:"token" binding:"required"`
	GuestID            string    `json:"guest_id" binding:"required"`
	GuestName          string    `json:"guest_name"`
	CocktailID         uuid.UUID `json:"cocktail_id" binding:"required"`
	LessSugar          bool      `json:"less_sugar"`
	LessIce            bool      `json:"less_ice"`
	ExcludeIngredients []string  `json:"exclude_ingredients"`
	Memo               string    `json:"memo"`
}

func (r CreateOrderRequest) Customizations() order.Customizations {
	excludes := make([]string, 0, len(r.ExcludeIngredients))
	for _, name := range r.ExcludeIngredients {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			excludes = append(excludes, trimmed)
		}
	}
	return order.Customizations{
		LessSugar:          r.LessSugar,
		LessIce:            r.LessIce,
		ExcludeIngredients: excludes,
		Memo:               strings.TrimSpace(r.Memo),
	}
}

// UpdateOrderRequest carries exactly one of two mutations: a host-side status
// transition or a guest-side rating. The handler rejects mixed requests.
type UpdateOrderRequest struct {
	SessionID *uuid.UUID `json:"session_id,omitempty"`
	Token     *string    `json:"token,omitempty"`
	Status    *string    `json:"status,omitempty" binding:"omitempty,oneof=pending making done"`
	GuestID   *string    `json:"guest_id,omitempty"`
	Rating    *string    `json:"rating,omitempty" binding:"omitempty,oneof=like dislike"`
}
