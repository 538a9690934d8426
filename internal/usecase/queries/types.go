package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SessionView struct {
	ID            uuid.UUID `json:"id"`
	HostID        uuid.UUID `json:"host_id"`
	Token         string    `json:"token"`
	IsOrderPaused bool      `json:"is_order_paused"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
}

type IngredientView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	IsSoldOut bool      `json:"is_sold_out"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CocktailView struct {
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
	CreatedAt   time.Time `json:"created_at"`
}

type OrderView struct {
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

type HostView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
