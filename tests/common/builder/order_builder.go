//go:build unit

package builder

import (
	"time"

	"barkeep/internal/domain/order"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	GuestID        string
	GuestName      string
	CocktailID     uuid.UUID
	CocktailName   string
	Customizations order.Customizations
	Status         order.Status
	Rating         *order.Rating
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Date(2025, 6, 21, 20, 0, 0, 0, time.UTC)
	return &OrderBuilder{
		ID:           uuid.New(),
		SessionID:    uuid.New(),
		GuestID:      "guest-1",
		GuestName:    "Alice",
		CocktailID:   uuid.New(),
		CocktailName: "Gin Tonic",
		Customizations: order.Customizations{
			ExcludeIngredients: []string{},
		},
		Status:    order.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDomain() *order.Order {
	o, err := order.ReconstructOrder(
		b.ID, b.SessionID, b.GuestID, b.GuestName,
		b.CocktailID, b.CocktailName, b.Customizations,
		b.Status, b.Rating, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		panic("builder produced invalid order: " + err.Error())
	}
	return o
}
