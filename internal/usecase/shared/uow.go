package shared

import (
	"context"
	"time"

	"barkeep/internal/domain/catalog"
	"barkeep/internal/domain/order"
	"barkeep/internal/domain/session"

	"github.com/google/uuid"
)

// UnitOfWork scopes every multi-step write. Handlers are stateless; the store
// transaction is the only place concurrent requests get serialized.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Sessions() SessionRepository
	Ingredients() IngredientRepository
	Cocktails() CocktailRepository
	Orders() OrderRepository
}

type SessionRepository interface {
	// LockHost serializes concurrent session issuance for one host so the
	// single-active-session rule holds without a partial unique index.
	LockHost(ctx context.Context, hostID uuid.UUID) error
	// FindActiveByHost returns the most-recently-expiring session still valid
	// at now, or KindNotFound.
	FindActiveByHost(ctx context.Context, hostID uuid.UUID, now time.Time) (*session.Session, error)
	FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error)
	FindByToken(ctx context.Context, token string) (*session.Session, error)
	Create(ctx context.Context, s *session.Session) error
	SetExpiresAt(ctx context.Context, id uuid.UUID, expiresAt time.Time) error
	SetOrderPaused(ctx context.Context, id uuid.UUID, paused bool) error
}

type IngredientRepository interface {
	// FindByIDForUpdate takes a row lock so concurrent toggles of the same
	// ingredient serialize.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Ingredient, error)
	SetSoldOut(ctx context.Context, id uuid.UUID, soldOut bool, updatedAt time.Time) error
	FindAll(ctx context.Context) ([]*catalog.Ingredient, error)
}

type CocktailRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Cocktail, error)
	FindAll(ctx context.Context) ([]*catalog.Cocktail, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type OrderRepository interface {
	FindByIDForUpdate(ctx context.Context, sessionID, orderID uuid.UUID) (*order.Order, error)
	Create(ctx context.Context, o *order.Order) error
	SetStatus(ctx context.Context, sessionID, orderID uuid.UUID, status order.Status, updatedAt time.Time) error
	SetRating(ctx context.Context, sessionID, orderID uuid.UUID, rating order.Rating, updatedAt time.Time) error
}
