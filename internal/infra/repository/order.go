package repository

import (
	"context"
	"errors"
	"time"

	"barkeep/internal/domain/order"
	"barkeep/internal/infra"
	"barkeep/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, session_id, guest_id, guest_name, cocktail_id, cocktail_name,
	less_sugar, less_ice, exclude_ingredients, memo, status, rating, created_at, updated_at`

func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, sessionID, orderID uuid.UUID) (*order.Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE session_id = $1 AND id = $2
		FOR UPDATE`, sessionID, orderID)

	return scanOrder(row)
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	cust := o.Customizations()
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, session_id, guest_id, guest_name, cocktail_id, cocktail_name,
			less_sugar, less_ice, exclude_ingredients, memo, status, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		o.ID(), o.SessionID(), o.GuestID(), o.GuestName(), o.CocktailID(), o.CocktailName(),
		cust.LessSugar, cust.LessIce, cust.ExcludeIngredients, cust.Memo,
		o.Status().String(), ratingValue(o.Rating()), o.CreatedAt(), o.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) SetStatus(ctx context.Context, sessionID, orderID uuid.UUID, status order.Status, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $3, updated_at = $4
		WHERE session_id = $1 AND id = $2`,
		sessionID, orderID, status.String(), updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) SetRating(ctx context.Context, sessionID, orderID uuid.UUID, rating order.Rating, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET rating = $3, updated_at = $4
		WHERE session_id = $1 AND id = $2`,
		sessionID, orderID, rating.String(), updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update order rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		id, sessionID        uuid.UUID
		guestID, guestName   string
		cocktailID           uuid.UUID
		cocktailName         string
		lessSugar, lessIce   bool
		excludeIngredients   []string
		memo, status         string
		rating               *string
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &sessionID, &guestID, &guestName, &cocktailID, &cocktailName,
		&lessSugar, &lessIce, &excludeIngredients, &memo, &status, &rating, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan order", err)
	}

	var r *order.Rating
	if rating != nil {
		v := order.Rating(*rating)
		r = &v
	}

	o, err := order.ReconstructOrder(id, sessionID, guestID, guestName, cocktailID, cocktailName,
		order.Customizations{
			LessSugar:          lessSugar,
			LessIce:            lessIce,
			ExcludeIngredients: excludeIngredients,
			Memo:               memo,
		},
		order.Status(status), r, createdAt, updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid order row", err)
	}
	return o, nil
}

func ratingValue(r *order.Rating) *string {
	if r == nil {
		return nil
	}
	s := r.String()
	return &s
}
