package readstore

import (
	"context"

	"barkeep/internal/infra"
	"barkeep/internal/infra/db"
	"barkeep/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

const orderViewColumns = `id, session_id, guest_id, guest_name, cocktail_id, cocktail_name,
	less_sugar, less_ice, exclude_ingredients, memo, status, rating, created_at, updated_at`

// ListBySession returns the host queue: every order of the session in
// creation order. The (created_at, id) tiebreak keeps the order total.
func (r *OrderReadStore) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE session_id = $1
		ORDER BY created_at ASC, id ASC`, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session orders", err)
	}
	return collectOrderViews(rows)
}

func (r *OrderReadStore) ListByGuest(ctx context.Context, sessionID uuid.UUID, guestID string) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE session_id = $1 AND guest_id = $2
		ORDER BY created_at ASC, id ASC`, sessionID, guestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guest orders", err)
	}
	return collectOrderViews(rows)
}

func (r *OrderReadStore) FindByID(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE id = $1`, orderID)

	var view queries.OrderView
	err := row.Scan(&view.ID, &view.SessionID, &view.GuestID, &view.GuestName,
		&view.CocktailID, &view.CocktailName, &view.LessSugar, &view.LessIce,
		&view.ExcludeIngredients, &view.Memo, &view.Status, &view.Rating,
		&view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return &view, nil
}

func collectOrderViews(rows pgx.Rows) ([]*queries.OrderView, error) {
	defer rows.Close()

	var result []*queries.OrderView
	for rows.Next() {
		var view queries.OrderView
		err := rows.Scan(&view.ID, &view.SessionID, &view.GuestID, &view.GuestName,
			&view.CocktailID, &view.CocktailName, &view.LessSugar, &view.LessIce,
			&view.ExcludeIngredients, &view.Memo, &view.Status, &view.Rating,
			&view.CreatedAt, &view.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return result, nil
}
