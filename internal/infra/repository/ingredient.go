package repository

import (
	"context"
	"errors"
	"time"

	"barkeep/internal/domain/catalog"
	"barkeep/internal/infra"
	"barkeep/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IngredientRepository struct {
	db db.DBTX
}

func NewIngredientRepository(db db.DBTX) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Ingredient, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, category, is_sold_out, updated_at
		FROM ingredients
		WHERE id = $1
		FOR UPDATE`, id)

	return scanIngredient(row)
}

func (r *IngredientRepository) SetSoldOut(ctx context.Context, id uuid.UUID, soldOut bool, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE ingredients SET is_sold_out = $2, updated_at = $3 WHERE id = $1`,
		id, soldOut, updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update ingredient stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ingredient not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *IngredientRepository) FindAll(ctx context.Context) ([]*catalog.Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, is_sold_out, updated_at
		FROM ingredients
		ORDER BY category, name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ingredients", err)
	}
	defer rows.Close()

	var result []*catalog.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ingredients", err)
	}
	return result, nil
}

func scanIngredient(row pgx.Row) (*catalog.Ingredient, error) {
	var (
		id        uuid.UUID
		name      string
		category  string
		isSoldOut bool
		updatedAt time.Time
	)

	err := row.Scan(&id, &name, &category, &isSoldOut, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("ingredient not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan ingredient", err)
	}

	ing, err := catalog.ReconstructIngredient(id, name, catalog.Category(category), isSoldOut, updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid ingredient row", err)
	}
	return ing, nil
}
