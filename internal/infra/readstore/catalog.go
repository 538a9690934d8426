package readstore

import (
	"context"
	"errors"

	"barkeep/internal/infra"
	"barkeep/internal/infra/db"
	"barkeep/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

const cocktailViewColumns = `id, name, base_spirits, fruits, beverages, herbs, others,
	abv, recipe, note, image_url, flavor_tags, sweetness, is_active, created_at`

func (r *CatalogReadStore) ListCocktails(ctx context.Context, activeOnly bool) ([]*queries.CocktailView, error) {
	sql := `SELECT ` + cocktailViewColumns + ` FROM cocktails ORDER BY name ASC`
	if activeOnly {
		sql = `SELECT ` + cocktailViewColumns + ` FROM cocktails WHERE is_active ORDER BY name ASC`
	}

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cocktails", err)
	}
	defer rows.Close()

	var result []*queries.CocktailView
	for rows.Next() {
		view, err := scanCocktailView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cocktails", err)
	}
	return result, nil
}

func (r *CatalogReadStore) FindCocktailByID(ctx context.Context, id uuid.UUID) (*queries.CocktailView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+cocktailViewColumns+` FROM cocktails WHERE id = $1`, id)

	view, err := scanCocktailView(row)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *CatalogReadStore) ListIngredients(ctx context.Context) ([]*queries.IngredientView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, is_sold_out, updated_at
		FROM ingredients
		ORDER BY category ASC, name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ingredients", err)
	}
	defer rows.Close()

	var result []*queries.IngredientView
	for rows.Next() {
		var view queries.IngredientView
		if err := rows.Scan(&view.ID, &view.Name, &view.Category, &view.IsSoldOut, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ingredient", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ingredients", err)
	}
	return result, nil
}

func scanCocktailView(row pgx.Row) (*queries.CocktailView, error) {
	var view queries.CocktailView
	err := row.Scan(&view.ID, &view.Name, &view.BaseSpirits, &view.Fruits, &view.Beverages,
		&view.Herbs, &view.Others, &view.ABV, &view.Recipe, &view.Note, &view.ImageURL,
		&view.FlavorTags, &view.Sweetness, &view.IsActive, &view.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("cocktail not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan cocktail", err)
	}
	return &view, nil
}
