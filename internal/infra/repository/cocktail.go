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

type CocktailRepository struct {
	db db.DBTX
}

func NewCocktailRepository(db db.DBTX) *CocktailRepository {
	return &CocktailRepository{db: db}
}

const cocktailColumns = `id, name, base_spirits, fruits, beverages, herbs, others,
	abv, recipe, note, image_url, flavor_tags, sweetness, is_active, created_at`

func (r *CocktailRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Cocktail, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+cocktailColumns+`
		FROM cocktails
		WHERE id = $1`, id)

	return scanCocktail(row)
}

func (r *CocktailRepository) FindAll(ctx context.Context) ([]*catalog.Cocktail, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+cocktailColumns+`
		FROM cocktails
		ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cocktails", err)
	}
	defer rows.Close()

	var result []*catalog.Cocktail
	for rows.Next() {
		c, err := scanCocktail(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cocktails", err)
	}
	return result, nil
}

// SetActive is the only write path for the derived availability flag; it is
// called exclusively from the recomputation transaction.
func (r *CocktailRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE cocktails SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to update cocktail availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cocktail not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanCocktail(row pgx.Row) (*catalog.Cocktail, error) {
	var (
		id                       uuid.UUID
		name                     string
		baseSpirits              []string
		fruits, beverages        []string
		herbs, others            []string
		abv, recipe, note, image string
		flavorTags               []string
		sweetness                int
		isActive                 bool
		createdAt                time.Time
	)

	err := row.Scan(&id, &name, &baseSpirits, &fruits, &beverages, &herbs, &others,
		&abv, &recipe, &note, &image, &flavorTags, &sweetness, &isActive, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("cocktail not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan cocktail", err)
	}

	groups := catalog.IngredientGroups{
		Fruits:    fruits,
		Beverages: beverages,
		Herbs:     herbs,
		Others:    others,
	}
	return catalog.ReconstructCocktail(id, name, baseSpirits, groups,
		abv, recipe, note, image, flavorTags, sweetness, isActive, createdAt), nil
}
