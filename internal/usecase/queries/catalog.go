package queries

import (
	"context"

	"barkeep/internal/infra"
	"barkeep/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	ListCocktails(ctx context.Context, activeOnly bool) ([]*CocktailView, error)
	FindCocktailByID(ctx context.Context, id uuid.UUID) (*CocktailView, error)
	ListIngredients(ctx context.Context) ([]*IngredientView, error)
}

type CatalogQueries interface {
	ListCocktails(ctx context.Context, activeOnly bool) ([]*CocktailView, error)
	GetCocktail(ctx context.Context, id uuid.UUID) (*CocktailView, error)
	ListIngredients(ctx context.Context) ([]*IngredientView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListCocktails(ctx context.Context, activeOnly bool) ([]*CocktailView, error) {
	cocktails, err := q.store.ListCocktails(ctx, activeOnly)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list cocktails")
	}
	return cocktails, nil
}

func (q *catalogQueriesImpl) GetCocktail(ctx context.Context, id uuid.UUID) (*CocktailView, error) {
	cocktail, err := q.store.FindCocktailByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCocktailNotFound
		}
		return nil, errs.Wrap(err, "failed to find cocktail")
	}
	return cocktail, nil
}

func (q *catalogQueriesImpl) ListIngredients(ctx context.Context) ([]*IngredientView, error) {
	ingredients, err := q.store.ListIngredients(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list ingredients")
	}
	return ingredients, nil
}
