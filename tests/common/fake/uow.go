//go:build unit

// Package fake provides in-memory stand-ins for the storage and event ports.
// They keep command tests free of a running database while preserving the
// repository error contract.
package fake

import (
	"context"
	"errors"
	"sort"
	"time"

	"barkeep/internal/domain/catalog"
	"barkeep/internal/domain/order"
	"barkeep/internal/domain/session"
	"barkeep/internal/infra"
	"barkeep/internal/usecase/shared"

	"github.com/google/uuid"
)

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows"), infra.KindNotFound)
}

type UnitOfWork struct {
	TxFake *Tx
	// FailWith, when set, makes Within return the error without running fn.
	FailWith error
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{TxFake: NewTx()}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.FailWith != nil {
		return u.FailWith
	}
	return fn(ctx, u.TxFake)
}

type Tx struct {
	SessionRepo    *SessionRepo
	IngredientRepo *IngredientRepo
	CocktailRepo   *CocktailRepo
	OrderRepo      *OrderRepo
}

func NewTx() *Tx {
	return &Tx{
		SessionRepo:    &SessionRepo{byID: map[uuid.UUID]*session.Session{}},
		IngredientRepo: &IngredientRepo{byID: map[uuid.UUID]*catalog.Ingredient{}},
		CocktailRepo:   &CocktailRepo{byID: map[uuid.UUID]*catalog.Cocktail{}},
		OrderRepo:      &OrderRepo{byID: map[uuid.UUID]*order.Order{}},
	}
}

func (t *Tx) Sessions() shared.SessionRepository       { return t.SessionRepo }
func (t *Tx) Ingredients() shared.IngredientRepository { return t.IngredientRepo }
func (t *Tx) Cocktails() shared.CocktailRepository     { return t.CocktailRepo }
func (t *Tx) Orders() shared.OrderRepository           { return t.OrderRepo }

type SessionRepo struct {
	byID        map[uuid.UUID]*session.Session
	LockedHosts []uuid.UUID
}

func (r *SessionRepo) Seed(s *session.Session) { r.byID[s.ID()] = s }

func (r *SessionRepo) LockHost(_ context.Context, hostID uuid.UUID) error {
	r.LockedHosts = append(r.LockedHosts, hostID)
	return nil
}

func (r *SessionRepo) FindActiveByHost(_ context.Context, hostID uuid.UUID, now time.Time) (*session.Session, error) {
	var best *session.Session
	for _, s := range r.byID {
		if s.HostID() != hostID || s.IsExpired(now) {
			continue
		}
		if best == nil || s.ExpiresAt().After(best.ExpiresAt()) {
			best = s
		}
	}
	if best == nil {
		return nil, notFound("session not found")
	}
	return best, nil
}

func (r *SessionRepo) FindByID(_ context.Context, id uuid.UUID) (*session.Session, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, notFound("session not found")
	}
	return s, nil
}

func (r *SessionRepo) FindByToken(_ context.Context, token string) (*session.Session, error) {
	for _, s := range r.byID {
		if s.Token() == token {
			return s, nil
		}
	}
	return nil, notFound("session not found")
}

func (r *SessionRepo) Create(_ context.Context, s *session.Session) error {
	r.byID[s.ID()] = s
	return nil
}

func (r *SessionRepo) SetExpiresAt(_ context.Context, id uuid.UUID, expiresAt time.Time) error {
	s, ok := r.byID[id]
	if !ok {
		return notFound("session not found")
	}
	updated, err := session.ReconstructSession(s.ID(), s.HostID(), s.Token(), s.IsOrderPaused(), expiresAt, s.CreatedAt())
	if err != nil {
		return err
	}
	r.byID[id] = updated
	return nil
}

func (r *SessionRepo) SetOrderPaused(_ context.Context, id uuid.UUID, paused bool) error {
	s, ok := r.byID[id]
	if !ok {
		return notFound("session not found")
	}
	updated, err := session.ReconstructSession(s.ID(), s.HostID(), s.Token(), paused, s.ExpiresAt(), s.CreatedAt())
	if err != nil {
		return err
	}
	r.byID[id] = updated
	return nil
}

type IngredientRepo struct {
	byID map[uuid.UUID]*catalog.Ingredient
}

func (r *IngredientRepo) Seed(i *catalog.Ingredient) { r.byID[i.ID()] = i }

func (r *IngredientRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*catalog.Ingredient, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, notFound("ingredient not found")
	}
	return i, nil
}

func (r *IngredientRepo) SetSoldOut(_ context.Context, id uuid.UUID, soldOut bool, updatedAt time.Time) error {
	i, ok := r.byID[id]
	if !ok {
		return notFound("ingredient not found")
	}
	updated, err := catalog.ReconstructIngredient(i.ID(), i.Name(), i.Category(), soldOut, updatedAt)
	if err != nil {
		return err
	}
	r.byID[id] = updated
	return nil
}

func (r *IngredientRepo) FindAll(_ context.Context) ([]*catalog.Ingredient, error) {
	out := make([]*catalog.Ingredient, 0, len(r.byID))
	for _, i := range r.byID {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name() < out[b].Name() })
	return out, nil
}

type CocktailRepo struct {
	byID map[uuid.UUID]*catalog.Cocktail
	// SetActiveCalls records every availability write in order.
	SetActiveCalls []SetActiveCall
}

type SetActiveCall struct {
	ID     uuid.UUID
	Active bool
}

func (r *CocktailRepo) Seed(c *catalog.Cocktail) { r.byID[c.ID()] = c }

func (r *CocktailRepo) Get(id uuid.UUID) *catalog.Cocktail { return r.byID[id] }

func (r *CocktailRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Cocktail, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, notFound("cocktail not found")
	}
	return c, nil
}

func (r *CocktailRepo) FindAll(_ context.Context) ([]*catalog.Cocktail, error) {
	out := make([]*catalog.Cocktail, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name() < out[b].Name() })
	return out, nil
}

func (r *CocktailRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	c, ok := r.byID[id]
	if !ok {
		return notFound("cocktail not found")
	}
	r.SetActiveCalls = append(r.SetActiveCalls, SetActiveCall{ID: id, Active: active})
	r.byID[id] = catalog.ReconstructCocktail(
		c.ID(), c.Name(), c.BaseSpirits(), c.Ingredients(),
		c.ABV(), c.Recipe(), c.Note(), c.ImageURL(),
		c.FlavorTags(), c.Sweetness(), active, c.CreatedAt(),
	)
	return nil
}

type OrderRepo struct {
	byID map[uuid.UUID]*order.Order
}

func (r *OrderRepo) Seed(o *order.Order) { r.byID[o.ID()] = o }

func (r *OrderRepo) Get(id uuid.UUID) *order.Order { return r.byID[id] }

func (r *OrderRepo) FindByIDForUpdate(_ context.Context, sessionID, orderID uuid.UUID) (*order.Order, error) {
	o, ok := r.byID[orderID]
	if !ok || o.SessionID() != sessionID {
		return nil, notFound("order not found")
	}
	return o, nil
}

func (r *OrderRepo) Create(_ context.Context, o *order.Order) error {
	r.byID[o.ID()] = o
	return nil
}

func (r *OrderRepo) SetStatus(_ context.Context, sessionID, orderID uuid.UUID, status order.Status, updatedAt time.Time) error {
	o, ok := r.byID[orderID]
	if !ok || o.SessionID() != sessionID {
		return notFound("order not found")
	}
	updated, err := order.ReconstructOrder(
		o.ID(), o.SessionID(), o.GuestID(), o.GuestName(),
		o.CocktailID(), o.CocktailName(), o.Customizations(),
		status, o.Rating(), o.CreatedAt(), updatedAt,
	)
	if err != nil {
		return err
	}
	r.byID[orderID] = updated
	return nil
}

func (r *OrderRepo) SetRating(_ context.Context, sessionID, orderID uuid.UUID, rating order.Rating, updatedAt time.Time) error {
	o, ok := r.byID[orderID]
	if !ok || o.SessionID() != sessionID {
		return notFound("order not found")
	}
	updated, err := order.ReconstructOrder(
		o.ID(), o.SessionID(), o.GuestID(), o.GuestName(),
		o.CocktailID(), o.CocktailName(), o.Customizations(),
		o.Status(), &rating, o.CreatedAt(), updatedAt,
	)
	if err != nil {
		return err
	}
	r.byID[orderID] = updated
	return nil
}
