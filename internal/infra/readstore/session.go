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

type SessionReadStore struct {
	db db.DBTX
}

func NewSessionReadStore(db db.DBTX) *SessionReadStore {
	return &SessionReadStore{db: db}
}

func (r *SessionReadStore) FindByToken(ctx context.Context, token string) (*queries.SessionView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, host_id, token, is_order_paused, expires_at, created_at
		FROM sessions
		WHERE token = $1`, token)

	var view queries.SessionView
	err := row.Scan(&view.ID, &view.HostID, &view.Token, &view.IsOrderPaused, &view.ExpiresAt, &view.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found by token", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session by token", err)
	}
	return &view, nil
}

func (r *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, host_id, token, is_order_paused, expires_at, created_at
		FROM sessions
		WHERE id = $1`, id)

	var view queries.SessionView
	err := row.Scan(&view.ID, &view.HostID, &view.Token, &view.IsOrderPaused, &view.ExpiresAt, &view.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session by ID", err)
	}
	return &view, nil
}
