package repository

import (
	"context"
	"errors"

	"barkeep/internal/infra"
	"barkeep/internal/infra/db"
	"barkeep/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HostRepository backs the bearer credential. Hosts are provisioned out of
// band (seeding), so there is no create path here.
type HostRepository struct {
	db db.DBTX
}

func NewHostRepository(db db.DBTX) *HostRepository {
	return &HostRepository{db: db}
}

func (r *HostRepository) FindByEmail(ctx context.Context, email string) (*queries.HostView, string, error) {
	var (
		id           uuid.UUID
		passwordHash string
	)

	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash
		FROM hosts
		WHERE email = $1`, email)

	var foundEmail string
	err := row.Scan(&id, &foundEmail, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("host not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find host by email", err)
	}

	return &queries.HostView{ID: id, Email: foundEmail}, passwordHash, nil
}

func (r *HostRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.HostView, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email FROM hosts WHERE id = $1`, id)

	var view queries.HostView
	err := row.Scan(&view.ID, &view.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("host not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find host by ID", err)
	}
	return &view, nil
}

func (r *HostRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE hosts SET last_login_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update host last login", err)
	}
	return nil
}
