package repository

import (
	"context"
	"errors"
	"time"

	"barkeep/internal/domain/session"
	"barkeep/internal/infra"
	"barkeep/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/google/uuid"
)

type SessionRepository struct {
	db db.DBTX
}

func NewSessionRepository(db db.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `id, host_id, token, is_order_paused, expires_at, created_at`

func (r *SessionRepository) LockHost(ctx context.Context, hostID uuid.UUID) error {
	// Transaction-scoped advisory lock keyed by host; released on commit or
	// rollback. Serializes first-issuance races per host.
	_, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, hostID)
	if err != nil {
		return infra.WrapRepoErr("failed to lock host for session issuance", err)
	}
	return nil
}

func (r *SessionRepository) FindActiveByHost(ctx context.Context, hostID uuid.UUID, now time.Time) (*session.Session, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE host_id = $1 AND expires_at > $2
		ORDER BY expires_at DESC
		LIMIT 1`, hostID, now)

	return r.scan(row, "active session not found")
}

func (r *SessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE id = $1
		FOR UPDATE`, id)

	return r.scan(row, "session not found")
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*session.Session, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE token = $1`, token)

	return r.scan(row, "session not found by token")
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sessions (id, host_id, token, is_order_paused, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID(), s.HostID(), s.Token(), s.IsOrderPaused(), s.ExpiresAt(), s.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create session", err)
	}
	return nil
}

func (r *SessionRepository) SetExpiresAt(ctx context.Context, id uuid.UUID, expiresAt time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE sessions SET expires_at = $2 WHERE id = $1`, id, expiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update session expiry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("session not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *SessionRepository) SetOrderPaused(ctx context.Context, id uuid.UUID, paused bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE sessions SET is_order_paused = $2 WHERE id = $1`, id, paused)
	if err != nil {
		return infra.WrapRepoErr("failed to update session pause state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("session not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *SessionRepository) scan(row pgx.Row, notFoundMsg string) (*session.Session, error) {
	var (
		id, hostID    uuid.UUID
		token         string
		isOrderPaused bool
		expiresAt     time.Time
		createdAt     time.Time
	)

	err := row.Scan(&id, &hostID, &token, &isOrderPaused, &expiresAt, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan session", err)
	}

	s, err := session.ReconstructSession(id, hostID, token, isOrderPaused, expiresAt, createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid session row", err)
	}
	return s, nil
}
