package commands

import (
	"context"
	"log/slog"
	"time"

	"barkeep/internal/domain/session"
	"barkeep/internal/infra"
	"barkeep/internal/pkg/clock"
	"barkeep/internal/pkg/errs"
	"barkeep/internal/usecase/queries"
	"barkeep/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionCommands interface {
	// CreateOrGet is idempotent while a session is valid: the host gets the
	// existing session back instead of a duplicate.
	CreateOrGet(ctx context.Context, hostID uuid.UUID) (*queries.SessionView, error)
	End(ctx context.Context, sessionID uuid.UUID) error
	SetOrderPaused(ctx context.Context, sessionID uuid.UUID, paused bool) error
}

type sessionCommandsImpl struct {
	uow    shared.UnitOfWork
	events shared.EventPublisher
	clock  clock.Clock
	ttl    time.Duration
}

func NewSessionCommands(
	uow shared.UnitOfWork,
	events shared.EventPublisher,
	clk clock.Clock,
	ttl time.Duration,
) SessionCommands {
	return &sessionCommandsImpl{
		uow:    uow,
		events: events,
		clock:  clk,
		ttl:    ttl,
	}
}

func (s *sessionCommandsImpl) CreateOrGet(ctx context.Context, hostID uuid.UUID) (*queries.SessionView, error) {
	var view *queries.SessionView

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The host lock makes concurrent first-issuance serialize; without it
		// two racing creates could both miss the existing-session read.
		if err := tx.Sessions().LockHost(ctx, hostID); err != nil {
			return err
		}

		now := s.clock.Now()
		existing, err := tx.Sessions().FindActiveByHost(ctx, hostID, now)
		if err == nil {
			view = sessionToView(existing)
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		fresh, err := session.NewSession(hostID, now, s.ttl)
		if err != nil {
			return errs.Wrap(err, "failed to issue session")
		}
		if err := tx.Sessions().Create(ctx, fresh); err != nil {
			return err
		}
		view = sessionToView(fresh)
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (s *sessionCommandsImpl) End(ctx context.Context, sessionID uuid.UUID) error {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Sessions().FindByID(ctx, sessionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrSessionNotFound
			}
			return err
		}

		now := s.clock.Now()
		if err := found.End(now); err != nil {
			return errs.Mark(err, errs.ErrSessionExpired)
		}
		return tx.Sessions().SetExpiresAt(ctx, sessionID, found.ExpiresAt())
	})
	if err != nil {
		return err
	}

	s.publishSessionUpdated(ctx, sessionID)
	return nil
}

func (s *sessionCommandsImpl) SetOrderPaused(ctx context.Context, sessionID uuid.UUID, paused bool) error {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Sessions().SetOrderPaused(ctx, sessionID, paused); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrSessionNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publishSessionUpdated(ctx, sessionID)
	return nil
}

func (s *sessionCommandsImpl) publishSessionUpdated(ctx context.Context, sessionID uuid.UUID) {
	ev := shared.Event{
		Type:       shared.EventSessionUpdated,
		SessionID:  sessionID,
		EntityID:   sessionID,
		OccurredAt: s.clock.Now(),
	}
	if err := s.events.PublishSession(ctx, sessionID, ev); err != nil {
		slog.Warn("failed to publish session event", "session_id", sessionID, "error", err.Error())
	}
}

func sessionToView(s *session.Session) *queries.SessionView {
	return &queries.SessionView{
		ID:            s.ID(),
		HostID:        s.HostID(),
		Token:         s.Token(),
		IsOrderPaused: s.IsOrderPaused(),
		ExpiresAt:     s.ExpiresAt(),
		CreatedAt:     s.CreatedAt(),
	}
}
