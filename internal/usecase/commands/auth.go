package commands

import (
	"context"
	"log/slog"

	"barkeep/internal/infra"
	"barkeep/internal/pkg/errs"
	"barkeep/internal/pkg/jwt"
	"barkeep/internal/pkg/password"
	"barkeep/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrHostNotFound       = errs.New("host not found")
	ErrTokenValidation    = errs.New("token validation failed")
)

// HostRepository is the write-side view of host accounts. Hosts are
// provisioned out of band; the app only authenticates them.
type HostRepository interface {
	FindByEmail(ctx context.Context, email string) (*queries.HostView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.HostView, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (string, *queries.HostView, error)
	ValidateToken(tokenString string) (uuid.UUID, error)
	CurrentHost(ctx context.Context, hostID uuid.UUID) (*queries.HostView, error)
}

type authCommandsImpl struct {
	hosts HostRepository
	jwt   *jwt.Service
}

func NewAuthCommands(hosts HostRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		hosts: hosts,
		jwt:   jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (string, *queries.HostView, error) {
	host, passwordHash, err := a.hosts.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, errs.Wrap(err, "failed to look up host")
	}

	if err := password.ComparePassword(passwordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwt.GenerateToken(host.ID)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to generate token")
	}

	if err := a.hosts.UpdateLastLogin(ctx, host.ID); err != nil {
		// Login still succeeds; the timestamp is bookkeeping.
		slog.Warn("failed to record last login", "host_id", host.ID, "error", err.Error())
	}

	return token, host, nil
}

func (a *authCommandsImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := a.jwt.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrTokenValidation)
	}
	return claims.HostID, nil
}

func (a *authCommandsImpl) CurrentHost(ctx context.Context, hostID uuid.UUID) (*queries.HostView, error) {
	host, err := a.hosts.FindByID(ctx, hostID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, errs.Wrap(err, "failed to look up host")
	}
	return host, nil
}
