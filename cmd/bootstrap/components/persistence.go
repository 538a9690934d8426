package components

import (
	"log/slog"

	"barkeep/internal/infra/db"
	"barkeep/internal/infra/notifier"
	"barkeep/internal/infra/readstore"
	"barkeep/internal/infra/repository"
	"barkeep/internal/infra/uow"
	"barkeep/internal/pkg/config"
	"barkeep/internal/usecase/commands"
	"barkeep/internal/usecase/queries"
	"barkeep/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Write-side host lookup lives outside the UoW: auth never joins a
		// storage transaction.
		fx.Annotate(
			repository.NewHostRepository,
			fx.As(new(commands.HostRepository)),
		),
		// Read stores
		fx.Annotate(
			readstore.NewSessionReadStore,
			fx.As(new(queries.SessionReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Live event fan-out
		fx.Annotate(
			func(client *redis.Client, cfg config.Config, logger *slog.Logger) *notifier.RedisNotifier {
				return notifier.NewRedisNotifier(client, cfg.Redis, logger)
			},
			fx.As(new(shared.EventPublisher)),
			fx.As(new(shared.EventStream)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
