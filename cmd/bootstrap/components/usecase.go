package components

import (
	"barkeep/internal/pkg/clock"
	"barkeep/internal/pkg/config"
	"barkeep/internal/usecase/commands"
	"barkeep/internal/usecase/queries"
	"barkeep/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		func(uow shared.UnitOfWork, events shared.EventPublisher, clk clock.Clock, cfg config.Config) commands.SessionCommands {
			return commands.NewSessionCommands(uow, events, clk, cfg.Session.TTL)
		},
		commands.NewCatalogCommands,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSessionQueries,
		queries.NewCatalogQueries,
		queries.NewOrderQueries,
	),
)
