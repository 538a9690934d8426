package components

import (
	"barkeep/internal/handler"
	"barkeep/internal/handler/api"
	"barkeep/internal/handler/middleware"
	"barkeep/internal/pkg/config"
	"barkeep/internal/pkg/jwt"
	"barkeep/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(auth commands.AuthCommands, jwtService *jwt.Service, cfg config.Config) *api.AuthHandler {
			return api.NewAuthHandler(auth, jwtService, cfg.Cookie)
		},
		api.NewSessionHandler,
		api.NewCatalogHandler,
		api.NewOrderHandler,
		api.NewStreamHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
