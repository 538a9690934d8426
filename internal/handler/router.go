package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barkeep/internal/handler/api"
	"barkeep/internal/handler/middleware"
	"barkeep/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	sessionHandler *api.SessionHandler,
	catalogHandler *api.CatalogHandler,
	orderHandler *api.OrderHandler,
	streamHandler *api.StreamHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, sessionHandler, catalogHandler, orderHandler, streamHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	sessionHandler *api.SessionHandler,
	catalogHandler *api.CatalogHandler,
	orderHandler *api.OrderHandler,
	streamHandler *api.StreamHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireHost())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		sessions := apiGroup.Group("/sessions")
		{
			addRoutes(sessions, []route{
				{Method: http.MethodGet, Path: "/validate", Handler: sessionHandler.Validate},
			})

			hostSessions := sessions.Group("")
			hostSessions.Use(authMiddleware.RequireHost())
			addRoutes(hostSessions, []route{
				{Method: http.MethodPost, Path: "", Handler: sessionHandler.Create},
				{Method: http.MethodPost, Path: "/:id/end", Handler: sessionHandler.End},
				{Method: http.MethodPatch, Path: "/:id/pause", Handler: sessionHandler.Pause},
			})

			// Hosts and guests both read the queue; guests authenticate with
			// the share token query parameter instead of a bearer.
			mixedSessions := sessions.Group("")
			mixedSessions.Use(authMiddleware.OptionalHost())
			addRoutes(mixedSessions, []route{
				{Method: http.MethodGet, Path: "/:id/orders", Handler: orderHandler.ListBySession},
				{Method: http.MethodGet, Path: "/:id/orders/stream", Handler: streamHandler.SessionEvents},
			})
		}

		catalog := apiGroup.Group("")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/cocktails", Handler: catalogHandler.ListCocktails},
				{Method: http.MethodGet, Path: "/cocktails/:id", Handler: catalogHandler.GetCocktail},
				{Method: http.MethodGet, Path: "/ingredients", Handler: catalogHandler.ListIngredients},
				{Method: http.MethodGet, Path: "/catalog/stream", Handler: streamHandler.CatalogEvents},
			})

			hostCatalog := catalog.Group("")
			hostCatalog.Use(authMiddleware.RequireHost())
			addRoutes(hostCatalog, []route{
				{Method: http.MethodPost, Path: "/ingredients/:id/toggle", Handler: catalogHandler.ToggleStock},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.OptionalHost())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: orderHandler.Update},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
