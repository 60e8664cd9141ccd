package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-console/internal/api/http/handlers"
	"github.com/spec-kit/erp-console/internal/ws"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Metrics   *handlers.MetricsHandler
	Dashboard *handlers.DashboardHandler
	Resources []*handlers.ResourceHandler
	Hub       *ws.Hub
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Snapshot)

	api := app.Group("/api")
	api.Get("/dashboard", cfg.Dashboard.Snapshot)

	for _, handler := range cfg.Resources {
		group := api.Group("/" + handler.Name())
		// export before :id so the literal segment wins
		group.Get("/export", handler.Export)
		group.Get("/", handler.List)
		group.Post("/", handler.Create)
		group.Get("/:id", handler.Get)
		group.Put("/:id", handler.Update)
		group.Delete("/:id", handler.Delete)
	}

	if cfg.Hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws", websocket.New(cfg.Hub.Serve))
	}
}
