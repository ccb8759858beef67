package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-admin/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	// Setup health and root routes
	SetupHealthRoutes(app)

	// API version group
	api := app.Group("/api/v1")

	// Setup all route groups
	SetupAuthRoutes(api, h)
	SetupVideoRoutes(api, h)
	SetupCategoryRoutes(api, h)
	SetupGenreRoutes(api, h)
	SetupCastMemberRoutes(api, h)

	// Setup Monitoring routes (needs app for /api/v1/monitoring)
	SetupMonitoringRoutes(app, h)

	// Setup WebSocket routes (needs app, not api group)
	SetupWebSocketRoutes(app)
}
