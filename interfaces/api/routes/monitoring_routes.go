package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-admin/interfaces/api/handlers"
)

// SetupMonitoringRoutes sets up the monitoring routes
// GET /api/v1/monitoring/messaging - NATS/JetStream status
// GET /api/v1/monitoring/storage - Storage stats
// GET /api/v1/monitoring/health - Health check
func SetupMonitoringRoutes(app *fiber.App, h *handlers.Handlers) {
	monitoring := app.Group("/api/v1/monitoring")

	monitoring.Get("/messaging", h.MonitoringHandler.GetMessagingStatus)
	monitoring.Get("/storage", h.MonitoringHandler.GetStorageStats)
	monitoring.Get("/health", h.MonitoringHandler.HealthCheck)
}
