package handlers

import (
	"github.com/gofiber/fiber/v2"

	"catalog-admin/domain/ports"
	"catalog-admin/domain/services"
	natspkg "catalog-admin/infrastructure/nats"
	"catalog-admin/pkg/logger"
	"catalog-admin/pkg/utils"
)

// MonitoringHandler handles messaging + storage monitoring endpoints
type MonitoringHandler struct {
	natsClient     *natspkg.Client
	storageService services.StorageService
}

// NewMonitoringHandler creates a new MonitoringHandler
func NewMonitoringHandler(natsClient *natspkg.Client, storageService services.StorageService) *MonitoringHandler {
	return &MonitoringHandler{
		natsClient:     natsClient,
		storageService: storageService,
	}
}

// GetMessagingStatus GET /api/v1/monitoring/messaging
// ดึงสถานะ NATS connection และ event stream
func (h *MonitoringHandler) GetMessagingStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if h.natsClient == nil {
		logger.WarnContext(ctx, "NATS client not available")
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "NATS not available", nil)
	}

	status, err := h.natsClient.GetStatus(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get messaging status", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, ports.MessagingStatus{
		Connected:    h.natsClient.IsConnected(),
		StreamName:   status.Stream.Name,
		StoredEvents: status.Stream.Messages,
		StreamBytes:  status.Stream.Bytes,
	})
}

// GetStorageStats GET /api/v1/monitoring/storage
// ดึงสถิติ storage (รวม disk usage เมื่อใช้ local provider)
func (h *MonitoringHandler) GetStorageStats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats, err := h.storageService.GetStorageStats(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get storage stats", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, stats)
}

// HealthCheck GET /api/v1/monitoring/health
func (h *MonitoringHandler) HealthCheck(c *fiber.Ctx) error {
	health := fiber.Map{
		"status": "ok",
		"nats":   h.natsClient != nil && h.natsClient.IsConnected(),
	}

	return utils.SuccessResponse(c, health)
}
