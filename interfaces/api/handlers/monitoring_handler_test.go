package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessagingStatus_UnavailableWithoutNATS(t *testing.T) {
	handler := NewMonitoringHandler(nil, nil)
	app := fiber.New()
	app.Get("/monitoring/messaging", handler.GetMessagingStatus)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/monitoring/messaging", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestMonitoringHealthCheck_ReportsDisconnectedNATS(t *testing.T) {
	handler := NewMonitoringHandler(nil, nil)
	app := fiber.New()
	app.Get("/monitoring/health", handler.HealthCheck)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/monitoring/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
