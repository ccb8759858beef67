package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-admin/interfaces/api/handlers"
	"catalog-admin/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers) {
	auth := api.Group("/auth")

	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/login", h.AuthHandler.Login)

	// Protected routes - require authentication
	auth.Get("/me", middleware.Protected(), h.AuthHandler.Profile)
}
