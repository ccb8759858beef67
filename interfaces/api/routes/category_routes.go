package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-admin/interfaces/api/handlers"
	"catalog-admin/interfaces/api/middleware"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers) {
	categories := api.Group("/categories")

	// Public routes
	categories.Get("/", h.CategoryHandler.List)
	categories.Get("/:id", h.CategoryHandler.GetByID)

	// Protected routes (ต้อง login)
	protected := categories.Group("", middleware.Protected())
	protected.Post("/", h.CategoryHandler.Create)
	protected.Put("/:id", h.CategoryHandler.Update)
	protected.Delete("/:id", middleware.AdminOnly(), h.CategoryHandler.Delete)
}
