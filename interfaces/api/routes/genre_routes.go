package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-admin/interfaces/api/handlers"
	"catalog-admin/interfaces/api/middleware"
)

func SetupGenreRoutes(api fiber.Router, h *handlers.Handlers) {
	genres := api.Group("/genres")

	// Public routes
	genres.Get("/", h.GenreHandler.List)
	genres.Get("/:id", h.GenreHandler.GetByID)

	// Protected routes (ต้อง login)
	protected := genres.Group("", middleware.Protected())
	protected.Post("/", h.GenreHandler.Create)
	protected.Put("/:id", h.GenreHandler.Update)
	protected.Delete("/:id", middleware.AdminOnly(), h.GenreHandler.Delete)
}
