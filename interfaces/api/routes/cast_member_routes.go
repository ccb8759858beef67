package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-admin/interfaces/api/handlers"
	"catalog-admin/interfaces/api/middleware"
)

func SetupCastMemberRoutes(api fiber.Router, h *handlers.Handlers) {
	castMembers := api.Group("/cast-members")

	// Public routes
	castMembers.Get("/", h.CastMemberHandler.List)
	castMembers.Get("/:id", h.CastMemberHandler.GetByID)

	// Protected routes (ต้อง login)
	protected := castMembers.Group("", middleware.Protected())
	protected.Post("/", h.CastMemberHandler.Create)
	protected.Put("/:id", h.CastMemberHandler.Update)
	protected.Delete("/:id", middleware.AdminOnly(), h.CastMemberHandler.Delete)
}
