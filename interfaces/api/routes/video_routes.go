package routes

import (
	"github.com/gofiber/fiber/v2"

	"catalog-admin/interfaces/api/handlers"
	"catalog-admin/interfaces/api/middleware"
)

func SetupVideoRoutes(api fiber.Router, h *handlers.Handlers) {
	videos := api.Group("/videos")

	// Public routes
	videos.Get("/", h.VideoHandler.List)                  // ดึง videos ทั้งหมด (พร้อม filter/pagination)
	videos.Get("/:id", h.VideoHandler.GetByID)            // ดึง video ตาม ID
	videos.Get("/:id/medias/:type", h.MediaHandler.Get)   // สตรีมไฟล์ media ของ video

	// Protected routes (ต้อง login)
	protected := videos.Group("", middleware.Protected())
	protected.Post("/", h.VideoHandler.Create)                 // สร้าง video ใหม่
	protected.Put("/:id", h.VideoHandler.Update)               // อัปเดต video
	protected.Delete("/:id", middleware.AdminOnly(), h.VideoHandler.Delete) // ลบ video (admin เท่านั้น)
	protected.Post("/:id/medias/:type", h.MediaHandler.Upload) // อัปโหลด media เข้า slot
}
