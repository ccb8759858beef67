package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/services"
	"catalog-admin/domain/validation"
	"catalog-admin/pkg/logger"
	"catalog-admin/pkg/utils"
)

type VideoHandler struct {
	videoService services.VideoService
}

func NewVideoHandler(videoService services.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// Create สร้าง video ใหม่
func (h *VideoHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	video, err := h.videoService.Create(ctx, &req)
	if err != nil {
		// ความผิดพลาดเชิง domain รายงานทุกข้อพร้อมกันในรอบเดียว
		var notification *validation.Notification
		if errors.As(err, &notification) {
			logger.WarnContext(ctx, "Video validation failed", "errors", notification.Messages())
			return utils.ValidationErrorResponse(c, notification.Messages())
		}
		logger.ErrorContext(ctx, "Video creation failed", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Video created", "video_id", video.ID, "title", video.Title)
	return utils.CreatedResponse(c, dto.VideoToVideoResponse(video))
}

// GetByID ดึง video ตาม ID
func (h *VideoHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid video ID")
	}

	video, err := h.videoService.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Video not found", "video_id", id)
		return utils.NotFoundResponse(c, "Video not found")
	}

	return utils.SuccessResponse(c, dto.VideoToVideoResponse(video))
}

// List ดึง videos พร้อม filter + pagination
func (h *VideoHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var params dto.VideoFilterRequest
	if err := c.QueryParser(&params); err != nil {
		logger.WarnContext(ctx, "Invalid query params", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&params); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	videos, total, err := h.videoService.List(ctx, &params)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list videos", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	items := make([]dto.VideoListItemResponse, len(videos))
	for i, v := range videos {
		items[i] = dto.VideoToListItemResponse(v)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}

	return utils.SuccessResponse(c, dto.VideoListResponse{
		Videos: items,
		Meta: dto.PaginationMeta{
			Total:  total,
			Offset: (page - 1) * limit,
			Limit:  limit,
		},
	})
}

// Update แก้ไขข้อมูลหลักของ video (media slots ไม่ถูกแตะ)
func (h *VideoHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid video ID")
	}

	var req dto.UpdateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	video, err := h.videoService.Update(ctx, id, &req)
	if err != nil {
		var notification *validation.Notification
		if errors.As(err, &notification) {
			logger.WarnContext(ctx, "Video validation failed", "video_id", id, "errors", notification.Messages())
			return utils.ValidationErrorResponse(c, notification.Messages())
		}
		if err.Error() == "video not found" {
			return utils.NotFoundResponse(c, "Video not found")
		}
		logger.ErrorContext(ctx, "Video update failed", "video_id", id, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Video updated", "video_id", id)
	return utils.SuccessResponse(c, dto.VideoToVideoResponse(video))
}

// Delete ลบ video และไฟล์ media ทั้งหมดของมัน
func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid video ID")
	}

	if err := h.videoService.Delete(ctx, id); err != nil {
		if err.Error() == "video not found" {
			return utils.NotFoundResponse(c, "Video not found")
		}
		logger.ErrorContext(ctx, "Video delete failed", "video_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Video deleted", "video_id", id)
	return utils.SuccessResponse(c, fiber.Map{"message": "Video deleted successfully"})
}
