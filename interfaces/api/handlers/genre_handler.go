package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/services"
	"catalog-admin/pkg/logger"
	"catalog-admin/pkg/utils"
)

type GenreHandler struct {
	genreService services.GenreService
}

func NewGenreHandler(genreService services.GenreService) *GenreHandler {
	return &GenreHandler{
		genreService: genreService,
	}
}

// Create สร้าง genre ใหม่
func (h *GenreHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	genre, err := h.genreService.Create(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Genre creation failed", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Genre created", "genre_id", genre.ID, "name", genre.Name)
	return utils.CreatedResponse(c, dto.GenreToResponse(genre))
}

// GetByID ดึง genre ตาม ID
func (h *GenreHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid genre ID")
	}

	genre, err := h.genreService.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Genre not found", "genre_id", id)
		return utils.NotFoundResponse(c, "Genre not found")
	}

	return utils.SuccessResponse(c, dto.GenreToResponse(genre))
}

// List ดึง genres พร้อม pagination
func (h *GenreHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.ListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	genres, total, err := h.genreService.List(ctx, query.Page, query.Limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list genres", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.GenreResponse, len(genres))
	for i, genre := range genres {
		responses[i] = *dto.GenreToResponse(genre)
	}

	return utils.SuccessResponse(c, dto.GenreListResponse{
		Genres: responses,
		Meta: dto.PaginationMeta{
			Total:  total,
			Offset: query.Offset(),
			Limit:  query.Limit,
		},
	})
}

// Update อัปเดต genre
func (h *GenreHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid genre ID")
	}

	var req dto.UpdateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	genre, err := h.genreService.Update(ctx, id, &req)
	if err != nil {
		logger.WarnContext(ctx, "Genre update failed", "genre_id", id, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Genre updated", "genre_id", id)
	return utils.SuccessResponse(c, dto.GenreToResponse(genre))
}

// Delete ลบ genre
func (h *GenreHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid genre ID")
	}

	if err := h.genreService.Delete(ctx, id); err != nil {
		logger.WarnContext(ctx, "Genre delete failed", "genre_id", id, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Genre deleted", "genre_id", id)
	return utils.SuccessResponse(c, fiber.Map{"message": "Genre deleted successfully"})
}
