package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/services"
	"catalog-admin/pkg/logger"
	"catalog-admin/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create สร้าง category ใหม่
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	category, err := h.categoryService.Create(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Category creation failed", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "name", category.Name)
	return utils.CreatedResponse(c, dto.CategoryToResponse(category))
}

// GetByID ดึง category ตาม ID
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	category, err := h.categoryService.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Category not found", "category_id", id)
		return utils.NotFoundResponse(c, "Category not found")
	}

	return utils.SuccessResponse(c, dto.CategoryToResponse(category))
}

// List ดึง categories พร้อม pagination
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.ListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	categories, total, err := h.categoryService.List(ctx, query.Page, query.Limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *dto.CategoryToResponse(category)
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{
		Categories: responses,
		Meta: dto.PaginationMeta{
			Total:  total,
			Offset: query.Offset(),
			Limit:  query.Limit,
		},
	})
}

// Update อัปเดต category
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	category, err := h.categoryService.Update(ctx, id, &req)
	if err != nil {
		logger.WarnContext(ctx, "Category update failed", "category_id", id, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Category updated", "category_id", id)
	return utils.SuccessResponse(c, dto.CategoryToResponse(category))
}

// Delete ลบ category
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.categoryService.Delete(ctx, id); err != nil {
		logger.WarnContext(ctx, "Category delete failed", "category_id", id, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	return utils.SuccessResponse(c, fiber.Map{"message": "Category deleted successfully"})
}
