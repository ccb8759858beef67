package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/services"
	"catalog-admin/pkg/logger"
	"catalog-admin/pkg/utils"
)

type CastMemberHandler struct {
	castMemberService services.CastMemberService
}

func NewCastMemberHandler(castMemberService services.CastMemberService) *CastMemberHandler {
	return &CastMemberHandler{
		castMemberService: castMemberService,
	}
}

// Create สร้าง cast member ใหม่
func (h *CastMemberHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCastMemberRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	member, err := h.castMemberService.Create(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Cast member creation failed", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Cast member created", "cast_member_id", member.ID, "name", member.Name)
	return utils.CreatedResponse(c, dto.CastMemberToResponse(member))
}

// GetByID ดึง cast member ตาม ID
func (h *CastMemberHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cast member ID")
	}

	member, err := h.castMemberService.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Cast member not found", "cast_member_id", id)
		return utils.NotFoundResponse(c, "Cast member not found")
	}

	return utils.SuccessResponse(c, dto.CastMemberToResponse(member))
}

// List ดึง cast members พร้อม pagination
func (h *CastMemberHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.ListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	members, total, err := h.castMemberService.List(ctx, query.Page, query.Limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list cast members", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.CastMemberResponse, len(members))
	for i, member := range members {
		responses[i] = *dto.CastMemberToResponse(member)
	}

	return utils.SuccessResponse(c, dto.CastMemberListResponse{
		CastMembers: responses,
		Meta: dto.PaginationMeta{
			Total:  total,
			Offset: query.Offset(),
			Limit:  query.Limit,
		},
	})
}

// Update อัปเดต cast member
func (h *CastMemberHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cast member ID")
	}

	var req dto.UpdateCastMemberRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	member, err := h.castMemberService.Update(ctx, id, &req)
	if err != nil {
		logger.WarnContext(ctx, "Cast member update failed", "cast_member_id", id, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Cast member updated", "cast_member_id", id)
	return utils.SuccessResponse(c, dto.CastMemberToResponse(member))
}

// Delete ลบ cast member
func (h *CastMemberHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cast member ID")
	}

	if err := h.castMemberService.Delete(ctx, id); err != nil {
		logger.WarnContext(ctx, "Cast member delete failed", "cast_member_id", id, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Cast member deleted", "cast_member_id", id)
	return utils.SuccessResponse(c, fiber.Map{"message": "Cast member deleted successfully"})
}
