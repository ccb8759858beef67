package handlers

import (
	"github.com/gofiber/fiber/v2"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/services"
	"catalog-admin/pkg/logger"
	"catalog-admin/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// Register สมัครสมาชิกใหม่
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Registration failed", "email", req.Email, "error", err)
		return utils.ConflictResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)
	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

// Login เข้าสู่ระบบด้วย email + password
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Login failed", "email", req.Email, "error", err)
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return utils.SuccessResponse(c, dto.LoginResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

// Profile ดึงข้อมูล user ปัจจุบันจาก JWT
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Unauthorized")
	}

	user, err := h.userService.GetProfile(ctx, userCtx.ID)
	if err != nil {
		logger.WarnContext(ctx, "Profile not found", "user_id", userCtx.ID)
		return utils.NotFoundResponse(c, "User not found")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
