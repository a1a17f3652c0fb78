package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lovelyplace-web/internal/delivery/http/middleware"
	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/pkg/validator"
	"github.com/lovelyplace-web/internal/usecase"
	"github.com/lovelyplace-web/internal/usecase/dto"
	"go.uber.org/zap"
)

// AdminHandler - вход и выход администратора
type AdminHandler struct {
	adminUC *usecase.AdminUseCase
	logger  *zap.Logger
}

// NewAdminHandler - создание нового AdminHandler
func NewAdminHandler(adminUC *usecase.AdminUseCase, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		logger:  logger,
	}
}

// Login godoc
// @Summary Вход администратора
// @Description Включает режим администратора для текущей сессии
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Токен администратора"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errors.ErrInvalidRequest, "")
	}
	if err := validator.Validate(&req); err != nil {
		return fail(c, err, "")
	}

	if err := h.adminUC.Login(middleware.StateFrom(c), req.Token); err != nil {
		return fail(c, err, "")
	}
	return respond(c, fiber.Map{"adminLogin": true}, nil, "")
}

// Logout godoc
// @Summary Выход администратора
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/admin/logout [post]
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	h.adminUC.Logout(middleware.StateFrom(c))
	return respond(c, fiber.Map{"adminLogin": false}, nil, "")
}
