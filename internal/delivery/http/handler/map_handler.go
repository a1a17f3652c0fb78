package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lovelyplace-web/internal/delivery/http/middleware"
	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/pkg/utils"
	"github.com/lovelyplace-web/internal/usecase"
	"github.com/lovelyplace-web/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapHandler - маркеры карты и всплывающие окна
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// Markers godoc
// @Summary Маркеры карты
// @Description Геокодирует текущий список мест; место с неудачным геокодированием пропускается
// @Tags Map
// @Produce json
// @Param lat query number false "Широта пользователя"
// @Param lng query number false "Долгота пользователя"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapView}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map [get]
func (h *MapHandler) Markers(c *fiber.Ctx) error {
	var req dto.MapRequest
	var err error
	if req.Lat, err = queryFloat(c, "lat"); err != nil {
		return utils.SendError(c, err)
	}
	if req.Lng, err = queryFloat(c, "lng"); err != nil {
		return utils.SendError(c, err)
	}

	view, err := h.mapUC.Markers(c.Context(), middleware.StateFrom(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, &utils.Meta{Total: len(view.Markers)})
}

// OpenPopup godoc
// @Summary Открыть окно маркера
// @Description Открывает окно места, закрывая ранее открытое
// @Tags Map
// @Produce json
// @Param id path string true "ID места"
// @Success 200 {object} utils.SuccessResponse{data=dto.Popup}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/map/popup/{id} [post]
func (h *MapHandler) OpenPopup(c *fiber.Ctx) error {
	popup, err := h.mapUC.OpenPopup(middleware.StateFrom(c), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, popup, nil)
}

// ClosePopup godoc
// @Summary Закрыть окно маркера
// @Tags Map
// @Success 204
// @Router /api/v1/map/popup [delete]
func (h *MapHandler) ClosePopup(c *fiber.Ctx) error {
	h.mapUC.ClosePopup(middleware.StateFrom(c))
	return c.SendStatus(fiber.StatusNoContent)
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{key: raw})
	}
	return &v, nil
}
