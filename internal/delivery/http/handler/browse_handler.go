package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lovelyplace-web/internal/delivery/http/middleware"
	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/pkg/utils"
	"github.com/lovelyplace-web/internal/pkg/validator"
	"github.com/lovelyplace-web/internal/usecase"
	"github.com/lovelyplace-web/internal/usecase/dto"
	"go.uber.org/zap"
)

// BrowseHandler - главная страница: категории, быстрые фильтры, поиск
type BrowseHandler struct {
	browseUC *usecase.BrowseUseCase
	renderer *Renderer
	logger   *zap.Logger
}

// NewBrowseHandler - создание нового BrowseHandler
func NewBrowseHandler(browseUC *usecase.BrowseUseCase, renderer *Renderer, logger *zap.Logger) *BrowseHandler {
	return &BrowseHandler{
		browseUC: browseUC,
		renderer: renderer,
		logger:   logger,
	}
}

// Home - страница "/". Ошибка загрузки списка показывается баннером над пустым списком.
func (h *BrowseHandler) Home(c *fiber.Ctx) error {
	st := middleware.StateFrom(c)

	view, err := h.browseUC.Load(c.Context(), st)
	if err != nil {
		middleware.SetFlash(c, middleware.FlashError, errorMessage(err))
		view = h.browseUC.State(st)
	}

	return h.renderer.Render(c, fiber.StatusOK, "home.html", newPage(c, "Accueil", view))
}

// State godoc
// @Summary Состояние главной страницы
// @Description Категория, набор фильтров, быстрые фильтры и текущий список мест сессии
// @Tags Browse
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.BrowseState}
// @Router /api/v1/state [get]
func (h *BrowseHandler) State(c *fiber.Ctx) error {
	view := h.browseUC.State(middleware.StateFrom(c))
	return utils.SendSuccess(c, view, &utils.Meta{Total: view.Total})
}

// SelectCategory godoc
// @Summary Выбор категории
// @Description Выбирает drink, eat или fun; сбрасывает фильтры и активный быстрый фильтр
// @Tags Browse
// @Produce json
// @Param category path string true "Категория" Enums(drink, eat, fun)
// @Success 200 {object} utils.SuccessResponse{data=dto.BrowseState}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/category/{category} [post]
func (h *BrowseHandler) SelectCategory(c *fiber.Ctx) error {
	view, err := h.browseUC.SelectCategory(c.Context(), middleware.StateFrom(c), c.Params("category"))
	if err != nil {
		return fail(c, err, "/")
	}
	return respond(c, view, &utils.Meta{Total: view.Total}, "/")
}

// ToggleQuickFilter godoc
// @Summary Быстрый фильтр
// @Description Включает быстрый фильтр категории; повторное нажатие выключает его
// @Tags Browse
// @Produce json
// @Param id path int true "ID быстрого фильтра"
// @Success 200 {object} utils.SuccessResponse{data=dto.BrowseState}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/quick-filters/{id} [post]
func (h *BrowseHandler) ToggleQuickFilter(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, errors.ErrInvalidRequest.WithMessage("Invalid quick filter id"), "/")
	}

	view, err := h.browseUC.ToggleQuickFilter(c.Context(), middleware.StateFrom(c), id)
	if err != nil {
		return fail(c, err, "/")
	}
	return respond(c, view, &utils.Meta{Total: view.Total}, "/")
}

// AdvancedFilter godoc
// @Summary Поиск рядом с адресом
// @Description Переключает список на места в пределах 100 м от адреса; пустой адрес ничего не меняет
// @Tags Browse
// @Accept json
// @Produce json
// @Param request body dto.AdvancedFilterRequest true "Адрес"
// @Success 200 {object} utils.SuccessResponse{data=dto.BrowseState}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/advanced-filter [post]
func (h *BrowseHandler) AdvancedFilter(c *fiber.Ctx) error {
	var req dto.AdvancedFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errors.ErrInvalidRequest, "/")
	}
	if err := validator.Validate(&req); err != nil {
		return fail(c, err, "/")
	}

	view, err := h.browseUC.ApplyAdvancedFilter(c.Context(), middleware.StateFrom(c), req)
	if err != nil {
		return fail(c, err, "/")
	}
	return respond(c, view, &utils.Meta{Total: view.Total}, "/")
}

// Search godoc
// @Summary Текстовый поиск
// @Description Ищет места по строке; пустая строка возвращает категорию drink
// @Tags Browse
// @Produce json
// @Param query query string false "Поисковая строка"
// @Success 200 {object} utils.SuccessResponse{data=dto.BrowseState}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/search [get]
func (h *BrowseHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{Query: c.Query("query")}
	if err := validator.Validate(&req); err != nil {
		return fail(c, err, "/")
	}

	view, err := h.browseUC.Search(c.Context(), middleware.StateFrom(c), req)
	if err != nil {
		return fail(c, err, "/")
	}
	return respond(c, view, &utils.Meta{Total: view.Total}, "/")
}

// Reset godoc
// @Summary Сброс
// @Description Категория drink без фильтров (клик по логотипу)
// @Tags Browse
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.BrowseState}
// @Router /api/v1/reset [post]
func (h *BrowseHandler) Reset(c *fiber.Ctx) error {
	view, err := h.browseUC.Reset(c.Context(), middleware.StateFrom(c))
	if err != nil {
		return fail(c, err, "/")
	}
	return respond(c, view, &utils.Meta{Total: view.Total}, "/")
}
