package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/lovelyplace-web/internal/delivery/http/middleware"
	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/pkg/utils"
	"github.com/lovelyplace-web/internal/usecase"
	"github.com/lovelyplace-web/internal/usecase/dto"
	"go.uber.org/zap"
)

// maxPhotoSize - предел одного загружаемого фото
const maxPhotoSize = 10 << 20

// LocationHandler - страница места и правки администратора
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	renderer   *Renderer
	logger     *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(locationUC *usecase.LocationUseCase, renderer *Renderer, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		renderer:   renderer,
		logger:     logger,
	}
}

// Page - страница "/selectedLocation/:id". Неизвестное место возвращает на главную с сообщением.
func (h *LocationHandler) Page(c *fiber.Ctx) error {
	view, err := h.locationUC.Open(c.Context(), middleware.StateFrom(c), c.Params("id"))
	if err != nil {
		middleware.SetFlash(c, middleware.FlashError, errorMessage(err))
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return h.renderer.Render(c, fiber.StatusOK, "location.html", newPage(c, view.Venue.Name, view))
}

// Get godoc
// @Summary Место по ID
// @Description Загружает место и делает его выбранным в сессии
// @Tags Locations
// @Produce json
// @Param id path string true "ID места"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationView}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id} [get]
func (h *LocationHandler) Get(c *fiber.Ctx) error {
	view, err := h.locationUC.Open(c.Context(), middleware.StateFrom(c), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

// UpdateAddress godoc
// @Summary Изменить адрес
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "ID места"
// @Param request body dto.AddressRequest true "Адрес и почтовый индекс"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationView}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id}/address [put]
func (h *LocationHandler) UpdateAddress(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errors.ErrInvalidRequest, locationURL(id))
	}

	view, err := h.locationUC.UpdateAddress(c.Context(), middleware.StateFrom(c), id, req)
	if err != nil {
		return fail(c, err, locationURL(id))
	}
	return respond(c, view, nil, locationURL(id))
}

// UpdateDescription godoc
// @Summary Изменить описание
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "ID места"
// @Param request body dto.DescriptionRequest true "Описание"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationView}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id}/description [put]
func (h *LocationHandler) UpdateDescription(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.DescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errors.ErrInvalidRequest, locationURL(id))
	}

	view, err := h.locationUC.UpdateDescription(c.Context(), middleware.StateFrom(c), id, req)
	if err != nil {
		return fail(c, err, locationURL(id))
	}
	return respond(c, view, nil, locationURL(id))
}

// UpdateKeywords godoc
// @Summary Добавить или удалить ключевые слова
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "ID места"
// @Param request body dto.KeywordsRequest true "Действие и ключевые слова"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationView}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id}/keywords [put]
func (h *LocationHandler) UpdateKeywords(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.KeywordsRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errors.ErrInvalidRequest, locationURL(id))
	}

	view, err := h.locationUC.UpdateKeywords(c.Context(), middleware.StateFrom(c), id, req)
	if err != nil {
		return fail(c, err, locationURL(id))
	}
	return respond(c, view, nil, locationURL(id))
}

// UpdateFilters godoc
// @Summary Добавить или удалить фильтры
// @Description Каждый фильтр имеет вид "ключ:значение"
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "ID места"
// @Param request body dto.FiltersRequest true "Действие и фильтры"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationView}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id}/filters [put]
func (h *LocationHandler) UpdateFilters(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.FiltersRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errors.ErrInvalidRequest, locationURL(id))
	}

	view, err := h.locationUC.UpdateFilters(c.Context(), middleware.StateFrom(c), id, req)
	if err != nil {
		return fail(c, err, locationURL(id))
	}
	return respond(c, view, nil, locationURL(id))
}

// UploadPhoto godoc
// @Summary Загрузить фото
// @Tags Locations
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID места"
// @Param photo formData file true "Фото"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationView}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id}/photos [post]
func (h *LocationHandler) UploadPhoto(c *fiber.Ctx) error {
	id := c.Params("id")

	var photo domain.Upload
	if fh, err := c.FormFile("photo"); err == nil {
		photo, err = readUpload(fh)
		if err != nil {
			h.logger.Warn("Failed to read uploaded photo", zap.String("id", id), zap.Error(err))
			return fail(c, errors.ErrInvalidRequest.WithMessage(err.Error()), locationURL(id))
		}
	}

	view, err := h.locationUC.UploadPhoto(c.Context(), middleware.StateFrom(c), id, photo)
	if err != nil {
		return fail(c, err, locationURL(id))
	}
	return respond(c, view, nil, locationURL(id))
}

// DeletePhoto godoc
// @Summary Удалить фото
// @Description Фото задается URL или номером слота 0..3
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "ID места"
// @Param request body dto.DeletePhotoRequest true "URL или слот фото"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationView}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id}/photos [delete]
func (h *LocationHandler) DeletePhoto(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.DeletePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errors.ErrInvalidRequest, locationURL(id))
	}

	view, err := h.locationUC.DeletePhoto(c.Context(), middleware.StateFrom(c), id, req)
	if err != nil {
		return fail(c, err, locationURL(id))
	}
	return respond(c, view, nil, locationURL(id))
}

func locationURL(id string) string {
	return "/selectedLocation/" + url.PathEscape(id)
}

// readUpload читает файл multipart формы целиком
func readUpload(fh *multipart.FileHeader) (domain.Upload, error) {
	if fh.Size > maxPhotoSize {
		return domain.Upload{}, fmt.Errorf("file %s exceeds %d bytes", fh.Filename, maxPhotoSize)
	}

	f, err := fh.Open()
	if err != nil {
		return domain.Upload{}, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.Upload{}, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}

	return domain.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}
