package handler

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lovelyplace-web/internal/delivery/http/middleware"
	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/pkg/utils"
	"github.com/lovelyplace-web/internal/usecase"
	"github.com/lovelyplace-web/internal/usecase/dto"
	"go.uber.org/zap"
)

// SubmissionSuccessMessage - сообщение после успешной отправки формы
const SubmissionSuccessMessage = "Données enregistrées avec succès !"

// FormHandler - форма добавления места
type FormHandler struct {
	submissionUC *usecase.SubmissionUseCase
	renderer     *Renderer
	logger       *zap.Logger
}

// formPage - данные шаблона формы: справочники и введенные значения
type formPage struct {
	Form   *dto.FormView
	Values *dto.SubmissionRequest
}

// NewFormHandler - создание нового FormHandler
func NewFormHandler(submissionUC *usecase.SubmissionUseCase, renderer *Renderer, logger *zap.Logger) *FormHandler {
	return &FormHandler{
		submissionUC: submissionUC,
		renderer:     renderer,
		logger:       logger,
	}
}

// Page - страница "/form"
func (h *FormHandler) Page(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, &dto.SubmissionRequest{})
}

// Submit - отправка HTML формы. При ошибке форма показывается снова
// с сообщением и введенными значениями.
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	req, err := parseSubmission(c)
	if err == nil {
		_, err = h.submissionUC.Submit(c.Context(), req)
	}
	if err != nil {
		middleware.SetFlash(c, middleware.FlashError, errorMessage(err))
		return h.render(c, statusOf(err), req)
	}

	middleware.SetFlash(c, middleware.FlashSuccess, SubmissionSuccessMessage)
	return c.Redirect("/form", fiber.StatusSeeOther)
}

// Create godoc
// @Summary Добавить место
// @Description Multipart форма; tips, mediaLink, hours, keywords и filters передаются JSON строками
// @Tags Locations
// @Accept multipart/form-data
// @Produce json
// @Param locationName formData string true "Название"
// @Param locationAddress formData string true "Адрес"
// @Param postalCode formData string false "Почтовый индекс"
// @Param locationDescription formData string true "Описание"
// @Param priceRange formData string true "Ценовой диапазон"
// @Param placeCategory formData string false "Категория места"
// @Param tips formData string false "JSON массив советов"
// @Param mediaLink formData string false "JSON массив ссылок"
// @Param hours formData string false "JSON объект расписания"
// @Param keywords formData string false "JSON массив ключевых слов"
// @Param filters formData string false "JSON массив фильтров key:value"
// @Param photos formData file false "Фото (до 4)"
// @Success 201 {object} utils.SuccessResponse{data=domain.Venue}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/locations [post]
func (h *FormHandler) Create(c *fiber.Ctx) error {
	req, err := parseSubmission(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	venue, err := h.submissionUC.Submit(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, venue, nil)
}

func (h *FormHandler) render(c *fiber.Ctx, status int, values *dto.SubmissionRequest) error {
	page := newPage(c, "Ajouter un lieu", formPage{
		Form:   h.submissionUC.FormView(),
		Values: values,
	})
	return h.renderer.Render(c, status, "form.html", page)
}

// parseSubmission собирает запрос из формы. Сложные поля принимаются JSON
// строками (API) или отдельными полями HTML формы.
func parseSubmission(c *fiber.Ctx) (*dto.SubmissionRequest, error) {
	value := func(key string) string { return strings.TrimSpace(c.FormValue(key)) }

	req := &dto.SubmissionRequest{
		Name:          value("locationName"),
		Address:       value("locationAddress"),
		PostalCode:    value("postalCode"),
		Description:   value("locationDescription"),
		SocialMedia:   value("socialmedia"),
		PriceRange:    value("priceRange"),
		PlaceCategory: value("placeCategory"),
	}

	if err := req.DecodeStructuredFields(value); err != nil {
		return req, err
	}

	if req.Tips == nil {
		req.Tips = nonEmpty(formValues(c, "tip"))
	}
	if req.MediaLinks == nil {
		req.MediaLinks = nonEmpty(formValues(c, "mediaLinkItem"))
	}
	if req.Keywords == nil {
		req.Keywords = nonEmpty(strings.Split(value("keywordsText"), ","))
	}
	if req.Filters == nil {
		req.Filters = nonEmpty(formValues(c, "filter"))
	}
	if value("hours") == "" {
		for _, day := range domain.Days {
			for slot := 0; slot < 2; slot++ {
				r := domain.TimeRange{
					Open:  value(fmt.Sprintf("hours.%s.%d.ouverture", day, slot)),
					Close: value(fmt.Sprintf("hours.%s.%d.fermeture", day, slot)),
				}
				if r.IsEmpty() {
					continue
				}
				if err := req.Hours.Set(day, slot, r); err != nil {
					return req, errors.ErrInvalidRequest.WithMessage(err.Error())
				}
			}
		}
	}

	if form, err := c.MultipartForm(); err == nil {
		for _, fh := range form.File["photos"] {
			if len(req.Photos) == domain.PhotoSlots {
				break
			}
			if fh.Size == 0 {
				continue
			}
			photo, err := readUpload(fh)
			if err != nil {
				return req, errors.ErrInvalidRequest.WithMessage(err.Error())
			}
			req.Photos = append(req.Photos, photo)
		}
	}

	return req, nil
}

// formValues - все значения повторяющегося поля multipart или urlencoded формы
func formValues(c *fiber.Ctx, key string) []string {
	if form, err := c.MultipartForm(); err == nil {
		return form.Value[key]
	}

	var out []string
	for _, v := range c.Request().PostArgs().PeekMulti(key) {
		out = append(out, string(v))
	}
	return out
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
