package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lovelyplace-web/internal/delivery/http/middleware"
	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/pkg/utils"
)

// wantsHTML - запрос пришел от обычной HTML формы, а не от fetch/API клиента
func wantsHTML(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML
}

// respond отвечает JSON конвертом или, для HTML формы, редиректом на страницу.
// Пустой redirect возвращает на предыдущую страницу.
func respond(c *fiber.Ctx, data interface{}, meta *utils.Meta, redirect string) error {
	if wantsHTML(c) {
		return redirectTo(c, redirect)
	}
	return utils.SendSuccess(c, data, meta)
}

// fail - ошибка в JSON конверте или flash сообщение с редиректом
func fail(c *fiber.Ctx, err error, redirect string) error {
	if wantsHTML(c) {
		middleware.SetFlash(c, middleware.FlashError, errorMessage(err))
		return redirectTo(c, redirect)
	}
	return utils.SendError(c, err)
}

func redirectTo(c *fiber.Ctx, redirect string) error {
	if redirect == "" {
		return c.RedirectBack("/", fiber.StatusSeeOther)
	}
	return c.Redirect(redirect, fiber.StatusSeeOther)
}

// errorMessage - текст ошибки для показа пользователю
func errorMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return errors.ErrInternalServer.Message
}

// statusOf - HTTP статус ошибки
func statusOf(err error) int {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return fiber.StatusInternalServerError
}
