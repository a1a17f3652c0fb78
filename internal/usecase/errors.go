package usecase

import (
	stderrors "errors"

	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/pkg/errors"
)

// mapGatewayError переводит ошибку шлюза в AppError.
// Сообщение сервера, если оно есть, передается пользователю.
func mapGatewayError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var verr *domain.ValidationError
	if stderrors.As(err, &verr) {
		return errors.ErrValidationFailed.WithMessage(verr.Message).
			WithDetails(map[string]interface{}{"field": verr.Field})
	}

	switch {
	case stderrors.Is(err, domain.ErrVenueNotFound):
		return errors.ErrLocationNotFound
	case stderrors.Is(err, domain.ErrInvalidQuery):
		return errors.ErrInvalidQuery.WithMessage("Le terme de recherche est invalide")
	}

	if msg := domain.ServerMessage(err); msg != "" {
		return errors.ErrBackend.WithMessage("Une erreur est survenue: " + msg)
	}
	return errors.ErrBackend
}
