package usecase

import (
	"context"
	stderrors "errors"

	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/domain/repository"
	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/pkg/validator"
	"github.com/lovelyplace-web/internal/usecase/dto"
	"go.uber.org/zap"
)

// RequiredFieldsMessage - сообщение о незаполненных обязательных полях формы
const RequiredFieldsMessage = "Vous devez remplir tous les champs obligatoires."

// FilterFormatMessage - сообщение о фильтре не в формате key:value
const FilterFormatMessage = "Chaque filtre doit être au format 'clé:valeur' (ex: 'Décoration:Cosy')"

// SubmissionUseCase - создание нового места из формы
type SubmissionUseCase struct {
	gateway repository.VenueGateway
	logger  *zap.Logger
}

func NewSubmissionUseCase(
	gateway repository.VenueGateway,
	logger *zap.Logger,
) *SubmissionUseCase {
	return &SubmissionUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

// Submit проверяет форму и отправляет ее бэкенду. Ошибка проверки
// возвращается до любого сетевого вызова.
func (uc *SubmissionUseCase) Submit(ctx context.Context, req *dto.SubmissionRequest) (*domain.Venue, error) {
	if err := validator.Validate(req); err != nil {
		return nil, submissionValidationError(err)
	}

	if !domain.IsPriceRange(req.PriceRange) {
		return nil, errors.ErrValidationFailed.
			WithMessage("Fourchette de prix invalide").
			WithDetails(map[string]interface{}{"priceRange": req.PriceRange})
	}

	venue, err := uc.gateway.CreateVenue(ctx, req.ToDomain())
	if err != nil {
		uc.logger.Error("Failed to create venue", zap.String("name", req.Name), zap.Error(err))
		return nil, mapGatewayError(err)
	}

	uc.logger.Info("Venue submitted", zap.String("id", venue.ID), zap.Int("photos", len(req.Photos)))
	return venue, nil
}

// FormView - справочники для отрисовки формы
func (uc *SubmissionUseCase) FormView() *dto.FormView {
	places := make([]dto.PlaceCategoryView, 0, len(domain.MainCategories))
	for _, c := range domain.MainCategories {
		places = append(places, dto.PlaceCategoryView{Value: c.PlaceCategory(), Label: c.Label()})
	}

	return &dto.FormView{
		Days:            domain.Days[:],
		PriceRanges:     domain.PriceRanges,
		FilterCatalog:   domain.FilterCatalog,
		PlaceCategories: places,
		TipSlots:        slots(domain.TipSlots),
		MediaLinkSlots:  slots(domain.MediaLinkSlots),
		PhotoSlots:      slots(domain.PhotoSlots),
	}
}

// submissionValidationError подбирает сообщение по нарушенному правилу
func submissionValidationError(err error) error {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		return errors.ErrValidationFailed.WithMessage(RequiredFieldsMessage)
	}

	message := appErr.Message
	for _, tag := range appErr.Details {
		switch tag {
		case "required":
			return appErr.WithMessage(RequiredFieldsMessage)
		case "keyvalue":
			message = FilterFormatMessage
		}
	}
	return appErr.WithMessage(message)
}

func slots(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
