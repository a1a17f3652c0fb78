package usecase

import (
	"context"

	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/domain/repository"
	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/pkg/validator"
	"github.com/lovelyplace-web/internal/state"
	"github.com/lovelyplace-web/internal/usecase/dto"
	"go.uber.org/zap"
)

// LocationUseCase - страница места и правки администратора.
// Ответ каждой правки содержит только измененную часть, она вливается в место в состоянии.
type LocationUseCase struct {
	gateway repository.VenueGateway
	logger  *zap.Logger
}

func NewLocationUseCase(
	gateway repository.VenueGateway,
	logger *zap.Logger,
) *LocationUseCase {
	return &LocationUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

// Open сбрасывает выбранное место и загружает его заново по id
func (uc *LocationUseCase) Open(ctx context.Context, store *state.Store, id string) (*dto.LocationView, error) {
	store.SetSelectedVenue(nil)

	venue, err := uc.gateway.GetVenue(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to fetch venue", zap.String("id", id), zap.Error(err))
		return nil, mapGatewayError(err)
	}

	store.SetSelectedVenue(venue)
	return dto.NewLocationView(*venue, store.AdminLogin()), nil
}

func (uc *LocationUseCase) UpdateAddress(ctx context.Context, store *state.Store, id string, req dto.AddressRequest) (*dto.LocationView, error) {
	if err := uc.authorize(store); err != nil {
		return nil, err
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	frag, err := uc.gateway.UpdateAddress(ctx, id, domain.AddressFragment{
		PostalCode: req.PostalCode,
		Address:    req.Address,
	})
	if err != nil {
		uc.logger.Error("Failed to update address", zap.String("id", id), zap.Error(err))
		return nil, mapGatewayError(err)
	}

	return uc.merge(ctx, store, id, func(v domain.Venue) domain.Venue { return v.WithAddress(frag) })
}

func (uc *LocationUseCase) UpdateDescription(ctx context.Context, store *state.Store, id string, req dto.DescriptionRequest) (*dto.LocationView, error) {
	if err := uc.authorize(store); err != nil {
		return nil, err
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	frag, err := uc.gateway.UpdateDescription(ctx, id, req.Description)
	if err != nil {
		uc.logger.Error("Failed to update description", zap.String("id", id), zap.Error(err))
		return nil, mapGatewayError(err)
	}

	return uc.merge(ctx, store, id, func(v domain.Venue) domain.Venue { return v.WithDescription(frag) })
}

func (uc *LocationUseCase) UpdateKeywords(ctx context.Context, store *state.Store, id string, req dto.KeywordsRequest) (*dto.LocationView, error) {
	if err := uc.authorize(store); err != nil {
		return nil, err
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	frag, err := uc.gateway.UpdateKeywords(ctx, id, domain.EditAction(req.Action), req.Keywords)
	if err != nil {
		uc.logger.Error("Failed to update keywords", zap.String("id", id), zap.Error(err))
		return nil, mapGatewayError(err)
	}

	return uc.merge(ctx, store, id, func(v domain.Venue) domain.Venue { return v.WithKeywords(frag) })
}

func (uc *LocationUseCase) UpdateFilters(ctx context.Context, store *state.Store, id string, req dto.FiltersRequest) (*dto.LocationView, error) {
	if err := uc.authorize(store); err != nil {
		return nil, err
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	frag, err := uc.gateway.UpdateFilters(ctx, id, domain.EditAction(req.Action), req.Filters)
	if err != nil {
		uc.logger.Error("Failed to update filters", zap.String("id", id), zap.Error(err))
		return nil, mapGatewayError(err)
	}

	return uc.merge(ctx, store, id, func(v domain.Venue) domain.Venue { return v.WithFilters(frag) })
}

// UploadPhoto добавляет одно фото
func (uc *LocationUseCase) UploadPhoto(ctx context.Context, store *state.Store, id string, photo domain.Upload) (*dto.LocationView, error) {
	if err := uc.authorize(store); err != nil {
		return nil, err
	}
	if len(photo.Data) == 0 {
		return nil, errors.ErrValidationFailed.WithMessage("Veuillez sélectionner une image avant de soumettre.")
	}

	frag, err := uc.gateway.UploadPhoto(ctx, id, photo)
	if err != nil {
		uc.logger.Error("Failed to upload photo", zap.String("id", id), zap.Error(err))
		return nil, mapGatewayError(err)
	}

	return uc.merge(ctx, store, id, func(v domain.Venue) domain.Venue { return v.WithPhotos(frag) })
}

// DeletePhoto удаляет фото по URL или по слоту выбранного места
func (uc *LocationUseCase) DeletePhoto(ctx context.Context, store *state.Store, id string, req dto.DeletePhotoRequest) (*dto.LocationView, error) {
	if err := uc.authorize(store); err != nil {
		return nil, err
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	photoURL := req.PhotoURL
	if photoURL == "" && req.Slot != nil {
		snap := store.Snapshot()
		if snap.SelectedVenue == nil || snap.SelectedVenue.ID != id {
			return nil, errors.ErrLocationNotFound
		}
		url, ok := snap.SelectedVenue.PhotoAt(*req.Slot)
		if !ok {
			return nil, errors.ErrInvalidRequest.WithMessage("Photo slot is empty")
		}
		photoURL = url
	}
	if photoURL == "" {
		return nil, errors.ErrValidationFailed.WithMessage("photoUrl or slot is required")
	}

	frag, err := uc.gateway.DeletePhoto(ctx, id, photoURL)
	if err != nil {
		uc.logger.Error("Failed to delete photo", zap.String("id", id), zap.Error(err))
		return nil, mapGatewayError(err)
	}

	return uc.merge(ctx, store, id, func(v domain.Venue) domain.Venue { return v.WithPhotos(frag) })
}

func (uc *LocationUseCase) authorize(store *state.Store) error {
	if !store.AdminLogin() {
		return errors.ErrUnauthorized
	}
	return nil
}

// merge вливает фрагмент в выбранное место. Если в сессии открыто другое
// место, оно загружается заново.
func (uc *LocationUseCase) merge(ctx context.Context, store *state.Store, id string, fn func(domain.Venue) domain.Venue) (*dto.LocationView, error) {
	updated := store.UpdateSelectedVenue(id, fn)
	if updated == nil {
		uc.logger.Debug("Edited venue is not selected, refetching", zap.String("id", id))
		return uc.Open(ctx, store, id)
	}
	return dto.NewLocationView(*updated, store.AdminLogin()), nil
}
