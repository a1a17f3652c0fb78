package usecase

import (
	"context"
	"net/url"
	"sync"

	"github.com/lovelyplace-web/internal/config"
	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/domain/repository"
	"github.com/lovelyplace-web/internal/infrastructure/geocoding"
	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/pkg/utils"
	"github.com/lovelyplace-web/internal/pkg/validator"
	"github.com/lovelyplace-web/internal/state"
	"github.com/lovelyplace-web/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapUseCase - маркеры карты и всплывающие окна
type MapUseCase struct {
	geocoder   repository.Geocoder
	cfg        config.MapConfig
	maxWorkers int
	logger     *zap.Logger
}

func NewMapUseCase(
	geocoder repository.Geocoder,
	cfg config.MapConfig,
	maxWorkers int,
	logger *zap.Logger,
) *MapUseCase {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	return &MapUseCase{
		geocoder:   geocoder,
		cfg:        cfg,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

// Markers геокодирует текущий список параллельно и ждет все ответы.
// Неудачное геокодирование убирает только свой маркер.
func (uc *MapUseCase) Markers(ctx context.Context, store *state.Store, req dto.MapRequest) (*dto.MapView, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	snap := store.Snapshot()
	user := uc.userLocation(req)

	pois := make([]*domain.POI, len(snap.Items))
	sem := make(chan struct{}, uc.maxWorkers)
	var wg sync.WaitGroup

	for i, venue := range snap.Items {
		wg.Add(1)
		go func(i int, venue domain.Venue) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			pois[i] = geocoding.ToPOI(ctx, uc.geocoder, venue, uc.logger)
		}(i, venue)
	}
	wg.Wait()

	markers := make([]dto.Marker, 0, len(pois))
	for _, poi := range pois {
		if poi == nil {
			continue
		}
		markers = append(markers, dto.Marker{
			POI:        *poi,
			DistanceKm: utils.HaversineDistance(user.Lat, user.Lng, poi.Location.Lat, poi.Location.Lng),
		})
	}

	dropped := len(snap.Items) - len(markers)
	if dropped > 0 {
		uc.logger.Info("Map markers dropped after geocoding",
			zap.Int("total", len(snap.Items)),
			zap.Int("dropped", dropped))
	}

	return &dto.MapView{
		Center:      user,
		Zoom:        uc.cfg.DefaultZoom,
		Markers:     markers,
		User:        domain.UserPOI(user),
		Dropped:     dropped,
		OpenPopupID: snap.OpenPopupID,
	}, nil
}

// userLocation - координаты устройства или центр по умолчанию
func (uc *MapUseCase) userLocation(req dto.MapRequest) domain.LatLng {
	if req.Lat != nil && req.Lng != nil && utils.ValidateCoordinates(*req.Lat, *req.Lng) {
		return domain.LatLng{Lat: *req.Lat, Lng: *req.Lng}
	}
	return domain.LatLng{Lat: uc.cfg.DefaultLat, Lng: uc.cfg.DefaultLng}
}

// OpenPopup открывает окно маркера, закрывая предыдущее: открыто не больше одного
func (uc *MapUseCase) OpenPopup(store *state.Store, id string) (*dto.Popup, error) {
	snap := store.Snapshot()

	var venue *domain.Venue
	for i := range snap.Items {
		if snap.Items[i].ID == id {
			venue = &snap.Items[i]
			break
		}
	}
	if venue == nil {
		return nil, errors.ErrLocationNotFound
	}

	popup := &dto.Popup{
		VenueID:     venue.ID,
		Title:       venue.Name,
		Description: domain.FirstSentence(venue.Description),
		Image:       venue.FirstPhoto(),
		Link:        "/selectedLocation/" + url.PathEscape(venue.ID),
	}

	html, err := renderPopup(popupData{
		Title:       popup.Title,
		Description: popup.Description,
		Image:       popup.Image,
		Link:        popup.Link,
	})
	if err != nil {
		uc.logger.Error("Failed to render popup", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	popup.HTML = html

	store.SetOpenPopup(id)
	return popup, nil
}

// ClosePopup закрывает открытое окно
func (uc *MapUseCase) ClosePopup(store *state.Store) {
	store.SetOpenPopup("")
}
