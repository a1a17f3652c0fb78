package repository

import (
	"context"

	"github.com/lovelyplace-web/internal/domain"
)

// VenueGateway определяет методы внешнего API мест.
// Все ответы бэкенда приходят JSON; неуспешный статус возвращается как *domain.GatewayError.
type VenueGateway interface {
	// ListVenues - GET /{category} с параметрами набора фильтров (nil - без фильтров)
	ListVenues(ctx context.Context, category domain.Category, filters *domain.FilterBundle) ([]domain.Venue, error)

	// GetVenue - GET /items/{id}; 404 дает domain.ErrVenueNotFound
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)

	// Search - GET /search?query=; 404 дает пустой список, 400 - domain.ErrInvalidQuery
	Search(ctx context.Context, query string) ([]domain.Venue, error)

	// CreateVenue - POST /location, multipart
	CreateVenue(ctx context.Context, s *domain.Submission) (*domain.Venue, error)

	// UploadPhoto - PUT /items/{id}, один файл в поле photos
	UploadPhoto(ctx context.Context, id string, photo domain.Upload) (domain.PhotosFragment, error)

	// DeletePhoto - DELETE /items/{id}/photo
	DeletePhoto(ctx context.Context, id, photoURL string) (domain.PhotosFragment, error)

	UpdateKeywords(ctx context.Context, id string, action domain.EditAction, keywords []string) (domain.KeywordsFragment, error)
	UpdateFilters(ctx context.Context, id string, action domain.EditAction, filters []string) (domain.FiltersFragment, error)
	UpdateAddress(ctx context.Context, id string, f domain.AddressFragment) (domain.AddressFragment, error)
	UpdateDescription(ctx context.Context, id, description string) (domain.DescriptionFragment, error)
}
