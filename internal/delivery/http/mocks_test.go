package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lovelyplace-web/internal/domain"
)

// MockVenueGateway is a mock of VenueGateway
type MockVenueGateway struct {
	mock.Mock
}

func (m *MockVenueGateway) ListVenues(ctx context.Context, category domain.Category, filters *domain.FilterBundle) ([]domain.Venue, error) {
	args := m.Called(ctx, category, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockVenueGateway) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueGateway) Search(ctx context.Context, query string) ([]domain.Venue, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockVenueGateway) CreateVenue(ctx context.Context, s *domain.Submission) (*domain.Venue, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueGateway) UploadPhoto(ctx context.Context, id string, photo domain.Upload) (domain.PhotosFragment, error) {
	args := m.Called(ctx, id, photo)
	return args.Get(0).(domain.PhotosFragment), args.Error(1)
}

func (m *MockVenueGateway) DeletePhoto(ctx context.Context, id, photoURL string) (domain.PhotosFragment, error) {
	args := m.Called(ctx, id, photoURL)
	return args.Get(0).(domain.PhotosFragment), args.Error(1)
}

func (m *MockVenueGateway) UpdateKeywords(ctx context.Context, id string, action domain.EditAction, keywords []string) (domain.KeywordsFragment, error) {
	args := m.Called(ctx, id, action, keywords)
	return args.Get(0).(domain.KeywordsFragment), args.Error(1)
}

func (m *MockVenueGateway) UpdateFilters(ctx context.Context, id string, action domain.EditAction, filters []string) (domain.FiltersFragment, error) {
	args := m.Called(ctx, id, action, filters)
	return args.Get(0).(domain.FiltersFragment), args.Error(1)
}

func (m *MockVenueGateway) UpdateAddress(ctx context.Context, id string, f domain.AddressFragment) (domain.AddressFragment, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).(domain.AddressFragment), args.Error(1)
}

func (m *MockVenueGateway) UpdateDescription(ctx context.Context, id, description string) (domain.DescriptionFragment, error) {
	args := m.Called(ctx, id, description)
	return args.Get(0).(domain.DescriptionFragment), args.Error(1)
}

// fixedGeocoder возвращает одну и ту же точку для любого адреса
type fixedGeocoder struct {
	at domain.LatLng
}

func (g fixedGeocoder) Geocode(ctx context.Context, address string) domain.GeocodeResult {
	if address == "" {
		return domain.GeocodeFailure(domain.GeocodeInvalid, nil)
	}
	return domain.GeocodeSuccess(g.at)
}
