package geocoding_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lovelyplace-web/internal/config"
	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/infrastructure/geocoding"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetGeocode(ctx context.Context, address string) (*domain.LatLng, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LatLng), args.Error(1)
}

func (m *MockCacheRepository) SetGeocode(ctx context.Context, address string, at domain.LatLng, ttl time.Duration) error {
	args := m.Called(ctx, address, at, ttl)
	return args.Error(0)
}

// stubGeocoder возвращает заранее заданный результат и считает вызовы
type stubGeocoder struct {
	result domain.GeocodeResult
	calls  int32
}

func (s *stubGeocoder) Geocode(ctx context.Context, address string) domain.GeocodeResult {
	atomic.AddInt32(&s.calls, 1)
	return s.result
}

func googleServer(t *testing.T, status string, results []domain.LatLng) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.NotEmpty(t, r.URL.Query().Get("address"))

		payload := map[string]interface{}{"status": status}
		var items []map[string]interface{}
		for _, at := range results {
			items = append(items, map[string]interface{}{
				"geometry": map[string]interface{}{"location": at},
			})
		}
		payload["results"] = items

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGoogleGeocoder(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name     string
		status   string
		results  []domain.LatLng
		expected domain.GeocodeStatus
	}{
		{name: "ok", status: "OK", results: []domain.LatLng{{Lat: 48.87, Lng: 2.35}, {Lat: 1, Lng: 1}}, expected: domain.GeocodeOK},
		{name: "ok without results", status: "OK", expected: domain.GeocodeNotFound},
		{name: "zero results", status: "ZERO_RESULTS", expected: domain.GeocodeNotFound},
		{name: "invalid request", status: "INVALID_REQUEST", expected: domain.GeocodeInvalid},
		{name: "quota", status: "OVER_QUERY_LIMIT", expected: domain.GeocodeTransient},
		{name: "denied", status: "REQUEST_DENIED", expected: domain.GeocodeTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := googleServer(t, tt.status, tt.results)
			g := geocoding.NewGoogleGeocoder(server.URL, "test-key", 5*time.Second, logger)

			res := g.Geocode(context.Background(), "51 rue du Faubourg Saint-Denis 75010")
			assert.Equal(t, tt.expected, res.Status)
			if tt.expected == domain.GeocodeOK {
				require.NotNil(t, res.Point())
				assert.Equal(t, domain.LatLng{Lat: 48.87, Lng: 2.35}, *res.Point())
			} else {
				assert.Nil(t, res.Point())
				assert.Error(t, res.Err)
			}
		})
	}

	t.Run("http error is transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		res := geocoding.NewGoogleGeocoder(server.URL, "test-key", 5*time.Second, logger).
			Geocode(context.Background(), "anywhere")
		assert.True(t, res.Retryable())
	})

	t.Run("empty address makes no request", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		res := geocoding.NewGoogleGeocoder(server.URL, "test-key", 5*time.Second, logger).
			Geocode(context.Background(), "  ")
		assert.Equal(t, domain.GeocodeInvalid, res.Status)
		assert.Zero(t, atomic.LoadInt32(&calls))
	})
}

func TestProxyGeocoder(t *testing.T) {
	logger := zap.NewNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode", r.URL.Path)
		switch r.URL.Query().Get("address") {
		case "known":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"lat":48.85,"lng":2.29}`))
		case "bad":
			w.WriteHeader(http.StatusBadRequest)
		case "down":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	g := geocoding.NewProxyGeocoder(server.URL+"/", 5*time.Second, logger)
	ctx := context.Background()

	res := g.Geocode(ctx, "known")
	require.True(t, res.OK())
	assert.Equal(t, domain.LatLng{Lat: 48.85, Lng: 2.29}, res.Location)

	assert.Equal(t, domain.GeocodeNotFound, g.Geocode(ctx, "nowhere").Status)
	assert.Equal(t, domain.GeocodeInvalid, g.Geocode(ctx, "bad").Status)
	assert.Equal(t, domain.GeocodeTransient, g.Geocode(ctx, "down").Status)
}

func TestMapboxGeocoder(t *testing.T) {
	logger := zap.NewNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pk.test", r.URL.Query().Get("access_token"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/geocoding/v5/mapbox.places/12 rue Oberkampf 75011.json":
			_, _ = w.Write([]byte(`{"features":[{"place_name":"12 Rue Oberkampf","center":[2.3701,48.8647]}]}`))
		case "/geocoding/v5/mapbox.places/nowhere.json":
			_, _ = w.Write([]byte(`{"features":[]}`))
		case "/geocoding/v5/mapbox.places/bad.json":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"Query too long"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Not Authorized"}`))
		}
	}))
	defer server.Close()

	g := geocoding.NewMapboxGeocoder(server.URL+"/", "pk.test", 5*time.Second, logger)
	ctx := context.Background()

	t.Run("center is lng lat", func(t *testing.T) {
		res := g.Geocode(ctx, "12 rue Oberkampf 75011")
		require.True(t, res.OK())
		assert.Equal(t, domain.LatLng{Lat: 48.8647, Lng: 2.3701}, res.Location)
	})

	t.Run("no features", func(t *testing.T) {
		assert.Equal(t, domain.GeocodeNotFound, g.Geocode(ctx, "nowhere").Status)
	})

	t.Run("rejected query", func(t *testing.T) {
		assert.Equal(t, domain.GeocodeInvalid, g.Geocode(ctx, "bad").Status)
	})

	t.Run("api error response", func(t *testing.T) {
		res := g.Geocode(ctx, "other")
		assert.True(t, res.Retryable())
		assert.Contains(t, res.Err.Error(), "mapbox API error")
	})
}

func TestCachedGeocoder(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	at := domain.LatLng{Lat: 48.86, Lng: 2.34}

	t.Run("hit skips provider", func(t *testing.T) {
		cache := new(MockCacheRepository)
		cache.On("GetGeocode", ctx, "addr").Return(&at, nil)
		next := &stubGeocoder{}

		res := geocoding.NewCachedGeocoder(next, cache, time.Hour, logger).Geocode(ctx, "addr")
		assert.True(t, res.OK())
		assert.Equal(t, at, res.Location)
		assert.Zero(t, next.calls)
		cache.AssertExpectations(t)
	})

	t.Run("miss stores success", func(t *testing.T) {
		cache := new(MockCacheRepository)
		cache.On("GetGeocode", ctx, "addr").Return(nil, nil)
		cache.On("SetGeocode", ctx, "addr", at, time.Hour).Return(nil)
		next := &stubGeocoder{result: domain.GeocodeSuccess(at)}

		res := geocoding.NewCachedGeocoder(next, cache, time.Hour, logger).Geocode(ctx, "addr")
		assert.True(t, res.OK())
		assert.Equal(t, int32(1), next.calls)
		cache.AssertExpectations(t)
	})

	t.Run("failure is not cached", func(t *testing.T) {
		cache := new(MockCacheRepository)
		cache.On("GetGeocode", ctx, "addr").Return(nil, nil)
		next := &stubGeocoder{result: domain.GeocodeFailure(domain.GeocodeNotFound, nil)}

		res := geocoding.NewCachedGeocoder(next, cache, time.Hour, logger).Geocode(ctx, "addr")
		assert.Equal(t, domain.GeocodeNotFound, res.Status)
		cache.AssertNotCalled(t, "SetGeocode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache errors fall through to provider", func(t *testing.T) {
		cache := new(MockCacheRepository)
		cache.On("GetGeocode", ctx, "addr").Return(nil, errors.New("redis down"))
		cache.On("SetGeocode", ctx, "addr", at, time.Hour).Return(errors.New("redis down"))
		next := &stubGeocoder{result: domain.GeocodeSuccess(at)}

		res := geocoding.NewCachedGeocoder(next, cache, time.Hour, logger).Geocode(ctx, "addr")
		assert.True(t, res.OK())
	})
}

func TestToPOI(t *testing.T) {
	logger := zap.NewNop()
	venue := domain.Venue{
		ID:          "65a1",
		Name:        "Le Syndicat",
		Address:     "51 rue du Faubourg Saint-Denis",
		PostalCode:  "75010",
		Description: "Bar à cocktails.",
		Photos:      []string{"https://img/1.jpg", "https://img/2.jpg"},
	}

	t.Run("success", func(t *testing.T) {
		g := &stubGeocoder{result: domain.GeocodeSuccess(domain.LatLng{Lat: 48.87, Lng: 2.35})}

		poi := geocoding.ToPOI(context.Background(), g, venue, logger)
		require.NotNil(t, poi)
		assert.Equal(t, "Le Syndicat", poi.Key)
		assert.Equal(t, "Le Syndicat", poi.Title)
		assert.Equal(t, "https://img/1.jpg", poi.Image)
		assert.Equal(t, "65a1", poi.VenueID)
	})

	t.Run("failure is nil", func(t *testing.T) {
		g := &stubGeocoder{result: domain.GeocodeFailure(domain.GeocodeTransient, errors.New("timeout"))}
		assert.Nil(t, geocoding.ToPOI(context.Background(), g, venue, logger))
	})
}

func TestNew_SelectsProvider(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/geocode", r.URL.Path)
		_, _ = w.Write([]byte(`{"lat":1,"lng":2}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		Backend:  config.BackendConfig{BaseURL: server.URL},
		Geocoder: config.GeocoderConfig{Provider: config.GeocoderBackend, Timeout: time.Second},
	}

	g := geocoding.New(cfg, nil, zap.NewNop())
	res := g.Geocode(context.Background(), "x")
	assert.True(t, res.OK())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}
