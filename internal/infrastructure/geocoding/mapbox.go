package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/domain/repository"
	"go.uber.org/zap"
)

const providerMapbox = "mapbox"

// mapboxResponse - ответ Mapbox Geocoding v5. center хранится как [lng, lat].
type mapboxResponse struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"`
	} `json:"features"`
	Message string `json:"message"`
}

type mapboxGeocoder struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *zap.Logger
}

// NewMapboxGeocoder создает геокодер поверх Mapbox Geocoding API
func NewMapboxGeocoder(baseURL, accessToken string, timeout time.Duration, logger *zap.Logger) repository.Geocoder {
	return &mapboxGeocoder{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		logger:      logger,
	}
}

func (c *mapboxGeocoder) Geocode(ctx context.Context, address string) (res domain.GeocodeResult) {
	start := time.Now()
	defer func() { observe(providerMapbox, start, res) }()

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.GeocodeFailure(domain.GeocodeInvalid, fmt.Errorf("empty address"))
	}

	q := url.Values{}
	q.Set("access_token", c.accessToken)
	q.Set("limit", "1")
	q.Set("types", "address,poi")
	reqURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		c.baseURL, url.PathEscape(address), q.Encode())

	c.logger.Debug("Calling Mapbox Geocoding API", zap.String("address", address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return domain.GeocodeFailure(domain.GeocodeInvalid, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("address", address), zap.Error(err))
		return domain.GeocodeFailure(domain.GeocodeTransient, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return domain.GeocodeFailure(domain.GeocodeInvalid, fmt.Errorf("mapbox rejected query"))
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return domain.GeocodeFailure(domain.GeocodeTransient, fmt.Errorf("mapbox API error: status %d", resp.StatusCode))
	}

	var payload mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return domain.GeocodeFailure(domain.GeocodeTransient, fmt.Errorf("failed to decode response: %w", err))
	}

	if len(payload.Features) == 0 || len(payload.Features[0].Center) != 2 {
		return domain.GeocodeFailure(domain.GeocodeNotFound, fmt.Errorf("geocoding returned no results"))
	}

	center := payload.Features[0].Center
	c.logger.Debug("Mapbox Geocoding API call successful",
		zap.String("place", payload.Features[0].PlaceName))

	return domain.GeocodeSuccess(domain.LatLng{Lat: center[1], Lng: center[0]})
}
