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

const providerGoogle = "google"

// googleResponse - ответ Google Geocoding API (используемая часть)
type googleResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location domain.LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type googleGeocoder struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewGoogleGeocoder создает геокодер поверх Google Geocoding API
func NewGoogleGeocoder(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) repository.Geocoder {
	return &googleGeocoder{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

func (g *googleGeocoder) Geocode(ctx context.Context, address string) (res domain.GeocodeResult) {
	start := time.Now()
	defer func() { observe(providerGoogle, start, res) }()

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.GeocodeFailure(domain.GeocodeInvalid, fmt.Errorf("empty address"))
	}

	q := url.Values{}
	q.Set("address", address)
	q.Set("key", g.apiKey)
	reqURL := g.baseURL + "?" + q.Encode()

	g.logger.Debug("Calling Google Geocoding API", zap.String("address", address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		g.logger.Error("Failed to create request", zap.Error(err))
		return domain.GeocodeFailure(domain.GeocodeInvalid, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("Failed to execute request", zap.String("address", address), zap.Error(err))
		return domain.GeocodeFailure(domain.GeocodeTransient, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Error("Google Geocoding API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return domain.GeocodeFailure(domain.GeocodeTransient, fmt.Errorf("geocoding API error: status %d", resp.StatusCode))
	}

	var payload googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		g.logger.Error("Failed to decode response", zap.Error(err))
		return domain.GeocodeFailure(domain.GeocodeTransient, fmt.Errorf("failed to decode response: %w", err))
	}

	switch payload.Status {
	case "OK":
		if len(payload.Results) == 0 {
			return domain.GeocodeFailure(domain.GeocodeNotFound, fmt.Errorf("geocoding returned no results"))
		}
		return domain.GeocodeSuccess(payload.Results[0].Geometry.Location)
	case "ZERO_RESULTS":
		return domain.GeocodeFailure(domain.GeocodeNotFound, fmt.Errorf("geocoding failed: %s", payload.Status))
	case "INVALID_REQUEST":
		return domain.GeocodeFailure(domain.GeocodeInvalid, fmt.Errorf("geocoding failed: %s", payload.Status))
	default:
		g.logger.Warn("Google Geocoding API returned non-OK status",
			zap.String("status", payload.Status),
			zap.String("error_message", payload.ErrorMessage))
		return domain.GeocodeFailure(domain.GeocodeTransient, fmt.Errorf("geocoding failed: %s", payload.Status))
	}
}
