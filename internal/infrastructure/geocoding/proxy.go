package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/domain/repository"
	"go.uber.org/zap"
)

const providerBackend = "backend"

// proxyGeocoder ходит в GET {backend}/geocode?address=, ответ {lat, lng}
type proxyGeocoder struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewProxyGeocoder создает геокодер через прокси бэкенда
func NewProxyGeocoder(backendURL string, timeout time.Duration, logger *zap.Logger) repository.Geocoder {
	return &proxyGeocoder{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(backendURL, "/"),
		logger:     logger,
	}
}

func (p *proxyGeocoder) Geocode(ctx context.Context, address string) (res domain.GeocodeResult) {
	start := time.Now()
	defer func() { observe(providerBackend, start, res) }()

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.GeocodeFailure(domain.GeocodeInvalid, fmt.Errorf("empty address"))
	}

	reqURL := p.baseURL + "/geocode?" + url.Values{"address": {address}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.GeocodeFailure(domain.GeocodeInvalid, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Error("Failed to execute geocode proxy request", zap.String("address", address), zap.Error(err))
		return domain.GeocodeFailure(domain.GeocodeTransient, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.GeocodeFailure(domain.GeocodeNotFound, fmt.Errorf("address not found"))
	case resp.StatusCode == http.StatusBadRequest:
		return domain.GeocodeFailure(domain.GeocodeInvalid, fmt.Errorf("address rejected by geocode proxy"))
	case resp.StatusCode != http.StatusOK:
		p.logger.Error("Geocode proxy returned error", zap.Int("status_code", resp.StatusCode))
		return domain.GeocodeFailure(domain.GeocodeTransient, fmt.Errorf("geocode proxy error: status %d", resp.StatusCode))
	}

	var at domain.LatLng
	if err := json.NewDecoder(resp.Body).Decode(&at); err != nil {
		p.logger.Error("Failed to decode geocode proxy response", zap.Error(err))
		return domain.GeocodeFailure(domain.GeocodeTransient, fmt.Errorf("failed to decode response: %w", err))
	}

	return domain.GeocodeSuccess(at)
}
