package geocoding

import (
	"context"
	"time"

	"github.com/lovelyplace-web/internal/config"
	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/domain/repository"
	"github.com/lovelyplace-web/internal/pkg/metrics"
	"go.uber.org/zap"
)

// New выбирает провайдера по конфигурации; cache может быть nil
func New(cfg *config.Config, cache repository.CacheRepository, logger *zap.Logger) repository.Geocoder {
	var g repository.Geocoder
	switch cfg.Geocoder.Provider {
	case config.GeocoderBackend:
		g = NewProxyGeocoder(cfg.Backend.BaseURL, cfg.Geocoder.Timeout, logger)
	case config.GeocoderMapbox:
		g = NewMapboxGeocoder(cfg.Geocoder.MapboxURL, cfg.Geocoder.MapboxKey, cfg.Geocoder.Timeout, logger)
	default:
		g = NewGoogleGeocoder(cfg.Geocoder.GoogleURL, cfg.Geocoder.APIKey, cfg.Geocoder.Timeout, logger)
	}

	if cache != nil {
		g = NewCachedGeocoder(g, cache, cfg.Cache.GeocodeCacheTTL, logger)
	}

	logger.Info("Geocoder configured",
		zap.String("provider", cfg.Geocoder.Provider),
		zap.Bool("cached", cache != nil))
	return g
}

// ToPOI геокодирует адрес места и собирает маркер. Любая ошибка
// логируется и дает nil: карта просто пропускает это место.
func ToPOI(ctx context.Context, g repository.Geocoder, v domain.Venue, logger *zap.Logger) *domain.POI {
	res := g.Geocode(ctx, v.FullAddress())
	at := res.Point()
	if at == nil {
		logger.Warn("Geocoding failed, marker dropped",
			zap.String("venue_id", v.ID),
			zap.String("address", v.FullAddress()),
			zap.String("status", string(res.Status)),
			zap.Bool("retryable", res.Retryable()),
			zap.Error(res.Err))
		return nil
	}

	return &domain.POI{
		Key:         v.Name,
		Location:    *at,
		Title:       v.Name,
		Description: v.Description,
		Image:       v.FirstPhoto(),
		VenueID:     v.ID,
	}
}

func observe(provider string, start time.Time, res domain.GeocodeResult) {
	metrics.GeocodeRequestsTotal.WithLabelValues(provider, string(res.Status)).Inc()
	metrics.GeocodeDurationMs.WithLabelValues(provider).Observe(float64(time.Since(start).Milliseconds()))
}
