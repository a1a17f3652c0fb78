package geocoding

import (
	"context"
	"time"

	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/domain/repository"
	"github.com/lovelyplace-web/internal/pkg/metrics"
	"go.uber.org/zap"
)

// cachedGeocoder кеширует только успешные ответы; ошибки кеша не мешают геокодированию
type cachedGeocoder struct {
	next   repository.Geocoder
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedGeocoder оборачивает геокодер кешем
func NewCachedGeocoder(next repository.Geocoder, cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) repository.Geocoder {
	return &cachedGeocoder{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *cachedGeocoder) Geocode(ctx context.Context, address string) domain.GeocodeResult {
	at, err := c.cache.GetGeocode(ctx, address)
	if err != nil {
		c.logger.Warn("Geocode cache read failed", zap.String("address", address), zap.Error(err))
	}
	if at != nil {
		metrics.CacheHitsTotal.Inc()
		return domain.GeocodeSuccess(*at)
	}
	metrics.CacheMissesTotal.Inc()

	res := c.next.Geocode(ctx, address)
	if !res.OK() {
		return res
	}

	if err := c.cache.SetGeocode(ctx, address, res.Location, c.ttl); err != nil {
		c.logger.Warn("Geocode cache write failed", zap.String("address", address), zap.Error(err))
	}
	return res
}
