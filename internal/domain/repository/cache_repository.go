package repository

import (
	"context"
	"time"

	"github.com/lovelyplace-web/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; промах - (nil, nil)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetGeocode получает координату адреса из кеша; промах - (nil, nil)
	GetGeocode(ctx context.Context, address string) (*domain.LatLng, error)

	// SetGeocode сохраняет координату адреса
	SetGeocode(ctx context.Context, address string, at domain.LatLng, ttl time.Duration) error
}
