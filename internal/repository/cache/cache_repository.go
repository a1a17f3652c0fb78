package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const geocodeKeyPrefix = "geo:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GeocodeKey - ключ кеша для адреса; регистр и крайние пробелы не различаются
func GeocodeKey(address string) string {
	return geocodeKeyPrefix + strings.ToLower(strings.TrimSpace(address))
}

// GetGeocode получает координату адреса из кеша
func (r *cacheRepository) GetGeocode(ctx context.Context, address string) (*domain.LatLng, error) {
	data, err := r.Get(ctx, GeocodeKey(address))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var at domain.LatLng
	if err := json.Unmarshal(data, &at); err != nil {
		r.logger.Error("Failed to unmarshal geocode from cache", zap.String("address", address), zap.Error(err))
		return nil, fmt.Errorf("unmarshal geocode: %w", err)
	}

	return &at, nil
}

// SetGeocode сохраняет координату адреса в кеше
func (r *cacheRepository) SetGeocode(ctx context.Context, address string, at domain.LatLng, ttl time.Duration) error {
	data, err := json.Marshal(at)
	if err != nil {
		r.logger.Error("Failed to marshal geocode", zap.Error(err))
		return fmt.Errorf("marshal geocode: %w", err)
	}

	return r.Set(ctx, GeocodeKey(address), data, ttl)
}
