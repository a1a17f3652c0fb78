package repository

import (
	"context"

	"github.com/lovelyplace-web/internal/domain"
)

// Geocoder преобразует адрес в координату.
// Ошибки не возвращаются отдельно: исход описывает domain.GeocodeResult.
type Geocoder interface {
	Geocode(ctx context.Context, address string) domain.GeocodeResult
}
