package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lovelyplace-web/internal/state"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, состояние которой входит в health check
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - проверка состояния сервиса
type HealthHandler struct {
	registry *state.Registry
	cache    HealthChecker
	logger   *zap.Logger
}

// NewHealthHandler - cache может быть nil, если redis выключен
func NewHealthHandler(registry *state.Registry, cache HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		registry: registry,
		cache:    cache,
		logger:   logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Недоступный redis не останавливает сервис: геокодирование идет мимо кеша
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := "healthy"
	cacheStatus := "disabled"

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		cacheStatus = "up"
		if err := h.cache.Health(ctx); err != nil {
			h.logger.Warn("Cache health check failed", zap.Error(err))
			cacheStatus = "down"
			status = "degraded"
		}
	}

	return c.JSON(fiber.Map{
		"status":   status,
		"time":     time.Now(),
		"cache":    cacheStatus,
		"sessions": h.registry.Len(),
	})
}
