package session

import (
	"context"
	"time"

	"github.com/lovelyplace-web/internal/config"
	"github.com/lovelyplace-web/internal/pkg/metrics"
	"github.com/lovelyplace-web/internal/state"
	"github.com/lovelyplace-web/internal/worker"
	"go.uber.org/zap"
)

// JanitorName - имя воркера очистки сессий
const JanitorName = "session-janitor"

// Janitor периодически удаляет состояния сессий, простаивающих дольше TTL,
// и обновляет метрику активных сессий
type Janitor struct {
	*worker.BaseWorker
	registry *state.Registry
	ttl      time.Duration
	interval time.Duration
}

// NewJanitor создает воркер очистки по настройкам сессий
func NewJanitor(registry *state.Registry, cfg *config.SessionConfig, logger *zap.Logger) *Janitor {
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		BaseWorker: worker.NewBaseWorker(JanitorName, logger),
		registry:   registry,
		ttl:        cfg.TTL,
		interval:   interval,
	}
}

// Start блокируется до отмены ctx или Stop
func (j *Janitor) Start(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.Logger().Info("Session janitor started",
		zap.Duration("ttl", j.ttl),
		zap.Duration("interval", j.interval))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.StopChan():
			return nil
		case <-ticker.C:
			j.Sweep()
		}
	}
}

// Sweep выполняет один проход очистки и возвращает число удаленных сессий
func (j *Janitor) Sweep() int {
	removed := j.registry.Sweep(j.ttl)
	active := j.registry.Len()
	metrics.ActiveSessions.Set(float64(active))

	if removed > 0 {
		j.Logger().Debug("Idle sessions evicted",
			zap.Int("removed", removed),
			zap.Int("active", active))
	}
	return removed
}
