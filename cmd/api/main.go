package main

// @title Lovely Place API
// @version 1.0.0
// @description Backend-for-frontend каталога мест Lovely Place: категории, быстрые фильтры, поиск, карта, форма добавления и правки администратора.
// @description
// @description Состояние просмотра хранится на сервере в рамках cookie сессии, данные мест приходят из внешнего API.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lovelyplace-web/docs"
	"github.com/lovelyplace-web/internal/config"
	httpDelivery "github.com/lovelyplace-web/internal/delivery/http"
	"github.com/lovelyplace-web/internal/delivery/http/handler"
	"github.com/lovelyplace-web/internal/domain/repository"
	"github.com/lovelyplace-web/internal/infrastructure/backend"
	"github.com/lovelyplace-web/internal/infrastructure/geocoding"
	"github.com/lovelyplace-web/internal/pkg/logger"
	"github.com/lovelyplace-web/internal/pkg/metrics"
	"github.com/lovelyplace-web/internal/repository/cache"
	"github.com/lovelyplace-web/internal/state"
	"github.com/lovelyplace-web/internal/usecase"
	"github.com/lovelyplace-web/internal/worker"
	"github.com/lovelyplace-web/internal/worker/session"
	"github.com/lovelyplace-web/web"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Lovely Place")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("backend", cfg.Backend.BaseURL),
		zap.String("geocoder", cfg.Geocoder.Provider),
	)

	// 3. Redis (optional): только кеш геокодирования
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
		health      handler.HealthChecker
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, geocoding runs without cache",
				zap.String("addr", cfg.GetRedisAddr()),
				zap.Error(err))
		} else {
			cacheRepo = cache.NewCacheRepository(redisClient)
			health = redisClient
		}
	}

	// 4. External services
	gateway := backend.NewClient(&cfg.Backend, log)
	geocoder := geocoding.New(cfg, cacheRepo, log)

	// 5. Session state
	registry := state.NewRegistry(func(snap state.Snapshot) {
		metrics.StateUpdatesTotal.WithLabelValues(string(snap.Category)).Inc()
	})

	// 6. Initialize Use Cases
	browseUC := usecase.NewBrowseUseCase(gateway, log)
	locationUC := usecase.NewLocationUseCase(gateway, log)
	mapUC := usecase.NewMapUseCase(geocoder, cfg.Map, cfg.Geocoder.MaxWorkers, log)
	submissionUC := usecase.NewSubmissionUseCase(gateway, log)
	adminUC := usecase.NewAdminUseCase(cfg.Admin.Token, log)

	if cfg.Admin.Token == "" {
		log.Warn("ADMIN_TOKEN is empty, admin login is disabled")
	}

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	renderer, err := handler.NewRenderer(web.FS)
	if err != nil {
		log.Fatal("Failed to load templates", zap.Error(err))
	}

	browseHandler := handler.NewBrowseHandler(browseUC, renderer, log)
	mapHandler := handler.NewMapHandler(mapUC, log)
	locationHandler := handler.NewLocationHandler(locationUC, renderer, log)
	formHandler := handler.NewFormHandler(submissionUC, renderer, log)
	adminHandler := handler.NewAdminHandler(adminUC, log)
	healthHandler := handler.NewHealthHandler(registry, health, log)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		web.FS,
		registry,
		browseHandler,
		mapHandler,
		locationHandler,
		formHandler,
		adminHandler,
		healthHandler,
	)

	// 9. Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	workers := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workers.Register(session.NewJanitor(registry, &cfg.Session, log))
	if err := workers.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := workers.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}
	stopWorkers()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
