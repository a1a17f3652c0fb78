package http

import (
	"context"
	stderrors "errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/lovelyplace-web/internal/config"
	"github.com/lovelyplace-web/internal/delivery/http/handler"
	"github.com/lovelyplace-web/internal/delivery/http/middleware"
	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/pkg/metrics"
	"github.com/lovelyplace-web/internal/pkg/utils"
	"github.com/lovelyplace-web/internal/state"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	assets   fs.FS
	registry *state.Registry
	sessions *session.Store

	// Handlers
	browseHandler   *handler.BrowseHandler
	mapHandler      *handler.MapHandler
	locationHandler *handler.LocationHandler
	formHandler     *handler.FormHandler
	adminHandler    *handler.AdminHandler
	healthHandler   *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера. assets содержит каталог static/.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	assets fs.FS,
	registry *state.Registry,
	browseHandler *handler.BrowseHandler,
	mapHandler *handler.MapHandler,
	locationHandler *handler.LocationHandler,
	formHandler *handler.FormHandler,
	adminHandler *handler.AdminHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Lovely Place",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    50 << 20,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		assets:          assets,
		registry:        registry,
		sessions:        middleware.NewSessionStore(&cfg.Session, cfg.IsProduction()),
		browseHandler:   browseHandler,
		mapHandler:      mapHandler,
		locationHandler: locationHandler,
		formHandler:     formHandler,
		adminHandler:    adminHandler,
		healthHandler:   healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.app.Use(middleware.Session(s.sessions, s.registry, s.logger))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Static files (CSS, JS, изображения)
	s.app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(s.assets),
		PathPrefix: "static",
		MaxAge:     3600,
	}))

	// HTML pages
	s.app.Get("/", s.browseHandler.Home)
	s.app.Get("/form", s.formHandler.Page)
	s.app.Post("/form", s.formHandler.Submit)
	s.app.Get("/selectedLocation/:id", s.locationHandler.Page)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.healthHandler.Health)

	// Browse routes
	api.Get("/state", s.browseHandler.State)
	api.Post("/category/:category", s.browseHandler.SelectCategory)
	api.Post("/quick-filters/:id", s.browseHandler.ToggleQuickFilter)
	api.Post("/advanced-filter", s.browseHandler.AdvancedFilter)
	api.Get("/search", s.browseHandler.Search)
	api.Post("/reset", s.browseHandler.Reset)

	// Map routes
	api.Get("/map", s.mapHandler.Markers)
	api.Post("/map/popup/:id", s.mapHandler.OpenPopup)
	api.Delete("/map/popup", s.mapHandler.ClosePopup)

	// Location routes
	api.Post("/locations", s.formHandler.Create)
	api.Get("/locations/:id", s.locationHandler.Get)
	api.Put("/locations/:id/address", s.locationHandler.UpdateAddress)
	api.Put("/locations/:id/description", s.locationHandler.UpdateDescription)
	api.Put("/locations/:id/keywords", s.locationHandler.UpdateKeywords)
	api.Put("/locations/:id/filters", s.locationHandler.UpdateFilters)
	api.Post("/locations/:id/photos", s.locationHandler.UploadPhoto)
	api.Delete("/locations/:id/photos", s.locationHandler.DeletePhoto)

	// Admin routes
	api.Post("/admin/login", s.adminHandler.Login)
	api.Post("/admin/logout", s.adminHandler.Logout)
}

// App - приложение fiber, для тестов через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		message := errors.ErrInternalServer.Message

		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.New(errorCode(code), message, code),
		})
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	}
	if status < fiber.StatusInternalServerError {
		return "INVALID_REQUEST"
	}
	return "INTERNAL_SERVER_ERROR"
}
