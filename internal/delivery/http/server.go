package http

import (
	"context"
	"time"

	"github.com/depot-route-service/internal/config"
	"github.com/depot-route-service/internal/delivery/http/handler"
	"github.com/depot-route-service/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	healthHandler   *handler.HealthHandler
	locationHandler *handler.LocationHandler
	routeHandler    *handler.RouteHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	healthHandler *handler.HealthHandler,
	locationHandler *handler.LocationHandler,
	routeHandler *handler.RouteHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:     "Depot Route Service",
		ReadTimeout: 10 * time.Second,
		// Расчёт маршрута выполняет серию последовательных запросов к Baidu API
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		healthHandler:   healthHandler,
		locationHandler: locationHandler,
		routeHandler:    routeHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Static files for the map UI
	s.app.Static("/static", "./static")

	// Map page redirect
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html")
	})

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.healthHandler.Check)

	// Location routes
	api.Post("/locations/upload", s.locationHandler.Upload)

	// Route routes
	api.Post("/routes/calculate", s.routeHandler.Calculate)
	api.Post("/routes/optimize", s.routeHandler.Optimize)
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
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
