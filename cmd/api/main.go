package main

// @title Depot Route Service API
// @version 1.0.0
// @description Сервис планирования объездов точек сети. Принимает книги Excel с точками (网点), строит сквозные автомобильные маршруты через Baidu Directions API и оптимизирует порядок обхода эвристикой ближайшего соседа.
// @description
// @description Основные возможности:
// @description - Загрузка точек сети из книг Excel с группировкой по 网组
// @description - Сборка сквозного маршрута по точкам в заданном порядке
// @description - Оптимизация порядка обхода (эвристика ближайшего соседа)
// @description - Поиск самой удалённой пары точек по прямой (Haversine)

// @contact.name API Support
// @contact.email support@depot-route-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/depot-route-service/docs"
	"github.com/depot-route-service/internal/config"
	httpDelivery "github.com/depot-route-service/internal/delivery/http"
	"github.com/depot-route-service/internal/delivery/http/handler"
	"github.com/depot-route-service/internal/infrastructure/baidu"
	"github.com/depot-route-service/internal/infrastructure/excel"
	"github.com/depot-route-service/internal/pkg/logger"
	"github.com/depot-route-service/internal/repository/cache"
	"github.com/depot-route-service/internal/usecase"
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

	log.Info("Starting Depot Route Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Initialize Baidu directions client
	directions, err := baidu.NewClient(&cfg.Baidu, log)
	if err != nil {
		log.Fatal("Failed to initialize Baidu client", zap.Error(err))
	}
	log.Info("Baidu directions client initialized")

	// 4. Connect to Redis and wrap directions with cache (optional)
	var redisClient *cache.Redis
	if cfg.CacheEnabled() {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		directions = cache.NewCachedDirections(
			directions,
			cache.NewCacheRepository(redisClient),
			cfg.Cache.DirectionsCacheTTL,
			cfg.Baidu.Tactics,
			log,
		)
		log.Info("Redis connected, directions cache enabled",
			zap.Duration("ttl", cfg.Cache.DirectionsCacheTTL),
		)
	} else {
		log.Info("Redis is not configured, directions cache disabled")
	}

	// 5. Initialize Use Cases
	routeUC := usecase.NewRouteUseCase(directions, log)
	locationUC := usecase.NewLocationUseCase(excel.NewReader(log), log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	healthHandler := handler.NewHealthHandler()
	locationHandler := handler.NewLocationHandler(locationUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		healthHandler,
		locationHandler,
		routeHandler,
	)

	log.Info("HTTP server initialized")

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
