package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_predictor/internal/config"
	v1 "github.com/shenikar/disaster_response_predictor/internal/handler/http/v1"
	"github.com/shenikar/disaster_response_predictor/internal/observability"
	"github.com/shenikar/disaster_response_predictor/internal/regressor"
	"github.com/shenikar/disaster_response_predictor/internal/repository"
	"github.com/shenikar/disaster_response_predictor/internal/service"
	"github.com/shenikar/disaster_response_predictor/internal/webhook"
	"github.com/shenikar/disaster_response_predictor/pkg/logger"
	redisclient "github.com/shenikar/disaster_response_predictor/pkg/redis"

	_ "github.com/shenikar/disaster_response_predictor/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Disaster Response Predictor API
// @version 1.0
// @description Predicts disaster response time in hours and derives a severity tier.
// @host localhost:8080
// @BasePath /
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Загрузка модели. Без модели сервис не стартует
	model, err := regressor.Load(cfg.ModelDir, cfg.ModelName)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}
	metrics.ModelLoaded.Set(1)
	log.WithFields(logrus.Fields{
		"model":   model.Name(),
		"version": model.Version(),
	}).Info("Model loaded")

	// Redis опционален: без него кеш и алерты отключены
	var (
		cache  service.PredictionCache
		alerts webhook.AlertPublisher
	)
	if cfg.CacheEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		cache = repository.NewPredictionCache(redisClient, cfg.CacheTTL)

		if cfg.AlertsEnabled() {
			// Инициализация издателя алертов и запуск воркера вебхуков
			alerts = webhook.NewRedisAlertPublisher(redisClient)
			webhook.NewAlertWorker(redisClient, log, cfg).Start(ctx)
		}
	}

	// Инициализация сервисов
	predictionService := service.NewPredictionService(model, cache, alerts, metrics, clockwork.NewRealClock(), log)

	// Инициализация хэндлеров и роутера
	handler := v1.NewHandler(predictionService, log, cfg)
	router := v1.NewRouter(handler, cfg, metrics, log)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
