package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cloud-ru/mcp-calculators-go/internal/config"
	"github.com/cloud-ru/mcp-calculators-go/internal/handler"
	"github.com/cloud-ru/mcp-calculators-go/internal/repository"
	"github.com/cloud-ru/mcp-calculators-go/internal/tools"
	"github.com/cloud-ru/mcp-calculators-go/internal/tracing"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Загрузка конфигурации приложения
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Неизвестный уровень логирования %q, используется info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	ctx := context.Background()

	tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, logger)
	if err != nil {
		logger.Fatalf("Ошибка инициализации трейсинга: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.WithError(err).Error("Ошибка остановки трейсинга")
		}
	}()

	// Хранилище сохраненных калькуляторов: Redis, если задан адрес, иначе память процесса
	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Fatalf("Ошибка подключения к Redis: %v", err)
		}
		defer redisCache.Close()
		cache = redisCache
		logger.WithField("addr", cfg.RedisAddr).Info("Используется Redis для сохраненных калькуляторов")
	} else {
		cache = repository.NewMemoryCache()
		logger.Info("REDIS_ADDR не задан, сохраненные калькуляторы хранятся в памяти")
	}

	logger.Info("Инициализация калькуляторов...")
	registry := tools.NewRegistry(cfg, tracer)
	saved := repository.NewSavedCalculators(cache, cfg.SavedKey(), registry.Slugs(), logger)

	router := handler.NewRouter(
		handler.NewCalculatorHandler(registry, logger),
		handler.NewSavedHandler(saved, logger),
		logger,
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.Chain(router, cfg.AllowedOrigins, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("addr", addr).Info("Запуск сервера калькуляторов")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// Ожидание сигналов для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Завершение работы сервера...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Ошибка при завершении работы сервера: %v", err)
	}
	logger.Info("Сервер успешно остановлен")
}
