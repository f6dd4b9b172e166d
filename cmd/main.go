package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/crash_alert_system/internal/config"
	"github.com/shenikar/crash_alert_system/internal/events"
	"github.com/shenikar/crash_alert_system/internal/gateway"
	v1 "github.com/shenikar/crash_alert_system/internal/handler/http/v1"
	"github.com/shenikar/crash_alert_system/internal/queue"
	"github.com/shenikar/crash_alert_system/internal/repository"
	"github.com/shenikar/crash_alert_system/internal/repository/memory"
	"github.com/shenikar/crash_alert_system/internal/service"
	"github.com/shenikar/crash_alert_system/internal/sweeper"
	"github.com/shenikar/crash_alert_system/internal/tracker"
	"github.com/shenikar/crash_alert_system/pkg/logger"
	"github.com/shenikar/crash_alert_system/pkg/postgres"
	redisclient "github.com/shenikar/crash_alert_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crash_alert_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	localQueueSize        = 1024
	telegramRatePerSecond = 25
)

type publisher interface {
	service.EventPublisher
	Close() error
}

type stores struct {
	crashes  service.CrashRepository
	devices  service.DeviceRepository
	dispatch service.DispatchRepository
	contacts service.ContactResolver
	close    func()
}

// @title Crash Alert System API
// @version 1.0
// @description Crash report deduplication, device registry and emergency contact alerting.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newStores поднимает хранилище в зависимости от STORE_BACKEND
func newStores(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*stores, error) {
	if cfg.StoreBackend == config.BackendMemory {
		log.Warn("Using in-memory store, data will not survive restart")
		return &stores{
			crashes:  memory.NewCrashStore(),
			devices:  memory.NewDeviceStore(),
			dispatch: memory.NewDispatchStore(),
			contacts: memory.NewContactStore(),
			close:    func() {},
		}, nil
	}

	if err := runMigrations(cfg, log); err != nil {
		return nil, err
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Successfully connected to PostgreSQL")

	return &stores{
		crashes:  repository.NewCrashRepository(dbpool),
		devices:  repository.NewDeviceRepository(dbpool),
		dispatch: repository.NewDispatchRepository(dbpool),
		contacts: repository.NewContactRepository(dbpool),
		close:    dbpool.Close,
	}, nil
}

// newGateway собирает маршрутизатор доставки: tg: адреса в Telegram, остальное в HTTP шлюз
func newGateway(cfg *config.Config, log *logrus.Logger) (*gateway.Router, error) {
	var fallback gateway.Sender
	if cfg.GatewayURL != "" {
		fallback = gateway.NewHTTPGateway(cfg.GatewayURL, cfg.GatewaySecret, cfg.GatewayTimeout)
	} else {
		log.Warn("GATEWAY_URL is not set, alerts will only be logged")
		fallback = gateway.NewLogGateway(log)
	}

	router := gateway.NewRouter(fallback)
	if cfg.TelegramBotToken != "" {
		tg, err := gateway.NewTelegramGateway(cfg.TelegramBotToken, telegramRatePerSecond)
		if err != nil {
			return nil, fmt.Errorf("failed to create telegram gateway: %w", err)
		}
		router.Handle(gateway.TelegramScheme, tg)
	}
	return router, nil
}

func newPublisher(cfg *config.Config) publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NoopPublisher{}
	}
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFile)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := newStores(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.close()

	// Redis нужен очереди и кэшу в postgres-режиме и Redis-трекеру
	var redisClient *redis.Client
	if cfg.StoreBackend == config.BackendPostgres || cfg.TrackerBackend == config.BackendRedis {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	var (
		cache        service.IncidentCache
		jobs         service.IncidentQueue
		jobSource    queue.Source
		alertTracker service.AlertTracker
	)
	if redisClient != nil {
		cache = repository.NewSeenCache(redisClient, cfg.SeenCacheTTL)
		q := queue.NewRedisQueue(redisClient)
		jobs, jobSource = q, q
	} else {
		q := queue.NewLocalQueue(localQueueSize)
		jobs, jobSource = q, q
	}
	if cfg.TrackerBackend == config.BackendRedis {
		alertTracker = tracker.NewRedisTracker(redisClient)
	} else {
		alertTracker = tracker.NewMemoryTracker()
	}

	deliveryGateway, err := newGateway(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize delivery gateway: %v", err)
	}

	eventPublisher := newPublisher(cfg)

	// Инициализация сервисов
	crashService := service.NewCrashService(st.crashes, cache, jobs, eventPublisher, log, cfg)
	deviceService := service.NewDeviceService(st.devices, log, cfg)
	dispatchService := service.NewDispatchService(deviceService, st.dispatch, deliveryGateway, log, cfg)
	retractionService := service.NewRetractionService(alertTracker, eventPublisher, log)
	processor := service.NewIncidentProcessor(crashService, dispatchService, st.contacts, alertTracker, log, cfg)

	// Воркеры обработки инцидентов и свипер
	worker := queue.NewWorker(jobSource, processor, log, cfg.DispatchConcurrency)
	worker.Start(ctx)
	sweeper.New(crashService, dispatchService, jobs, log, cfg).Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(crashService, deviceService, dispatchService, retractionService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	limiter := v1.NewRateLimiter(redisClient, log)
	handler.RegisterRoutes(api, limiter.Limit("api", cfg.RateLimitPerMinute, time.Minute))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркеры и дожидаемся текущих рассылок
	cancel()
	worker.Wait()

	if err := eventPublisher.Close(); err != nil {
		log.WithError(err).Warn("Failed to close event publisher")
	}

	log.Info("Server gracefully stopped")
}
