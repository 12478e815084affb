package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/clinicflow/ledger-api/internal/config"
	"github.com/clinicflow/ledger-api/internal/handler"
	bookingHandler "github.com/clinicflow/ledger-api/internal/handler/booking"
	exportHandler "github.com/clinicflow/ledger-api/internal/handler/export"
	patientHandler "github.com/clinicflow/ledger-api/internal/handler/patient"
	sessionHandler "github.com/clinicflow/ledger-api/internal/handler/session"
	settingsHandler "github.com/clinicflow/ledger-api/internal/handler/settings"
	statsHandler "github.com/clinicflow/ledger-api/internal/handler/stats"
	"github.com/clinicflow/ledger-api/internal/middleware"
	"github.com/clinicflow/ledger-api/internal/repository/kvstore"
	"github.com/clinicflow/ledger-api/internal/router"
	"github.com/clinicflow/ledger-api/internal/service/analytics"
	bookingService "github.com/clinicflow/ledger-api/internal/service/booking"
	exportService "github.com/clinicflow/ledger-api/internal/service/export"
	patientService "github.com/clinicflow/ledger-api/internal/service/patient"
	settingsService "github.com/clinicflow/ledger-api/internal/service/settings"
	"github.com/clinicflow/ledger-api/internal/session"
	"github.com/clinicflow/ledger-api/internal/store"
	"github.com/clinicflow/ledger-api/internal/worker"
	"github.com/clinicflow/ledger-api/pkg/logger"
	"github.com/clinicflow/ledger-api/pkg/messaging/redis"
	"github.com/clinicflow/ledger-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	kv, err := newKV(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage backend")
	}

	appMetrics := metrics.NewMetrics("clinicflow", "ledger")

	ledger := kvstore.New(kv,
		kvstore.WithLogger(appLogger),
		kvstore.WithMetrics(appMetrics),
	)
	bookingRepo := ledger.Bookings()
	patientRepo := ledger.Patients()
	settingsRepo := ledger.Settings()

	ctx := context.Background()
	if cfg.Storage.SeedDemo {
		existing, err := bookingRepo.List(ctx)
		if err == nil && len(existing) == 0 {
			if err := ledger.SeedDemo(ctx); err != nil {
				log.Fatal().Err(err).Msg("failed to seed demo data")
			}
			appLogger.Info("seeded demo ledger data")
		}
	}

	bookingSvc := bookingService.NewService(bookingRepo, appLogger)
	patientSvc := patientService.NewService(patientRepo, appLogger)
	settingsSvc := settingsService.NewService(settingsRepo, appLogger)
	analyticsSvc := analytics.NewService(bookingRepo, patientRepo, ledger.Clock())
	exportSvc := exportService.NewService(bookingRepo, patientRepo, analyticsSvc, ledger.Clock())

	sessions := session.NewManager(time.Duration(cfg.Session.TimeoutMinutes) * time.Minute)

	h := handler.NewHandler()
	r := router.NewRouter(
		bookingHandler.NewHandler(bookingSvc),
		patientHandler.NewHandler(patientSvc),
		settingsHandler.NewHandler(settingsSvc),
		statsHandler.NewHandler(analyticsSvc),
		exportHandler.NewHandler(exportSvc),
		sessionHandler.NewHandler(sessions),
		h,
		router.Config{
			RateLimitRPS:  cfg.Server.RateLimitRPS,
			RateBurst:     cfg.Server.RateBurst,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "ledger_api",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	syncCtx, cancelSync := context.WithCancel(ctx)
	defer cancelSync()
	if cfg.Sync.Enabled {
		broker, err := redis.NewRedisBroker(redis.Config{
			URL:          cfg.Sync.RedisURL,
			MaxRetries:   3,
			RetryBackoff: 100 * time.Millisecond,
			PoolSize:     10,
			MinIdleConns: 2,
		}, &log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer broker.Close()

		publisher := worker.NewSyncPublisher(kv, broker, worker.SyncConfig{}, appLogger, appMetrics)
		go publisher.Start(syncCtx)
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	appLogger.Info("server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func newKV(cfg *config.Config) (store.KV, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "postgres":
		return store.NewPostgresStore(cfg.Database)
	case "file", "":
		return store.NewFileStore(cfg.Storage.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
