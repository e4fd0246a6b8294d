package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"telehealth-server/internal/catalog"
	"telehealth-server/internal/config"
	"telehealth-server/internal/metrics"
	"telehealth-server/internal/middleware"
	"telehealth-server/internal/models"
	"telehealth-server/internal/query"
	"telehealth-server/internal/routes"
	"telehealth-server/internal/session"
	"telehealth-server/internal/storage"
	"telehealth-server/pkg/logging"
)

const sweepInterval = time.Minute

func main() {
	// Load environment variables; the .env file is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	m := metrics.New(prometheus.DefaultRegisterer)

	backend, closeBackend, err := openStorage(cfg, logger)
	if err != nil {
		logger.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeBackend()

	doctors := query.NewDoctors(catalog.New(cfg.CatalogSeed, time.Now()))
	sessions := session.NewManager(backend, cfg.SessionTTL, logger, m)
	defer sessions.Close()

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Run(sweepCtx, sweepInterval)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger, m))

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, routes.Dependencies{
		Config:   cfg,
		Sessions: sessions,
		Doctors:  doctors,
		Logger:   logger,
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
	})

	// Event streams stay open, so there is no write timeout.
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Ending sessions closes their event streams.
	stopSweep()
	sessions.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	logger.Info("server stopped")
}

// openStorage connects the configured client storage backend.
func openStorage(cfg *config.Config, logger *logging.Logger) (storage.Storage, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return storage.NewRedisStorage(client), func() { client.Close() }, nil

	case config.StorageMySQL:
		db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return storage.NewGormStorage(db), closeDB, nil

	default:
		logger.Warn("using in-memory storage; client state is lost on restart")
		return storage.NewMemoryStorage(), func() {}, nil
	}
}
