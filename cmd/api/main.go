// Package main is the entry point for the anime-catalog-service API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anime-catalog-service/internal/app/service"
	"anime-catalog-service/internal/config"
	"anime-catalog-service/internal/domain"
	"anime-catalog-service/internal/infra/cache"
	"anime-catalog-service/internal/infra/postgres"
	"anime-catalog-service/internal/infra/postgres/migrations"
	"anime-catalog-service/internal/infra/recap"
	"anime-catalog-service/internal/infra/tmdb"
	"anime-catalog-service/internal/job"
	"anime-catalog-service/internal/logger"
	"anime-catalog-service/internal/transport/httpserver"
	"anime-catalog-service/internal/validator"
	"anime-catalog-service/pkg/locker"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting anime-catalog-service",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Connect to database (optional, backs the status endpoints)
	var db *gorm.DB
	var statusSvc *service.StatusService
	if cfg.Database.Enabled {
		db, err = postgres.NewConnection(
			postgres.Config{
				Host:         cfg.Database.Host,
				Port:         cfg.Database.Port,
				Name:         cfg.Database.Name,
				User:         cfg.Database.User,
				Password:     cfg.Database.Password,
				SSLMode:      cfg.Database.SSLMode,
				MaxOpenConns: cfg.Database.MaxOpenConns,
				MaxIdleConns: cfg.Database.MaxIdleConns,
				MaxLifetime:  cfg.Database.MaxLifetime,
			},
			log.Logger,
		)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer func() { _ = postgres.Close(db) }()

		if err := migrations.Run(db); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
		log.Info("database migrations completed")

		statusSvc = service.NewStatusService(postgres.NewRepository(db), log.Logger)
	} else {
		log.Info("database disabled, status endpoints will not be served")
	}

	// Connect to Redis when the cache backend or the refresh lock needs it
	var redisClient *redis.Client
	needsRedis := cfg.Cache.Backend == "redis" || cfg.Refresh.Enabled
	if needsRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		log.Info("connected to Redis",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	}

	// Create the response cache
	var responseCache domain.Cache
	switch cfg.Cache.Backend {
	case "redis":
		responseCache = cache.NewRedis(redisClient, log.Logger, cfg.Cache.KeyPrefix)
		log.Info("redis response cache enabled",
			zap.Duration("ttl", cfg.Cache.TTL),
			zap.String("key_prefix", cfg.Cache.KeyPrefix),
		)
	case "disabled":
		log.Info("response cache disabled")
	default:
		responseCache = cache.NewMemory(cfg.Cache.Size, cfg.Cache.TTL, log.Logger)
		log.Info("in-memory response cache enabled",
			zap.Duration("ttl", cfg.Cache.TTL),
			zap.Int("size", cfg.Cache.Size),
		)
	}

	// Create the upstream metadata client
	provider := tmdb.New(
		tmdb.ClientConfig{
			BaseURL:  cfg.Provider.BaseURL,
			APIKey:   cfg.Provider.APIKey,
			Language: cfg.Provider.Language,
			Timeout:  cfg.Provider.Timeout,
			CacheTTL: cfg.Cache.TTL,
			Retry: tmdb.RetryConfig{
				MaxAttempts: cfg.Provider.Retry.MaxAttempts,
				WaitTime:    cfg.Provider.Retry.WaitTime,
				MaxWaitTime: cfg.Provider.Retry.MaxWaitTime,
			},
			CB: tmdb.CBConfig{
				MaxRequests:  cfg.Provider.CB.MaxRequests,
				Interval:     cfg.Provider.CB.Interval,
				Timeout:      cfg.Provider.CB.Timeout,
				FailureRatio: cfg.Provider.CB.FailureRatio,
			},
		},
		responseCache,
		log.Logger,
	)

	// Create the recap provider
	var recaps domain.RecapProvider
	if cfg.Recap.Mode == "api" && cfg.Recap.APIKey != "" {
		recaps = recap.NewAPIProvider(recap.APIConfig{
			BaseURL: cfg.Recap.BaseURL,
			APIKey:  cfg.Recap.APIKey,
			Query:   cfg.Recap.Query,
			Timeout: cfg.Recap.Timeout,
		}, log.Logger)
	} else {
		recaps, err = recap.NewFixtureProvider()
		if err != nil {
			log.Fatal("failed to load recap fixture", zap.Error(err))
		}
	}

	// Create services
	catalogSvc := service.NewCatalogService(
		provider, recaps, cfg.Provider.SecondaryLanguage, log.Logger)

	// Create HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Port:      cfg.App.Port,
			BodyLimit: 1024 * 1024, // 1MB
		},
		catalogSvc,
		statusSvc,
		db,
		validator.New(),
		log.Logger,
	)

	// Start refresh scheduler with distributed locking
	var scheduler *job.RefreshScheduler
	if cfg.Refresh.Enabled {
		scheduler = job.NewRefreshScheduler(
			catalogSvc,
			job.RefreshConfig{
				Interval:  cfg.Refresh.Interval,
				Timeout:   cfg.Refresh.Timeout,
				Pages:     cfg.Refresh.Pages,
				OnStartup: cfg.Refresh.OnStartup,
			},
			log.Logger,
			locker.NewRedisLocker(redisClient, log.Logger),
		)
		scheduler.Start(cfg.Refresh.OnStartup)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		if scheduler != nil {
			scheduler.Stop()
		}

		// Shutdown server with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
