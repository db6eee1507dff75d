package initializer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/banking/infra"
	infra_cache "github.com/amirasaad/banking/infra/cache"
	infra_eventbus "github.com/amirasaad/banking/infra/eventbus"
	infra_repository "github.com/amirasaad/banking/infra/repository"
	"github.com/amirasaad/banking/pkg/cache"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/eventbus"
	"github.com/redis/go-redis/v9"
)

const cacheSweepInterval = 5 * time.Minute

// InitializeDependencies initializes all the application dependencies.
// The returned cleanup releases background resources and must be called on shutdown.
func InitializeDependencies(cfg *config.App) (deps *config.Deps, cleanup func(), err error) {
	if cfg == nil {
		return nil, nil, ErrNoConfig
	}
	logger := setupLogger(cfg.Log)
	deps = &config.Deps{Logger: logger, Config: cfg}

	var closers []func()
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	defer func() {
		if err != nil {
			release()
		}
	}()

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	closers = append(closers, func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if cfg.DB.Migrate {
		if err = infra.Migrate(db); err != nil {
			logger.Error("Failed to apply migrations", "error", err)
			return nil, nil, err
		}
		logger.Info("Database migrations applied")
	}
	deps.Uow = infra_repository.NewUoW(db)

	bus, err := initEventBus(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}
	closers = append(closers, func() { closeIfCloser(bus, logger) })
	deps.EventBus = bus

	ctx, cancel := context.WithCancel(context.Background())
	closers = append(closers, cancel)
	kycCache, err := initKYCCache(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize kyc cache: %w", err)
	}
	closers = append(closers, func() { closeIfCloser(kycCache, logger) })
	deps.KYCCache = kycCache

	return deps, release, nil
}

// initKYCCache returns a redis-backed cache when REDIS_URL is set and
// reachable, and an in-memory cache otherwise.
func initKYCCache(ctx context.Context, cfg *config.App, logger *slog.Logger) (cache.KYCCache, error) {
	memory := func() cache.KYCCache {
		c := infra_cache.NewMemoryCache()
		go c.Run(ctx, cacheSweepInterval)
		return c
	}
	if cfg.Redis == nil || cfg.Redis.URL == "" {
		logger.Info("Using in-memory kyc cache")
		return memory(), nil
	}

	opt, err := redisOptions(cfg.Redis)
	if err != nil {
		return nil, err
	}

	rc := infra_cache.NewRedisKYCCacheWithOptions(opt, cfg.Redis.KeyPrefix, logger)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		logger.Warn("Redis unreachable, falling back to in-memory kyc cache", "error", err)
		_ = rc.Close()
		return memory(), nil
	}
	logger.Info("Using redis kyc cache", "key_prefix", cfg.Redis.KeyPrefix)
	return rc, nil
}

// initEventBus returns the in-process bus unless EVENT_BUS_DRIVER=redis. The
// redis driver needs a reachable REDIS_URL; there is no silent fallback
// because other processes may depend on the published streams.
func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	if cfg.EventBus == nil || cfg.EventBus.Driver != "redis" {
		logger.Info("Using in-memory event bus")
		return infra_eventbus.NewWithMemory(logger), nil
	}
	if cfg.Redis == nil || cfg.Redis.URL == "" {
		return nil, ErrNoRedisURL
	}
	opt, err := redisOptions(cfg.Redis)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis event bus: %w", err)
	}
	logger.Info("Using redis event bus", "group", cfg.EventBus.Group)
	return infra_eventbus.NewWithRedis(client, cfg.EventBus, logger), nil
}

func redisOptions(cfg *config.Redis) (*redis.Options, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeout > 0 {
		opt.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opt.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opt.WriteTimeout = cfg.WriteTimeout
	}
	return opt, nil
}

func closeIfCloser(v any, logger *slog.Logger) {
	if c, ok := v.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close resource", "type", fmt.Sprintf("%T", v), "error", err)
		}
	}
}

// ErrNoConfig is returned when InitializeDependencies is called without config.
var ErrNoConfig = errors.New("initializer: nil config")

// ErrNoRedisURL is returned when the redis event bus is selected without REDIS_URL.
var ErrNoRedisURL = errors.New("initializer: EVENT_BUS_DRIVER=redis requires REDIS_URL")
