package cache

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderNone   = "none"
	ProviderMemory = "memory"
	ProviderRedis  = "redis"
)

// noopCache is used when response caching is disabled
type noopCache struct {
	logger *slog.Logger
}

func (c *noopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *noopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.logger.Debug("[NoopCache] Caching disabled, skipping", slog.String("key", key))

	return nil
}

func (c *noopCache) Close() error {
	return nil
}

// CacheParams holds dependencies for ResponseCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewResponseCache creates a ResponseCache based on configuration
func NewResponseCache(params CacheParams) (service.ResponseCache, error) {
	cache, err := newFromConfig(params.Config.Cache, params.Logger)
	if err != nil {
		return nil, err
	}

	// Register lifecycle hook to sweep expired entries and close the cache on shutdown
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if memory, ok := cache.(*MemoryCache); ok {
				memory.Start()
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing ResponseCache")

			return cache.Close()
		},
	})

	return cache, nil
}

func newFromConfig(cfg *config.CacheConfig, logger *slog.Logger) (service.ResponseCache, error) {
	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderNone {
		logger.Info("Response cache not configured, using no-op cache")

		return &noopCache{logger: logger}, nil
	}

	switch cfg.Provider {
	case ProviderMemory:
		logger.Info("Using in-memory response cache")

		return NewMemoryCache(), nil

	case ProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using Redis response cache",
			slog.String("addr", cfg.Redis.Addr),
			slog.Int("db", cfg.Redis.DB),
		)

		return NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), nil

	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
}

// Module provides the response cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewResponseCache),
)
