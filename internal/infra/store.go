package infra

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/simplewallet/internal/config"
	"github.com/congo-pay/simplewallet/internal/statestore"
)

// Backends holds the connections the simulator opened. Cache is nil when no
// Redis URL is configured.
type Backends struct {
	Store statestore.Store
	Cache *redis.Client
	close []func()
}

// Close releases every connection in reverse order of opening.
func (b *Backends) Close() {
	for i := len(b.close) - 1; i >= 0; i-- {
		b.close[i]()
	}
	b.close = nil
}

// OpenBackends connects the state store selected by cfg.StateBackend and, when
// REDIS_URL is set, a Redis client shared by the store and the idempotency cache.
func OpenBackends(ctx context.Context, cfg config.Simulator, logger *slog.Logger) (*Backends, error) {
	b := &Backends{}

	if cfg.RedisURL != "" {
		cache, err := NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		b.Cache = cache
		b.close = append(b.close, func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close redis", "error", err)
			}
		})
	}

	switch cfg.StateBackend {
	case config.BackendMemory:
		b.Store = statestore.NewMemory()
	case config.BackendRedis:
		b.Store = statestore.NewRedis(b.Cache)
	case config.BackendPostgres:
		pool, err := NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.close = append(b.close, pool.Close)
		pg := statestore.NewPostgres(pool)
		if err := pg.Migrate(ctx); err != nil {
			b.Close()
			return nil, err
		}
		b.Store = pg
	default:
		b.Close()
		return nil, fmt.Errorf("unsupported state backend %q", cfg.StateBackend)
	}

	logger.Info("state backend ready", "backend", cfg.StateBackend, "idempotency", b.Cache != nil)
	return b, nil
}
