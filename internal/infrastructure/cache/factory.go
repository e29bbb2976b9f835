package cache

import (
	"context"
	"time"

	"github.com/erp/godown/internal/domain/shared"
	"github.com/erp/godown/internal/infrastructure/config"
	"go.uber.org/zap"
)

const sweepInterval = 5 * time.Minute

// connectRedis is replaced in tests
var connectRedis = func(ctx context.Context, cfg config.RedisConfig) (shared.IdempotencyStore, error) {
	return NewRedisIdempotencyStore(ctx, cfg.Addr(), cfg.Password, cfg.DB)
}

// NewIdempotencyStore returns a Redis store when redis.enabled is set and
// reachable, and an in-memory store otherwise
func NewIdempotencyStore(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) shared.IdempotencyStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled {
		logger.Info("using in-memory idempotency store")
		return NewInMemoryIdempotencyStore(sweepInterval)
	}

	store, err := connectRedis(ctx, cfg)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory idempotency store",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return NewInMemoryIdempotencyStore(sweepInterval)
	}
	logger.Info("using Redis idempotency store", zap.String("addr", cfg.Addr()))
	return store
}
