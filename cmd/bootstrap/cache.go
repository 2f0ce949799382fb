package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"grocery-admin/internal/infra/cache"
	"grocery-admin/internal/pkg/config"
	"grocery-admin/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewLocker,
	),
)

// NewLocker uses Redis when REDIS_ADDR is set. Without it review locks only
// hold within this process.
func NewLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Locker, error) {
	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR not set, using in-process review locks")
		return cache.NewLocalLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("Redis review locks enabled", "addr", cfg.Redis.Addr)
	return cache.NewRedisLocker(client), nil
}
