package components

import (
	"context"
	"log/slog"

	"grocery-admin/internal/infra/events"
	"grocery-admin/internal/infra/readstore"
	"grocery-admin/internal/infra/relay"
	"grocery-admin/internal/pkg/clock"
	"grocery-admin/internal/pkg/config"
	"grocery-admin/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewRelay,
	),
	fx.Invoke(startRelay),
)

func NewRelay(uow shared.UnitOfWork, jobs *readstore.NotificationReadStore, publisher events.Publisher, clk clock.Clock, cfg config.Config) *relay.Relay {
	return relay.NewRelay(uow, jobs, publisher, clk, cfg.Relay)
}

func startRelay(lc fx.Lifecycle, r *relay.Relay, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Starting notification relay", "interval", cfg.Relay.Interval, "batch_size", cfg.Relay.BatchSize)
			go func() {
				defer close(done)
				r.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			logger.Info("Notification relay stopped")
			return nil
		},
	})
}
