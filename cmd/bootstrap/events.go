package bootstrap

import (
	"context"
	"log/slog"

	"grocery-admin/internal/infra/events"
	"grocery-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher falls back to logging events when RABBITMQ_URL is empty.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (events.Publisher, error) {
	var publisher events.Publisher
	if cfg.RabbitMQ.URL == "" {
		logger.Warn("RABBITMQ_URL not set, payout events will only be logged")
		publisher = events.NewLogPublisher(logger)
	} else {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			return nil, err
		}
		logger.Info("RabbitMQ publisher ready", "exchange", cfg.RabbitMQ.Exchange)
		publisher = amqpPublisher
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
