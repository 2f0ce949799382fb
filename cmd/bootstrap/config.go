package bootstrap

import (
	"log/slog"

	"grocery-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads and validates the environment. Secrets are never logged.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"redis_enabled", cfg.Redis.Addr != "",
		"rabbitmq_enabled", cfg.RabbitMQ.URL != "")
	return cfg, nil
}
