package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Payout   PayoutConfig
	Relay    RelayConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// Empty Addr disables Redis; review locks then fall back to an in-process locker.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Empty URL disables publishing; events are logged instead.
type RabbitMQConfig struct {
	URL      string `envconfig:"RABBITMQ_URL" default:""`
	Exchange string `envconfig:"RABBITMQ_EXCHANGE" default:"grocery.payouts"`
}

type PayoutConfig struct {
	ReviewLockTTL time.Duration `envconfig:"PAYOUT_REVIEW_LOCK_TTL" default:"15s"`
}

type RelayConfig struct {
	Interval    time.Duration `envconfig:"RELAY_INTERVAL" default:"5s"`
	BatchSize   int           `envconfig:"RELAY_BATCH_SIZE" default:"50"`
	MaxAttempts int           `envconfig:"RELAY_MAX_ATTEMPTS" default:"10"`
}

// BuildDSN escapes credentials, so passwords may contain URL metacharacters.
func (c *DBConfig) BuildDSN() string {
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	q.Set("timezone", c.TimeZone)
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return dsn.String()
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate catches settings envconfig accepts but the service cannot run with.
func (c Config) Validate() error {
	var problems []error
	if d, err := time.ParseDuration(c.JWT.AccessTokenDuration); err != nil || d <= 0 {
		problems = append(problems, fmt.Errorf("JWT_ACCESS_TOKEN_DURATION %q is not a positive duration", c.JWT.AccessTokenDuration))
	}
	switch strings.ToLower(c.Cookie.SameSite) {
	case "lax", "strict", "none":
	default:
		problems = append(problems, fmt.Errorf("COOKIE_SAME_SITE %q must be Lax, Strict or None", c.Cookie.SameSite))
	}
	if strings.EqualFold(c.Cookie.SameSite, "none") && !c.Cookie.Secure {
		problems = append(problems, errors.New("COOKIE_SAME_SITE=None requires COOKIE_SECURE=true"))
	}
	if c.Payout.ReviewLockTTL <= 0 {
		problems = append(problems, errors.New("PAYOUT_REVIEW_LOCK_TTL must be positive"))
	}
	if c.Relay.Interval <= 0 || c.Relay.BatchSize <= 0 || c.Relay.MaxAttempts <= 0 {
		problems = append(problems, errors.New("RELAY_INTERVAL, RELAY_BATCH_SIZE and RELAY_MAX_ATTEMPTS must be positive"))
	}
	if c.DB.MaxConns <= 0 {
		problems = append(problems, errors.New("DB_MAX_CONNS must be positive"))
	}
	return errors.Join(problems...)
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-grocery-admin",
			AccessTokenDuration: "1h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		RabbitMQ: RabbitMQConfig{
			Exchange: "grocery.payouts.test",
		},
		Payout: PayoutConfig{
			ReviewLockTTL: 5 * time.Second,
		},
		Relay: RelayConfig{
			Interval:    time.Second,
			BatchSize:   10,
			MaxAttempts: 3,
		},
	}
}
