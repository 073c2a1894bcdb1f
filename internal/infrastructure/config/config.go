package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config is the process configuration, read from the environment.
//
// `.env` files are loaded by the entry points (godotenv/autoload) before Load
// runs, so both sources feed the same struct.
type Config struct {
	Port     int    `env:"PORT" envDefault:"8000"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Demo      DemoConfig
	DynamoDB  DynamoDBConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Payments  PaymentsConfig

	OrdersLimit int32 `env:"ORDERS_LIMIT" envDefault:"50"`
}

// DemoConfig holds the single demo credential pair accepted by login.
type DemoConfig struct {
	Email    string `env:"DEMO_EMAIL" envDefault:"demo@chromaprint.dev"`
	Password string `env:"DEMO_PASSWORD" envDefault:"chromaprint-demo"`
	Token    string `env:"DEMO_TOKEN" envDefault:"demo-token-123"`
	UserName string `env:"DEMO_USER_NAME" envDefault:"Demo User"`
}

// DynamoDBConfig configures the document store. Local DynamoDB does not
// validate credentials, but the AWS SDK requires them.
type DynamoDBConfig struct {
	Enabled         bool          `env:"DYNAMODB_ENABLED" envDefault:"true"`
	Region          string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string        `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string        `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string        `env:"DYNAMODB_ENDPOINT"`
	CreateTables    bool          `env:"DYNAMODB_CREATE_TABLES" envDefault:"false"`
	ConnectTimeout  time.Duration `env:"DYNAMODB_CONNECT_TIMEOUT" envDefault:"30s"`
	PrintersTable   string        `env:"PRINTERS_TABLE" envDefault:"printers"`
	QuotesTable     string        `env:"QUOTES_TABLE" envDefault:"quotes"`
	UsersTable      string        `env:"USERS_TABLE" envDefault:"users"`
	PaymentsTable   string        `env:"PAYMENTS_TABLE" envDefault:"quote_payments"`
}

// CacheConfig configures the printer catalog cache. An empty RedisAddr keeps
// the cache in process memory.
type CacheConfig struct {
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CatalogTTL    time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"RATE_LIMIT" envDefault:"100"`
	Burst             int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
}

type PaymentsConfig struct {
	Mock           bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"true"`
	AccessToken    string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	TestPayerEmail string `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	DefaultMethod  string `env:"PAYMENT_DEFAULT_METHOD" envDefault:"pix"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	const operation = "config.Load"

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse config: %w", operation, err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%s: invalid PORT %d", operation, cfg.Port)
	}
	if cfg.OrdersLimit <= 0 {
		return nil, fmt.Errorf("%s: ORDERS_LIMIT must be positive", operation)
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 || cfg.RateLimit.Burst <= 0 {
		return nil, fmt.Errorf("%s: RATE_LIMIT and RATE_LIMIT_BURST must be positive", operation)
	}
	if strings.TrimSpace(cfg.Demo.Token) == "" {
		return nil, fmt.Errorf("%s: DEMO_TOKEN cannot be empty", operation)
	}

	return &cfg, nil
}

// IsDevelopment reports whether the process runs with development defaults
// (human-readable logs, debug gin mode).
func (c *Config) IsDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.AppEnv)) {
	case "dev", "development", "local":
		return true
	}
	return false
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
