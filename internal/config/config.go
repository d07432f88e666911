package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

type Config struct {
	HTTPPort           string        `env:"HTTP_PORT" envDefault:"8080"`
	AdminGRPCPort      string        `env:"ADMIN_GRPC_PORT" envDefault:"50060"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MaxRequestBodySize int64         `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"json"`

	// empty means the built-in catalog
	CatalogDBPath         string `env:"CATALOG_DB_PATH"`
	CatalogMigrationsPath string `env:"CATALOG_MIGRATIONS_PATH" envDefault:"./internal/catalog/migrations"`

	CartStore     string `env:"CART_STORE" envDefault:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDBName   string `env:"MONGO_DB_NAME" envDefault:"storefront"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	OrdersTopic  string   `env:"ORDERS_TOPIC" envDefault:"orders-placed"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	switch c.CartStore {
	case StoreMemory, StoreRedis, StoreMongo:
	default:
		return fmt.Errorf("unknown CART_STORE %q", c.CartStore)
	}
	if c.MaxRequestBodySize <= 0 {
		return fmt.Errorf("MAX_REQUEST_BODY_SIZE must be positive")
	}
	return nil
}
