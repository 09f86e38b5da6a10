package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,       default=8080"`
	Env        string `env:"ENV,        default=development"`
	LogLevel   string `env:"LOG_LEVEL,  default=info"`
	AppVersion string `env:"APP_VERSION, default=0.1.0"`

	JWTSecret       string `env:"JWT_SECRET"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=30"`

	// AllowOrigins is the comma-separated CORS allow list.
	AllowOrigins []string `env:"ALLOW_ORIGINS, default=*"`

	// StoreBackend selects the credential store: "memory" or "mongo".
	StoreBackend string `env:"STORE_BACKEND, default=memory"`

	Mongo MongoConfig
	Redis RedisConfig
	Model ModelConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sentiment_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// CacheEnabled turns on the Redis-backed prediction cache.
	CacheEnabled bool `env:"PREDICTION_CACHE, default=false"`
}

type ModelConfig struct {
	BaseURL string `env:"ML_BASE_URL, default=http://localhost:8501"`
	Name    string `env:"MODEL_NAME,  default=distilbert-base-uncased-finetuned-sst-2-english"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
