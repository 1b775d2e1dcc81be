package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv          string  `envconfig:"APP_ENV" default:"local"`
	Port            int     `envconfig:"PORT" default:"3000"`
	SentryDSN       string  `envconfig:"SENTRY_DSN"`
	AllowOrigins    string  `envconfig:"ALLOW_ORIGINS" default:"*"`
	RateLimit       float64 `envconfig:"RATE_LIMIT" default:"0"`
	ShutdownTimeout int     `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`

	Static struct {
		PublicDir string `envconfig:"PUBLIC_DIR" default:"public"`
		IndexFile string `envconfig:"INDEX_FILE" default:"index.html"`
	}

	// SeedFile replaces the built-in seed collection when set.
	SeedFile string `envconfig:"SEED_FILE"`
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
