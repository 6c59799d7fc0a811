// Package config loads the relay settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/transferwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Storage backends accepted by STATE_BACKEND.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Telegram struct {
	Token       string        `envconfig:"TOKEN" required:"true" validate:"required"`
	APIURL      string        `envconfig:"API_URL" default:"https://api.telegram.org" validate:"url"`
	PollTimeout time.Duration `envconfig:"POLL_TIMEOUT" default:"30s" validate:"gt=0"`
	Workers     int           `envconfig:"WORKERS" default:"4" validate:"min=1"`
}

type Ethereum struct {
	RPCURL       string        `envconfig:"RPC_URL" required:"true" validate:"required,url"`
	ChainID      int64         `envconfig:"CHAIN_ID" default:"1" validate:"gt=0"`
	ExplorerURL  string        `envconfig:"EXPLORER_URL" validate:"omitempty,url"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"60s" validate:"gt=0"`
	RateLimit    float64       `envconfig:"RPC_RATE_LIMIT" default:"10" validate:"gte=0"`
}

type Registry struct {
	MaxWatchesPerUser  int           `envconfig:"MAX_WATCHES_PER_USER" default:"5" validate:"min=1"`
	SetupTimeout       time.Duration `envconfig:"SETUP_TIMEOUT" default:"30s" validate:"gt=0"`
	RestoreConcurrency int           `envconfig:"RESTORE_CONCURRENCY" default:"4" validate:"min=1"`
	RestoreAttempts    uint          `envconfig:"RESTORE_ATTEMPTS" default:"3" validate:"min=1"`
}

type State struct {
	Backend       string        `envconfig:"BACKEND" default:"file" validate:"oneof=file redis"`
	Path          string        `split_words:"true" default:"transferwatch_state.json" validate:"required_if=Backend file"` // an explicit name would fall back to $PATH
	Debounce      time.Duration `envconfig:"DEBOUNCE" default:"1s" validate:"gte=0"`
	StrictRestore bool          `envconfig:"STRICT_RESTORE" default:"false"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"required_if=Backend redis"`
	RedisUsername string        `envconfig:"REDIS_USERNAME"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	RedisKey      string        `envconfig:"REDIS_KEY" default:"transferwatch:state" validate:"required"`
}

type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"transferwatch" validate:"required"`
}

// Config holds every setting of the relay.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	AdminID     int64  `envconfig:"ADMIN_ID" required:"true" validate:"ne=0"`
	MetricsAddr string `envconfig:"METRICS_ADDR"`

	Telegram  Telegram  `envconfig:"TELEGRAM"`
	Ethereum  Ethereum  `envconfig:"ETH"`
	Registry  Registry  `envconfig:"REGISTRY"`
	State     State     `envconfig:"STATE"`
	Telemetry Telemetry `envconfig:"TELEMETRY"`
}

// Load reads the configuration from the process environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
