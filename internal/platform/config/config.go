// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultStoreURI is used when neither STORE_URI nor MONGO_URI is set.
const DefaultStoreURI = "mongodb://localhost:27017/exercisetracker"

// Config contains server configuration parameters.
type Config struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	StoreURI        string        `env:"STORE_URI"`
	MongoURI        string        `env:"MONGO_URI"`
	RunMigrations   bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Log       Log       `envPrefix:"LOG_"`
	Cache     Cache
	HTTP      HTTP
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

// Log contains logger parameters.
type Log struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// Cache contains Redis cache parameters. An empty RedisURL disables caching.
type Cache struct {
	RedisURL string        `env:"REDIS_URL"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// HTTP contains static content locations.
type HTTP struct {
	StaticDir string `env:"STATIC_DIR" envDefault:"public"`
	ViewsDir  string `env:"VIEWS_DIR" envDefault:"views"`
}

// RateLimit contains per-IP limiter parameters. RPS 0 disables limiting.
type RateLimit struct {
	RPS   float64 `env:"RPS" envDefault:"0"`
	Burst int     `env:"BURST" envDefault:"20"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return parse(env.Options{})
}

// LoadFromMap parses configuration from vars only. Used by tests.
func LoadFromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.StoreURI == "" {
		cfg.StoreURI = cfg.MongoURI
	}
	if cfg.StoreURI == "" {
		cfg.StoreURI = DefaultStoreURI
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", c.RateLimit.RPS)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimit.Burst)
	}
	return nil
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}
