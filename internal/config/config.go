// Package config loads runtime settings from HBNB_* environment variables,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "HBNB_"

const (
	StorageFile = "file"
	StorageDB   = "db"
)

type Config struct {
	Env                string        `koanf:"env" validate:"required"`
	APIHost            string        `koanf:"api_host" validate:"required"`
	APIPort            int           `koanf:"api_port" validate:"required,gt=0,lte=65535"`
	TypeStorage        string        `koanf:"type_storage" validate:"required,oneof=file db"`
	FilePath           string        `koanf:"file_path" validate:"required_if=TypeStorage file"`
	DatabaseURL        string        `koanf:"database_url" validate:"required_if=TypeStorage db"`
	LogLevel           string        `koanf:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

func defaults() Config {
	return Config{
		Env:                "dev",
		APIHost:            "0.0.0.0",
		APIPort:            5000,
		TypeStorage:        StorageFile,
		FilePath:           "file.json",
		DatabaseURL:        "hbnb.db",
		LogLevel:           "info",
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
		ShutdownTimeout:    5 * time.Second,
	}
}

// Load reads HBNB_* variables over the defaults and validates the result.
// HBNB_API_PORT maps to api_port, HBNB_TYPE_STORAGE to type_storage, and so on.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.TypeStorage = strings.ToLower(strings.TrimSpace(cfg.TypeStorage))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.FilePath = strings.TrimSpace(cfg.FilePath)
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Addr is the listen address of the API server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

// IsDev reports whether the process runs in a local environment.
func (c *Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "test"
}

// IsProdLike reports whether the process runs in production.
func (c *Config) IsProdLike() bool {
	return c.Env == "prod" || c.Env == "production" || c.Env == "release"
}

// MustLoad is Load for binaries: it exits on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}
