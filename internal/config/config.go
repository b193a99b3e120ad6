// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/logger"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	Provider  ProviderConfig
	Alerts    AlertConfig
	Logging   logger.Config
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	BodyLimit    string        `env:"SERVER_BODY_LIMIT" envDefault:"64K"`
}

// RateLimitConfig sizes the inbound per-IP limiter. RPS 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// ProviderConfig holds the flight-data provider settings.
type ProviderConfig struct {
	BaseURL string        `env:"AEROAPI_BASE_URL" envDefault:"https://aeroapi.flightaware.com/aeroapi"`
	APIKey  string        `env:"AEROAPI_API_KEY"`
	Timeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"8s"`

	// AirlineCodesFile overrides the embedded IATA to ICAO table
	AirlineCodesFile string `env:"AIRLINE_CODES_FILE"`
}

// AlertConfig holds the alert callback settings. Both are only needed by
// subscriptions and the callback receiver, so they are checked at call time.
type AlertConfig struct {
	CallbackBaseURL string `env:"ALERT_CALLBACK_BASE_URL"`
	CallbackToken   string `env:"ALERT_CALLBACK_TOKEN"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// bodyLimitPattern matches echo's BodyLimit syntax, e.g. 64K or 2M.
var bodyLimitPattern = regexp.MustCompile(`^\d+[KMGTP]?$`)

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if !bodyLimitPattern.MatchString(cfg.Server.BodyLimit) {
		return fmt.Errorf("SERVER_BODY_LIMIT must look like 64K or 2M; got %q", cfg.Server.BodyLimit)
	}

	if cfg.RateLimit.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}
	if cfg.RateLimit.RPS > 0 && cfg.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}

	// calls without a key would all be rejected upstream
	if cfg.Provider.APIKey == "" {
		return fmt.Errorf("AEROAPI_API_KEY is required")
	}
	if err := validateBaseURL("AEROAPI_BASE_URL", cfg.Provider.BaseURL); err != nil {
		return err
	}
	if cfg.Provider.Timeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive")
	}
	if cfg.Provider.Timeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("PROVIDER_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Provider.Timeout, cfg.Server.WriteTimeout)
	}

	if cfg.Alerts.CallbackBaseURL != "" {
		if err := validateBaseURL("ALERT_CALLBACK_BASE_URL", cfg.Alerts.CallbackBaseURL); err != nil {
			return err
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

func validateBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL; got %q", name, raw)
	}
	return nil
}

// SubscriptionsEnabled reports whether the alert callback is fully configured.
func (c *Config) SubscriptionsEnabled() bool {
	return c.Alerts.CallbackBaseURL != "" && c.Alerts.CallbackToken != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
