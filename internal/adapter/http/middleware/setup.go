package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/metrics"
)

// Config holds the tunable parts of the middleware chain.
type Config struct {
	// BodyLimit is the maximum request body size in echo syntax (e.g. "64K"); empty disables it
	BodyLimit string

	// RateLimitRPS and RateLimitBurst size the per-IP limiter; RPS <= 0 disables it
	RateLimitRPS   float64
	RateLimitBurst int

	// Recovery controls panic logging
	Recovery RecoveryConfig

	// Metrics receives per-request counters; nil disables them
	Metrics *metrics.Metrics
}

// DefaultConfig returns the chain configuration used by Setup.
func DefaultConfig() Config {
	return Config{
		BodyLimit:      "64K",
		RateLimitRPS:   20,
		RateLimitBurst: 40,
		Recovery:       DefaultRecoveryConfig(),
	}
}

// Setup registers the default middleware chain on the Echo instance.
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultConfig())
}

// SetupWithConfig registers the middleware chain with custom configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, cfg Config) {
	e.Use(Chain(log, cfg)...)
}

// Chain returns the middleware in order:
//  1. RequestID, so every later log line can be correlated
//  2. ContextLogger, storing the request-scoped logger in the context
//  3. RequestLogger, logging the final status
//  4. Metrics, counting by route and status
//  5. Recover, turning panics into the webhook envelope
//  6. BodyLimit and RateLimit, rejecting requests before the handlers run
func Chain(log zerolog.Logger, cfg Config) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		RequestID(),
		ContextLogger(log),
		RequestLogger(log),
		Metrics(cfg.Metrics),
		RecoverWithConfig(log, cfg.Recovery),
	}
	if cfg.BodyLimit != "" {
		chain = append(chain, BodyLimit(cfg.BodyLimit))
	}
	if cfg.RateLimitRPS > 0 {
		chain = append(chain, RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	return chain
}
