// Package main is the entry point for the flight webhook adapter.
//
//	@title						Flight Webhook Adapter API
//	@version					1.0.0
//	@description				Chat-platform webhooks that resolve a flight identifier and date into a single flight and register departure alerts with the flight-data provider.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-webhook-adapter/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-webhook-adapter/docs"

	// Application layers
	webhookhttp "github.com/flight-search/flight-webhook-adapter/internal/adapter/http"
	"github.com/flight-search/flight-webhook-adapter/internal/adapter/http/middleware"
	"github.com/flight-search/flight-webhook-adapter/internal/adapter/provider/aeroapi"
	"github.com/flight-search/flight-webhook-adapter/internal/config"
	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/airlinecodes"
	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/logger"
	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/metrics"
	"github.com/flight-search/flight-webhook-adapter/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	logger.Init(cfg.Logging)

	logger.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	m := metrics.New(metrics.DefaultNamespace)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	setupMiddleware(e, cfg, m)

	// Setup routes
	if err := setupRoutes(e, cfg, m); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize routes")
	}

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupMiddleware configures the Echo middleware stack.
func setupMiddleware(e *echo.Echo, cfg *config.Config, m *metrics.Metrics) {
	mwCfg := middleware.DefaultConfig()
	mwCfg.BodyLimit = cfg.Server.BodyLimit
	mwCfg.RateLimitRPS = cfg.RateLimit.RPS
	mwCfg.RateLimitBurst = cfg.RateLimit.Burst
	mwCfg.Recovery.DisablePrintStack = cfg.IsProduction()
	mwCfg.Metrics = m

	middleware.SetupWithConfig(e, logger.Global.Logger, mwCfg)
}

// setupRoutes wires the provider, use case and handler, then registers the routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, m *metrics.Metrics) error {
	airlines, err := airlinecodes.Load(cfg.Provider.AirlineCodesFile)
	if err != nil {
		return err
	}
	logger.Info().Int("airlines", airlines.Len()).Msg("Airline code table loaded")

	provider := aeroapi.NewClient(aeroapi.Config{
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.APIKey,
		Timeout: cfg.Provider.Timeout,
	})

	if !cfg.SubscriptionsEnabled() {
		logger.Warn().Msg("ALERT_CALLBACK_BASE_URL or ALERT_CALLBACK_TOKEN is not set, subscriptions will fail")
	}

	flightUseCase := usecase.NewFlightStatusUseCase(provider, airlines, &usecase.Config{
		ProviderTimeout: cfg.Provider.Timeout,
		CallbackBaseURL: cfg.Alerts.CallbackBaseURL,
		CallbackToken:   cfg.Alerts.CallbackToken,
	}, m)

	handler := webhookhttp.NewWebhookHandler(flightUseCase)
	webhookhttp.RegisterRoutes(e, handler)
	webhookhttp.RegisterOpsRoutes(e, m.Handler())
	return nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
