// Package usecase contains the flight resolution and alert subscription logic.
// It orchestrates sequential provider calls and shapes the chat responses.
package usecase

import "time"

// DefaultProviderTimeout bounds every single outbound provider call.
const DefaultProviderTimeout = 8 * time.Second

// CallbackPath is where the provider delivers alerts back to this service.
const CallbackPath = "/webhook/alerts/callback"

// Config contains configuration options for the use cases.
type Config struct {
	// ProviderTimeout bounds each provider call
	ProviderTimeout time.Duration

	// CallbackBaseURL is the public base URL of this service, used to build alert target URLs
	CallbackBaseURL string

	// CallbackToken is the shared secret embedded in alert target URLs
	CallbackToken string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ProviderTimeout: DefaultProviderTimeout,
	}
}

// mergeConfig overlays the non-zero fields of config on the defaults.
func mergeConfig(config *Config) Config {
	cfg := DefaultConfig()
	if config == nil {
		return cfg
	}
	if config.ProviderTimeout > 0 {
		cfg.ProviderTimeout = config.ProviderTimeout
	}
	cfg.CallbackBaseURL = config.CallbackBaseURL
	cfg.CallbackToken = config.CallbackToken
	return cfg
}
