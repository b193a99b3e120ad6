// Package aeroapi implements domain.FlightDataProvider against a FlightAware
// AeroAPI style REST service.
package aeroapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
	"github.com/rs/zerolog"
)

// ProviderName identifies this provider in logs.
const ProviderName = "aeroapi"

// DefaultBaseURL is the public AeroAPI endpoint.
const DefaultBaseURL = "https://aeroapi.flightaware.com/aeroapi"

// DefaultTimeout bounds a single HTTP exchange.
const DefaultTimeout = 8 * time.Second

// apiKeyHeader carries the credential on every request.
const apiKeyHeader = "x-apikey"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

// Config contains the client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is an AeroAPI client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new AeroAPI client. Zero fields take their defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FlightsByIdent implements domain.FlightDataProvider.FlightsByIdent.
func (c *Client) FlightsByIdent(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	reqURL, err := BuildFlightsURL(c.baseURL, q)
	if err != nil {
		return nil, err
	}

	status, body, _, err := c.do(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, domain.NewProviderError(status, body, nil)
	}

	var resp flightsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if resp.Flights == nil {
		return nil, fmt.Errorf("%w: missing flights list", domain.ErrMalformedResponse)
	}

	flights := normalize(*resp.Flights)
	zerolog.Ctx(ctx).Debug().
		Str("provider", ProviderName).
		Str("queried_ident", q.Ident).
		Int("received", len(*resp.Flights)).
		Int("normalized", len(flights)).
		Msg("Flights fetched")
	return flights, nil
}

// CreateAlert implements domain.FlightDataProvider.CreateAlert.
func (c *Client) CreateAlert(ctx context.Context, req domain.AlertRequest) (*domain.AlertResult, error) {
	payload, err := json.Marshal(alertPayload{
		Ident:              req.Ident,
		Start:              req.Start,
		End:                req.End,
		ImpendingDeparture: nonNil(req.ImpendingDeparture),
		ImpendingArrival:   nonNil(req.ImpendingArrival),
		Events:             req.Events,
		TargetURL:          req.TargetURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode alert: %w", err)
	}

	status, body, header, err := c.do(ctx, http.MethodPost, buildAlertsURL(c.baseURL), payload)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, domain.NewProviderError(status, body, nil)
	}

	return &domain.AlertResult{AlertID: alertIDFromLocation(header.Get("Location"))}, nil
}

// do performs one request and returns the status, the (capped) body and the headers.
func (c *Client) do(ctx context.Context, method, url string, payload []byte) (int, []byte, http.Header, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, body, resp.Header, nil
}

// nonNil keeps empty offset lists encoded as [] instead of null.
func nonNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

// Ensure Client implements domain.FlightDataProvider at compile time.
var _ domain.FlightDataProvider = (*Client)(nil)
