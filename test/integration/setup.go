// Package integration provides helpers and integration tests for the flight webhook adapter.
// Integration tests verify that components work together correctly, including
// the middleware chain, HTTP handlers, use cases, and fake or recorded providers.
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/flight-search/flight-webhook-adapter/internal/adapter/http"
	"github.com/flight-search/flight-webhook-adapter/internal/adapter/http/middleware"
	"github.com/flight-search/flight-webhook-adapter/internal/domain"
	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/airlinecodes"
	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/metrics"
	"github.com/flight-search/flight-webhook-adapter/internal/usecase"
)

// Shared values used by the integration tests.
const (
	TestCallbackBaseURL = "https://bot.example.com"
	TestCallbackToken   = "integration-token"
)

// TestServer wraps an Echo instance wired the same way as cmd/server.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.WebhookHandler
	Metrics *metrics.Metrics
	Logs    *bytes.Buffer
}

// ServerOptions adjusts the wiring of a TestServer.
type ServerOptions struct {
	// UseCase overrides the config used to build the use case; nil enables subscriptions
	UseCase *usecase.Config

	// Middleware overrides the middleware chain config; rate limiting is off by default
	Middleware *middleware.Config
}

// NewTestServer creates a test server around provider with default options.
func NewTestServer(t *testing.T, provider domain.FlightDataProvider) *TestServer {
	t.Helper()
	return NewTestServerWithOptions(t, provider, ServerOptions{})
}

// NewTestServerWithOptions creates a test server around provider.
// The embedded airline code table is used for identifier translation.
func NewTestServerWithOptions(t *testing.T, provider domain.FlightDataProvider, opts ServerOptions) *TestServer {
	t.Helper()

	airlines, err := airlinecodes.Default()
	if err != nil {
		t.Fatalf("Failed to load airline codes: %v", err)
	}

	ucCfg := DefaultUseCaseConfig()
	if opts.UseCase != nil {
		ucCfg = *opts.UseCase
	}

	m := metrics.New("integration")
	mwCfg := middleware.DefaultConfig()
	mwCfg.RateLimitRPS = 0
	if opts.Middleware != nil {
		mwCfg = *opts.Middleware
	}
	mwCfg.Metrics = m

	logs := &bytes.Buffer{}
	log := zerolog.New(logs).With().Timestamp().Logger()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupWithConfig(e, log, mwCfg)

	uc := usecase.NewFlightStatusUseCase(provider, airlines, &ucCfg, m)
	handler := httpAdapter.NewWebhookHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)
	httpAdapter.RegisterOpsRoutes(e, m.Handler())

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Metrics: m,
		Logs:    logs,
	}
}

// DefaultUseCaseConfig returns a use case config with subscriptions enabled.
func DefaultUseCaseConfig() usecase.Config {
	cfg := usecase.DefaultConfig()
	cfg.CallbackBaseURL = TestCallbackBaseURL
	cfg.CallbackToken = TestCallbackToken
	return cfg
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
// A string body is sent as-is; anything else is JSON-encoded.
func (ts *TestServer) Do(req Request) Response {
	var body io.Reader = http.NoBody
	switch b := req.Body.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		body = bytes.NewReader(data)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, body)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Chat posts a flight status lookup.
func (ts *TestServer) Chat(ident, date string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/webhook/chat",
		Body:   map[string]string{"flightIdent": ident, "departureDate": date},
	})
}

// Subscribe posts an alert subscription.
func (ts *TestServer) Subscribe(body SubscribeBody) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/webhook/subscribe",
		Body:   body,
	})
}

// Callback posts an alert delivery with the given token and user reference.
func (ts *TestServer) Callback(token, userRef string, payload interface{}) Response {
	q := url.Values{}
	q.Set("token", token)
	q.Set("userRef", userRef)
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   usecase.CallbackPath + "?" + q.Encode(),
		Body:   payload,
	})
}

// Health makes a health check request.
func (ts *TestServer) Health() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/health"})
}

// ScrapeMetrics fetches the Prometheus exposition.
func (ts *TestServer) ScrapeMetrics() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/metrics"})
}

// SubscribeBody is the JSON body of a subscription request.
type SubscribeBody struct {
	UserRef       string `json:"userRef"`
	FlightNoIATA  string `json:"flightno_iata,omitempty"`
	FlightNoICAO  string `json:"flightno_icao,omitempty"`
	DepartureDate string `json:"departureDate"`
}

// JSON decodes the response body into a generic map.
func (r Response) JSON(t *testing.T) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(r.Body, &out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", r.Body, err)
	}
	return out
}
