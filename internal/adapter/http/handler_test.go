package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
	"github.com/flight-search/flight-webhook-adapter/internal/usecase"
)

// mockUseCase is a mock implementation of FlightStatusUseCase for testing.
type mockUseCase struct {
	lookupFunc    func(ctx context.Context, req usecase.LookupRequest) (*domain.FlightDetails, error)
	subscribeFunc func(ctx context.Context, req usecase.SubscribeRequest) (*domain.Subscription, error)
	acceptFunc    func(ctx context.Context, req usecase.CallbackRequest) error

	lookupCalls    int
	subscribeCalls int
}

func (m *mockUseCase) LookupFlight(ctx context.Context, req usecase.LookupRequest) (*domain.FlightDetails, error) {
	m.lookupCalls++
	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, req)
	}
	return &domain.FlightDetails{FlightNoIATA: req.FlightIdent}, nil
}

func (m *mockUseCase) SubscribeAlerts(ctx context.Context, req usecase.SubscribeRequest) (*domain.Subscription, error) {
	m.subscribeCalls++
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, req)
	}
	return &domain.Subscription{FlightNoICAO: req.FlightNoICAO, Date: req.DepartureDate}, nil
}

func (m *mockUseCase) AcceptAlert(ctx context.Context, req usecase.CallbackRequest) error {
	if m.acceptFunc != nil {
		return m.acceptFunc(ctx, req)
	}
	return nil
}

// setupTestHandler creates a test Echo instance with the webhook routes.
func setupTestHandler(uc usecase.FlightStatusUseCase) *echo.Echo {
	e := echo.New()
	RegisterRoutes(e, NewWebhookHandler(uc))
	return e
}

// makeRequest is a helper to make test requests. A string body is sent as is.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = []byte(b)
	default:
		reqBody, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

// =====================================================
// Chat Webhook Tests
// =====================================================

func TestChat_Success(t *testing.T) {
	var got usecase.LookupRequest
	uc := &mockUseCase{
		lookupFunc: func(_ context.Context, req usecase.LookupRequest) (*domain.FlightDetails, error) {
			got = req
			return &domain.FlightDetails{
				FlightNoIATA:      "AK6322",
				FlightNoICAO:      "AXM6322",
				DepartureDateTime: "22-10-2025 09:05 +08",
				DepartingFrom:     "Kuala Lumpur Intl",
				DepartureGate:     "P2",
				ArrivalDateTime:   "22-10-2025 10:10 WIB",
				ArrivingAt:        "Soekarno-Hatta Intl",
				ArrivalGate:       "5",
			}, nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/webhook/chat", ChatRequest{FlightIdent: "ak 6322", DepartureDate: "2025-10-22"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.LookupRequest{FlightIdent: "ak 6322", DepartureDate: "2025-10-22"}, got)

	result := decode(t, rec)
	assert.Equal(t, true, result["ok"])
	assert.Equal(t, "Flight found", result["message"])
	assert.Equal(t, "AK6322", result["flightno_iata"])
	assert.Equal(t, "AXM6322", result["flightno_icao"])
	assert.Equal(t, "22-10-2025 09:05 +08", result["departure_date_time"])
	assert.Equal(t, "Kuala Lumpur Intl", result["departing_from"])
	assert.Equal(t, "P2", result["departure_gate"])
	assert.Equal(t, "22-10-2025 10:10 WIB", result["arrival_date_time"])
	assert.Equal(t, "Soekarno-Hatta Intl", result["arriving_at"])
	assert.Equal(t, "5", result["arrival_gate"])
}

func TestChat_InvalidInputNeverReachesUseCase(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{"malformed json", `{"flightIdent": "AK6322",`},
		{"impossible date", ChatRequest{FlightIdent: "AK6322", DepartureDate: "2025-02-30"}},
		{"wrong date shape", ChatRequest{FlightIdent: "AK6322", DepartureDate: "22/10/2025"}},
		{"missing date", ChatRequest{FlightIdent: "AK6322"}},
		{"missing ident", ChatRequest{DepartureDate: "2025-10-22"}},
		{"ident with symbols", ChatRequest{FlightIdent: "AK-6322", DepartureDate: "2025-10-22"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			e := setupTestHandler(uc)

			rec := makeRequest(e, http.MethodPost, "/webhook/chat", tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"ok":false,"message":"Invalid Date","code":"invalid_date"}`, rec.Body.String())
			assert.Zero(t, uc.lookupCalls)
		})
	}
}

func TestChat_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    string
		message string
	}{
		{"invalid date", fmt.Errorf("%w: bad", domain.ErrInvalidDate), "invalid_date", "Invalid Date"},
		{"no flights", domain.ErrNoFlightsFound, "no_flights_found", "No flights found"},
		{"provider failure", domain.NewProviderError(http.StatusGatewayTimeout, nil, context.DeadlineExceeded), "provider_error", "Internal error"},
		{"unexpected failure", errors.New("boom"), "internal_error", "Internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				lookupFunc: func(context.Context, usecase.LookupRequest) (*domain.FlightDetails, error) {
					return nil, tt.err
				},
			}
			e := setupTestHandler(uc)

			rec := makeRequest(e, http.MethodPost, "/webhook/chat", ChatRequest{FlightIdent: "AK6322", DepartureDate: "2025-10-22"})

			assert.Equal(t, http.StatusOK, rec.Code)
			result := decode(t, rec)
			assert.Equal(t, false, result["ok"])
			assert.Equal(t, tt.code, result["code"])
			assert.Equal(t, tt.message, result["message"])
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}

// =====================================================
// Subscribe Webhook Tests
// =====================================================

func TestSubscribe_Success(t *testing.T) {
	var got usecase.SubscribeRequest
	uc := &mockUseCase{
		subscribeFunc: func(_ context.Context, req usecase.SubscribeRequest) (*domain.Subscription, error) {
			got = req
			return &domain.Subscription{FlightNoICAO: "AXM6322", FlightNoIATA: "AK6322", Date: "2025-10-22", AlertID: "12345"}, nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/webhook/subscribe", map[string]string{
		"userRef":       " user-42 ",
		"flightno_iata": "AK6322",
		"departureDate": "2025-10-22",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", got.UserRef)
	assert.Equal(t, "AK6322", got.FlightNoIATA)
	assert.Empty(t, got.FlightNoICAO)

	result := decode(t, rec)
	assert.Equal(t, true, result["ok"])
	assert.Equal(t, "subscribed", result["status"])
	assert.Equal(t, "AXM6322", result["flightno_icao"])
	assert.Equal(t, "AK6322", result["flightno_iata"])
	assert.Equal(t, "12345", result["alert_id"])
	assert.NotEmpty(t, result["message"])
}

func TestSubscribe_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{"malformed json", `not json`},
		{"missing user", SubscribeRequest{FlightNoIATA: "AK6322", DepartureDate: "2025-10-22"}},
		{"missing flight", SubscribeRequest{UserRef: "u", DepartureDate: "2025-10-22"}},
		{"bad date", SubscribeRequest{UserRef: "u", FlightNoICAO: "AXM6322", DepartureDate: "2025-13-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			e := setupTestHandler(uc)

			rec := makeRequest(e, http.MethodPost, "/webhook/subscribe", tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			result := decode(t, rec)
			assert.Equal(t, false, result["ok"])
			assert.Equal(t, "invalid_date", result["code"])
			assert.Equal(t, "Invalid Date", result["message"])
			assert.Zero(t, uc.subscribeCalls)
		})
	}
}

func TestSubscribe_ProviderRejection(t *testing.T) {
	uc := &mockUseCase{
		subscribeFunc: func(context.Context, usecase.SubscribeRequest) (*domain.Subscription, error) {
			return nil, domain.NewProviderError(http.StatusBadRequest, []byte(`{"detail":"bad ident"}`), nil)
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/webhook/subscribe", SubscribeRequest{UserRef: "u", FlightNoICAO: "AXM6322", DepartureDate: "2025-10-22"})

	assert.Equal(t, http.StatusOK, rec.Code)
	result := decode(t, rec)
	assert.Equal(t, false, result["ok"])
	assert.Equal(t, "provider_error", result["code"])
	assert.Equal(t, "Failed to create alert", result["message"])
	assert.Equal(t, float64(http.StatusBadRequest), result["provider_status"])
	assert.Equal(t, `{"detail":"bad ident"}`, result["provider_body"])
}

func TestSubscribe_OtherFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"no flights", domain.ErrNoFlightsFound, "no_flights_found"},
		{"callback not configured", fmt.Errorf("%w: alert callback is not configured", domain.ErrInternal), "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				subscribeFunc: func(context.Context, usecase.SubscribeRequest) (*domain.Subscription, error) {
					return nil, tt.err
				},
			}
			e := setupTestHandler(uc)

			rec := makeRequest(e, http.MethodPost, "/webhook/subscribe", SubscribeRequest{UserRef: "u", FlightNoIATA: "AK6322", DepartureDate: "2025-10-22"})

			result := decode(t, rec)
			assert.Equal(t, false, result["ok"])
			assert.Equal(t, tt.code, result["code"])
			assert.NotContains(t, result, "provider_status")
			assert.NotContains(t, rec.Body.String(), "not configured")
		})
	}
}

// =====================================================
// Alert Callback Tests
// =====================================================

const samplePayload = `{
	"long_description": "AirAsia 6322 departed Kuala Lumpur at 09:12 MYT",
	"short_description": "AXM6322 departed",
	"summary": "AXM6322 departed WMKK",
	"event_code": "departure",
	"alert_id": 12345,
	"flight": {"ident": "AXM6322", "ident_iata": "AK6322"}
}`

func TestAlertCallback_Accepted(t *testing.T) {
	var got usecase.CallbackRequest
	uc := &mockUseCase{
		acceptFunc: func(_ context.Context, req usecase.CallbackRequest) error {
			got = req
			return nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/webhook/alerts/callback?token=s3cret&userRef=user-42", samplePayload)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"message":"Alert received"}`, rec.Body.String())
	assert.Equal(t, "s3cret", got.Token)
	assert.Equal(t, "user-42", got.UserRef)
	assert.Equal(t, domain.AlertDelivery{
		AlertID:          "12345",
		EventCode:        "departure",
		Summary:          "AXM6322 departed WMKK",
		ShortDescription: "AXM6322 departed",
		LongDescription:  "AirAsia 6322 departed Kuala Lumpur at 09:12 MYT",
		Ident:            "AXM6322",
	}, got.Delivery)
}

func TestAlertCallback_Unauthorized(t *testing.T) {
	uc := &mockUseCase{
		acceptFunc: func(context.Context, usecase.CallbackRequest) error {
			return domain.ErrUnauthorized
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/webhook/alerts/callback?token=wrong", samplePayload)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decode(t, rec)["code"])
}

func TestAlertCallback_MalformedPayload(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodPost, "/webhook/alerts/callback?token=s3cret", `{"alert_id": "not-a-number"`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_payload", decode(t, rec)["code"])
}

// =====================================================
// Health and Route Tests
// =====================================================

func TestHealth_Success(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterRoutes(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	assert.True(t, registered["GET /health"])
	assert.True(t, registered["POST /webhook/chat"])
	assert.True(t, registered["POST /webhook/subscribe"])
	assert.True(t, registered["POST "+usecase.CallbackPath])
}

func TestRegisterOpsRoutes(t *testing.T) {
	e := echo.New()
	RegisterOpsRoutes(e, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	}))

	rec := makeRequest(e, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "# metrics"))

	e = echo.New()
	RegisterOpsRoutes(e, nil)
	for _, r := range e.Routes() {
		assert.NotEqual(t, "/metrics", r.Path)
	}
}

// =====================================================
// Converter Tests
// =====================================================

func TestToCallbackRequest_IdentFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		flight AlertCallbackFlight
		want   string
	}{
		{"ident", AlertCallbackFlight{Ident: "AXM6322", IdentICAO: "X", IdentIATA: "Y"}, "AXM6322"},
		{"icao", AlertCallbackFlight{IdentICAO: "AXM6322", IdentIATA: "AK6322"}, "AXM6322"},
		{"iata", AlertCallbackFlight{IdentIATA: "AK6322"}, "AK6322"},
		{"none", AlertCallbackFlight{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ToCallbackRequest(&AlertCallbackPayload{Flight: tt.flight}, "tok", "ref")
			assert.Equal(t, tt.want, req.Delivery.Ident)
			assert.Equal(t, "tok", req.Token)
			assert.Equal(t, "ref", req.UserRef)
		})
	}
}

func TestToSubscribeRequest(t *testing.T) {
	req := ToSubscribeRequest(&SubscribeRequest{
		UserRef:       "  user-42\t",
		FlightNoIATA:  "AK6322",
		FlightNoICAO:  "AXM6322",
		DepartureDate: "2025-10-22",
	})

	assert.Equal(t, usecase.SubscribeRequest{
		UserRef:       "user-42",
		FlightNoIATA:  "AK6322",
		FlightNoICAO:  "AXM6322",
		DepartureDate: "2025-10-22",
	}, req)
}
