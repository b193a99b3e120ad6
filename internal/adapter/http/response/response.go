// Package response provides the fixed JSON envelopes returned to the chat platform.
// Webhook replies are always HTTP 200; the ok field carries the outcome.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
)

// Envelope is the part shared by every webhook reply.
type Envelope struct {
	// OK reports whether the operation succeeded
	OK bool `json:"ok"`

	// Message is a short human-readable outcome shown by the chat bot
	Message string `json:"message"`

	// Code is the machine-readable outcome, set on failures
	Code string `json:"code,omitempty"`
}

// ChatResponse is the reply to a flight lookup. The flight fields are
// present only when a flight was found.
type ChatResponse struct {
	Envelope
	*domain.FlightDetails
}

// SubscribeResponse is the reply to an alert subscription.
type SubscribeResponse struct {
	Envelope

	// Status is "subscribed" on success
	Status string `json:"status,omitempty"`

	FlightNoICAO string `json:"flightno_icao,omitempty"`
	FlightNoIATA string `json:"flightno_iata,omitempty"`
	AlertID      string `json:"alert_id,omitempty"`

	// ProviderStatus and ProviderBody describe an upstream rejection
	ProviderStatus int    `json:"provider_status,omitempty"`
	ProviderBody   string `json:"provider_body,omitempty"`
}

// Outcome codes that are not part of the resolution taxonomy.
const (
	CodeRateLimited    = "rate_limited"
	CodeUnauthorized   = "unauthorized"
	CodeInvalidPayload = "invalid_payload"
)

// StatusSubscribed marks a successful subscription.
const StatusSubscribed = "subscribed"

// Messages shown to chat users.
const (
	MsgFlightFound     = "Flight found"
	MsgInvalidDate     = "Invalid Date"
	MsgNoFlightsFound  = "No flights found"
	MsgInternalError   = "Internal error"
	MsgAlertFailed     = "Failed to create alert"
	MsgTooManyRequests = "Too many requests"
	MsgUnauthorized    = "Unauthorized"
	MsgAlertReceived   = "Alert received"
	MsgInvalidPayload  = "Malformed alert payload"
)

// MessageFor returns the chat message for an outcome code. Provider and
// internal failures share one generic message.
func MessageFor(code string) string {
	switch code {
	case domain.OutcomeFound:
		return MsgFlightFound
	case domain.OutcomeInvalidDate:
		return MsgInvalidDate
	case domain.OutcomeNoFlightsFound:
		return MsgNoFlightsFound
	case CodeRateLimited:
		return MsgTooManyRequests
	case CodeUnauthorized:
		return MsgUnauthorized
	case CodeInvalidPayload:
		return MsgInvalidPayload
	default:
		return MsgInternalError
	}
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
