package response

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// FlightFound writes a successful flight lookup.
func FlightFound(c echo.Context, details *domain.FlightDetails) error {
	return OK(c, &ChatResponse{
		Envelope:      Envelope{OK: true, Message: MsgFlightFound},
		FlightDetails: details,
	})
}

// Subscribed writes a successful subscription.
func Subscribed(c echo.Context, sub *domain.Subscription) error {
	return OK(c, &SubscribeResponse{
		Envelope: Envelope{
			OK:      true,
			Message: fmt.Sprintf("Alerts enabled for %s on %s", sub.FlightNoICAO, sub.Date),
		},
		Status:       StatusSubscribed,
		FlightNoICAO: sub.FlightNoICAO,
		FlightNoIATA: sub.FlightNoIATA,
		AlertID:      sub.AlertID,
	})
}

// Ack acknowledges a delivered alert.
func Ack(c echo.Context) error {
	return OK(c, &Envelope{OK: true, Message: MsgAlertReceived})
}
