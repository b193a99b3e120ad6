package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/metrics"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that counts requests by route template and status.
// A nil m disables counting.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			m.IncWebhookRequest(route, c.Response().Status)
			return nil
		}
	}
}
