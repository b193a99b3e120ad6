package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/flight-search/flight-webhook-adapter/internal/adapter/http/response"
	"github.com/flight-search/flight-webhook-adapter/internal/domain"
	"github.com/flight-search/flight-webhook-adapter/internal/usecase"
)

// BodyLimit rejects request bodies larger than limit (echo syntax, e.g. "64K").
// Chat-facing webhooks get the invalid_date envelope with HTTP 200; the
// provider-facing alert callback gets a 400 invalid_payload reply.
// Other routes keep echo's 413.
func BodyLimit(limit string) echo.MiddlewareFunc {
	limiter := echomw.BodyLimit(limit)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		limited := limiter(next)
		return func(c echo.Context) error {
			err := limited(c)
			if err == nil || !errors.Is(err, echo.ErrStatusRequestEntityTooLarge) || c.Response().Committed {
				return err
			}

			switch path := c.Path(); {
			case path == usecase.CallbackPath:
				return response.InvalidPayload(c)
			case isWebhookRoute(path):
				return response.Fail(c, domain.OutcomeInvalidDate)
			default:
				return err
			}
		}
	}
}

// isWebhookRoute reports whether path is a chat-facing webhook route.
func isWebhookRoute(path string) bool {
	return strings.HasPrefix(path, "/webhook/")
}
