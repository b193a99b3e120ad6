package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/flight-search/flight-webhook-adapter/internal/adapter/http/response"
	"github.com/flight-search/flight-webhook-adapter/internal/usecase"
)

// rateLimitVisitorTTL is how long an idle client's bucket is kept.
const rateLimitVisitorTTL = 3 * time.Minute

// RateLimit returns a per-client-IP token bucket limiter. Denied chat
// requests get the webhook envelope with code rate_limited and HTTP 200 so
// the chat platform does not retry them. A denied alert callback gets 429
// so the provider does not count it as delivered.
func RateLimit(rps float64, burst int) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     burst,
		ExpiresIn: rateLimitVisitorTTL,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return rateLimited(c)
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return rateLimited(c)
		},
	})
}

func rateLimited(c echo.Context) error {
	if c.Path() == usecase.CallbackPath {
		return response.TooManyRequests(c)
	}
	return response.Fail(c, response.CodeRateLimited)
}
