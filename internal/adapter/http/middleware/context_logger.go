package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/logger"
)

// ContextLogger returns middleware that stores a request-scoped logger,
// tagged with the request id, in the request's context.Context.
// Downstream code retrieves it with zerolog.Ctx. Must run after RequestID.
func ContextLogger(log zerolog.Logger) echo.MiddlewareFunc {
	base := &logger.Logger{Logger: log}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := base.WithRequestID(GetRequestID(c)).IntoContext(req.Context())
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
