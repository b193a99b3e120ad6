package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-webhook-adapter/internal/adapter/http/response"
	"github.com/flight-search/flight-webhook-adapter/internal/domain"
)

// RecoveryConfig controls how recovered panics are logged.
type RecoveryConfig struct {
	// DisablePrintStack omits the stack trace from the log entry
	DisablePrintStack bool

	// StackSize truncates the logged stack trace; 0 keeps it whole
	StackSize int
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		DisablePrintStack: false,
		StackSize:         8 << 10,
	}
}

// Recover returns middleware that recovers from panics in the handler chain.
// The chat platform still receives the fixed envelope with HTTP 200 and
// code internal_error; panic details are only logged.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				var panicMsg string
				if e, ok := r.(error); ok {
					panicMsg = e.Error()
				} else {
					panicMsg = fmt.Sprintf("%v", r)
				}

				event := log.Error().
					Str("request_id", GetRequestID(c)).
					Str("path", c.Request().URL.Path).
					Str("panic", panicMsg)

				if !config.DisablePrintStack {
					stack := debug.Stack()
					if config.StackSize > 0 && len(stack) > config.StackSize {
						stack = stack[:config.StackSize]
					}
					event = event.Str("stack", string(stack))
				}

				event.Msg("Panic recovered")

				if !c.Response().Committed {
					err = response.Fail(c, domain.OutcomeInternalError)
				}
			}()

			return next(c)
		}
	}
}
