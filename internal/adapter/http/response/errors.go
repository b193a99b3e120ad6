package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
)

// Fail writes the bare failure envelope for code with HTTP 200.
func Fail(c echo.Context, code string) error {
	return OK(c, &Envelope{
		OK:      false,
		Message: MessageFor(code),
		Code:    code,
	})
}

// ChatFailure writes a failed flight lookup.
func ChatFailure(c echo.Context, code string) error {
	return OK(c, &ChatResponse{
		Envelope: Envelope{OK: false, Message: MessageFor(code), Code: code},
	})
}

// SubscribeFailure writes a failed subscription. Provider rejections carry
// the upstream status and body excerpt.
func SubscribeFailure(c echo.Context, code string, perr *domain.ProviderError) error {
	resp := &SubscribeResponse{
		Envelope: Envelope{OK: false, Message: MessageFor(code), Code: code},
	}
	if perr != nil {
		resp.Message = MsgAlertFailed
		resp.ProviderStatus = perr.StatusCode
		resp.ProviderBody = perr.BodyExcerpt
	}
	return OK(c, resp)
}

// Unauthorized writes a 401 for a callback with a bad shared secret.
func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, &Envelope{
		OK:      false,
		Message: MsgUnauthorized,
		Code:    CodeUnauthorized,
	})
}

// InvalidPayload writes a 400 for an alert callback whose body cannot be parsed.
func InvalidPayload(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &Envelope{
		OK:      false,
		Message: MsgInvalidPayload,
		Code:    CodeInvalidPayload,
	})
}

// TooManyRequests writes a 429 for a throttled alert callback, so the
// provider redelivers it later.
func TooManyRequests(c echo.Context) error {
	return c.JSON(http.StatusTooManyRequests, &Envelope{
		OK:      false,
		Message: MsgTooManyRequests,
		Code:    CodeRateLimited,
	})
}
