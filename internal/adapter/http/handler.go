package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-webhook-adapter/internal/adapter/http/response"
	"github.com/flight-search/flight-webhook-adapter/internal/domain"
	"github.com/flight-search/flight-webhook-adapter/internal/usecase"
)

// WebhookHandler handles the chat platform webhooks and provider alert callbacks.
type WebhookHandler struct {
	useCase usecase.FlightStatusUseCase
}

// NewWebhookHandler creates a new WebhookHandler with the given use case.
func NewWebhookHandler(uc usecase.FlightStatusUseCase) *WebhookHandler {
	return &WebhookHandler{
		useCase: uc,
	}
}

// Chat handles POST /webhook/chat
//
// @Summary Look up a flight
// @Description Resolves a flight number and departure date to the closest scheduled flight. Always answers 200; check ok.
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Flight and date"
// @Success 200 {object} response.ChatResponse
// @Router /webhook/chat [post]
func (h *WebhookHandler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Msg("Malformed chat request body")
		return response.ChatFailure(c, domain.OutcomeInvalidDate)
	}

	if err := req.Validate(); err != nil {
		logValidation(c, err)
		return response.ChatFailure(c, domain.OutcomeInvalidDate)
	}

	details, err := h.useCase.LookupFlight(ctx, ToLookupRequest(&req))
	if err != nil {
		return response.ChatFailure(c, outcome(c, err))
	}

	return response.FlightFound(c, details)
}

// Subscribe handles POST /webhook/subscribe
//
// @Summary Subscribe to departure alerts
// @Description Resolves the flight and registers a provider alert whose callback carries the user reference. Always answers 200; check ok.
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body SubscribeRequest true "User, flight and date"
// @Success 200 {object} response.SubscribeResponse
// @Router /webhook/subscribe [post]
func (h *WebhookHandler) Subscribe(c echo.Context) error {
	ctx := c.Request().Context()

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Msg("Malformed subscribe request body")
		return response.SubscribeFailure(c, domain.OutcomeInvalidDate, nil)
	}

	if err := req.Validate(); err != nil {
		logValidation(c, err)
		return response.SubscribeFailure(c, domain.OutcomeInvalidDate, nil)
	}

	sub, err := h.useCase.SubscribeAlerts(ctx, ToSubscribeRequest(&req))
	if err != nil {
		code := outcome(c, err)
		var perr *domain.ProviderError
		if code != domain.OutcomeProviderError || !errors.As(err, &perr) {
			perr = nil
		}
		return response.SubscribeFailure(c, code, perr)
	}

	return response.Subscribed(c, sub)
}

// AlertCallback handles POST /webhook/alerts/callback
//
// @Summary Receive a provider alert
// @Description Endpoint the provider posts alerts to. The token query parameter must match the configured shared secret.
// @Tags webhook
// @Accept json
// @Produce json
// @Param token query string true "Shared secret"
// @Param userRef query string false "Subscribing user"
// @Param request body AlertCallbackPayload true "Alert delivery"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Malformed payload"
// @Failure 401 {object} response.Envelope "Bad token"
// @Router /webhook/alerts/callback [post]
func (h *WebhookHandler) AlertCallback(c echo.Context) error {
	token := c.QueryParam("token")
	userRef := c.QueryParam("userRef")

	var payload AlertCallbackPayload
	if err := c.Bind(&payload); err != nil {
		zerolog.Ctx(c.Request().Context()).Warn().Err(err).Msg("Malformed alert callback body")
		return response.InvalidPayload(c)
	}

	err := h.useCase.AcceptAlert(c.Request().Context(), ToCallbackRequest(&payload, token, userRef))
	if errors.Is(err, domain.ErrUnauthorized) {
		return response.Unauthorized(c)
	}
	if err != nil {
		return err
	}

	return response.Ack(c)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *WebhookHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// outcome maps err to its outcome code and logs it. Expected outcomes are
// logged at info, provider and internal failures at error.
func outcome(c echo.Context, err error) string {
	code := domain.OutcomeCode(err)
	log := zerolog.Ctx(c.Request().Context())

	switch code {
	case domain.OutcomeInvalidDate, domain.OutcomeNoFlightsFound:
		log.Info().Err(err).Str("outcome", code).Msg("Request not fulfilled")
	default:
		log.Error().Err(err).Str("outcome", code).Msg("Request failed")
	}
	return code
}

func logValidation(c echo.Context, err error) {
	zerolog.Ctx(c.Request().Context()).Info().
		Fields(map[string]interface{}{"validation": asValidationErrors(err)}).
		Msg("Request validation failed")
}
