package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/logger"
	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
)

// LookupRequest is a chat request for a flight's status.
type LookupRequest struct {
	FlightIdent   string
	DepartureDate string
}

// SubscribeRequest is a chat request to be alerted about a flight's departure.
// At least one of FlightNoICAO or FlightNoIATA must be set; ICAO is preferred.
type SubscribeRequest struct {
	UserRef       string
	FlightNoIATA  string
	FlightNoICAO  string
	DepartureDate string
}

// CallbackRequest is an alert pushed by the provider to the callback endpoint.
type CallbackRequest struct {
	Token    string
	UserRef  string
	Delivery domain.AlertDelivery
}

// FlightStatusUseCase defines the chat-facing flight operations.
type FlightStatusUseCase interface {
	// LookupFlight resolves a flight and returns its display fields.
	LookupFlight(ctx context.Context, req LookupRequest) (*domain.FlightDetails, error)

	// SubscribeAlerts resolves a flight and registers a departure-reminder alert for it.
	SubscribeAlerts(ctx context.Context, req SubscribeRequest) (*domain.Subscription, error)

	// AcceptAlert verifies and records an alert delivered by the provider.
	AcceptAlert(ctx context.Context, req CallbackRequest) error
}

// flightStatusUseCase implements FlightStatusUseCase on top of a FlightResolver.
type flightStatusUseCase struct {
	resolver *FlightResolver
	provider domain.FlightDataProvider
	cfg      Config
	metrics  *metrics.Metrics
}

// NewFlightStatusUseCase creates a new FlightStatusUseCase.
// If config is nil, default values are used and subscriptions are disabled
// until a callback base URL and token are configured. m may be nil.
func NewFlightStatusUseCase(provider domain.FlightDataProvider, airlines domain.AirlineCodeMap, config *Config, m *metrics.Metrics) FlightStatusUseCase {
	cfg := mergeConfig(config)
	return &flightStatusUseCase{
		resolver: NewFlightResolver(provider, airlines, &cfg, m),
		provider: provider,
		cfg:      cfg,
		metrics:  m,
	}
}

// LookupFlight implements FlightStatusUseCase.LookupFlight.
func (uc *flightStatusUseCase) LookupFlight(ctx context.Context, req LookupRequest) (*domain.FlightDetails, error) {
	res, err := uc.resolver.Resolve(ctx, req.FlightIdent, req.DepartureDate)
	if err != nil {
		return nil, err
	}

	details := BuildFlightDetails(res.Flight, req.FlightIdent)
	return &details, nil
}

// SubscribeAlerts implements FlightStatusUseCase.SubscribeAlerts.
func (uc *flightStatusUseCase) SubscribeAlerts(ctx context.Context, req SubscribeRequest) (*domain.Subscription, error) {
	sub, err := uc.subscribe(ctx, req)
	uc.metrics.IncSubscription(domain.OutcomeCode(err))
	return sub, err
}

func (uc *flightStatusUseCase) subscribe(ctx context.Context, req SubscribeRequest) (*domain.Subscription, error) {
	userRef := strings.TrimSpace(req.UserRef)
	if userRef == "" {
		return nil, fmt.Errorf("%w: userRef is required", domain.ErrInvalidRequest)
	}

	requested := req.FlightNoICAO
	if strings.TrimSpace(requested) == "" {
		requested = req.FlightNoIATA
	}
	if strings.TrimSpace(requested) == "" {
		return nil, fmt.Errorf("%w: flightno_icao or flightno_iata is required", domain.ErrInvalidRequest)
	}

	if uc.cfg.CallbackBaseURL == "" || uc.cfg.CallbackToken == "" {
		zerolog.Ctx(ctx).Error().Msg("Alert callback URL or token is not configured")
		return nil, fmt.Errorf("%w: alert callback is not configured", domain.ErrInternal)
	}

	res, err := uc.resolver.Resolve(ctx, requested, req.DepartureDate)
	if err != nil {
		return nil, err
	}

	details := BuildFlightDetails(res.Flight, requested)
	alertIdent := res.Flight.Ident
	if alertIdent == "" {
		alertIdent = details.FlightNoICAO
	}

	alert := domain.NewAlertRequest(alertIdent, req.DepartureDate, uc.callbackURL(userRef))

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.ProviderTimeout)
	defer cancel()

	start := time.Now()
	result, err := uc.provider.CreateAlert(callCtx, alert)
	elapsed := time.Since(start)

	log := logger.FromContext(ctx).WithFlight(alertIdent, req.DepartureDate).WithUserRef(userRef)
	if err != nil {
		uc.metrics.ObserveProviderCall("alerts", "create", callResultError, elapsed)
		perr := asProviderError(err)
		log.Error().Err(err).
			Int("provider_status", perr.StatusCode).
			Str("provider_body", perr.BodyExcerpt).
			Msg("Alert registration failed")
		return nil, perr
	}
	uc.metrics.ObserveProviderCall("alerts", "create", callResultOK, elapsed)

	sub := &domain.Subscription{
		FlightNoICAO: details.FlightNoICAO,
		FlightNoIATA: details.FlightNoIATA,
		Date:         req.DepartureDate,
	}
	if result != nil {
		sub.AlertID = result.AlertID
	}

	log.Info().Str("alert_id", sub.AlertID).Msg("Alert registered")
	return sub, nil
}

// AcceptAlert implements FlightStatusUseCase.AcceptAlert.
func (uc *flightStatusUseCase) AcceptAlert(ctx context.Context, req CallbackRequest) error {
	if uc.cfg.CallbackToken == "" ||
		subtle.ConstantTimeCompare([]byte(req.Token), []byte(uc.cfg.CallbackToken)) != 1 {
		zerolog.Ctx(ctx).Warn().Msg("Rejected alert callback with invalid token")
		return domain.ErrUnauthorized
	}

	d := req.Delivery
	uc.metrics.IncAlertDelivery(d.EventCode)
	logger.FromContext(ctx).WithUserRef(req.UserRef).Info().
		Str("alert_id", d.AlertID).
		Str("event", d.EventCode).
		Str("ident", d.Ident).
		Str("summary", d.Summary).
		Msg("Alert delivered")
	return nil
}

// callbackURL builds the alert target URL carrying the shared token and user reference.
func (uc *flightStatusUseCase) callbackURL(userRef string) string {
	q := url.Values{}
	q.Set("token", uc.cfg.CallbackToken)
	q.Set("userRef", userRef)
	return strings.TrimRight(uc.cfg.CallbackBaseURL, "/") + CallbackPath + "?" + q.Encode()
}

// asProviderError normalizes an alert-creation failure into a ProviderError.
// Timeouts become 504 and other transport failures 502.
func asProviderError(err error) *domain.ProviderError {
	var perr *domain.ProviderError
	if errors.As(err, &perr) {
		return perr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewProviderError(http.StatusGatewayTimeout, nil, err)
	}
	return domain.NewProviderError(http.StatusBadGateway, nil, err)
}

// Ensure flightStatusUseCase implements FlightStatusUseCase at compile time.
var _ FlightStatusUseCase = (*flightStatusUseCase)(nil)
