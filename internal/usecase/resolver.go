package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/logger"
	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
)

// Provider call results used as metric labels.
const (
	callResultOK    = "ok"
	callResultEmpty = "empty"
	callResultError = "error"
)

// FlightResolver turns a chat-supplied identifier and date into a single flight.
//
// It tries, in order:
//  1. the calendar date as given,
//  2. a tolerant epoch window around that date,
//  3. the calendar date again with the IATA airline prefix translated to ICAO.
//
// The first step returning candidates wins; the selector then picks the one
// departing closest to midnight UTC of the requested date. Provider calls are
// strictly sequential and a failed call only moves on to the next step.
type FlightResolver struct {
	provider    domain.FlightDataProvider
	airlines    domain.AirlineCodeMap
	callTimeout time.Duration
	metrics     *metrics.Metrics
}

// NewFlightResolver creates a FlightResolver.
// If config is nil, default timeout values are used. m may be nil.
func NewFlightResolver(provider domain.FlightDataProvider, airlines domain.AirlineCodeMap, config *Config, m *metrics.Metrics) *FlightResolver {
	cfg := mergeConfig(config)
	return &FlightResolver{
		provider:    provider,
		airlines:    airlines,
		callTimeout: cfg.ProviderTimeout,
		metrics:     m,
	}
}

// Resolve returns the resolved flight, or one of domain.ErrInvalidDate,
// domain.ErrInvalidRequest, domain.ErrNoFlightsFound. Failed provider calls
// never surface; they only move resolution to the next step.
//
// The one exception is ctx itself ending mid-resolution: the remaining steps
// are abandoned and a *domain.ProviderError with status 504 is returned
// instead of domain.ErrNoFlightsFound, because the empty steps were never
// actually tried.
func (r *FlightResolver) Resolve(ctx context.Context, rawIdent, date string) (*domain.Resolution, error) {
	midnight, err := domain.ParseDepartureDate(date)
	if err != nil {
		r.metrics.IncResolution("", domain.OutcomeInvalidDate)
		return nil, err
	}

	ident := domain.NormalizeIdent(rawIdent)
	if ident == "" {
		r.metrics.IncResolution("", domain.OutcomeInvalidDate)
		return nil, fmt.Errorf("%w: flight identifier is required", domain.ErrInvalidRequest)
	}

	log := logger.FromContext(ctx).WithFlight(ident, date)

	steps := []struct {
		strategy domain.Strategy
		query    func() (domain.FlightQuery, bool)
	}{
		{domain.StrategyExactDate, func() (domain.FlightQuery, bool) {
			return domain.NewCalendarDateQuery(ident, date), true
		}},
		{domain.StrategyEpochWindow, func() (domain.FlightQuery, bool) {
			return domain.NewEpochWindowQuery(ident, domain.NewSearchWindow(midnight)), true
		}},
		{domain.StrategyCodeTranslation, func() (domain.FlightQuery, bool) {
			translated, ok := r.airlines.TranslateIdent(ident)
			if !ok {
				return domain.FlightQuery{}, false
			}
			return domain.NewCalendarDateQuery(translated, date), true
		}},
	}

	for _, step := range steps {
		query, ok := step.query()
		if !ok {
			log.Debug().Str("strategy", string(step.strategy)).Msg("Identifier is not translatable, skipping step")
			continue
		}

		flights, err := r.fetch(ctx, query)
		if err != nil {
			r.metrics.IncResolution(string(step.strategy), domain.OutcomeProviderError)
			return nil, err
		}
		if len(flights) == 0 {
			continue
		}

		selected, _ := domain.SelectClosest(flights, midnight)
		log.Info().
			Str("strategy", string(step.strategy)).
			Str("queried_ident", query.Ident).
			Int("candidates", len(flights)).
			Str("selected", selected.Ident).
			Msg("Flight resolved")
		r.metrics.IncResolution(string(step.strategy), domain.OutcomeFound)

		return &domain.Resolution{
			Flight:       selected,
			Strategy:     step.strategy,
			QueriedIdent: query.Ident,
			Candidates:   len(flights),
		}, nil
	}

	log.Info().Msg("No flights found")
	r.metrics.IncResolution("", domain.OutcomeNoFlightsFound)
	return nil, domain.ErrNoFlightsFound
}

// fetch runs one provider query under the per-call timeout.
// Call failures are logged and reported as an empty result; an error is
// returned only when the caller's context is done.
func (r *FlightResolver) fetch(ctx context.Context, query domain.FlightQuery) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(http.StatusGatewayTimeout, nil, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	start := time.Now()
	flights, err := r.provider.FlightsByIdent(callCtx, query)
	elapsed := time.Since(start)

	log := zerolog.Ctx(ctx)
	switch {
	case err != nil:
		r.metrics.ObserveProviderCall("flights", query.Mode.String(), callResultError, elapsed)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, domain.NewProviderError(http.StatusGatewayTimeout, nil, ctxErr)
		}
		log.Warn().Err(err).
			Str("queried_ident", query.Ident).
			Str("mode", query.Mode.String()).
			Dur("elapsed", elapsed).
			Msg("Provider query failed, trying next strategy")
		return nil, nil
	case len(flights) == 0:
		r.metrics.ObserveProviderCall("flights", query.Mode.String(), callResultEmpty, elapsed)
	default:
		r.metrics.ObserveProviderCall("flights", query.Mode.String(), callResultOK, elapsed)
	}

	log.Debug().
		Str("queried_ident", query.Ident).
		Str("mode", query.Mode.String()).
		Int("count", len(flights)).
		Dur("elapsed", elapsed).
		Msg("Provider query completed")
	return flights, nil
}
