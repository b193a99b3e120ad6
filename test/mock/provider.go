// Package mock provides test doubles for the flight webhook adapter.
// These mocks are designed for integration testing where we need
// configurable behavior (per-query responses, delays, errors).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
)

// Provider is a configurable fake implementation of domain.FlightDataProvider.
// Flight responses are keyed by identifier and query mode; unknown queries
// return an empty list.
type Provider struct {
	mu sync.Mutex

	flights map[string][]domain.Flight
	errs    map[string]error
	delay   time.Duration

	alertID    string
	alertErr   error
	alertDelay time.Duration

	queries []domain.FlightQuery
	alerts  []domain.AlertRequest
}

// NewProvider creates an empty fake provider.
func NewProvider() *Provider {
	return &Provider{
		flights: make(map[string][]domain.Flight),
		errs:    make(map[string]error),
	}
}

func queryKey(ident string, mode domain.QueryMode) string {
	return fmt.Sprintf("%s|%s", ident, mode)
}

// WithFlights answers queries for ident in mode with flights.
func (p *Provider) WithFlights(ident string, mode domain.QueryMode, flights ...domain.Flight) *Provider {
	p.flights[queryKey(ident, mode)] = flights
	return p
}

// WithQueryError makes queries for ident in mode fail with err.
func (p *Provider) WithQueryError(ident string, mode domain.QueryMode, err error) *Provider {
	p.errs[queryKey(ident, mode)] = err
	return p
}

// WithDelay makes every call wait d, or until the context ends.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// WithAlertDelay makes alert registration wait d, or until the context ends.
func (p *Provider) WithAlertDelay(d time.Duration) *Provider {
	p.alertDelay = d
	return p
}

// WithAlertID sets the id returned by successful alert registrations.
func (p *Provider) WithAlertID(id string) *Provider {
	p.alertID = id
	return p
}

// WithAlertError makes alert registration fail with err.
func (p *Provider) WithAlertError(err error) *Provider {
	p.alertErr = err
	return p
}

// FlightsByIdent implements domain.FlightDataProvider.FlightsByIdent.
func (p *Provider) FlightsByIdent(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	p.mu.Lock()
	p.queries = append(p.queries, q)
	p.mu.Unlock()

	if err := p.wait(ctx, p.delay); err != nil {
		return nil, err
	}

	key := queryKey(q.Ident, q.Mode)
	if err := p.errs[key]; err != nil {
		return nil, err
	}
	return p.flights[key], nil
}

// CreateAlert implements domain.FlightDataProvider.CreateAlert.
func (p *Provider) CreateAlert(ctx context.Context, req domain.AlertRequest) (*domain.AlertResult, error) {
	p.mu.Lock()
	p.alerts = append(p.alerts, req)
	p.mu.Unlock()

	if err := p.wait(ctx, p.delay+p.alertDelay); err != nil {
		return nil, err
	}
	if p.alertErr != nil {
		return nil, p.alertErr
	}
	return &domain.AlertResult{AlertID: p.alertID}, nil
}

func (p *Provider) wait(ctx context.Context, d time.Duration) error {
	if d > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
	return ctx.Err()
}

// Queries returns the flight queries received so far, in order.
func (p *Provider) Queries() []domain.FlightQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.FlightQuery(nil), p.queries...)
}

// Alerts returns the alert registrations received so far, in order.
func (p *Provider) Alerts() []domain.AlertRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.AlertRequest(nil), p.alerts...)
}

// CallCount returns the total number of provider calls.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queries) + len(p.alerts)
}

// Reset clears the recorded calls.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queries = nil
	p.alerts = nil
}

// Ensure Provider implements domain.FlightDataProvider at compile time.
var _ domain.FlightDataProvider = (*Provider)(nil)

// SampleFlight returns a realistic record for ident departing at dep.
// The operator code and number are split from the ICAO ident's IATA twin.
func SampleFlight(ident, operatorIATA, number string, dep time.Time) domain.Flight {
	out := dep
	in := dep.Add(2*time.Hour + 5*time.Minute)
	return domain.Flight{
		Ident:        ident,
		IdentICAO:    ident,
		IdentIATA:    operatorIATA + number,
		OperatorIATA: operatorIATA,
		FlightNumber: number,
		Origin: domain.Airport{
			Name:     "Kuala Lumpur Intl",
			Code:     "WMKK",
			CodeIATA: "KUL",
			CodeICAO: "WMKK",
			Timezone: "Asia/Kuala_Lumpur",
		},
		Destination: domain.Airport{
			Name:     "Soekarno-Hatta Intl",
			Code:     "WIII",
			CodeIATA: "CGK",
			CodeICAO: "WIII",
			Timezone: "Asia/Jakarta",
		},
		GateOrigin:      "P2",
		GateDestination: "5",
		Schedule: domain.Schedule{
			ScheduledOut: &out,
			ScheduledIn:  &in,
		},
	}
}
