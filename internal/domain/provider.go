package domain

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

import "context"

// FlightDataProvider is the outbound flight-data service.
// Implementations must honor ctx cancellation on every call.
type FlightDataProvider interface {
	// FlightsByIdent returns every flight record matching the query.
	// Transport failures, non-success statuses and unparsable bodies are errors;
	// an empty slice with a nil error means the provider knew of no flights.
	FlightsByIdent(ctx context.Context, query FlightQuery) ([]Flight, error)

	// CreateAlert registers a push alert. Non-success responses are returned
	// as *ProviderError.
	CreateAlert(ctx context.Context, req AlertRequest) (*AlertResult, error)
}
