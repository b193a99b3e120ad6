package usecase

import (
	"strings"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/timeutil"
)

// BuildFlightDetails converts a resolved flight into the fixed chat response fields.
// requestedIdent is the identifier the user typed; it backs the flight numbers
// when the provider record lacks them.
func BuildFlightDetails(f domain.Flight, requestedIdent string) domain.FlightDetails {
	iata := strings.ToUpper(strings.TrimSpace(requestedIdent))
	if f.OperatorIATA != "" && f.FlightNumber != "" {
		iata = f.OperatorIATA + f.FlightNumber
	}

	icao := f.Ident
	if icao == "" {
		icao = iata
	}

	return domain.FlightDetails{
		FlightNoIATA:      iata,
		FlightNoICAO:      icao,
		DepartureDateTime: timeutil.FormatDisplay(f.PreferredDeparture(), f.Origin.Timezone),
		DepartingFrom:     f.Origin.DisplayName(),
		DepartureGate:     f.GateOrigin,
		ArrivalDateTime:   timeutil.FormatDisplay(f.PreferredArrival(), f.Destination.Timezone),
		ArrivingAt:        f.Destination.DisplayName(),
		ArrivalGate:       f.GateDestination,
	}
}
