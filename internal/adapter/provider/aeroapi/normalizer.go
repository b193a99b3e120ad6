package aeroapi

import (
	"strings"
	"time"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
	"github.com/flight-search/flight-webhook-adapter/internal/infrastructure/timeutil"
)

// normalize converts provider flight records to domain Flight entities.
// Records without an ident are skipped.
func normalize(dtos []FlightDTO) []domain.Flight {
	result := make([]domain.Flight, 0, len(dtos))

	for _, f := range dtos {
		if strings.TrimSpace(f.Ident) == "" {
			continue
		}
		result = append(result, normalizeFlight(f))
	}

	return result
}

// normalizeFlight converts a single record. Unparsable timestamps are treated as absent.
func normalizeFlight(f FlightDTO) domain.Flight {
	return domain.Flight{
		Ident:           f.Ident,
		IdentICAO:       str(f.IdentICAO),
		IdentIATA:       str(f.IdentIATA),
		OperatorIATA:    str(f.OperatorIATA),
		FlightNumber:    str(f.FlightNumber),
		Origin:          normalizeAirport(f.Origin),
		Destination:     normalizeAirport(f.Destination),
		GateOrigin:      str(f.GateOrigin),
		GateDestination: str(f.GateDestination),
		Schedule: domain.Schedule{
			ScheduledOut:       parseTime(f.ScheduledOut),
			EstimatedOut:       parseTime(f.EstimatedOut),
			ScheduledOff:       parseTime(f.ScheduledOff),
			ScheduledDeparture: parseTime(f.ScheduledDeparture),
			ScheduledIn:        parseTime(f.ScheduledIn),
			EstimatedIn:        parseTime(f.EstimatedIn),
		},
	}
}

func normalizeAirport(a *AirportDTO) domain.Airport {
	if a == nil {
		return domain.Airport{}
	}
	return domain.Airport{
		Name:     str(a.Name),
		Code:     str(a.Code),
		CodeIATA: str(a.CodeIATA),
		CodeICAO: str(a.CodeICAO),
		Timezone: str(a.Timezone),
	}
}

// parseTime returns nil for a missing or unparsable timestamp.
func parseTime(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, err := timeutil.ParseTimestamp(*value)
	if err != nil {
		return nil
	}
	return &t
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
