// Package domain contains the core entities and rules for resolving a chat
// request into a single flight record. These types are provider-agnostic.
package domain

import "time"

// Flight represents a single flight record returned by the provider.
// Several records may share an Ident when the service recurs across days.
type Flight struct {
	// Ident is the provider's primary identifier (usually ICAO style, e.g. "AXM6322")
	Ident string `json:"ident"`

	// IdentICAO is the ICAO-style identifier when the provider supplies it
	IdentICAO string `json:"identIcao,omitempty"`

	// IdentIATA is the IATA-style identifier when the provider supplies it
	IdentIATA string `json:"identIata,omitempty"`

	// OperatorIATA is the operating airline's IATA code (e.g. "AK")
	OperatorIATA string `json:"operatorIata,omitempty"`

	// FlightNumber is the numeric part of the flight designator (e.g. "6322")
	FlightNumber string `json:"flightNumber,omitempty"`

	// Origin is the departure airport
	Origin Airport `json:"origin"`

	// Destination is the arrival airport
	Destination Airport `json:"destination"`

	// GateOrigin is the departure gate, if known
	GateOrigin string `json:"gateOrigin,omitempty"`

	// GateDestination is the arrival gate, if known
	GateDestination string `json:"gateDestination,omitempty"`

	// Schedule holds every timestamp the provider reported for this record
	Schedule Schedule `json:"schedule"`
}

// Airport describes one end of a flight leg. Every field is optional.
type Airport struct {
	Name     string `json:"name,omitempty"`
	Code     string `json:"code,omitempty"`
	CodeIATA string `json:"codeIata,omitempty"`
	CodeICAO string `json:"codeIcao,omitempty"`

	// Timezone is the IANA zone name of the airport (e.g. "Asia/Kuala_Lumpur")
	Timezone string `json:"timezone,omitempty"`
}

// Schedule holds the gate (out/in) and runway (off/on) timestamps of a flight.
// A nil pointer means the provider did not report the value.
type Schedule struct {
	ScheduledOut *time.Time `json:"scheduledOut,omitempty"`
	EstimatedOut *time.Time `json:"estimatedOut,omitempty"`
	ScheduledOff *time.Time `json:"scheduledOff,omitempty"`

	// ScheduledDeparture is the same instant as ScheduledOut reported under
	// an alternate field name by some provider endpoints.
	ScheduledDeparture *time.Time `json:"scheduledDeparture,omitempty"`

	ScheduledIn *time.Time `json:"scheduledIn,omitempty"`
	EstimatedIn *time.Time `json:"estimatedIn,omitempty"`
}

// DepartureEstimate returns the first available scheduled departure time:
// gate departure, then takeoff, then the alternate departure field.
func (f Flight) DepartureEstimate() (time.Time, bool) {
	for _, t := range []*time.Time{f.Schedule.ScheduledOut, f.Schedule.ScheduledOff, f.Schedule.ScheduledDeparture} {
		if t != nil {
			return *t, true
		}
	}
	return time.Time{}, false
}

// PreferredDeparture returns the scheduled gate departure, falling back to the estimate.
func (f Flight) PreferredDeparture() *time.Time {
	if f.Schedule.ScheduledOut != nil {
		return f.Schedule.ScheduledOut
	}
	return f.Schedule.EstimatedOut
}

// PreferredArrival returns the scheduled gate arrival, falling back to the estimate.
func (f Flight) PreferredArrival() *time.Time {
	if f.Schedule.ScheduledIn != nil {
		return f.Schedule.ScheduledIn
	}
	return f.Schedule.EstimatedIn
}

// DisplayName returns the airport name, falling back to the best location code.
func (a Airport) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.DisplayCode()
}

// DisplayCode returns the IATA code, then the ICAO code, then the raw code.
func (a Airport) DisplayCode() string {
	switch {
	case a.CodeIATA != "":
		return a.CodeIATA
	case a.CodeICAO != "":
		return a.CodeICAO
	default:
		return a.Code
	}
}
