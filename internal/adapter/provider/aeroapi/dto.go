package aeroapi

// flightsResponse is the body of GET /flights/{ident}.
// Flights is a pointer so a body without the key can be told apart from an empty list.
type flightsResponse struct {
	Flights *[]FlightDTO `json:"flights"`
}

// FlightDTO is one record of the provider's flight list.
// Timestamps stay strings and are parsed leniently during normalization.
type FlightDTO struct {
	Ident        string  `json:"ident"`
	IdentICAO    *string `json:"ident_icao"`
	IdentIATA    *string `json:"ident_iata"`
	OperatorIATA *string `json:"operator_iata"`
	FlightNumber *string `json:"flight_number"`

	Origin      *AirportDTO `json:"origin"`
	Destination *AirportDTO `json:"destination"`

	GateOrigin      *string `json:"gate_origin"`
	GateDestination *string `json:"gate_destination"`

	ScheduledOut       *string `json:"scheduled_out"`
	EstimatedOut       *string `json:"estimated_out"`
	ScheduledOff       *string `json:"scheduled_off"`
	ScheduledDeparture *string `json:"scheduled_departure"`
	ScheduledIn        *string `json:"scheduled_in"`
	EstimatedIn        *string `json:"estimated_in"`
}

// AirportDTO is an airport reference inside a flight record.
type AirportDTO struct {
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	CodeIATA *string `json:"code_iata"`
	CodeICAO *string `json:"code_icao"`
	Timezone *string `json:"timezone"`
}

// alertPayload is the body of POST /alerts.
type alertPayload struct {
	Ident              string          `json:"ident"`
	Start              string          `json:"start"`
	End                string          `json:"end"`
	ImpendingDeparture []int           `json:"impending_departure"`
	ImpendingArrival   []int           `json:"impending_arrival"`
	Events             map[string]bool `json:"events"`
	TargetURL          string          `json:"target_url"`
}
