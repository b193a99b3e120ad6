package domain

// Strategy names the resolution step that produced a result.
type Strategy string

// Resolution strategies in priority order.
const (
	StrategyExactDate       Strategy = "exact_date"
	StrategyEpochWindow     Strategy = "epoch_window"
	StrategyCodeTranslation Strategy = "code_translation"
)

// Resolution is a successfully resolved flight.
type Resolution struct {
	// Flight is the candidate chosen by the selector
	Flight Flight

	// Strategy is the step whose query returned the candidates
	Strategy Strategy

	// QueriedIdent is the identifier sent to the provider by that step
	QueriedIdent string

	// Candidates is how many records the step returned
	Candidates int
}

// FlightDetails holds the normalized display fields returned to the chat platform.
type FlightDetails struct {
	FlightNoIATA      string `json:"flightno_iata"`
	FlightNoICAO      string `json:"flightno_icao"`
	DepartureDateTime string `json:"departure_date_time"`
	DepartingFrom     string `json:"departing_from"`
	DepartureGate     string `json:"departure_gate"`
	ArrivalDateTime   string `json:"arrival_date_time"`
	ArrivingAt        string `json:"arriving_at"`
	ArrivalGate       string `json:"arrival_gate"`
}

// Subscription is the result of a successful alert registration.
type Subscription struct {
	FlightNoICAO string
	FlightNoIATA string
	Date         string
	AlertID      string
}
