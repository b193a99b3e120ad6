package domain

// Alert event categories understood by the provider.
const (
	AlertEventArrival   = "arrival"
	AlertEventCancelled = "cancelled"
	AlertEventDeparture = "departure"
	AlertEventDiverted  = "diverted"
	AlertEventFiled     = "filed"
	AlertEventOut       = "out"
	AlertEventOff       = "off"
	AlertEventOn        = "on"
	AlertEventIn        = "in"
	AlertEventHoldStart = "hold_start"
	AlertEventHoldEnd   = "hold_end"
)

// DepartureReminderMinutes are the pre-departure offsets every subscription requests.
var DepartureReminderMinutes = []int{1, 3, 5}

// AlertRequest is the provider alert-registration payload.
type AlertRequest struct {
	// Ident is the resolved ICAO-style identifier
	Ident string

	// Start and End bound the alert to a single YYYY-MM-DD day
	Start string
	End   string

	// ImpendingDeparture lists minute offsets before scheduled departure
	ImpendingDeparture []int

	// ImpendingArrival lists minute offsets before scheduled arrival (always empty)
	ImpendingArrival []int

	// Events enables or disables each event category
	Events map[string]bool

	// TargetURL is the callback the provider posts alerts to
	TargetURL string
}

// NewAlertRequest builds the fixed departure-reminder payload for one day.
// Only departure, cancellation and diversion events are enabled.
func NewAlertRequest(ident, date, targetURL string) AlertRequest {
	reminders := make([]int, len(DepartureReminderMinutes))
	copy(reminders, DepartureReminderMinutes)

	return AlertRequest{
		Ident:              ident,
		Start:              date,
		End:                date,
		ImpendingDeparture: reminders,
		ImpendingArrival:   []int{},
		Events:             DefaultAlertEvents(),
		TargetURL:          targetURL,
	}
}

// DefaultAlertEvents returns a fresh event map with only departure,
// cancelled and diverted enabled.
func DefaultAlertEvents() map[string]bool {
	return map[string]bool{
		AlertEventArrival:   false,
		AlertEventCancelled: true,
		AlertEventDeparture: true,
		AlertEventDiverted:  true,
		AlertEventFiled:     false,
		AlertEventOut:       false,
		AlertEventOff:       false,
		AlertEventOn:        false,
		AlertEventIn:        false,
		AlertEventHoldStart: false,
		AlertEventHoldEnd:   false,
	}
}

// AlertResult is what the provider returned for a created alert.
type AlertResult struct {
	// AlertID is parsed from the Location header; empty if the provider omitted it
	AlertID string
}

// AlertDelivery is a single alert pushed by the provider to the callback endpoint.
type AlertDelivery struct {
	AlertID          string
	EventCode        string
	Summary          string
	ShortDescription string
	LongDescription  string
	Ident            string
}
