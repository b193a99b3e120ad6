package domain

import "strings"

// QueryMode selects which form of the "flights by identifier" query is issued.
type QueryMode int

const (
	// QueryModeCalendarDate passes the raw YYYY-MM-DD date as a single start parameter.
	QueryModeCalendarDate QueryMode = iota

	// QueryModeEpochWindow passes explicit start/end seconds-since-epoch bounds.
	QueryModeEpochWindow
)

// String returns the mode name used in logs and metrics.
func (m QueryMode) String() string {
	switch m {
	case QueryModeCalendarDate:
		return "calendar_date"
	case QueryModeEpochWindow:
		return "epoch_window"
	default:
		return "unknown"
	}
}

// FlightQuery is a single "flights by identifier" request to the provider.
type FlightQuery struct {
	// Ident is the already-normalized flight identifier
	Ident string

	// Mode selects between Date and Window
	Mode QueryMode

	// Date is the validated YYYY-MM-DD string (calendar-date mode)
	Date string

	// Window is the absolute search range (epoch-window mode)
	Window SearchWindow
}

// NewCalendarDateQuery builds a calendar-date mode query.
func NewCalendarDateQuery(ident, date string) FlightQuery {
	return FlightQuery{
		Ident: ident,
		Mode:  QueryModeCalendarDate,
		Date:  date,
	}
}

// NewEpochWindowQuery builds an epoch-window mode query.
func NewEpochWindowQuery(ident string, window SearchWindow) FlightQuery {
	return FlightQuery{
		Ident:  ident,
		Mode:   QueryModeEpochWindow,
		Window: window,
	}
}

// NormalizeIdent uppercases an identifier and strips every whitespace character.
func NormalizeIdent(ident string) string {
	return strings.ToUpper(strings.Join(strings.Fields(ident), ""))
}
