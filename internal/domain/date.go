package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the calendar-date format accepted from the chat platform.
const DateLayout = "2006-01-02"

// Search window bounds relative to midnight UTC of the requested date.
// A flight's local departure date can differ from its UTC date by up to a day.
const (
	WindowLeadTime  = 12 * time.Hour
	WindowTrailTime = 36 * time.Hour
)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// SearchWindow is an absolute time range used for epoch-window provider queries.
type SearchWindow struct {
	Start time.Time
	End   time.Time
}

// ParseDepartureDate validates a YYYY-MM-DD string and returns midnight UTC of that date.
// Lexically valid strings naming a non-existent day (e.g. 2025-02-30) are rejected.
func ParseDepartureDate(value string) (time.Time, error) {
	m := dateRegex.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q is not in YYYY-MM-DD format", ErrInvalidDate, value)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	// time.Date normalizes overflow (Feb 30 -> Mar 2), so compare the parts back.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDate, value)
	}

	return t, nil
}

// NewSearchWindow returns the tolerant window around a requested midnight.
func NewSearchWindow(midnight time.Time) SearchWindow {
	return SearchWindow{
		Start: midnight.Add(-WindowLeadTime),
		End:   midnight.Add(WindowTrailTime),
	}
}

// StartUnix returns the window start in seconds since epoch.
func (w SearchWindow) StartUnix() int64 {
	return w.Start.Unix()
}

// EndUnix returns the window end in seconds since epoch.
func (w SearchWindow) EndUnix() int64 {
	return w.End.Unix()
}
