package aeroapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
)

// BuildFlightsURL encodes a FlightQuery as a GET /flights/{ident} URL.
// The ident is path-escaped and otherwise sent as given.
func BuildFlightsURL(baseURL string, q domain.FlightQuery) (string, error) {
	if q.Ident == "" {
		return "", fmt.Errorf("flight query has no ident")
	}

	params := url.Values{}
	switch q.Mode {
	case domain.QueryModeCalendarDate:
		params.Set("start", q.Date)
	case domain.QueryModeEpochWindow:
		params.Set("start", strconv.FormatInt(q.Window.StartUnix(), 10))
		params.Set("end", strconv.FormatInt(q.Window.EndUnix(), 10))
	default:
		return "", fmt.Errorf("unsupported query mode %d", q.Mode)
	}

	return strings.TrimRight(baseURL, "/") + "/flights/" + url.PathEscape(q.Ident) + "?" + params.Encode(), nil
}

// buildAlertsURL returns the POST /alerts URL.
func buildAlertsURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/alerts"
}

// alertIDFromLocation extracts the id from a Location header such as "/alerts/12345".
func alertIDFromLocation(location string) string {
	location = strings.TrimRight(strings.TrimSpace(location), "/")
	if location == "" {
		return ""
	}
	if u, err := url.Parse(location); err == nil {
		location = u.Path
	}
	if i := strings.LastIndex(location, "/"); i >= 0 {
		return location[i+1:]
	}
	return location
}
