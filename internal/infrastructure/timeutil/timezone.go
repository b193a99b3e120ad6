// Package timeutil provides time zone lookup and the timestamp formats
// exchanged with the flight-data provider and the chat platform.
package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// locationCache stores cached timezone locations for performance.
var locationCache sync.Map

// DisplayLayout is the DD-MM-YYYY HH:MM layout shown to chat users,
// followed by the zone abbreviation of the airport.
const DisplayLayout = "02-01-2006 15:04 MST"

// providerLayouts are the timestamp forms accepted from the provider, most common first.
var providerLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// ErrEmptyTimestamp is returned by ParseTimestamp for blank input.
var ErrEmptyTimestamp = errors.New("empty timestamp")

// GetLocation returns a cached timezone location.
// It caches the result for subsequent calls with the same name.
func GetLocation(name string) (*time.Location, error) {
	// Check cache first
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// LocationOrUTC returns the named location, or UTC when the name is
// empty or unknown to the tz database.
func LocationOrUTC(name string) *time.Location {
	if strings.TrimSpace(name) == "" {
		return time.UTC
	}
	loc, err := GetLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FormatDisplay renders t in the given IANA zone using DisplayLayout.
// A nil time renders as an empty string.
func FormatDisplay(t *time.Time, timezone string) string {
	if t == nil {
		return ""
	}
	return t.In(LocationOrUTC(timezone)).Format(DisplayLayout)
}

// ParseTimestamp parses a provider timestamp. Values without an offset are
// taken as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyTimestamp
	}

	for _, layout := range providerLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ any) bool {
		locationCache.Delete(key)
		return true
	})
}
