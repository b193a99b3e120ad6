// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
)

// LoadTestData loads a file from the test/testdata directory.
func LoadTestData(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil is in test/testutil
	path := filepath.Join(filepath.Dir(currentFile), "..", "testdata", filename)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// MustParseDate parses a YYYY-MM-DD date with the service's own date rules
// and returns midnight UTC. It fails the test if the date is rejected.
func MustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := domain.ParseDepartureDate(value)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", value, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
