package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the resolution and subscription outcomes.
var (
	// ErrInvalidDate indicates a malformed or non-existent calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidRequest indicates a missing required field. It is reported
	// with the same outcome code as ErrInvalidDate.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoFlightsFound indicates every resolution strategy came back empty.
	ErrNoFlightsFound = errors.New("no flights found")

	// ErrProviderFailure is the sentinel matched by every ProviderError.
	ErrProviderFailure = errors.New("provider error")

	// ErrMalformedResponse indicates the provider body had no parsable flight list.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrInternal indicates an unexpected failure. Details are never exposed.
	ErrInternal = errors.New("internal error")

	// ErrUnauthorized indicates an alert callback carried the wrong shared secret.
	ErrUnauthorized = errors.New("unauthorized")
)

// Outcome codes reported in responses, logs and metrics.
const (
	OutcomeFound          = "found"
	OutcomeInvalidDate    = "invalid_date"
	OutcomeNoFlightsFound = "no_flights_found"
	OutcomeProviderError  = "provider_error"
	OutcomeInternalError  = "internal_error"
)

// MaxBodyExcerpt caps how much of an upstream body is carried in a ProviderError.
const MaxBodyExcerpt = 512

// ProviderError is a non-success response (or timeout) from the flight-data provider.
type ProviderError struct {
	// StatusCode is the upstream HTTP status (504 for a local timeout)
	StatusCode int

	// BodyExcerpt is at most MaxBodyExcerpt bytes of the upstream body
	BodyExcerpt string

	// Err is the underlying cause, if any
	Err error
}

// NewProviderError creates a ProviderError, truncating the body excerpt.
func NewProviderError(statusCode int, body []byte, cause error) *ProviderError {
	return &ProviderError{
		StatusCode:  statusCode,
		BodyExcerpt: Excerpt(body, MaxBodyExcerpt),
		Err:         cause,
	}
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider error (status %d)", e.StatusCode)
}

// Unwrap returns the underlying cause.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is makes every ProviderError match ErrProviderFailure.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderFailure
}

// Excerpt returns at most limit bytes of body, without splitting a UTF-8 rune.
func Excerpt(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	cut := limit
	// back off continuation bytes (10xxxxxx)
	for cut > 0 && body[cut]&0xC0 == 0x80 {
		cut--
	}
	return string(body[:cut])
}

// OutcomeCode maps an error returned by a use case to its outcome code.
// A nil error maps to OutcomeFound.
func OutcomeCode(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidRequest):
		return OutcomeInvalidDate
	case errors.Is(err, ErrNoFlightsFound):
		return OutcomeNoFlightsFound
	case errors.Is(err, ErrProviderFailure):
		return OutcomeProviderError
	default:
		return OutcomeInternalError
	}
}
