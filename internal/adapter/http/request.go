// Package http provides the webhook handler layer for the chat platform.
// It handles request parsing, validation, and response formatting.
package http

import (
	"errors"
	"regexp"
	"strings"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
)

// ChatRequest is the body of a flight lookup webhook.
type ChatRequest struct {
	// FlightIdent is the flight number as typed by the user (e.g. "AK6322")
	FlightIdent string `json:"flightIdent" example:"AK6322"`

	// DepartureDate is the local departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2025-10-22"`
}

// SubscribeRequest is the body of an alert subscription webhook.
type SubscribeRequest struct {
	// UserRef identifies the chat user to notify
	UserRef string `json:"userRef" example:"user-42"`

	// FlightNoIATA is the IATA flight number; used when FlightNoICAO is empty
	FlightNoIATA string `json:"flightno_iata,omitempty" example:"AK6322"`

	// FlightNoICAO is the ICAO flight number; preferred when both are set
	FlightNoICAO string `json:"flightno_icao,omitempty" example:"AXM6322"`

	// DepartureDate is the departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2025-10-22"`
}

// identPattern matches a normalized flight identifier.
var identPattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// maxUserRefLength bounds the user reference echoed into the callback URL.
const maxUserRefLength = 256

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a field to message map.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the lookup request. All failures are reported to the
// user as an invalid date.
func (r *ChatRequest) Validate() error {
	errs := &ValidationErrors{}

	validateIdent(errs, "flightIdent", r.FlightIdent, true)
	validateDepartureDate(errs, r.DepartureDate)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the subscription request.
func (r *SubscribeRequest) Validate() error {
	errs := &ValidationErrors{}

	userRef := strings.TrimSpace(r.UserRef)
	switch {
	case userRef == "":
		errs.Add("userRef", "userRef is required")
	case len(userRef) > maxUserRefLength:
		errs.Add("userRef", "userRef is too long")
	}

	if strings.TrimSpace(r.FlightNoICAO) == "" && strings.TrimSpace(r.FlightNoIATA) == "" {
		errs.Add("flightno_icao", "flightno_icao or flightno_iata is required")
	} else {
		validateIdent(errs, "flightno_icao", r.FlightNoICAO, false)
		validateIdent(errs, "flightno_iata", r.FlightNoIATA, false)
	}

	validateDepartureDate(errs, r.DepartureDate)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateIdent(errs *ValidationErrors, field, value string, required bool) {
	if strings.TrimSpace(value) == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}
	if !identPattern.MatchString(domain.NormalizeIdent(value)) {
		errs.Add(field, field+" must be 2-10 letters or digits")
	}
}

func validateDepartureDate(errs *ValidationErrors, value string) {
	if value == "" {
		errs.Add("departureDate", "departureDate is required")
		return
	}
	if _, err := domain.ParseDepartureDate(value); err != nil {
		errs.Add("departureDate", "departureDate must be a valid YYYY-MM-DD date")
	}
}

// asValidationErrors unwraps err into its field errors, if it carries any.
func asValidationErrors(err error) map[string]string {
	var verrs *ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.ToMap()
	}
	return nil
}
