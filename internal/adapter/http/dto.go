package http

import "encoding/json"

// AlertCallbackPayload is the body the provider posts to the alert callback.
// alert_id arrives as a JSON number but is kept as text.
type AlertCallbackPayload struct {
	LongDescription  string              `json:"long_description"`
	ShortDescription string              `json:"short_description"`
	Summary          string              `json:"summary"`
	EventCode        string              `json:"event_code"`
	AlertID          json.Number         `json:"alert_id" swaggertype:"integer"`
	Flight           AlertCallbackFlight `json:"flight"`
}

// AlertCallbackFlight is the subset of the flight record we log.
type AlertCallbackFlight struct {
	Ident     string `json:"ident"`
	IdentIATA string `json:"ident_iata,omitempty"`
	IdentICAO string `json:"ident_icao,omitempty"`
}
