package http

import (
	"strings"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
	"github.com/flight-search/flight-webhook-adapter/internal/usecase"
)

// ToLookupRequest converts a ChatRequest to a use case request.
func ToLookupRequest(req *ChatRequest) usecase.LookupRequest {
	return usecase.LookupRequest{
		FlightIdent:   req.FlightIdent,
		DepartureDate: req.DepartureDate,
	}
}

// ToSubscribeRequest converts a SubscribeRequest to a use case request.
func ToSubscribeRequest(req *SubscribeRequest) usecase.SubscribeRequest {
	return usecase.SubscribeRequest{
		UserRef:       strings.TrimSpace(req.UserRef),
		FlightNoIATA:  req.FlightNoIATA,
		FlightNoICAO:  req.FlightNoICAO,
		DepartureDate: req.DepartureDate,
	}
}

// ToCallbackRequest converts a provider alert delivery and the callback
// query parameters to a use case request.
func ToCallbackRequest(p *AlertCallbackPayload, token, userRef string) usecase.CallbackRequest {
	ident := p.Flight.Ident
	if ident == "" {
		ident = p.Flight.IdentICAO
	}
	if ident == "" {
		ident = p.Flight.IdentIATA
	}

	return usecase.CallbackRequest{
		Token:   token,
		UserRef: userRef,
		Delivery: domain.AlertDelivery{
			AlertID:          p.AlertID.String(),
			EventCode:        p.EventCode,
			Summary:          p.Summary,
			ShortDescription: p.ShortDescription,
			LongDescription:  p.LongDescription,
			Ident:            ident,
		},
	}
}
