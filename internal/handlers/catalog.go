package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/hotel-registration-api/internal/editor"
	"github.com/gdg-garage/hotel-registration-api/internal/models"
)

type RoomsResponse struct {
	Body struct {
		Currency string     `json:"currency" example:"USD"`
		Rooms    []RoomView `json:"rooms"`
	}
}

func (h *RegistrationHandler) HandleRooms(ctx context.Context, input *struct{}) (*RoomsResponse, error) {
	res := &RoomsResponse{}
	res.Body.Currency = string(h.formatter.Currency())
	for _, r := range models.RoomTypes() {
		res.Body.Rooms = append(res.Body.Rooms, roomView(r, h.formatter))
	}
	return res, nil
}

type QuoteRequest struct {
	Body RegistrationFields
}

type QuoteResponse struct {
	Body struct {
		Quote QuoteView `json:"quote"`
		Ready bool      `json:"ready" doc:"Whether the form can be saved as is"`
		Issue string    `json:"issue,omitempty" doc:"First reason the form cannot be saved"`
	}
}

// HandleQuote prices an unsaved draft. Incomplete forms are still priced.
func (h *RegistrationHandler) HandleQuote(ctx context.Context, input *QuoteRequest) (*QuoteResponse, error) {
	draft := models.Registration{
		Owner: models.Person{
			FirstName: input.Body.FirstName,
			LastName:  input.Body.LastName,
			Email:     input.Body.Email,
		},
		CheckInDate:      input.Body.CheckInDate,
		CheckOutDate:     input.Body.CheckOutDate,
		NumberOfAdults:   input.Body.NumberOfAdults,
		NumberOfChildren: input.Body.NumberOfChildren,
		WifiEnabled:      input.Body.WifiEnabled,
	}
	if input.Body.RoomID != nil {
		room, ok := models.RoomTypeByID(*input.Body.RoomID)
		if !ok {
			return nil, huma.Error422UnprocessableEntity("Unknown room")
		}
		draft.Room = &room
	}

	res := &QuoteResponse{}
	res.Body.Quote = quoteView(h.registrations.Quote(draft), h.formatter)
	if err := editor.CheckForm(draft); err != nil {
		res.Body.Issue = err.Error()
	} else {
		res.Body.Ready = true
	}
	return res, nil
}
