package handlers

import (
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/format"
	"github.com/gdg-garage/hotel-registration-api/internal/guestbook"
	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"github.com/gdg-garage/hotel-registration-api/internal/pricing"
)

// Response shapes. Amounts are decimal strings plus a display string in the
// configured currency.

type RoomView struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	Price        string `json:"price" doc:"Price per unit and night"`
	PriceDisplay string `json:"price_display"`
	Capacity     int    `json:"capacity"`
}

type QuoteView struct {
	Nights       int     `json:"nights"`
	Units        int     `json:"units" doc:"Rooms needed for all guests"`
	Room         *string `json:"room,omitempty" doc:"Room total, absent without a room"`
	Wifi         string  `json:"wifi"`
	Total        string  `json:"total"`
	TotalDisplay string  `json:"total_display"`
}

type RegistrationView struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	CheckInDate      time.Time `json:"check_in_date"`
	CheckOutDate     time.Time `json:"check_out_date"`
	NumberOfAdults   int       `json:"number_of_adults"`
	NumberOfChildren int       `json:"number_of_children"`
	WifiEnabled      bool      `json:"wifi_enabled"`
	Room             *RoomView `json:"room,omitempty"`
	Editable         bool      `json:"editable"`
	Quote            QuoteView `json:"quote"`
}

type SectionView struct {
	Month         string             `json:"month" example:"2026-11"`
	Title         string             `json:"title" example:"November 2026"`
	Registrations []RegistrationView `json:"registrations"`
}

func roomView(r models.RoomType, f *format.Formatter) RoomView {
	return RoomView{
		ID:           r.ID,
		Name:         r.Name,
		ShortName:    r.ShortName,
		Price:        r.Price.StringFixed(2),
		PriceDisplay: f.Money(r.Price),
		Capacity:     r.Capacity,
	}
}

func quoteView(q pricing.Quote, f *format.Formatter) QuoteView {
	v := QuoteView{
		Nights:       q.Nights,
		Units:        q.Units,
		Wifi:         q.Wifi.StringFixed(2),
		Total:        q.Total.StringFixed(2),
		TotalDisplay: f.Money(q.Total),
	}
	if q.Room != nil {
		room := q.Room.StringFixed(2)
		v.Room = &room
	}
	return v
}

func registrationView(r models.Registration, q pricing.Quote, editable bool, f *format.Formatter) RegistrationView {
	v := RegistrationView{
		ID:               r.ID,
		FirstName:        r.Owner.FirstName,
		LastName:         r.Owner.LastName,
		Email:            r.Owner.Email,
		CheckInDate:      r.CheckInDate,
		CheckOutDate:     r.CheckOutDate,
		NumberOfAdults:   r.NumberOfAdults,
		NumberOfChildren: r.NumberOfChildren,
		WifiEnabled:      r.WifiEnabled,
		Editable:         editable,
		Quote:            quoteView(q, f),
	}
	if r.Room != nil {
		room := roomView(*r.Room, f)
		v.Room = &room
	}
	return v
}

func sectionView(s guestbook.Section, rows []RegistrationView, f *format.Formatter) SectionView {
	return SectionView{
		Month:         s.Key.String(),
		Title:         f.MonthTitle(s.Key),
		Registrations: rows,
	}
}
