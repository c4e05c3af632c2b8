package models

import (
	"cmp"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidStay    = errors.New("check-out must be at least one day after check-in")
	ErrNoGuests       = errors.New("registration needs at least one guest")
	ErrNegativeGuests = errors.New("guest counts cannot be negative")
)

// Day is the length of one billed night.
const Day = 24 * time.Hour

// Registration is a single hotel booking.
type Registration struct {
	ID               string    `json:"id"`
	Owner            Person    `json:"owner"`
	CheckInDate      time.Time `json:"check_in_date"`
	CheckOutDate     time.Time `json:"check_out_date"`
	NumberOfAdults   int       `json:"number_of_adults"`
	NumberOfChildren int       `json:"number_of_children"`
	WifiEnabled      bool      `json:"wifi_enabled"`
	Room             *RoomType `json:"room,omitempty" validate:"required"`
}

// NewBlankRegistration returns the placeholder used before the guest has
// entered anything. Check-in sits at the Unix epoch and check-out at now, so
// the result does not pass Validate and must not be priced.
func NewBlankRegistration(now time.Time) Registration {
	return Registration{
		CheckInDate:    time.Unix(0, 0).UTC(),
		CheckOutDate:   now,
		NumberOfAdults: 1,
	}
}

func (r Registration) NumberOfGuests() int {
	return r.NumberOfAdults + r.NumberOfChildren
}

// Validate checks the invariants of a finalized registration.
func (r Registration) Validate() error {
	if r.NumberOfAdults < 0 || r.NumberOfChildren < 0 {
		return ErrNegativeGuests
	}
	if r.NumberOfGuests() < 1 {
		return ErrNoGuests
	}
	if r.CheckOutDate.Before(r.CheckInDate.Add(Day)) {
		return ErrInvalidStay
	}
	return nil
}

// Clone returns a copy that shares no memory with r.
func (r Registration) Clone() Registration {
	c := r
	if r.Room != nil {
		room := *r.Room
		c.Room = &room
	}
	return c
}

// IsEditable reports whether the stay has not started yet. The answer
// depends on now and may flip between two calls.
func (r Registration) IsEditable(now time.Time) bool {
	return r.CheckInDate.After(now)
}

// Compare orders by check-in date, then check-out date. It returns 0 when
// both dates match even if the bookings differ otherwise.
func Compare(a, b Registration) int {
	if c := a.CheckInDate.Compare(b.CheckInDate); c != 0 {
		return c
	}
	return a.CheckOutDate.Compare(b.CheckOutDate)
}

// CompareStable refines Compare with the owner's full name and the id so
// that distinct bookings on identical dates still have a fixed order.
func CompareStable(a, b Registration) int {
	if c := Compare(a, b); c != 0 {
		return c
	}
	if c := strings.Compare(a.Owner.FullName(), b.Owner.FullName()); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
