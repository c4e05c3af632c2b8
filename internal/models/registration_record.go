package models

import (
	"time"

	"gorm.io/gorm"
)

// RegistrationFields is the persisted shape of a Registration. The room is
// stored by catalog id only.
type RegistrationFields struct {
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	CheckInDate      time.Time `json:"check_in_date"`
	CheckOutDate     time.Time `json:"check_out_date"`
	NumberOfAdults   int       `json:"number_of_adults"`
	NumberOfChildren int       `json:"number_of_children"`
	WifiEnabled      bool      `json:"wifi_enabled"`
	RoomID           *int      `json:"room_id"`
}

type RegistrationRecord struct {
	gorm.Model
	UID                string `json:"uid" gorm:"uniqueIndex"`
	RegistrationFields `gorm:"embedded"`
}

func FieldsOf(r Registration) RegistrationFields {
	f := RegistrationFields{
		FirstName:        r.Owner.FirstName,
		LastName:         r.Owner.LastName,
		Email:            r.Owner.Email,
		CheckInDate:      r.CheckInDate,
		CheckOutDate:     r.CheckOutDate,
		NumberOfAdults:   r.NumberOfAdults,
		NumberOfChildren: r.NumberOfChildren,
		WifiEnabled:      r.WifiEnabled,
	}
	if r.Room != nil {
		id := r.Room.ID
		f.RoomID = &id
	}
	return f
}

// Registration rebuilds the domain value. A room id that is no longer in
// the catalog is dropped.
func (f RegistrationFields) Registration(uid string) Registration {
	r := Registration{
		ID:               uid,
		Owner:            Person{FirstName: f.FirstName, LastName: f.LastName, Email: f.Email},
		CheckInDate:      f.CheckInDate,
		CheckOutDate:     f.CheckOutDate,
		NumberOfAdults:   f.NumberOfAdults,
		NumberOfChildren: f.NumberOfChildren,
		WifiEnabled:      f.WifiEnabled,
	}
	if f.RoomID != nil {
		if room, ok := RoomTypeByID(*f.RoomID); ok {
			r.Room = &room
		}
	}
	return r
}
