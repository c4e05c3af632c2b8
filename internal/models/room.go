package models

import (
	"github.com/shopspring/decimal"
)

// RoomType is one entry of the fixed room catalog. Price is charged per
// booked unit and night; Capacity is the number of guests one unit houses.
type RoomType struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	ShortName string          `json:"short_name"`
	Price     decimal.Decimal `json:"price"`
	Capacity  int             `json:"capacity"`
}

// SameAs reports whether both values denote the same catalog entry.
// Only the id is compared.
func (r RoomType) SameAs(other RoomType) bool {
	return r.ID == other.ID
}

var roomCatalog = [...]RoomType{
	{ID: 0, Name: "Two Queens", ShortName: "2Q", Price: decimal.NewFromInt(179), Capacity: 2},
	{ID: 1, Name: "One King", ShortName: "K", Price: decimal.NewFromInt(209), Capacity: 1},
	{ID: 2, Name: "Penthouse Suite", ShortName: "PHS", Price: decimal.NewFromInt(309), Capacity: 4},
}

// RoomTypes returns the catalog in display order.
func RoomTypes() []RoomType {
	rooms := make([]RoomType, len(roomCatalog))
	copy(rooms, roomCatalog[:])
	return rooms
}

// RoomTypeByID looks up a catalog entry.
func RoomTypeByID(id int) (RoomType, bool) {
	for _, r := range roomCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return RoomType{}, false
}
