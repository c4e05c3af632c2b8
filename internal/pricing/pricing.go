// Package pricing computes stay costs of a registration. All functions are
// total: inconsistent dates give zero or negative totals instead of errors,
// so callers must check the registration before showing a price.
package pricing

import (
	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultWifiRate is charged per person and day.
var DefaultWifiRate = decimal.RequireFromString("0.3")

// StayLengthDays counts whole 24 hour periods between check-in and
// check-out, truncated toward zero.
func StayLengthDays(reg models.Registration) int {
	return int(reg.CheckOutDate.Sub(reg.CheckInDate) / models.Day)
}

// UnitsNeeded returns how many units of the given capacity house guests,
// rounding up. A non-positive capacity means "no room" and yields 1.
func UnitsNeeded(guests, capacity int) int {
	if capacity <= 0 {
		return 1
	}
	units := guests / capacity
	if guests%capacity != 0 {
		units++
	}
	return units
}

// OccupancyMultiplier is UnitsNeeded for the registration's room. Without a
// room every guest fits into one billing unit.
func OccupancyMultiplier(reg models.Registration) int {
	if reg.Room == nil {
		return 1
	}
	return UnitsNeeded(reg.NumberOfGuests(), reg.Room.Capacity)
}

// RoomTotalPrice reports false when no room is selected.
func RoomTotalPrice(reg models.Registration) (decimal.Decimal, bool) {
	if reg.Room == nil {
		return decimal.Decimal{}, false
	}
	return total(reg.Room.Price, reg), true
}

func WifiTotalPrice(reg models.Registration, ratePerPersonPerDay decimal.Decimal) decimal.Decimal {
	return total(ratePerPersonPerDay, reg)
}

func total(price decimal.Decimal, reg models.Registration) decimal.Decimal {
	return price.
		Mul(decimal.NewFromInt(int64(StayLengthDays(reg)))).
		Mul(decimal.NewFromInt(int64(OccupancyMultiplier(reg))))
}

// Quote is everything the booking form shows about cost.
type Quote struct {
	Nights int              `json:"nights"`
	Units  int              `json:"units"`
	Room   *decimal.Decimal `json:"room,omitempty"`
	Wifi   decimal.Decimal  `json:"wifi"`
	Total  decimal.Decimal  `json:"total"`
}

// NewQuote prices reg. Wi-Fi is only charged when enabled.
func NewQuote(reg models.Registration, wifiRate decimal.Decimal) Quote {
	q := Quote{
		Nights: StayLengthDays(reg),
		Units:  OccupancyMultiplier(reg),
		Wifi:   decimal.Zero,
		Total:  decimal.Zero,
	}
	if room, ok := RoomTotalPrice(reg); ok {
		q.Room = &room
		q.Total = q.Total.Add(room)
	}
	if reg.WifiEnabled {
		q.Wifi = WifiTotalPrice(reg, wifiRate)
		q.Total = q.Total.Add(q.Wifi)
	}
	return q
}
