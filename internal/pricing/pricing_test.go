package pricing

import (
	"testing"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"github.com/shopspring/decimal"
)

var checkIn = time.Date(2026, time.July, 1, 14, 0, 0, 0, time.UTC)

func stay(days int, adults, children int, room *models.RoomType) models.Registration {
	return models.Registration{
		CheckInDate:      checkIn,
		CheckOutDate:     checkIn.Add(time.Duration(days) * models.Day),
		NumberOfAdults:   adults,
		NumberOfChildren: children,
		Room:             room,
	}
}

func room(price int64, capacity int) *models.RoomType {
	return &models.RoomType{ID: 0, Price: decimal.NewFromInt(price), Capacity: capacity}
}

func TestStayLengthDays(t *testing.T) {
	tests := []struct {
		name string
		out  time.Time
		want int
	}{
		{"ThreeDays", checkIn.Add(3 * models.Day), 3},
		{"PartialDayTruncated", checkIn.Add(2*models.Day + 23*time.Hour), 2},
		{"SameInstant", checkIn, 0},
		{"Inverted", checkIn.Add(-2 * models.Day), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := models.Registration{CheckInDate: checkIn, CheckOutDate: tt.out}
			if got := StayLengthDays(reg); got != tt.want {
				t.Errorf("expected %d days, got %d", tt.want, got)
			}
		})
	}
}

func TestUnitsNeeded(t *testing.T) {
	tests := []struct {
		guests, capacity, want int
	}{
		{5, 2, 3},
		{4, 2, 2},
		{1, 4, 1},
		{3, 1, 3},
		{0, 2, 0},
		{3, 0, 1},
	}
	for _, tt := range tests {
		if got := UnitsNeeded(tt.guests, tt.capacity); got != tt.want {
			t.Errorf("UnitsNeeded(%d, %d) = %d, want %d", tt.guests, tt.capacity, got, tt.want)
		}
	}

	for guests := 1; guests <= 12; guests++ {
		for capacity := 1; capacity <= 4; capacity++ {
			if UnitsNeeded(guests, capacity) < 1 {
				t.Fatalf("UnitsNeeded(%d, %d) dropped below 1", guests, capacity)
			}
		}
	}
}

func TestOccupancyMultiplier_NoRoom(t *testing.T) {
	reg := stay(2, 3, 2, nil)
	if got := OccupancyMultiplier(reg); got != 1 {
		t.Errorf("expected multiplier 1 without a room, got %d", got)
	}
}

func TestRoomTotalPrice(t *testing.T) {
	t.Run("TwoAdults", func(t *testing.T) {
		total, ok := RoomTotalPrice(stay(3, 2, 0, room(179, 2)))
		if !ok {
			t.Fatal("expected a price")
		}
		if !total.Equal(decimal.NewFromInt(537)) {
			t.Errorf("expected 537, got %s", total)
		}
	})

	t.Run("ThreeAdultsNeedTwoRooms", func(t *testing.T) {
		total, _ := RoomTotalPrice(stay(3, 3, 0, room(179, 2)))
		if !total.Equal(decimal.NewFromInt(1074)) {
			t.Errorf("expected 1074, got %s", total)
		}
	})

	t.Run("MissingRoom", func(t *testing.T) {
		reg := stay(3, 2, 0, nil)
		reg.WifiEnabled = true
		if _, ok := RoomTotalPrice(reg); ok {
			t.Error("expected no price without a room")
		}
	})

	t.Run("InconsistentDatesPropagate", func(t *testing.T) {
		total, ok := RoomTotalPrice(stay(-1, 1, 0, room(100, 2)))
		if !ok || !total.Equal(decimal.NewFromInt(-100)) {
			t.Errorf("expected -100, got %s (%v)", total, ok)
		}
	})
}

func TestWifiTotalPrice(t *testing.T) {
	t.Run("NoRoom", func(t *testing.T) {
		got := WifiTotalPrice(stay(4, 2, 1, nil), DefaultWifiRate)
		if !got.Equal(decimal.RequireFromString("1.2")) {
			t.Errorf("expected 1.2, got %s", got)
		}
	})

	t.Run("WithRoom", func(t *testing.T) {
		got := WifiTotalPrice(stay(2, 5, 0, room(179, 2)), DefaultWifiRate)
		// 0.3 * 2 days * 3 units
		if !got.Equal(decimal.RequireFromString("1.8")) {
			t.Errorf("expected 1.8, got %s", got)
		}
	})
}

func TestNewQuote(t *testing.T) {
	reg := stay(3, 3, 0, room(179, 2))

	q := NewQuote(reg, DefaultWifiRate)
	if q.Nights != 3 || q.Units != 2 {
		t.Errorf("unexpected nights/units %d/%d", q.Nights, q.Units)
	}
	if q.Room == nil || !q.Room.Equal(decimal.NewFromInt(1074)) {
		t.Errorf("unexpected room total %v", q.Room)
	}
	if !q.Wifi.IsZero() || !q.Total.Equal(decimal.NewFromInt(1074)) {
		t.Errorf("expected no wifi charge, got wifi=%s total=%s", q.Wifi, q.Total)
	}

	reg.WifiEnabled = true
	q = NewQuote(reg, DefaultWifiRate)
	if !q.Wifi.Equal(decimal.RequireFromString("1.8")) {
		t.Errorf("expected wifi 1.8, got %s", q.Wifi)
	}
	if !q.Total.Equal(decimal.RequireFromString("1075.8")) {
		t.Errorf("expected total 1075.8, got %s", q.Total)
	}

	noRoom := NewQuote(stay(3, 1, 0, nil), DefaultWifiRate)
	if noRoom.Room != nil || !noRoom.Total.IsZero() {
		t.Errorf("expected empty quote without room, got %+v", noRoom)
	}
}
