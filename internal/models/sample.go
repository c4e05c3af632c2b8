package models

import "time"

// SampleRegistrations returns demo bookings relative to now, all in the
// Two Queens room. The result is not sorted.
func SampleRegistrations(now time.Time) []Registration {
	guests := []struct {
		first, last   string
		inDay, outDay int
	}{
		{"Arkady", "Grigoryants", 0, 3},
		{"Yan", "Karlov", 3, 4},
		{"Dmitry", "Kozlov", 3, 6},
		{"Sergey", "Boyko", 2, 6},
		{"Ivan", "Akulov", 35, 39},
		{"Ilya", "Lanskov", 37, 44},
		{"Alena", "Vodonaeva", 75, 79},
		{"Irina", "Svetlova", 101, 141},
		{"Yulia", "Denisova", 356, 367},
	}

	room, _ := RoomTypeByID(0)
	regs := make([]Registration, 0, len(guests))
	for _, g := range guests {
		r := room
		regs = append(regs, Registration{
			Owner:          Person{FirstName: g.first, LastName: g.last, Email: "test@test.com"},
			CheckInDate:    now.Add(time.Duration(g.inDay) * Day),
			CheckOutDate:   now.Add(time.Duration(g.outDay) * Day),
			NumberOfAdults: 1,
			Room:           &r,
		})
	}
	return regs
}
