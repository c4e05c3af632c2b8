package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/models"
)

var now = time.Date(2026, time.October, 19, 15, 45, 0, 0, time.UTC)

func fillGuest(r *models.Registration) {
	r.Owner = models.Person{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}
}

func TestAddSession(t *testing.T) {
	s := NewAddSession(now)

	mode, ok := s.Mode().(Edit)
	if !ok || mode.ReadyToSave {
		t.Fatalf("expected Edit{false}, got %#v", s.Mode())
	}
	w := s.Working()
	if !w.CheckInDate.Equal(time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected check-in at midnight, got %v", w.CheckInDate)
	}
	if w.CheckOutDate.Sub(w.CheckInDate) != models.Day {
		t.Errorf("expected one night default, got %v", w.CheckOutDate.Sub(w.CheckInDate))
	}

	if err := s.Apply(fillGuest); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if s.Mode().(Edit).ReadyToSave {
		t.Error("expected not ready without a room")
	}
	if _, err := s.Save(); !errors.Is(err, ErrNotReady) {
		t.Errorf("expected ErrNotReady, got %v", err)
	}

	if err := s.SelectRoom(2); err != nil {
		t.Fatalf("SelectRoom failed: %v", err)
	}
	if !s.Mode().(Edit).ReadyToSave {
		t.Fatal("expected ready after selecting a room")
	}

	saved, err := s.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.Room == nil || saved.Room.ShortName != "PHS" {
		t.Errorf("unexpected room %+v", saved.Room)
	}
	if _, ok := s.Mode().(Review); !ok {
		t.Errorf("expected review mode after save, got %#v", s.Mode())
	}
}

func TestAddSession_CancelResetsForm(t *testing.T) {
	s := NewAddSession(now)
	s.Apply(fillGuest)
	s.Cancel()

	if s.Working().Owner.FirstName != "" {
		t.Error("expected cancel to clear the form")
	}
	if _, ok := s.Mode().(Edit); !ok {
		t.Error("expected add session to stay in edit mode")
	}
}

func TestReviewSession(t *testing.T) {
	room, _ := models.RoomTypeByID(0)
	stored := models.Registration{
		ID:             "r1",
		Owner:          models.Person{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com"},
		CheckInDate:    now.Add(48 * time.Hour),
		CheckOutDate:   now.Add(96 * time.Hour),
		NumberOfAdults: 2,
		Room:           &room,
	}

	t.Run("ApplyNeedsEditMode", func(t *testing.T) {
		s := NewReviewSession(stored, true)
		if err := s.Apply(fillGuest); !errors.Is(err, ErrNotEditing) {
			t.Errorf("expected ErrNotEditing, got %v", err)
		}
	})

	t.Run("ReadOnly", func(t *testing.T) {
		s := NewReviewSession(stored, false)
		if err := s.BeginEdit(); !errors.Is(err, ErrReadOnly) {
			t.Errorf("expected ErrReadOnly, got %v", err)
		}
	})

	t.Run("CancelLeavesStoredUntouched", func(t *testing.T) {
		s := NewReviewSession(stored, true)
		if err := s.BeginEdit(); err != nil {
			t.Fatal(err)
		}
		if !s.Mode().(Edit).ReadyToSave {
			t.Error("expected a complete stored registration to be ready")
		}
		s.Apply(func(r *models.Registration) {
			r.NumberOfAdults = 5
			r.Room.Capacity = 99
		})
		s.Cancel()

		if stored.NumberOfAdults != 2 || stored.Room.Capacity != 2 {
			t.Errorf("stored registration changed: %+v", stored)
		}
		if s.Working().NumberOfAdults != 2 {
			t.Error("expected working copy to be restored")
		}
		if _, ok := s.Mode().(Review); !ok {
			t.Error("expected review mode after cancel")
		}
	})

	t.Run("SaveReturnsChangedCopy", func(t *testing.T) {
		s := NewReviewSession(stored, true)
		s.BeginEdit()
		s.Apply(func(r *models.Registration) { r.WifiEnabled = true })

		saved, err := s.Save()
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if !saved.WifiEnabled || stored.WifiEnabled {
			t.Errorf("unexpected wifi flags saved=%v stored=%v", saved.WifiEnabled, stored.WifiEnabled)
		}
		if saved.ID != "r1" {
			t.Errorf("expected id to survive, got %q", saved.ID)
		}
	})

	t.Run("UnknownRoom", func(t *testing.T) {
		s := NewReviewSession(stored, true)
		s.BeginEdit()
		if err := s.SelectRoom(7); !errors.Is(err, ErrUnknownRoom) {
			t.Errorf("expected ErrUnknownRoom, got %v", err)
		}
	})
}

func TestCheckForm(t *testing.T) {
	room, _ := models.RoomTypeByID(1)
	valid := models.Registration{
		Owner:          models.Person{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		CheckInDate:    now,
		CheckOutDate:   now.Add(models.Day),
		NumberOfAdults: 1,
		Room:           &room,
	}

	if err := CheckForm(valid); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*models.Registration)
	}{
		{"MissingFirstName", func(r *models.Registration) { r.Owner.FirstName = "" }},
		{"MissingLastName", func(r *models.Registration) { r.Owner.LastName = "" }},
		{"BadEmail", func(r *models.Registration) { r.Owner.Email = "not-an-email" }},
		{"NoRoom", func(r *models.Registration) { r.Room = nil }},
		{"ShortStay", func(r *models.Registration) { r.CheckOutDate = r.CheckInDate.Add(time.Hour) }},
		{"NoGuests", func(r *models.Registration) { r.NumberOfAdults = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid.Clone()
			tt.mutate(&r)
			if err := CheckForm(r); !errors.Is(err, ErrNotReady) {
				t.Errorf("expected ErrNotReady, got %v", err)
			}
		})
	}
}

func TestCheckSchedule(t *testing.T) {
	midnight := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		checkIn time.Time
		ok      bool
	}{
		{"StartOfToday", midnight, true},
		{"LaterToday", midnight.Add(20 * time.Hour), true},
		{"Tomorrow", midnight.Add(models.Day), true},
		{"LastNight", midnight.Add(-time.Minute), false},
		{"LastYear", midnight.Add(-400 * models.Day), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := models.Registration{CheckInDate: tc.checkIn, CheckOutDate: tc.checkIn.Add(models.Day)}
			err := CheckSchedule(reg, now)
			if tc.ok && err != nil {
				t.Errorf("expected check-in %v to be allowed, got %v", tc.checkIn, err)
			}
			if !tc.ok && (!errors.Is(err, ErrNotReady) || !errors.Is(err, ErrCheckInPast)) {
				t.Errorf("expected ErrNotReady and ErrCheckInPast, got %v", err)
			}
		})
	}

	t.Run("UsesClockLocation", func(t *testing.T) {
		// 01:00 on Oct 20 in UTC+3 is still Oct 19 in UTC.
		east := time.FixedZone("UTC+3", 3*60*60)
		eastNow := time.Date(2026, time.October, 20, 1, 0, 0, 0, east)
		reg := models.Registration{CheckInDate: midnight.Add(12 * time.Hour)}
		if err := CheckSchedule(reg, eastNow); !errors.Is(err, ErrCheckInPast) {
			t.Errorf("expected check-in on the previous local day to be rejected, got %v", err)
		}
	})
}
