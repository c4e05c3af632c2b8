package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/database"
	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestStore_SaveListDelete(t *testing.T) {
	db := setupDB(t)
	s := New(db)
	ctx := context.Background()

	room, _ := models.RoomTypeByID(2)
	in := time.Date(2026, time.December, 20, 14, 0, 0, 0, time.UTC)
	reg := models.Registration{
		ID:             "reg-1",
		Owner:          models.Person{FirstName: "Ivan", LastName: "Akulov", Email: "ivan@example.com"},
		CheckInDate:    in,
		CheckOutDate:   in.Add(4 * models.Day),
		NumberOfAdults: 2,
		Room:           &room,
	}

	if err := s.Save(ctx, 7, reg); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	reg.NumberOfChildren = 2
	reg.WifiEnabled = true
	if err := s.Save(ctx, 7, reg); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	var count int64
	db.Model(&models.RegistrationRecord{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 record after upsert, got %d", count)
	}

	regs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(regs) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(regs))
	}
	got := regs[0]
	if got.ID != "reg-1" || got.NumberOfChildren != 2 || !got.WifiEnabled {
		t.Errorf("unexpected registration %+v", got)
	}
	if got.Room == nil || got.Room.ShortName != "PHS" {
		t.Errorf("expected room to be restored, got %+v", got.Room)
	}
	if !got.CheckInDate.Equal(in) {
		t.Errorf("expected check-in %v, got %v", in, got.CheckInDate)
	}

	if err := s.Delete(ctx, 8, "reg-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if regs, _ := s.List(ctx); len(regs) != 0 {
		t.Errorf("expected no registrations after delete, got %d", len(regs))
	}

	history, err := s.History(ctx, "reg-1")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(history))
	}
	wantActions := []string{ActionDelete, ActionUpdate, ActionCreate}
	for i, h := range history {
		if h.Action != wantActions[i] {
			t.Errorf("history %d: expected %s, got %s", i, wantActions[i], h.Action)
		}
	}
	if history[0].StaffID != 8 || history[2].StaffID != 7 {
		t.Errorf("unexpected staff ids %d/%d", history[0].StaffID, history[2].StaffID)
	}
	if history[2].NumberOfChildren != 0 || history[1].NumberOfChildren != 2 {
		t.Error("expected snapshots to keep the values at the time of each change")
	}
}

func TestStore_DeleteMissing(t *testing.T) {
	s := New(setupDB(t))
	if err := s.Delete(context.Background(), 1, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_SaveWithoutID(t *testing.T) {
	s := New(setupDB(t))
	if err := s.Save(context.Background(), 1, models.Registration{}); err == nil {
		t.Error("expected error for registration without id")
	}
}
