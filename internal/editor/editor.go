// Package editor implements the review/edit workflow of the booking form.
// A Session works on a private copy of the registration; nothing reaches
// the guestbook until Save returns the copy to the caller.
package editor

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	ErrReadOnly    = errors.New("registration can no longer be edited")
	ErrNotEditing  = errors.New("session is in review mode")
	ErrNotReady    = errors.New("registration form is incomplete")
	ErrUnknownRoom = errors.New("unknown room type")
	ErrCheckInPast = errors.New("check-in is before today")
)

// Mode is either Review or Edit.
type Mode interface {
	isMode()
}

type Review struct{}

type Edit struct {
	ReadyToSave bool
}

func (Review) isMode() {}
func (Edit) isMode()   {}

var validate = validator.New(validator.WithRequiredStructEnabled())

// CheckForm reports why reg cannot be saved yet.
func CheckForm(reg models.Registration) error {
	if err := validate.Struct(reg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrNotReady, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrNotReady, err)
	}
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}
	return nil
}

// StartOfDay is midnight of the day containing now, in now's location.
func StartOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// CheckSchedule rejects a check-in earlier than the start of today. The
// form never offers such a date, so a stored booking stays editable until
// its stay begins.
func CheckSchedule(reg models.Registration, now time.Time) error {
	if reg.CheckInDate.Before(StartOfDay(now)) {
		return fmt.Errorf("%w: %w", ErrNotReady, ErrCheckInPast)
	}
	return nil
}

type Session struct {
	original models.Registration
	working  models.Registration
	adding   bool
	mode     Mode
	canEdit  bool
}

// NewAddSession starts a new booking with check-in at the start of today
// and check-out one day later.
func NewAddSession(now time.Time) *Session {
	midnight := StartOfDay(now)
	working := models.NewBlankRegistration(now)
	working.CheckInDate = midnight
	working.CheckOutDate = midnight.Add(models.Day)

	s := &Session{original: working, working: working.Clone(), adding: true, canEdit: true}
	s.mode = Edit{ReadyToSave: s.ready()}
	return s
}

// NewReviewSession opens an existing registration read-only. canEdit
// controls whether BeginEdit is allowed.
func NewReviewSession(reg models.Registration, canEdit bool) *Session {
	return &Session{
		original: reg.Clone(),
		working:  reg.Clone(),
		mode:     Review{},
		canEdit:  canEdit,
	}
}

func (s *Session) Mode() Mode {
	return s.mode
}

// Working returns a copy of the registration being edited.
func (s *Session) Working() models.Registration {
	return s.working.Clone()
}

func (s *Session) BeginEdit() error {
	if !s.canEdit {
		return ErrReadOnly
	}
	if _, ok := s.mode.(Edit); ok {
		return nil
	}
	s.mode = Edit{ReadyToSave: s.ready()}
	return nil
}

// Apply mutates the working copy and refreshes ReadyToSave.
func (s *Session) Apply(fn func(*models.Registration)) error {
	if _, ok := s.mode.(Edit); !ok {
		return ErrNotEditing
	}
	fn(&s.working)
	s.mode = Edit{ReadyToSave: s.ready()}
	return nil
}

func (s *Session) SelectRoom(id int) error {
	room, ok := models.RoomTypeByID(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownRoom, id)
	}
	return s.Apply(func(r *models.Registration) {
		r.Room = &room
	})
}

// Cancel drops pending changes. An unsaved add session goes back to the
// empty form and stays in edit mode.
func (s *Session) Cancel() {
	s.working = s.original.Clone()
	if s.adding {
		s.mode = Edit{ReadyToSave: s.ready()}
		return
	}
	s.mode = Review{}
}

// Save finishes editing and hands out the working copy.
func (s *Session) Save() (models.Registration, error) {
	if _, ok := s.mode.(Edit); !ok {
		return models.Registration{}, ErrNotEditing
	}
	if err := CheckForm(s.working); err != nil {
		return models.Registration{}, err
	}
	s.original = s.working.Clone()
	s.adding = false
	s.mode = Review{}
	return s.working.Clone(), nil
}

func (s *Session) ready() bool {
	return CheckForm(s.working) == nil
}
