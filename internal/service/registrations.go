// Package service coordinates the guestbook with persistence and
// notifications. Unlike guestbook.Book it is safe for concurrent use.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/editor"
	"github.com/gdg-garage/hotel-registration-api/internal/guestbook"
	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"github.com/gdg-garage/hotel-registration-api/internal/notifier"
	"github.com/gdg-garage/hotel-registration-api/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound    = errors.New("registration not found")
	ErrNotEditable = errors.New("registration has already started")
)

// Store persists registrations. staffID 0 means the system itself.
type Store interface {
	Save(ctx context.Context, staffID uint, reg models.Registration) error
	Delete(ctx context.Context, staffID uint, id string) error
	List(ctx context.Context) ([]models.Registration, error)
	History(ctx context.Context, id string) ([]models.RegistrationHistory, error)
}

type Registrations struct {
	mu       sync.RWMutex
	book     *guestbook.Book
	loc      *time.Location
	store    Store
	notifier notifier.Notifier
	now      func() time.Time
	wifiRate decimal.Decimal
}

type Option func(*Registrations)

func WithStore(s Store) Option {
	return func(r *Registrations) { r.store = s }
}

func WithNotifier(n notifier.Notifier) Option {
	return func(r *Registrations) { r.notifier = n }
}

func WithClock(now func() time.Time) Option {
	return func(r *Registrations) { r.now = now }
}

func WithWifiRate(rate decimal.Decimal) Option {
	return func(r *Registrations) { r.wifiRate = rate }
}

// New returns an empty service. loc is the calendar for month sections.
func New(loc *time.Location, opts ...Option) *Registrations {
	r := &Registrations{
		book:     guestbook.New(loc),
		loc:      loc,
		now:      time.Now,
		wifiRate: pricing.DefaultWifiRate,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load replaces the in-memory guestbook with the store's content.
func (r *Registrations) Load(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	regs, err := r.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load registrations: %w", err)
	}

	r.mu.Lock()
	r.book = guestbook.New(r.loc, regs...)
	r.mu.Unlock()

	log.Printf("Loaded %d registrations", len(regs))
	return nil
}

// Seed adds regs when the guestbook is empty.
func (r *Registrations) Seed(ctx context.Context, regs []models.Registration) error {
	r.mu.RLock()
	empty := r.book.Len() == 0
	r.mu.RUnlock()
	if !empty {
		return nil
	}

	for _, reg := range regs {
		if _, err := r.Create(ctx, 0, reg); err != nil {
			return fmt.Errorf("seed %s: %w", reg.Owner.FullName(), err)
		}
	}
	return nil
}

func (r *Registrations) List() []models.Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.book.All()
}

func (r *Registrations) Sections() []guestbook.Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.book.Sections()
}

func (r *Registrations) Get(id string) (models.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.book.IndexOf(id)
	if !ok {
		return models.Registration{}, ErrNotFound
	}
	reg, _ := r.book.At(p)
	return reg, nil
}

// CanEdit evaluates the editability policy at the current time.
func (r *Registrations) CanEdit(reg models.Registration) bool {
	return reg.IsEditable(r.now())
}

// Open starts a review session on a stored registration.
func (r *Registrations) Open(id string) (*editor.Session, error) {
	reg, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return editor.NewReviewSession(reg, r.CanEdit(reg)), nil
}

// NewDraft starts an add session for a new registration.
func (r *Registrations) NewDraft() *editor.Session {
	return editor.NewAddSession(r.now())
}

func (r *Registrations) Quote(reg models.Registration) pricing.Quote {
	return pricing.NewQuote(reg, r.wifiRate)
}

func (r *Registrations) History(ctx context.Context, id string) ([]models.RegistrationHistory, error) {
	if r.store == nil {
		return nil, nil
	}
	return r.store.History(ctx, id)
}

// Create assigns a fresh id to reg and inserts it.
func (r *Registrations) Create(ctx context.Context, staffID uint, reg models.Registration) (models.Registration, error) {
	if err := r.checkForm(reg); err != nil {
		return models.Registration{}, err
	}
	reg = reg.Clone()
	reg.ID = uuid.NewString()

	r.mu.Lock()
	if r.store != nil {
		if err := r.store.Save(ctx, staffID, reg); err != nil {
			r.mu.Unlock()
			return models.Registration{}, fmt.Errorf("save registration: %w", err)
		}
	}
	r.book.InsertSorted(reg)
	r.mu.Unlock()

	r.notify(notifier.Created, reg)
	return reg.Clone(), nil
}

// Update replaces the registration with the given id. Registrations whose
// stay has started are rejected with ErrNotEditable.
func (r *Registrations) Update(ctx context.Context, staffID uint, id string, reg models.Registration) (models.Registration, error) {
	if err := r.checkForm(reg); err != nil {
		return models.Registration{}, err
	}
	reg = reg.Clone()
	reg.ID = id

	r.mu.Lock()
	p, ok := r.book.IndexOf(id)
	if !ok {
		r.mu.Unlock()
		return models.Registration{}, ErrNotFound
	}
	if !r.book.CanEdit(p, r.now()) {
		r.mu.Unlock()
		return models.Registration{}, ErrNotEditable
	}
	if r.store != nil {
		if err := r.store.Save(ctx, staffID, reg); err != nil {
			r.mu.Unlock()
			return models.Registration{}, fmt.Errorf("save registration: %w", err)
		}
	}
	r.book.Replace(p, reg)
	r.mu.Unlock()

	r.notify(notifier.Updated, reg)
	return reg.Clone(), nil
}

func (r *Registrations) Delete(ctx context.Context, staffID uint, id string) error {
	r.mu.Lock()
	p, ok := r.book.IndexOf(id)
	if !ok {
		r.mu.Unlock()
		return ErrNotFound
	}
	if !r.book.CanEdit(p, r.now()) {
		r.mu.Unlock()
		return ErrNotEditable
	}
	if r.store != nil {
		if err := r.store.Delete(ctx, staffID, id); err != nil {
			r.mu.Unlock()
			return fmt.Errorf("delete registration: %w", err)
		}
	}
	removed := r.book.Remove(p)
	r.mu.Unlock()

	r.notify(notifier.Deleted, removed)
	return nil
}

// checkForm applies the form rules plus the earliest allowed check-in,
// which is the start of today in the guestbook's calendar.
func (r *Registrations) checkForm(reg models.Registration) error {
	if err := editor.CheckForm(reg); err != nil {
		return err
	}
	now := r.now()
	if r.loc != nil {
		now = now.In(r.loc)
	}
	return editor.CheckSchedule(reg, now)
}

func (r *Registrations) notify(action notifier.Action, reg models.Registration) {
	if r.notifier == nil {
		return
	}
	if err := r.notifier.NotifyRegistration(action, reg, r.Quote(reg)); err != nil {
		log.Printf("Failed to send notification: %v", err)
	}
}
