// Package guestbook keeps registrations sorted by stay dates and grouped
// into sections by check-in month.
//
// A Book is not safe for concurrent use.
package guestbook

import (
	"fmt"
	"slices"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/models"
)

// IndexPath addresses a registration inside the sectioned view.
type IndexPath struct {
	Section int `json:"section"`
	Row     int `json:"row"`
}

// MonthKey identifies a section.
type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

func monthOf(t time.Time, loc *time.Location) MonthKey {
	if loc != nil {
		t = t.In(loc)
	}
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

type Section struct {
	Key           MonthKey
	Registrations []models.Registration
}

// Book owns the flat sorted sequence and the sections derived from it.
type Book struct {
	loc      *time.Location
	flat     []models.Registration
	sections []Section
}

// New builds a book from regs in any order. loc selects the calendar for
// month keys; nil uses each timestamp's own location.
func New(loc *time.Location, regs ...models.Registration) *Book {
	flat := slices.Clone(regs)
	slices.SortStableFunc(flat, models.CompareStable)
	b := &Book{loc: loc, flat: flat}
	b.regroup()
	return b
}

func (b *Book) Len() int {
	return len(b.flat)
}

// All returns deep copies of the registrations in order.
func (b *Book) All() []models.Registration {
	return cloneAll(b.flat)
}

// Sections returns the month sections in chronological order.
func (b *Book) Sections() []Section {
	out := make([]Section, len(b.sections))
	for i, s := range b.sections {
		out[i] = Section{Key: s.Key, Registrations: cloneAll(s.Registrations)}
	}
	return out
}

func (b *Book) At(p IndexPath) (models.Registration, bool) {
	if p.Section < 0 || p.Section >= len(b.sections) {
		return models.Registration{}, false
	}
	rows := b.sections[p.Section].Registrations
	if p.Row < 0 || p.Row >= len(rows) {
		return models.Registration{}, false
	}
	return rows[p.Row].Clone(), true
}

func cloneAll(regs []models.Registration) []models.Registration {
	out := make([]models.Registration, len(regs))
	for i, r := range regs {
		out[i] = r.Clone()
	}
	return out
}

// IndexOf finds a registration by id.
func (b *Book) IndexOf(id string) (IndexPath, bool) {
	for i, r := range b.flat {
		if r.ID == id {
			return b.PathFor(i), true
		}
	}
	return IndexPath{}, false
}

// InsertionIndex is the lower bound of reg in sorted.
func InsertionIndex(sorted []models.Registration, reg models.Registration) int {
	i, _ := slices.BinarySearchFunc(sorted, reg, models.CompareStable)
	return i
}

// InsertSorted adds reg and returns its flat index.
func (b *Book) InsertSorted(reg models.Registration) int {
	i := InsertionIndex(b.flat, reg)
	b.flat = slices.Insert(b.flat, i, reg)
	b.regroup()
	return i
}

// Remove deletes the registration at p and drops its section if it
// became empty. An invalid path panics.
func (b *Book) Remove(p IndexPath) models.Registration {
	flat := b.FlatIndex(p)
	removed := b.flat[flat]
	b.flat = slices.Delete(b.flat, flat, flat+1)

	s := &b.sections[p.Section]
	s.Registrations = slices.Delete(s.Registrations, p.Row, p.Row+1)
	if len(s.Registrations) == 0 {
		b.sections = slices.Delete(b.sections, p.Section, p.Section+1)
	}
	return removed
}

// Replace swaps the registration at p for reg. The new entry may land in a
// different section, so the new flat index is returned.
func (b *Book) Replace(p IndexPath, reg models.Registration) int {
	b.Remove(p)
	return b.InsertSorted(reg)
}

// CanEdit reports whether the registration at p may still be changed.
func (b *Book) CanEdit(p IndexPath, now time.Time) bool {
	reg, ok := b.At(p)
	return ok && reg.IsEditable(now)
}

// PathFor converts a flat index into a section path. An out-of-range
// index panics.
func (b *Book) PathFor(flat int) IndexPath {
	if flat < 0 || flat >= len(b.flat) {
		panic(fmt.Sprintf("guestbook: flat index %d out of range [0,%d)", flat, len(b.flat)))
	}
	rest := flat
	for i, s := range b.sections {
		if rest < len(s.Registrations) {
			return IndexPath{Section: i, Row: rest}
		}
		rest -= len(s.Registrations)
	}
	panic("guestbook: sections out of sync with registrations")
}

// FlatIndex converts a section path into a flat index. An invalid path
// panics.
func (b *Book) FlatIndex(p IndexPath) int {
	if _, ok := b.At(p); !ok {
		panic(fmt.Sprintf("guestbook: index path %+v out of range", p))
	}
	flat := p.Row
	for _, s := range b.sections[:p.Section] {
		flat += len(s.Registrations)
	}
	return flat
}

func (b *Book) regroup() {
	b.sections = Regroup(b.flat, b.loc)
}

// Regroup partitions flat into contiguous runs sharing the check-in month.
// flat must already be sorted by check-in date; unsorted input yields the
// same month more than once.
func Regroup(flat []models.Registration, loc *time.Location) []Section {
	var sections []Section
	for _, r := range flat {
		key := monthOf(r.CheckInDate, loc)
		if n := len(sections); n > 0 && sections[n-1].Key == key {
			sections[n-1].Registrations = append(sections[n-1].Registrations, r)
			continue
		}
		sections = append(sections, Section{Key: key, Registrations: []models.Registration{r}})
	}
	return sections
}

// IsSorted reports whether regs satisfy the Regroup precondition.
func IsSorted(regs []models.Registration) bool {
	return slices.IsSortedFunc(regs, models.Compare)
}
