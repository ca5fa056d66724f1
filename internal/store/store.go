// Package store holds the in-memory appointment collection that the
// calendar session renders from and mutates. The store is the only
// owner of appointment values: reads hand out copies, and every
// mutation swaps in a fully-formed next value, so a render pass never
// observes a half-applied change.
package store

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/javiermolinar/consulta/internal/appointment"
	"github.com/javiermolinar/consulta/internal/dateutil"
)

// Store errors.
var (
	ErrDuplicateID   = errors.New("appointment id already exists")
	ErrNothingToUndo = errors.New("nothing to undo")
)

const defaultMaxHistory = 50

// Store is the session's authoritative appointment state. saved
// mirrors the repository; working accumulates edits until SaveChanges.
type Store struct {
	saved   map[string]*appointment.Appointment
	working map[string]*appointment.Appointment

	history    []map[string]*appointment.Appointment
	maxHistory int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		saved:      make(map[string]*appointment.Appointment),
		working:    make(map[string]*appointment.Appointment),
		maxHistory: defaultMaxHistory,
	}
}

// Load replaces the store contents, typically after a repository
// fetch. Loaded state counts as saved; history is cleared.
func (s *Store) Load(appts []*appointment.Appointment) {
	s.saved = make(map[string]*appointment.Appointment, len(appts))
	for _, a := range appts {
		if a == nil {
			continue
		}
		dup := *a
		s.saved[a.ID] = &dup
	}
	s.working = cloneSet(s.saved)
	s.history = nil
}

// Get returns a copy of an appointment, or nil when absent.
func (s *Store) Get(id string) *appointment.Appointment {
	a, ok := s.working[id]
	if !ok {
		return nil
	}
	dup := *a
	return &dup
}

// All returns copies of every appointment, ordered by (start, id).
func (s *Store) All() []*appointment.Appointment {
	result := make([]*appointment.Appointment, 0, len(s.working))
	for _, a := range s.working {
		dup := *a
		result = append(result, &dup)
	}
	sortAppts(result)
	return result
}

// Day returns copies of the appointments on one calendar day,
// ordered by (start, id). This is the consistent snapshot the lane
// and geometry computations run over for a render pass.
func (s *Store) Day(day time.Time) []*appointment.Appointment {
	var result []*appointment.Appointment
	for _, a := range s.working {
		if dateutil.SameDay(a.Start, day) {
			dup := *a
			result = append(result, &dup)
		}
	}
	sortAppts(result)
	return result
}

// Create adds a new appointment.
func (s *Store) Create(a *appointment.Appointment) error {
	if a == nil {
		return appointment.ErrNotFound
	}
	if _, exists := s.working[a.ID]; exists {
		return ErrDuplicateID
	}
	if !a.End.After(a.Start) {
		return appointment.ErrEndBeforeStart
	}

	s.pushHistory()
	dup := *a
	s.working[a.ID] = &dup
	return nil
}

// Apply replaces an appointment with a fully-formed next value. The
// immutable fields are carried over from the stored value, never from
// the argument. An update identical to the stored state is a no-op
// and does not touch history.
func (s *Store) Apply(next *appointment.Appointment) error {
	if next == nil {
		return appointment.ErrNotFound
	}
	current, ok := s.working[next.ID]
	if !ok {
		return appointment.ErrNotFound
	}
	if !next.End.After(next.Start) {
		return appointment.ErrEndBeforeStart
	}

	dup := *next
	dup.NewPatient = current.NewPatient
	dup.CreatedAt = current.CreatedAt

	if dup == *current {
		return nil
	}

	s.pushHistory()
	s.working[dup.ID] = &dup
	return nil
}

// SetStatus advances or sets an appointment's lifecycle status.
func (s *Store) SetStatus(id string, status appointment.Status) error {
	current, ok := s.working[id]
	if !ok {
		return appointment.ErrNotFound
	}
	if !status.Valid() {
		return appointment.ErrInvalidStatus
	}
	if current.Status == status {
		return nil
	}

	s.pushHistory()
	dup := *current
	dup.Status = status
	s.working[id] = &dup
	return nil
}

// Delete removes an appointment.
func (s *Store) Delete(id string) error {
	if _, ok := s.working[id]; !ok {
		return appointment.ErrNotFound
	}
	s.pushHistory()
	delete(s.working, id)
	return nil
}

// HasChanges reports whether the working state differs from saved.
func (s *Store) HasChanges() bool {
	if len(s.working) != len(s.saved) {
		return true
	}
	for id, w := range s.working {
		prev, ok := s.saved[id]
		if !ok || *prev != *w {
			return true
		}
	}
	return false
}

// CanUndo reports whether an undo step is available.
func (s *Store) CanUndo() bool {
	return len(s.history) > 0
}

// Undo reverts the last mutation.
func (s *Store) Undo() error {
	if len(s.history) == 0 {
		return ErrNothingToUndo
	}
	s.working = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	return nil
}

// pushHistory snapshots the working state before a mutation.
func (s *Store) pushHistory() {
	if len(s.history) >= s.maxHistory {
		s.history = s.history[1:]
	}
	s.history = append(s.history, cloneSet(s.working))
}

// SaveChanges persists the working state through the repository:
// created appointments are inserted, deleted ones removed, time-only
// changes batched atomically, and everything else updated in place.
// On success the working state becomes the saved state and history is
// cleared.
func (s *Store) SaveChanges(ctx context.Context, repo appointment.Repository) error {
	var timeUpdates []appointment.TimeUpdate

	for id, w := range s.working {
		prev, ok := s.saved[id]
		if !ok {
			if err := repo.Create(ctx, w); err != nil {
				return err
			}
			continue
		}
		if *prev == *w {
			continue
		}
		if timesOnlyChange(prev, w) {
			timeUpdates = append(timeUpdates, appointment.TimeUpdate{
				ID:       id,
				NewStart: w.Start,
				NewEnd:   w.End,
			})
			continue
		}
		if err := repo.Update(ctx, w); err != nil {
			return err
		}
	}

	for id := range s.saved {
		if _, ok := s.working[id]; !ok {
			if err := repo.Delete(ctx, id); err != nil {
				return err
			}
		}
	}

	sort.Slice(timeUpdates, func(i, j int) bool { return timeUpdates[i].ID < timeUpdates[j].ID })
	if err := repo.BatchUpdateTimes(ctx, timeUpdates); err != nil {
		return err
	}

	s.saved = cloneSet(s.working)
	s.history = nil
	return nil
}

// timesOnlyChange reports whether two versions differ only in their
// interval.
func timesOnlyChange(prev, next *appointment.Appointment) bool {
	a := *prev
	b := *next
	a.Start, a.End = time.Time{}, time.Time{}
	b.Start, b.End = time.Time{}, time.Time{}
	return a == b
}

func cloneSet(src map[string]*appointment.Appointment) map[string]*appointment.Appointment {
	dst := make(map[string]*appointment.Appointment, len(src))
	for id, a := range src {
		dup := *a
		dst[id] = &dup
	}
	return dst
}

func sortAppts(appts []*appointment.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		if !appts[i].Start.Equal(appts[j].Start) {
			return appts[i].Start.Before(appts[j].Start)
		}
		return appts[i].ID < appts[j].ID
	})
}
