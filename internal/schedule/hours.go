package schedule

import (
	"errors"
	"fmt"
)

// Working-hours errors.
var (
	ErrInvalidHours = errors.New("working hours must satisfy 0 <= start < end <= 24")
)

// Default working hours used when no valid persisted value exists.
const (
	DefaultStartHour = 8
	DefaultEndHour   = 18
)

// WorkingHours is the configured open/close window of the office.
// Slots outside the window render muted; booking outside the window
// is still allowed.
type WorkingHours struct {
	StartHour int
	EndHour   int
}

// DefaultWorkingHours returns the documented fallback window.
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{StartHour: DefaultStartHour, EndHour: DefaultEndHour}
}

// Validate checks the invariant 0 <= start < end <= 24 with a window
// of at least one hour.
func (w WorkingHours) Validate() error {
	if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour || w.EndHour-w.StartHour < 1 {
		return fmt.Errorf("%w: got %d-%d", ErrInvalidHours, w.StartHour, w.EndHour)
	}
	return nil
}

// Contains reports whether a slot's hour falls inside the window,
// half-open: [StartHour, EndHour).
func (w WorkingHours) Contains(slot TimeSlot) bool {
	if slot.Hour == w.EndHour && slot.Minute == 0 {
		return false
	}
	return slot.Hour >= w.StartHour && slot.Hour < w.EndHour
}

// HoursState holds the current working hours behind a validated
// setter. It is an explicit dependency of the lattice and the slot
// renderers rather than package-level state, so the engine stays
// testable without a terminal or persistence layer attached.
type HoursState struct {
	current WorkingHours

	// onSave, when set, persists each accepted update. Persistence
	// failures are reported through onDiag, never surfaced as errors.
	onSave func(WorkingHours) error
	onDiag func(format string, args ...any)
}

// HoursOption configures optional HoursState behavior.
type HoursOption func(*HoursState)

// WithSave installs the persistence hook called on every accepted set.
func WithSave(save func(WorkingHours) error) HoursOption {
	return func(s *HoursState) { s.onSave = save }
}

// WithDiagnostics installs the diagnostic sink for rejected updates
// and persistence failures.
func WithDiagnostics(diag func(format string, args ...any)) HoursOption {
	return func(s *HoursState) { s.onDiag = diag }
}

// NewHoursState creates hours state from an initial value, falling
// back to the defaults when the initial value is invalid.
func NewHoursState(initial WorkingHours, opts ...HoursOption) *HoursState {
	s := &HoursState{current: initial}
	for _, opt := range opts {
		opt(s)
	}
	if err := initial.Validate(); err != nil {
		s.diag("working hours %d-%d invalid, using defaults: %v", initial.StartHour, initial.EndHour, err)
		s.current = DefaultWorkingHours()
	}
	return s
}

// Get returns the current working hours.
func (s *HoursState) Get() WorkingHours {
	return s.current
}

// Set applies a new window. Invalid values are rejected: the previous
// state is retained and a diagnostic is emitted, since this is
// user-facing configuration rather than a programming error. The
// returned error carries the same diagnostic for callers that show a
// status line.
func (s *HoursState) Set(hours WorkingHours) error {
	if err := hours.Validate(); err != nil {
		s.diag("rejected working hours update: %v", err)
		return err
	}

	s.current = hours
	if s.onSave != nil {
		if err := s.onSave(hours); err != nil {
			s.diag("persisting working hours: %v", err)
		}
	}
	return nil
}

func (s *HoursState) diag(format string, args ...any) {
	if s.onDiag != nil {
		s.onDiag(format, args...)
	}
}
