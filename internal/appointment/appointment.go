// Package appointment defines the core domain types for consulta.
package appointment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrEmptyPatientName = errors.New("patient name cannot be empty")
	ErrInvalidType      = errors.New("unknown appointment type")
	ErrInvalidStatus    = errors.New("unknown appointment status")
	ErrEndBeforeStart   = errors.New("end time must be after start time")
)

// Domain errors.
var (
	ErrNotFound = errors.New("appointment not found")
)

// Type classifies the visit.
type Type string

const (
	TypeFirstVisit Type = "first-visit"
	TypeFollowUp   Type = "follow-up"
	TypeProcedure  Type = "procedure"
	TypeEmergency  Type = "emergency"
)

// Types lists all appointment types in display order.
func Types() []Type {
	return []Type{TypeFirstVisit, TypeFollowUp, TypeProcedure, TypeEmergency}
}

// Valid returns true if the type is a known value.
func (t Type) Valid() bool {
	switch t {
	case TypeFirstVisit, TypeFollowUp, TypeProcedure, TypeEmergency:
		return true
	default:
		return false
	}
}

// Status represents the lifecycle state of an appointment.
type Status string

const (
	StatusBooked    Status = "booked"
	StatusConfirmed Status = "confirmed"
	StatusArrived   Status = "arrived"
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no-show"
	StatusCancelled Status = "cancelled"
)

// Statuses lists all statuses in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusBooked, StatusConfirmed, StatusArrived, StatusStarted,
		StatusCompleted, StatusNoShow, StatusCancelled,
	}
}

// Valid returns true if the status is a known value.
func (s Status) Valid() bool {
	switch s {
	case StatusBooked, StatusConfirmed, StatusArrived, StatusStarted,
		StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	default:
		return false
	}
}

// Next returns the following status in the front-desk workflow.
// Terminal statuses return themselves.
func (s Status) Next() Status {
	switch s {
	case StatusBooked:
		return StatusConfirmed
	case StatusConfirmed:
		return StatusArrived
	case StatusArrived:
		return StatusStarted
	case StatusStarted:
		return StatusCompleted
	default:
		return s
	}
}

// Appointment represents one booked visit on the grid.
// ID and NewPatient are fixed at creation time. End is always
// Start plus the duration; mutate through Move and Resize to keep
// that invariant.
type Appointment struct {
	ID           string
	PatientName  string
	PatientPhone string
	PatientEmail string
	Start        time.Time
	End          time.Time
	Type         Type
	Status       Status
	Notes        string
	NewPatient   bool
	CreatedAt    time.Time
}

// New creates a new Appointment with validation.
// start and end are wall-clock times on the same day; end must be
// strictly after start.
func New(patientName string, typ Type, start, end time.Time, newPatient bool) (*Appointment, error) {
	if strings.TrimSpace(patientName) == "" {
		return nil, ErrEmptyPatientName
	}
	if !typ.Valid() {
		return nil, ErrInvalidType
	}
	if !end.After(start) {
		return nil, ErrEndBeforeStart
	}

	return &Appointment{
		ID:          uuid.NewString(),
		PatientName: strings.TrimSpace(patientName),
		Start:       start,
		End:         end,
		Type:        typ,
		Status:      StatusBooked,
		NewPatient:  newPatient,
		CreatedAt:   time.Now(),
	}, nil
}

// Duration returns the appointment length in minutes, derived from
// the interval bounds.
func (a *Appointment) Duration() int {
	return int(a.End.Sub(a.Start).Minutes())
}

// Moved returns a copy starting at newStart with the duration preserved.
func (a *Appointment) Moved(newStart time.Time) *Appointment {
	dup := *a
	dup.End = newStart.Add(a.End.Sub(a.Start))
	dup.Start = newStart
	return &dup
}

// Resized returns a copy with the given duration in minutes.
// The start time is never altered by a resize.
func (a *Appointment) Resized(durationMin int) *Appointment {
	dup := *a
	dup.End = a.Start.Add(time.Duration(durationMin) * time.Minute)
	return &dup
}

// Overlaps reports whether two appointments intersect, using half-open
// interval semantics: a.Start < b.End && a.End > b.Start.
func (a *Appointment) Overlaps(b *Appointment) bool {
	if b == nil {
		return false
	}
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// SameDay reports whether the appointment falls on the given calendar day.
func (a *Appointment) SameDay(day time.Time) bool {
	y1, m1, d1 := a.Start.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsCancelled returns true for cancelled appointments.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// Label returns a short human-readable line for lists and the clipboard.
func (a *Appointment) Label() string {
	flag := ""
	if a.NewPatient {
		flag = " (new patient)"
	}
	return fmt.Sprintf("%s %s-%s %s [%s/%s]%s",
		a.Start.Format("2006-01-02"),
		a.Start.Format("15:04"),
		a.End.Format("15:04"),
		a.PatientName,
		a.Type,
		a.Status,
		flag,
	)
}
