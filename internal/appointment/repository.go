package appointment

import (
	"context"
	"time"
)

// TimeUpdate represents one appointment's new interval for batch updates
// committed at the end of a drag session.
type TimeUpdate struct {
	ID       string
	NewStart time.Time
	NewEnd   time.Time
}

// Repository defines the storage interface for appointments.
type Repository interface {
	// Create adds a new appointment.
	Create(ctx context.Context, appt *Appointment) error

	// Get retrieves an appointment by ID. Returns nil, nil when absent.
	Get(ctx context.Context, id string) (*Appointment, error)

	// ListByDateRange returns appointments starting within [start, end],
	// inclusive of both days, ordered by start time.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*Appointment, error)

	// Update persists the mutable fields of an appointment.
	// ID and NewPatient are never changed by an update.
	Update(ctx context.Context, appt *Appointment) error

	// UpdateStatus updates only the lifecycle status.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// BatchUpdateTimes applies several interval changes atomically,
	// used when a drag session is saved.
	BatchUpdateTimes(ctx context.Context, updates []TimeUpdate) error

	// Delete removes an appointment.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the repository.
	Close() error
}
