// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/consulta/internal/appointment"
)

// SQLite implements appointment.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const apptColumns = `id, patient_name, patient_phone, patient_email,
	start_time, end_time, type, status, notes, new_patient, created_at`

// Create adds a new appointment.
func (s *SQLite) Create(ctx context.Context, a *appointment.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, patient_name, patient_phone, patient_email,
			start_time, end_time, type, status, notes, new_patient, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		a.ID,
		a.PatientName,
		a.PatientPhone,
		a.PatientEmail,
		a.Start.Format(time.RFC3339),
		a.End.Format(time.RFC3339),
		a.Type,
		a.Status,
		a.Notes,
		a.NewPatient,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting appointment: %w", err)
	}

	return nil
}

// Get retrieves an appointment by ID. Returns nil, nil when absent.
func (s *SQLite) Get(ctx context.Context, id string) (*appointment.Appointment, error) {
	query := `SELECT ` + apptColumns + ` FROM appointments WHERE id = ?`

	a, err := scanAppointment(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying appointment: %w", err)
	}
	return a, nil
}

// ListByDateRange returns appointments starting within the inclusive
// date range, ordered by start time.
func (s *SQLite) ListByDateRange(ctx context.Context, start, end time.Time) ([]*appointment.Appointment, error) {
	query := `
		SELECT ` + apptColumns + `
		FROM appointments
		WHERE start_time >= ? AND start_time < ?
		ORDER BY start_time, id
	`

	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)

	rows, err := s.db.QueryContext(ctx, query, from.Format(time.RFC3339), to.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("querying appointments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var appts []*appointment.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning appointment: %w", err)
		}
		appts = append(appts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointments: %w", err)
	}

	return appts, nil
}

// Update persists the mutable fields of an appointment. ID and
// new_patient are never written by an update.
func (s *SQLite) Update(ctx context.Context, a *appointment.Appointment) error {
	query := `
		UPDATE appointments
		SET patient_name = ?, patient_phone = ?, patient_email = ?,
		    start_time = ?, end_time = ?, type = ?, status = ?, notes = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		a.PatientName,
		a.PatientPhone,
		a.PatientEmail,
		a.Start.Format(time.RFC3339),
		a.End.Format(time.RFC3339),
		a.Type,
		a.Status,
		a.Notes,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating appointment: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return appointment.ErrNotFound
	}

	return nil
}

// UpdateStatus updates only the lifecycle status.
func (s *SQLite) UpdateStatus(ctx context.Context, id string, status appointment.Status) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE appointments SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return appointment.ErrNotFound
	}

	return nil
}

// BatchUpdateTimes applies several interval changes atomically, used
// when a drag session is saved.
func (s *SQLite) BatchUpdateTimes(ctx context.Context, updates []appointment.TimeUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`UPDATE appointments SET start_time = ?, end_time = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("preparing update: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, u := range updates {
		result, err := stmt.ExecContext(ctx,
			u.NewStart.Format(time.RFC3339), u.NewEnd.Format(time.RFC3339), u.ID)
		if err != nil {
			return fmt.Errorf("updating appointment %s: %w", u.ID, err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return fmt.Errorf("appointment %s: %w", u.ID, appointment.ErrNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch update: %w", err)
	}

	return nil
}

// Delete removes an appointment.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return appointment.ErrNotFound
	}

	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row scanner) (*appointment.Appointment, error) {
	var (
		a         appointment.Appointment
		startTime string
		endTime   string
		createdAt string
	)

	err := row.Scan(
		&a.ID,
		&a.PatientName,
		&a.PatientPhone,
		&a.PatientEmail,
		&startTime,
		&endTime,
		&a.Type,
		&a.Status,
		&a.Notes,
		&a.NewPatient,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if a.Start, err = time.Parse(time.RFC3339, startTime); err != nil {
		return nil, fmt.Errorf("parsing start time: %w", err)
	}
	if a.End, err = time.Parse(time.RFC3339, endTime); err != nil {
		return nil, fmt.Errorf("parsing end time: %w", err)
	}
	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	return &a, nil
}
