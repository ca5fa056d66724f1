package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS appointments (
			id            TEXT PRIMARY KEY,
			patient_name  TEXT NOT NULL,
			patient_phone TEXT NOT NULL DEFAULT '',
			patient_email TEXT NOT NULL DEFAULT '',
			start_time    DATETIME NOT NULL,
			end_time      DATETIME NOT NULL,
			type          TEXT CHECK(type IN ('first-visit', 'follow-up', 'procedure', 'emergency')),
			status        TEXT DEFAULT 'booked' CHECK(status IN ('booked', 'confirmed', 'arrived', 'started', 'completed', 'no-show', 'cancelled')),
			notes         TEXT NOT NULL DEFAULT '',
			new_patient   BOOLEAN NOT NULL DEFAULT 0,
			created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_appointments_start ON appointments(start_time);
		CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments(status);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating appointments table: %w", err)
	}

	return nil
}
