// Package prefs persists user preferences that survive restarts.
// Working hours live in a small TOML record separate from the main
// config file, because the TUI rewrites them whenever the front desk
// changes the office window.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/consulta/internal/schedule"
)

// hoursFile is the storage key for the working-hours record.
const hoursFile = "hours.toml"

// hoursRecord is the on-disk shape: two integers, nothing else.
type hoursRecord struct {
	StartHour int `toml:"start_hour"`
	EndHour   int `toml:"end_hour"`
}

// DefaultDir returns the preferences directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "consulta")
}

// Store reads and writes persisted preferences under a directory.
type Store struct {
	dir string
}

// NewStore creates a preference store rooted at dir. An empty dir
// uses the default location.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{dir: dir}
}

// LoadWorkingHours reads the persisted window. Absent or malformed
// content falls back to the documented defaults rather than failing:
// corrupt preferences must never keep the calendar from starting.
func (s *Store) LoadWorkingHours() schedule.WorkingHours {
	data, err := os.ReadFile(filepath.Join(s.dir, hoursFile))
	if err != nil {
		return schedule.DefaultWorkingHours()
	}

	var rec hoursRecord
	if err := toml.Unmarshal(data, &rec); err != nil {
		return schedule.DefaultWorkingHours()
	}

	hours := schedule.WorkingHours{StartHour: rec.StartHour, EndHour: rec.EndHour}
	if err := hours.Validate(); err != nil {
		return schedule.DefaultWorkingHours()
	}
	return hours
}

// SaveWorkingHours writes the window, creating the directory on first
// use. Called on every accepted working-hours update.
func (s *Store) SaveWorkingHours(hours schedule.WorkingHours) error {
	if err := hours.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}

	data, err := toml.Marshal(hoursRecord{StartHour: hours.StartHour, EndHour: hours.EndHour})
	if err != nil {
		return fmt.Errorf("marshaling working hours: %w", err)
	}

	path := filepath.Join(s.dir, hoursFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing working hours: %w", err)
	}
	return nil
}
