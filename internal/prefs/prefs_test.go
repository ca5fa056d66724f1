package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/consulta/internal/schedule"
)

func TestRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	want := schedule.WorkingHours{StartHour: 9, EndHour: 17}
	if err := store.SaveWorkingHours(want); err != nil {
		t.Fatalf("SaveWorkingHours: %v", err)
	}

	if got := store.LoadWorkingHours(); got != want {
		t.Errorf("LoadWorkingHours() = %+v, want %+v", got, want)
	}
}

func TestLoadMissingFallsBack(t *testing.T) {
	store := NewStore(t.TempDir())

	if got := store.LoadWorkingHours(); got != schedule.DefaultWorkingHours() {
		t.Errorf("LoadWorkingHours() = %+v, want defaults", got)
	}
}

func TestLoadCorruptFallsBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hours.toml"), []byte("{{not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)
	if got := store.LoadWorkingHours(); got != schedule.DefaultWorkingHours() {
		t.Errorf("LoadWorkingHours() on corrupt file = %+v, want defaults", got)
	}
}

func TestLoadInvalidValuesFallsBack(t *testing.T) {
	dir := t.TempDir()
	content := "start_hour = 20\nend_hour = 8\n"
	if err := os.WriteFile(filepath.Join(dir, "hours.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)
	if got := store.LoadWorkingHours(); got != schedule.DefaultWorkingHours() {
		t.Errorf("LoadWorkingHours() on reversed hours = %+v, want defaults", got)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.SaveWorkingHours(schedule.WorkingHours{StartHour: 20, EndHour: 8}); err == nil {
		t.Error("SaveWorkingHours accepted reversed hours")
	}
}
