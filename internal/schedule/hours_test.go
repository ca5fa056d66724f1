package schedule

import (
	"errors"
	"fmt"
	"testing"
)

func TestWorkingHoursValidate(t *testing.T) {
	tests := []struct {
		name    string
		hours   WorkingHours
		wantErr bool
	}{
		{"office hours", WorkingHours{8, 18}, false},
		{"full day", WorkingHours{0, 24}, false},
		{"single hour", WorkingHours{9, 10}, false},
		{"reversed", WorkingHours{20, 8}, true},
		{"equal", WorkingHours{9, 9}, true},
		{"negative start", WorkingHours{-1, 18}, true},
		{"end past midnight", WorkingHours{8, 25}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hours.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.hours, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidHours) {
				t.Errorf("error %v is not ErrInvalidHours", err)
			}
		})
	}
}

func TestHoursStateRejectsInvalidSet(t *testing.T) {
	var diags []string
	state := NewHoursState(WorkingHours{8, 20}, WithDiagnostics(func(format string, args ...any) {
		diags = append(diags, fmt.Sprintf(format, args...))
	}))

	if err := state.Set(WorkingHours{20, 8}); err == nil {
		t.Fatal("Set with reversed hours succeeded, want rejection")
	}

	if got := state.Get(); got != (WorkingHours{8, 20}) {
		t.Errorf("state after rejected set = %+v, want unchanged {8 20}", got)
	}
	if len(diags) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(diags))
	}
}

func TestHoursStateAcceptsAndPersists(t *testing.T) {
	var saved []WorkingHours
	state := NewHoursState(WorkingHours{8, 18}, WithSave(func(h WorkingHours) error {
		saved = append(saved, h)
		return nil
	}))

	if err := state.Set(WorkingHours{9, 17}); err != nil {
		t.Fatalf("Set(9, 17): %v", err)
	}
	if got := state.Get(); got != (WorkingHours{9, 17}) {
		t.Errorf("Get() = %+v, want {9 17}", got)
	}
	if len(saved) != 1 || saved[0] != (WorkingHours{9, 17}) {
		t.Errorf("saved = %v, want one record {9 17}", saved)
	}
}

func TestHoursStatePersistFailureKeepsState(t *testing.T) {
	state := NewHoursState(WorkingHours{8, 18}, WithSave(func(WorkingHours) error {
		return errors.New("disk full")
	}))

	// Persistence failure is reported, not surfaced: the in-memory
	// update still applies.
	if err := state.Set(WorkingHours{9, 17}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := state.Get(); got != (WorkingHours{9, 17}) {
		t.Errorf("Get() = %+v, want {9 17}", got)
	}
}

func TestNewHoursStateFallsBackToDefaults(t *testing.T) {
	state := NewHoursState(WorkingHours{17, 9})
	if got := state.Get(); got != DefaultWorkingHours() {
		t.Errorf("Get() = %+v, want defaults %+v", got, DefaultWorkingHours())
	}
}

func TestWorkingHoursContains(t *testing.T) {
	w := WorkingHours{8, 18}

	tests := []struct {
		slot TimeSlot
		want bool
	}{
		{TimeSlot{Hour: 8, Minute: 0}, true},
		{TimeSlot{Hour: 17, Minute: 30}, true},
		{TimeSlot{Hour: 18, Minute: 0}, false}, // boundary marker is closed
		{TimeSlot{Hour: 7, Minute: 45}, false},
		{TimeSlot{Hour: 20, Minute: 0}, false},
	}

	for _, tt := range tests {
		if got := w.Contains(tt.slot); got != tt.want {
			t.Errorf("Contains(%02d:%02d) = %v, want %v", tt.slot.Hour, tt.slot.Minute, got, tt.want)
		}
	}
}
