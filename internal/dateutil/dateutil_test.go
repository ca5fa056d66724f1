package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2030-03-04")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Year() != 2030 || got.Month() != time.March || got.Day() != 4 {
		t.Errorf("ParseDate = %v", got)
	}

	if _, err := ParseDate("04/03/2030"); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("ParseDate with slashes: error = %v, want ErrInvalidDateFormat", err)
	}

	today, err := ParseDate("")
	if err != nil {
		t.Fatalf("ParseDate(\"\"): %v", err)
	}
	if !SameDay(today, time.Now()) {
		t.Errorf("ParseDate(\"\") = %v, want today", today)
	}
}

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange("2030-03-04", "2030-03-06")
	if err != nil {
		t.Fatalf("NewDateRange: %v", err)
	}
	if r.End.Sub(r.Start) != 48*time.Hour {
		t.Errorf("range span = %v, want 48h", r.End.Sub(r.Start))
	}

	if _, err := NewDateRange("2030-03-06", "2030-03-04"); !errors.Is(err, ErrEndDateBeforeStart) {
		t.Errorf("reversed range: error = %v, want ErrEndDateBeforeStart", err)
	}

	single, err := NewDateRange("2030-03-04", "")
	if err != nil {
		t.Fatalf("single-day range: %v", err)
	}
	if !single.Start.Equal(single.End) {
		t.Error("empty end date should default to start date")
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wednesday", "2030-03-06", "2030-03-04"},
		{"monday", "2030-03-04", "2030-03-04"},
		{"sunday", "2030-03-10", "2030-03-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _ := time.Parse("2006-01-02", tt.in)
			if got := StartOfWeek(in).Format("2006-01-02"); got != tt.want {
				t.Errorf("StartOfWeek(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
