package schedule

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2030, 3, 4, hour, min, 0, 0, time.UTC)
}

func TestTimeToTop(t *testing.T) {
	tests := []struct {
		name string
		geom Geometry
		time time.Time
		want int
	}{
		{"nine o'clock, 30min slots of 60", Geometry{SlotHeight: 60, Interval: 30}, at(9, 0), 1080},
		{"midnight", Geometry{SlotHeight: 60, Interval: 30}, at(0, 0), 0},
		{"half slot", Geometry{SlotHeight: 60, Interval: 30}, at(0, 15), 30},
		{"terminal rows", Geometry{SlotHeight: 2, Interval: 15}, at(8, 30), 68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.geom.TimeToTop(tt.time); got != tt.want {
				t.Errorf("TimeToTop(%s) = %d, want %d", tt.time.Format("15:04"), got, tt.want)
			}
		})
	}
}

func TestDurationToHeight(t *testing.T) {
	g := Geometry{SlotHeight: 60, Interval: 30}

	if got := g.DurationToHeight(60); got != 120 {
		t.Errorf("DurationToHeight(60) = %d, want 120", got)
	}
	if got := g.DurationToHeight(30); got != 60 {
		t.Errorf("DurationToHeight(30) = %d, want 60", got)
	}

	// Sub-interval durations floor at the minimum card height.
	small := Geometry{SlotHeight: 1, Interval: 60}
	if got := small.DurationToHeight(5); got != MinCardHeight {
		t.Errorf("DurationToHeight(5) = %d, want floor %d", got, MinCardHeight)
	}
}

func TestOffsetToTime(t *testing.T) {
	base := time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)
	g := Geometry{SlotHeight: 60, Interval: 30}

	tests := []struct {
		name      string
		offset    int
		startHour int
		want      string
	}{
		{"origin is start hour", 0, 8, "08:00"},
		{"one slot down", 60, 8, "08:30"},
		{"negative offset clamps", -25, 8, "08:00"},
		{"mid-slot rounds to nearer edge", 89, 8, "08:30"},
		{"exact half rounds up", 30, 8, "08:30"},
		{"just under half rounds down", 29, 8, "08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.OffsetToTime(tt.offset, tt.startHour, base)
			if got.Format("15:04") != tt.want {
				t.Errorf("OffsetToTime(%d, %d) = %s, want %s",
					tt.offset, tt.startHour, got.Format("15:04"), tt.want)
			}
			if !got.Truncate(24 * time.Hour).Equal(base) {
				t.Errorf("OffsetToTime moved off the base date: %s", got)
			}
		})
	}
}

// The forward and inverse mappings must be mutual near-inverses so
// drag feedback stays stable: round-tripping any time lands within
// one slot interval of the original.
func TestGeometryRoundTrip(t *testing.T) {
	base := time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)

	for _, interval := range []int{15, 30, 60} {
		for _, slotHeight := range []int{1, 2, 3, 60} {
			g := Geometry{SlotHeight: slotHeight, Interval: interval}
			for mins := 0; mins < 24*60; mins += 7 {
				orig := base.Add(time.Duration(mins) * time.Minute)
				got := g.OffsetToTime(g.TimeToTop(orig), 0, base)

				diff := got.Sub(orig)
				if diff < 0 {
					diff = -diff
				}
				if diff > time.Duration(interval)*time.Minute {
					t.Fatalf("interval=%d slotHeight=%d: %s round-tripped to %s (off by %s)",
						interval, slotHeight, orig.Format("15:04"), got.Format("15:04"), diff)
				}
			}
		}
	}
}

func TestSnapMinutes(t *testing.T) {
	g := Geometry{SlotHeight: 60, Interval: 30}

	tests := []struct {
		mins float64
		want int
	}{
		{0, 0},
		{20, 30},
		{14, 0},
		{15, 30},
		{-20, -30},
		{44, 30},
		{46, 60},
	}

	for _, tt := range tests {
		if got := g.SnapMinutes(tt.mins); got != tt.want {
			t.Errorf("SnapMinutes(%v) = %d, want %d", tt.mins, got, tt.want)
		}
	}
}
