package schedule

import (
	"math"
	"time"
)

// MinCardHeight is the floor for a rendered appointment card, so
// sub-interval appointments stay legible and selectable.
const MinCardHeight = 1

// Geometry maps between wall-clock times and vertical grid offsets.
// SlotHeight is the rendered height of one interval in grid units
// (terminal rows here, but the math is unit-agnostic).
type Geometry struct {
	SlotHeight int
	Interval   int
}

// TimeToTop returns the vertical offset of a time-of-day measured from
// 00:00, in grid units. Times are read in local wall-clock terms.
func (g Geometry) TimeToTop(t time.Time) int {
	mins := t.Hour()*60 + t.Minute()
	return mins * g.SlotHeight / g.Interval
}

// DurationToHeight returns the rendered height for a duration in
// minutes, floored at MinCardHeight.
func (g Geometry) DurationToHeight(durationMin int) int {
	h := durationMin * g.SlotHeight / g.Interval
	if h < MinCardHeight {
		return MinCardHeight
	}
	return h
}

// UnitsPerMinute returns the vertical grid units covered by one minute.
func (g Geometry) UnitsPerMinute() float64 {
	return float64(g.SlotHeight) / float64(g.Interval)
}

// OffsetToTime is the inverse mapping: a vertical offset measured from
// startHour:00 of baseDate becomes a wall-clock time. The offset is
// clamped at zero and rounded to the nearest slot boundary, so a drag
// landing mid-slot snaps to the nearer edge.
func (g Geometry) OffsetToTime(offset int, startHour int, baseDate time.Time) time.Time {
	if offset < 0 {
		offset = 0
	}
	slots := int(math.Round(float64(offset) / float64(g.SlotHeight)))
	mins := startHour*60 + slots*g.Interval

	return time.Date(
		baseDate.Year(), baseDate.Month(), baseDate.Day(),
		0, 0, 0, 0, baseDate.Location(),
	).Add(time.Duration(mins) * time.Minute)
}

// SnapMinutes rounds a minute delta to the nearest interval multiple.
func (g Geometry) SnapMinutes(mins float64) int {
	return int(math.Round(mins/float64(g.Interval))) * g.Interval
}
