// Package schedule implements the calendar engine: the time-slot
// lattice, geometry mapping between times and grid offsets, overlap
// lane assignment, working hours, and drag interpretation. Everything
// here is pure and safe to call on every render frame.
package schedule

// Supported slot granularities in minutes.
const (
	Interval15 = 15
	Interval30 = 30
	Interval60 = 60
)

// ValidInterval returns true for the supported slot granularities.
func ValidInterval(interval int) bool {
	return interval == Interval15 || interval == Interval30 || interval == Interval60
}

// TimeSlot is one boundary in the day's lattice. Slots are value
// objects compared by (Hour, Minute) only.
type TimeSlot struct {
	Hour      int
	Minute    int
	HourStart bool
}

// Slots computes the ordered lattice of slot boundaries for one day.
// For each hour in [startHour, endHour] it emits sub-slots at every
// interval offset below 60, except the final hour which contributes
// only the boundary marker at endHour:00. The marker bounds the last
// bookable interval without itself being a valid appointment start.
//
// The ruler and the grid must call this with identical arguments;
// their pixel alignment depends on identical slot counts.
func Slots(startHour, endHour, interval int) []TimeSlot {
	if !ValidInterval(interval) || startHour > endHour {
		return nil
	}

	perHour := 60 / interval
	slots := make([]TimeSlot, 0, (endHour-startHour)*perHour+1)

	for h := startHour; h <= endHour; h++ {
		if h == endHour {
			slots = append(slots, TimeSlot{Hour: h, Minute: 0, HourStart: true})
			break
		}
		for m := 0; m < 60; m += interval {
			slots = append(slots, TimeSlot{Hour: h, Minute: m, HourStart: m == 0})
		}
	}

	return slots
}
