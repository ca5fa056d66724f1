package schedule

import (
	"time"

	"github.com/javiermolinar/consulta/internal/appointment"
)

// MinDurationMinutes is the floor a resize clamps to.
const MinDurationMinutes = 15

// ActivationDistance is how far the pointer must travel, in grid
// units on either axis, before a press becomes a drag. Below it a
// press-and-release is a plain click.
const ActivationDistance = 1

// DragState is the interpreter's state machine position.
type DragState int

const (
	DragIdle DragState = iota
	DragMove
	DragResize
)

// MoveStart computes the new start time for a move: the card's
// rendered top within its column, shifted by the cumulative vertical
// delta and converted back through the inverse geometry mapping. The
// drop column supplies the date; the delta supplies the time of day.
func MoveStart(a *appointment.Appointment, g Geometry, startHour, dy int, dropDate time.Time) time.Time {
	origin := startHour * 60 * g.SlotHeight / g.Interval
	top := g.TimeToTop(a.Start) - origin
	return g.OffsetToTime(top+dy, startHour, dropDate)
}

// ResizeDuration computes the new duration for a resize: the vertical
// delta converted to minutes, snapped to the interval grid, applied to
// the original duration and clamped at MinDurationMinutes.
func ResizeDuration(a *appointment.Appointment, g Geometry, dy int) int {
	minutes := float64(dy) / g.UnitsPerMinute()
	next := a.Duration() + g.SnapMinutes(minutes)
	if next < MinDurationMinutes {
		return MinDurationMinutes
	}
	return next
}

// Drag interprets pointer deltas on an appointment card as discrete
// slot mutations. It is independent of the input library: callers
// feed it press, track, and release coordinates and read back the
// resulting appointment, so the math is testable without simulating
// pointer events.
type Drag struct {
	state   DragState
	pending DragState // armed on press, promoted once past the threshold

	geom      Geometry
	startHour int

	appt           *appointment.Appointment
	pressX, pressY int
	curX, curY     int
}

// NewDrag creates an idle interpreter for the given geometry.
func NewDrag(geom Geometry, startHour int) *Drag {
	return &Drag{geom: geom, startHour: startHour}
}

// State returns the current state machine position.
func (d *Drag) State() DragState {
	return d.state
}

// Appointment returns the card under interpretation, or nil when idle.
func (d *Drag) Appointment() *appointment.Appointment {
	return d.appt
}

// PressMove arms a move drag on a card. No state transition happens
// until the pointer travels past the activation distance.
func (d *Drag) PressMove(a *appointment.Appointment, x, y int) {
	d.press(a, DragMove, x, y)
}

// PressResize arms a resize drag on a card's bottom handle.
func (d *Drag) PressResize(a *appointment.Appointment, x, y int) {
	d.press(a, DragResize, x, y)
}

func (d *Drag) press(a *appointment.Appointment, kind DragState, x, y int) {
	if d.state != DragIdle || a == nil {
		return
	}
	d.pending = kind
	d.appt = a
	d.pressX, d.pressY = x, y
	d.curX, d.curY = x, y
}

// Track records pointer motion. An armed press is promoted to a drag
// once either axis moves at least ActivationDistance.
func (d *Drag) Track(x, y int) {
	if d.appt == nil {
		return
	}
	d.curX, d.curY = x, y

	if d.state == DragIdle && d.pending != DragIdle {
		dx := abs(x - d.pressX)
		dy := abs(y - d.pressY)
		if dx >= ActivationDistance || dy >= ActivationDistance {
			d.state = d.pending
		}
	}
}

// DeltaY returns the cumulative vertical delta since the press.
func (d *Drag) DeltaY() int {
	return d.curY - d.pressY
}

// MovePreview returns the card as it would land in the given drop
// column, for rendering drag feedback. Returns nil unless moving.
func (d *Drag) MovePreview(dropDate time.Time) *appointment.Appointment {
	if d.state != DragMove {
		return nil
	}
	return d.appt.Moved(MoveStart(d.appt, d.geom, d.startHour, d.DeltaY(), dropDate))
}

// ResizePreview returns the card at its would-be duration. Returns
// nil unless resizing.
func (d *Drag) ResizePreview() *appointment.Appointment {
	if d.state != DragResize {
		return nil
	}
	return d.appt.Resized(ResizeDuration(d.appt, d.geom, d.DeltaY()))
}

// Release ends the drag and returns the mutated appointment, or nil
// when nothing should be written:
//   - a press that never passed the threshold (a plain click),
//   - a move released without a valid drop column (hasDrop false),
//   - a move or resize whose snapped result equals the original.
//
// The interpreter returns to idle either way; committing the result
// to the store is the caller's job.
func (d *Drag) Release(dropDate time.Time, hasDrop bool) *appointment.Appointment {
	defer d.reset()

	switch d.state {
	case DragMove:
		if !hasDrop {
			return nil
		}
		next := d.appt.Moved(MoveStart(d.appt, d.geom, d.startHour, d.DeltaY(), dropDate))
		if next.Start.Equal(d.appt.Start) {
			return nil
		}
		return next

	case DragResize:
		duration := ResizeDuration(d.appt, d.geom, d.DeltaY())
		if duration == d.appt.Duration() {
			return nil
		}
		return d.appt.Resized(duration)

	default:
		return nil
	}
}

// Cancel aborts any drag in progress without producing a mutation.
func (d *Drag) Cancel() {
	d.reset()
}

func (d *Drag) reset() {
	d.state = DragIdle
	d.pending = DragIdle
	d.appt = nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
