package schedule

import (
	"testing"
	"time"
)

var dragGeom = Geometry{SlotHeight: 60, Interval: 30} // 2 units per minute

func day(yday int) time.Time {
	return time.Date(2030, 3, yday, 0, 0, 0, 0, time.UTC)
}

func TestMoveStartSameColumn(t *testing.T) {
	a := makeAppt("a", 9, 0, 60)

	// One slot height down is one interval later.
	got := MoveStart(a, dragGeom, 8, 60, day(4))
	if hm := got.Format("15:04"); hm != "09:30" {
		t.Errorf("MoveStart(+60) = %s, want 09:30", hm)
	}

	// Mid-slot deltas snap to the nearer slot edge.
	got = MoveStart(a, dragGeom, 8, 25, day(4))
	if hm := got.Format("15:04"); hm != "09:00" {
		t.Errorf("MoveStart(+25) = %s, want 09:00", hm)
	}
	got = MoveStart(a, dragGeom, 8, 35, day(4))
	if hm := got.Format("15:04"); hm != "09:30" {
		t.Errorf("MoveStart(+35) = %s, want 09:30", hm)
	}
}

func TestMoveStartAcrossColumns(t *testing.T) {
	// Dragging from Monday into Tuesday's column: the drop column
	// supplies the date, the vertical delta the time of day.
	a := makeAppt("a", 10, 0, 45) // Monday 2030-03-04

	tuesday := day(5)
	top := dragGeom.TimeToTop(a.Start) - 8*60*dragGeom.SlotHeight/dragGeom.Interval
	wantTop := dragGeom.TimeToTop(time.Date(2030, 3, 5, 15, 0, 0, 0, time.UTC)) - 8*60*dragGeom.SlotHeight/dragGeom.Interval
	got := MoveStart(a, dragGeom, 8, wantTop-top, tuesday)

	if !got.Equal(time.Date(2030, 3, 5, 15, 0, 0, 0, time.UTC)) {
		t.Errorf("MoveStart across columns = %s, want Tue 15:00", got)
	}
}

func TestResizeDuration(t *testing.T) {
	a := makeAppt("a", 9, 0, 30)

	tests := []struct {
		name string
		dy   int
		want int
	}{
		{"grow one slot", 60, 60},
		{"grow 40 units snaps to one slot", 40, 60},
		{"small delta snaps away", 20, 30},
		{"shrink clamps at minimum", -120, MinDurationMinutes},
		{"no delta", 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResizeDuration(a, dragGeom, tt.dy); got != tt.want {
				t.Errorf("ResizeDuration(dy=%d) = %d, want %d", tt.dy, got, tt.want)
			}
		})
	}
}

func TestDragActivationThreshold(t *testing.T) {
	d := NewDrag(dragGeom, 8)
	a := makeAppt("a", 9, 0, 30)

	d.PressMove(a, 10, 10)
	if d.State() != DragIdle {
		t.Fatal("press alone should not start a drag")
	}

	// Release without motion is a plain click, not a mutation.
	if got := d.Release(day(4), true); got != nil {
		t.Errorf("click released a mutation: %+v", got)
	}

	d.PressMove(a, 10, 10)
	d.Track(10, 11)
	if d.State() != DragMove {
		t.Error("motion past the activation distance should enter dragging-move")
	}
}

func TestDragMoveCommit(t *testing.T) {
	d := NewDrag(dragGeom, 8)
	a := makeAppt("a", 9, 0, 60)

	d.PressMove(a, 5, 100)
	d.Track(5, 160) // dy = 60 = one slot

	got := d.Release(day(4), true)
	if got == nil {
		t.Fatal("move released nil, want mutation")
	}
	if hm := got.Start.Format("15:04"); hm != "09:30" {
		t.Errorf("moved start = %s, want 09:30", hm)
	}
	// Duration is preserved across moves.
	if got.Duration() != 60 {
		t.Errorf("moved duration = %d, want 60", got.Duration())
	}
	if got.Duration() != int(got.End.Sub(got.Start).Minutes()) {
		t.Error("duration invariant broken after move")
	}
	if d.State() != DragIdle {
		t.Error("interpreter did not return to idle")
	}
}

func TestDragMoveWithoutDropTarget(t *testing.T) {
	d := NewDrag(dragGeom, 8)
	a := makeAppt("a", 9, 0, 60)

	d.PressMove(a, 5, 100)
	d.Track(5, 160)

	if got := d.Release(time.Time{}, false); got != nil {
		t.Errorf("move without drop target released %+v, want nil", got)
	}
	if d.State() != DragIdle {
		t.Error("interpreter did not return to idle after rejected move")
	}
}

func TestDragMoveNoNetChangeIsNoOp(t *testing.T) {
	d := NewDrag(dragGeom, 8)
	a := makeAppt("a", 9, 0, 60)

	// dy small enough to snap back to the original slot.
	d.PressMove(a, 5, 100)
	d.Track(5, 110)

	if got := d.Release(day(4), true); got != nil {
		t.Errorf("snapped-back move released %+v, want no-op", got)
	}
}

func TestDragResizeCommit(t *testing.T) {
	d := NewDrag(dragGeom, 8)
	a := makeAppt("a", 9, 0, 30)

	d.PressResize(a, 5, 100)
	d.Track(5, 140) // dy = 40 -> 20 minutes -> snaps to 30

	// Resize needs no drop column.
	got := d.Release(time.Time{}, false)
	if got == nil {
		t.Fatal("resize released nil, want mutation")
	}
	if got.Duration() != 60 {
		t.Errorf("resized duration = %d, want 60", got.Duration())
	}
	if hm := got.Start.Format("15:04"); hm != "09:00" {
		t.Errorf("resize altered start to %s", hm)
	}
}

func TestDragResizeNoNetChangeIsNoOp(t *testing.T) {
	d := NewDrag(dragGeom, 8)
	a := makeAppt("a", 9, 0, 30)

	d.PressResize(a, 5, 100)
	d.Track(5, 110) // 5 minutes, snaps to zero

	if got := d.Release(time.Time{}, false); got != nil {
		t.Errorf("snapped-back resize released %+v, want no-op", got)
	}
}

func TestDragResizeClampsBelowMinimum(t *testing.T) {
	d := NewDrag(dragGeom, 8)
	a := makeAppt("a", 9, 0, 60)

	d.PressResize(a, 5, 100)
	d.Track(5, 100-500)

	got := d.Release(time.Time{}, false)
	if got == nil {
		t.Fatal("clamped resize released nil, want mutation to minimum")
	}
	if got.Duration() != MinDurationMinutes {
		t.Errorf("clamped duration = %d, want %d", got.Duration(), MinDurationMinutes)
	}
}

func TestDragCancel(t *testing.T) {
	d := NewDrag(dragGeom, 8)
	a := makeAppt("a", 9, 0, 60)

	d.PressMove(a, 5, 100)
	d.Track(5, 200)
	d.Cancel()

	if d.State() != DragIdle || d.Appointment() != nil {
		t.Error("cancel did not reset the interpreter")
	}
}

func TestDragPreviews(t *testing.T) {
	d := NewDrag(dragGeom, 8)
	a := makeAppt("a", 9, 0, 60)

	d.PressMove(a, 5, 100)
	d.Track(5, 160)

	preview := d.MovePreview(day(4))
	if preview == nil {
		t.Fatal("no move preview while dragging")
	}
	if hm := preview.Start.Format("15:04"); hm != "09:30" {
		t.Errorf("preview start = %s, want 09:30", hm)
	}
	if d.ResizePreview() != nil {
		t.Error("resize preview available during a move drag")
	}
}
