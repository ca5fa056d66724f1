package schedule

import (
	"testing"
	"time"

	"github.com/javiermolinar/consulta/internal/appointment"
)

// makeAppt creates an appointment with a fixed ID and times on a
// single test day. IDs are single letters so failures read easily.
func makeAppt(id string, startHour, startMin, durationMin int) *appointment.Appointment {
	start := time.Date(2030, 3, 4, startHour, startMin, 0, 0, time.UTC)
	return &appointment.Appointment{
		ID:          id,
		PatientName: "Patient " + id,
		Start:       start,
		End:         start.Add(time.Duration(durationMin) * time.Minute),
		Type:        appointment.TypeFollowUp,
		Status:      appointment.StatusBooked,
	}
}

func TestComputeLanesNoOverlap(t *testing.T) {
	appts := []*appointment.Appointment{
		makeAppt("a", 9, 0, 30),
		makeAppt("b", 10, 0, 30),
		makeAppt("c", 11, 0, 60),
	}

	lanes := ComputeLanes(appts)

	for _, a := range appts {
		lane, ok := lanes[a.ID]
		if !ok {
			t.Fatalf("no lane for %s", a.ID)
		}
		if lane.Offset != 0 || lane.Total != 1 {
			t.Errorf("%s lane = %+v, want full-width {0 1}", a.ID, lane)
		}
	}
}

func TestComputeLanesPairOverlap(t *testing.T) {
	// A [09:00,09:30) and B [09:15,09:45) conflict; A ranks first.
	a := makeAppt("a", 9, 0, 30)
	b := makeAppt("b", 9, 15, 30)

	lanes := ComputeLanes([]*appointment.Appointment{b, a})

	if got := lanes["a"]; got.Offset != 0 || got.Total != 2 {
		t.Errorf("a lane = %+v, want {0 2}", got)
	}
	if got := lanes["b"]; got.Offset != 1 || got.Total != 2 {
		t.Errorf("b lane = %+v, want {1 2}", got)
	}
}

func TestComputeLanesTouchingDoNotOverlap(t *testing.T) {
	// Half-open intervals: ending exactly when another begins is not
	// a conflict.
	a := makeAppt("a", 9, 0, 30)
	b := makeAppt("b", 9, 30, 30)

	lanes := ComputeLanes([]*appointment.Appointment{a, b})

	if got := lanes["a"]; got.Total != 1 {
		t.Errorf("a lane = %+v, want sole occupancy", got)
	}
	if got := lanes["b"]; got.Total != 1 {
		t.Errorf("b lane = %+v, want sole occupancy", got)
	}
}

func TestComputeLanesThreeWay(t *testing.T) {
	// All three mutually conflict: each gets a distinct third.
	appts := []*appointment.Appointment{
		makeAppt("a", 9, 0, 60),
		makeAppt("b", 9, 15, 60),
		makeAppt("c", 9, 30, 60),
	}

	lanes := ComputeLanes(appts)

	seen := make(map[int]bool)
	for id, lane := range lanes {
		if lane.Total != 3 {
			t.Errorf("%s total = %d, want 3", id, lane.Total)
		}
		if seen[lane.Offset] {
			t.Errorf("duplicate offset %d", lane.Offset)
		}
		seen[lane.Offset] = true
	}
}

func TestComputeLanesChain(t *testing.T) {
	// A-B conflict and B-C conflict but A-C do not. Conflict sets are
	// pairwise, so the outer appointments halve while the middle one
	// thirds.
	appts := []*appointment.Appointment{
		makeAppt("a", 9, 0, 30),
		makeAppt("b", 9, 15, 30),
		makeAppt("c", 9, 40, 30),
	}

	lanes := ComputeLanes(appts)

	if got := lanes["a"]; got.Offset != 0 || got.Total != 2 {
		t.Errorf("a lane = %+v, want {0 2}", got)
	}
	if got := lanes["b"]; got.Offset != 1 || got.Total != 3 {
		t.Errorf("b lane = %+v, want {1 3}", got)
	}
	if got := lanes["c"]; got.Offset != 1 || got.Total != 2 {
		t.Errorf("c lane = %+v, want {1 2}", got)
	}
}

func TestComputeLanesDeterministic(t *testing.T) {
	appts := []*appointment.Appointment{
		makeAppt("c", 9, 30, 60),
		makeAppt("a", 9, 0, 60),
		makeAppt("b", 9, 15, 60),
	}

	first := ComputeLanes(appts)
	for i := 0; i < 10; i++ {
		again := ComputeLanes(appts)
		for id, lane := range first {
			if again[id] != lane {
				t.Fatalf("run %d: lane for %s changed from %+v to %+v", i, id, lane, again[id])
			}
		}
	}
}

func TestComputeLanesPartitionColumn(t *testing.T) {
	// Lane widths partition the column: each member of a conflict set
	// occupies a distinct 1/Total share and offsets never collide
	// within a set, so the summed widths stay at or under 100%.
	appts := []*appointment.Appointment{
		makeAppt("a", 9, 0, 60),
		makeAppt("b", 9, 0, 30),
		makeAppt("c", 9, 30, 30),
		makeAppt("d", 11, 0, 30),
	}

	lanes := ComputeLanes(appts)

	for id, lane := range lanes {
		if lane.Offset < 0 || lane.Offset >= lane.Total {
			t.Errorf("%s offset %d outside [0,%d)", id, lane.Offset, lane.Total)
		}
	}
}

func TestOverlapSymmetry(t *testing.T) {
	appts := []*appointment.Appointment{
		makeAppt("a", 9, 0, 45),
		makeAppt("b", 9, 30, 45),
		makeAppt("c", 10, 30, 30),
	}

	for _, x := range appts {
		for _, y := range appts {
			if x.ID == y.ID {
				continue
			}
			if x.Overlaps(y) != y.Overlaps(x) {
				t.Errorf("overlap asymmetry between %s and %s", x.ID, y.ID)
			}
		}
	}
}
