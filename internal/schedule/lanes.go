package schedule

import (
	"sort"

	"github.com/javiermolinar/consulta/internal/appointment"
)

// Lane is one appointment's horizontal placement among the
// appointments it conflicts with. Cards render at width 1/Total of
// the column and horizontal offset Offset/Total.
type Lane struct {
	Offset int // 0-based rank within the conflict set
	Total  int // size of the conflict set, >= 1
}

// ComputeLanes assigns a lane to every appointment of a single day so
// that conflicting appointments render side by side instead of
// stacked. Each appointment's conflict set is pairwise: the
// appointments whose intervals directly intersect its own, using
// half-open semantics. Ranking inside a set is by (start, ID), so
// identical inputs always produce identical lanes.
func ComputeLanes(appts []*appointment.Appointment) map[string]Lane {
	lanes := make(map[string]Lane, len(appts))

	sorted := make([]*appointment.Appointment, 0, len(appts))
	for _, a := range appts {
		if a != nil {
			sorted = append(sorted, a)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].Start.Before(sorted[j].Start)
		}
		return sorted[i].ID < sorted[j].ID
	})

	for _, a := range sorted {
		group := []*appointment.Appointment{a}
		for _, b := range sorted {
			if b.ID != a.ID && a.Overlaps(b) {
				group = append(group, b)
			}
		}

		sort.SliceStable(group, func(i, j int) bool {
			if !group[i].Start.Equal(group[j].Start) {
				return group[i].Start.Before(group[j].Start)
			}
			return group[i].ID < group[j].ID
		})

		offset := 0
		for i, member := range group {
			if member.ID == a.ID {
				offset = i
				break
			}
		}

		lanes[a.ID] = Lane{Offset: offset, Total: len(group)}
	}

	return lanes
}
