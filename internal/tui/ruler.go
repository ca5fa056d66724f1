package tui

import (
	"fmt"
	"strings"
)

// renderRuler renders the time axis pane. It derives its rows from
// the same lattice and the same scroll offset as the grid, so a label
// always sits on the exact line of its slot boundary.
func (m Model) renderRuler() string {
	slots := m.slots()
	total := m.totalLines()
	offset := m.scroll.Follow()
	gridH := m.gridHeight()

	lines := make([]string, gridH)
	for row := 0; row < gridH; row++ {
		line := offset + row
		if line >= total || line%m.rowLines != 0 {
			lines[row] = m.styles.RulerSubStyle.Render(strings.Repeat(" ", rulerWidth))
			continue
		}

		slot := slots[line/m.rowLines]
		label := fmt.Sprintf("%02d:%02d", slot.Hour, slot.Minute)
		if slot.HourStart {
			lines[row] = m.styles.RulerHourStyle.Render(label)
		} else {
			lines[row] = m.styles.RulerSubStyle.Render(label)
		}
	}
	return strings.Join(lines, "\n")
}
