package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/consulta/internal/appointment"
	"github.com/javiermolinar/consulta/internal/schedule"
)

// Grid pane origin in terminal cells. The app container pads one cell
// left and one line top; the title and day header rows sit above the
// grid body.
func (m Model) gridOriginX() int { return 1 + rulerWidth }
func (m Model) gridOriginY() int { return appPadTop + headerLines }

// hit resolves a terminal coordinate to a grid position. ok is false
// outside the grid body.
func (m Model) hit(x, y int) (dayIdx, line int, ok bool) {
	gx := x - m.gridOriginX()
	gy := y - m.gridOriginY()
	if gx < 0 || gy < 0 || gy >= m.gridHeight() || m.colWidth == 0 {
		return 0, 0, false
	}

	dayIdx = gx / m.colWidth
	if dayIdx >= m.viewDays {
		return 0, 0, false
	}

	line = gy + m.scroll.Offset
	if line >= m.totalLines() {
		return 0, 0, false
	}
	return dayIdx, line, true
}

// handleMouseMsg feeds pointer events through the drag interpreter.
// A press that never travels stays a click: release decides between
// opening a card, creating one on an empty slot, or committing a drag.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeModal {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll.ScrollBy(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scroll.ScrollBy(1)
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		return m.mousePress(msg.X, msg.Y), nil

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.drag.Track(msg.X, msg.Y)
			if dayIdx, _, ok := m.hit(msg.X, msg.Y); ok {
				m.dragDay = dayIdx
			}
			LogDrag("track", m.drag)
		}
		return m, nil

	case tea.MouseActionRelease:
		return m.mouseRelease(msg.X, msg.Y)
	}

	return m, nil
}

func (m Model) mousePress(x, y int) Model {
	dayIdx, line, ok := m.hit(x, y)
	if !ok {
		return m
	}

	m.cursor = Position{Day: dayIdx, Slot: clamp(line/m.rowLines, 0, len(m.slots())-2)}

	a := m.cardAtLine(dayIdx, line)
	if a == nil {
		return m
	}

	start, _ := m.displayHours()
	m.drag = schedule.NewDrag(m.geometry(), start)
	top, height := m.cardBounds(a)
	if line == top+height-1 && height > 1 {
		m.drag.PressResize(a, x, y)
	} else {
		m.drag.PressMove(a, x, y)
	}
	m.dragDay = dayIdx
	LogDrag("press", m.drag)
	return m
}

func (m Model) mouseRelease(x, y int) (tea.Model, tea.Cmd) {
	dayIdx, line, ok := m.hit(x, y)

	if m.drag != nil {
		state := m.drag.State()
		if state != schedule.DragIdle {
			// Resizes need no drop column; moves released off-grid
			// cancel inside the interpreter.
			hasDrop := ok || state == schedule.DragResize
			dropDay := m.dragDay
			if ok {
				dropDay = dayIdx
			}
			return m.commitDrag(dropDay, hasDrop)
		}

		// Never promoted to a drag: a plain click on a card.
		clicked := m.drag.Appointment()
		m.drag.Cancel()
		m.drag = nil
		return m.openDetail(clicked), nil
	}

	if !ok {
		return m, nil
	}

	// Click on an empty slot creates an appointment there.
	if m.cardAtLine(dayIdx, line) == nil {
		slots := m.slots()
		slotIdx := clamp(line/m.rowLines, 0, len(slots)-2)
		slot := slots[slotIdx]
		date := m.visibleDates()[dayIdx]
		start := slotTime(date, slot)
		return m.openCreateForm(start), nil
	}

	return m, nil
}

// cardAtLine returns the card covering a content line in a column,
// preferring the leftmost lane.
func (m Model) cardAtLine(dayIdx, line int) *appointment.Appointment {
	dates := m.visibleDates()
	if dayIdx < 0 || dayIdx >= len(dates) {
		return nil
	}
	appts := m.store.Day(dates[dayIdx])
	lanes := schedule.ComputeLanes(appts)

	var best *appointment.Appointment
	bestLane := -1
	for _, a := range appts {
		top, height := m.cardBounds(a)
		if line < top || line >= top+height {
			continue
		}
		lane := lanes[a.ID].Offset
		if best == nil || lane < bestLane {
			best = a
			bestLane = lane
		}
	}
	return best
}
