package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/consulta/internal/schedule"
	"github.com/javiermolinar/consulta/internal/tui/commands"
)

// handleKeyMsg routes key presses by interaction mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeModal:
		return m.handleModalKey(msg)
	case ModeMove, ModeResize:
		return m.handleDragKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "Q":
		return m, tea.Quit

	case "q":
		if m.store.HasChanges() {
			return m, commands.Status("Unsaved changes: save (s) first, or Q to discard")
		}
		return m, tea.Quit

	case "up", "k":
		return m.moveCursor(-1), nil
	case "down", "j":
		return m.moveCursor(1), nil
	case "left", "h":
		return m.moveCursorDay(-1)
	case "right", "l":
		return m.moveCursorDay(1)

	case "[":
		return m.navigate(-m.viewDays)
	case "]":
		return m.navigate(m.viewDays)
	case "t":
		return m.navigateTo(m.defaultAnchor())

	case "1":
		return m.setViewDays(1)
	case "3":
		return m.setViewDays(3)
	case "7":
		return m.setViewDays(7)

	case "g":
		m.scroll.ScrollTo(0)
		return m, nil
	case "G":
		m.scroll.ScrollTo(m.scroll.Total)
		return m, nil
	case "ctrl+u":
		m.scroll.ScrollBy(-m.scroll.ViewHeight / 2)
		return m, nil
	case "ctrl+d":
		m.scroll.ScrollBy(m.scroll.ViewHeight / 2)
		return m, nil

	case "enter":
		if a := m.apptAt(m.cursor.Day, m.cursor.Slot); a != nil {
			return m.openDetail(a), nil
		}
		return m.openCreateForm(m.cursorTime()), nil

	case "n":
		return m.openCreateForm(m.cursorTime()), nil

	case "m":
		return m.startKeyboardDrag(schedule.DragMove), nil
	case "r":
		return m.startKeyboardDrag(schedule.DragResize), nil

	case "c":
		a := m.apptAt(m.cursor.Day, m.cursor.Slot)
		if a == nil {
			return m, nil
		}
		next := a.Status.Next()
		if next == a.Status {
			return m, commands.Status("Status is final: " + string(a.Status))
		}
		if err := m.store.SetStatus(a.ID, next); err != nil {
			return m, commands.Status("Error: " + err.Error())
		}
		return m, commands.Status("Status: " + string(next))

	case "x":
		if a := m.apptAt(m.cursor.Day, m.cursor.Slot); a != nil {
			return m.openConfirmDelete(a), nil
		}
		return m, nil

	case "u":
		if err := m.store.Undo(); err != nil {
			return m, commands.Status("Nothing to undo")
		}
		return m, commands.Status("Undone")

	case "s":
		if !m.store.HasChanges() {
			return m, commands.Status("No changes to save")
		}
		return m, commands.Save(m.store, m.repo)

	case "y":
		a := m.apptAt(m.cursor.Day, m.cursor.Slot)
		if a == nil {
			return m, nil
		}
		if err := clipboard.WriteAll(a.Label()); err != nil {
			return m, commands.Status("Clipboard unavailable")
		}
		return m, commands.Status("Copied")

	case "H":
		return m.openHoursModal(), nil
	}

	return m, nil
}

// moveCursor moves the cursor within the column, keeping it visible.
func (m Model) moveCursor(dSlot int) Model {
	maxSlot := len(m.slots()) - 2 // the boundary marker is not a cursor stop
	if maxSlot < 0 {
		maxSlot = 0
	}
	m.cursor.Slot = clamp(m.cursor.Slot+dSlot, 0, maxSlot)
	m.scroll.EnsureVisible(m.cursor.Slot * m.rowLines)
	return m
}

// moveCursorDay moves across columns, paging the visible range at the
// edges.
func (m Model) moveCursorDay(delta int) (tea.Model, tea.Cmd) {
	next := m.cursor.Day + delta
	if next < 0 {
		return m.navigate(-m.viewDays)
	}
	if next >= m.viewDays {
		return m.navigate(m.viewDays)
	}
	m.cursor.Day = next
	return m, nil
}

// cursorTime returns the wall-clock time of the cursor slot.
func (m Model) cursorTime() time.Time {
	slots := m.slots()
	idx := clamp(m.cursor.Slot, 0, len(slots)-1)
	date := m.visibleDates()[clamp(m.cursor.Day, 0, m.viewDays-1)]
	return slotTime(date, slots[idx])
}

// startKeyboardDrag enters move or resize mode on the selected card.
// Keyboard sessions run through the same interpreter as pointer
// drags: each j or k press feeds one slot of vertical travel.
func (m Model) startKeyboardDrag(kind schedule.DragState) Model {
	a := m.apptAt(m.cursor.Day, m.cursor.Slot)
	if a == nil {
		return m
	}

	start, _ := m.displayHours()
	m.drag = schedule.NewDrag(m.geometry(), start)
	switch kind {
	case schedule.DragResize:
		m.drag.PressResize(a, 0, 0)
		m.mode = ModeResize
	default:
		m.drag.PressMove(a, 0, 0)
		m.mode = ModeMove
	}
	// Keyboard sessions have no pointer travel, so cross the
	// activation threshold up front and settle back to zero delta.
	m.drag.Track(0, schedule.ActivationDistance)
	m.drag.Track(0, 0)

	m.dragDay = m.cursor.Day
	LogDrag("keyboard-start", m.drag)
	return m
}

func (m Model) handleDragKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.drag == nil {
		m.mode = ModeNormal
		return m, nil
	}

	switch msg.String() {
	case "down", "j":
		m.drag.Track(0, m.drag.DeltaY()+m.rowLines)
		return m, nil
	case "up", "k":
		m.drag.Track(0, m.drag.DeltaY()-m.rowLines)
		return m, nil

	case "left", "h":
		if m.mode == ModeMove {
			m.dragDay = clamp(m.dragDay-1, 0, m.viewDays-1)
		}
		return m, nil
	case "right", "l":
		if m.mode == ModeMove {
			m.dragDay = clamp(m.dragDay+1, 0, m.viewDays-1)
		}
		return m, nil

	case "enter":
		return m.commitDrag(m.dragDay, true)

	case "esc":
		m.drag.Cancel()
		m.drag = nil
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// commitDrag releases the active drag and applies the result, if any,
// to the working set.
func (m Model) commitDrag(dropDay int, hasDrop bool) (tea.Model, tea.Cmd) {
	if m.drag == nil {
		return m, nil
	}

	var dropDate time.Time
	dates := m.visibleDates()
	if dropDay >= 0 && dropDay < len(dates) {
		dropDate = dates[dropDay]
	} else {
		hasDrop = false
	}

	result := m.drag.Release(dropDate, hasDrop)
	m.drag = nil
	m.mode = ModeNormal

	if result == nil {
		return m, nil
	}
	if err := m.store.Apply(result); err != nil {
		return m, commands.Status("Error: " + err.Error())
	}
	if hasDrop && dropDay != m.cursor.Day {
		m.cursor.Day = dropDay
	}
	return m, commands.Status("Updated " + result.PatientName)
}
