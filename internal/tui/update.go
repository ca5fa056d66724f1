package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/consulta/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		LogKeyPress(msg)
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.calculateLayout()
		m.syncScrollTotals()
		return m, nil

	case commands.RangeLoadedMsg:
		m.store.Load(msg.Appts)
		m.loading = false
		m.scroll.CenterOn(m.nowLine())
		return m, nil

	case commands.SavedMsg:
		return m, commands.Status("Saved")

	case commands.ErrMsg:
		LogError("update", msg.Err)
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// calculateLayout recomputes column width and the lines-per-slot
// density from the terminal size. Slots get as many lines as fit the
// whole day, capped at three.
func (m *Model) calculateLayout() {
	avail := m.width - 2 - rulerWidth
	if m.viewDays > 0 {
		m.colWidth = avail / m.viewDays
	}
	if m.colWidth < 10 {
		m.colWidth = 10
	}
	if m.colWidth > 30 {
		m.colWidth = 30
	}

	intervals := len(m.slots()) - 1
	gridH := m.height - appPadTop - headerLines - footerLines
	m.rowLines = 1
	for lines := 3; lines > 1; lines-- {
		if intervals > 0 && intervals*lines+1 <= gridH {
			m.rowLines = lines
			break
		}
	}
}

// navigate shifts the visible range by days and reloads.
func (m Model) navigate(days int) (tea.Model, tea.Cmd) {
	return m.navigateTo(m.anchor.AddDate(0, 0, days))
}

// navigateTo jumps the visible range to an absolute anchor and reloads.
// Navigation is blocked while unsaved changes exist so a range reload
// cannot silently drop them; the anchor is only touched past the guard.
func (m Model) navigateTo(anchor time.Time) (tea.Model, tea.Cmd) {
	if m.store.HasChanges() {
		return m, commands.Status("Unsaved changes: save (s) or undo (u) first")
	}

	m.anchor = anchor
	m.cursor.Day = clamp(m.cursor.Day, 0, m.viewDays-1)
	m.loading = true
	return m, commands.LoadRange(m.repo, m.anchor, m.anchor.AddDate(0, 0, m.viewDays-1))
}

// setViewDays switches between the day, three-day, and week views.
func (m Model) setViewDays(days int) (tea.Model, tea.Cmd) {
	if m.store.HasChanges() {
		return m, commands.Status("Unsaved changes: save (s) or undo (u) first")
	}

	m.viewDays = days
	m.anchor = m.defaultAnchor()
	m.cursor.Day = 0
	m.calculateLayout()
	m.syncScrollTotals()
	m.loading = true
	return m, commands.LoadRange(m.repo, m.anchor, m.anchor.AddDate(0, 0, m.viewDays-1))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
