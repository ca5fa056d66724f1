package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}

	title := m.renderTitle()
	headers := m.renderDayHeaders()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderRuler(), m.renderGrid())
	footer := m.renderFooter()

	content := lipgloss.JoinVertical(lipgloss.Left, title, headers, body, footer)
	app := m.styles.AppStyle.Render(content)

	if m.mode == ModeModal && m.modalType != ModalNone {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.renderModal(),
			lipgloss.WithWhitespaceBackground(m.styles.colorBg))
	}
	return app
}

func (m Model) renderTitle() string {
	dates := m.visibleDates()
	last := dates[len(dates)-1]

	var span string
	if m.viewDays == 1 {
		span = m.anchor.Format("Monday 02 January 2006")
	} else {
		span = fmt.Sprintf("%s - %s", m.anchor.Format("02 Jan"), last.Format("02 Jan 2006"))
	}

	label := map[int]string{1: "day", 3: "3-day", 7: "week"}[m.viewDays]
	title := fmt.Sprintf("consulta  %s  (%s)", span, label)
	if m.loading {
		title += "  loading..."
	}
	return m.styles.TitleStyle.Render(title)
}
