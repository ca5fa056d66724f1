package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/consulta/internal/appointment"
)

// renderFooter renders the legend, status, and help lines.
func (m Model) renderFooter() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderLegend(),
		m.renderStatusLine(),
		m.renderHelp(),
	)
}

// renderLegend shows one swatch per appointment type.
func (m Model) renderLegend() string {
	parts := make([]string, 0, len(appointment.Types()))
	for _, typ := range appointment.Types() {
		swatch := m.styles.CardStyles[typ].Render(" ")
		parts = append(parts, swatch+m.styles.LegendLabelStyle.Render(" "+string(typ)))
	}
	return strings.Join(parts, m.styles.LegendLabelStyle.Render("  "))
}

func (m Model) renderStatusLine() string {
	if m.statusMsg != "" && time.Now().Before(m.statusTime) {
		return m.styles.StatusStyle.Render(m.statusMsg)
	}
	if m.store.HasChanges() {
		return m.styles.StatusStyle.Render("Unsaved changes")
	}
	return m.styles.HelpStyle.Render("")
}

func (m Model) renderHelp() string {
	var help string
	switch m.mode {
	case ModeMove:
		help = "j/k move | h/l day | enter drop | esc cancel"
	case ModeResize:
		help = "j/k resize | enter apply | esc cancel"
	default:
		help = "n new | m move | r resize | c status | x delete | u undo | s save | 1/3/7 view | H hours | q quit"
	}
	return m.styles.HelpStyle.Render(help)
}
