// Package tui provides the terminal user interface for consulta.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/consulta/internal/appointment"
	"github.com/javiermolinar/consulta/internal/tui/theme"
)

// Default column width, recalculated from the terminal size.
const defaultColWidth = 22

// rulerWidth is the fixed width of the time axis pane.
const rulerWidth = 6

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgClosed    lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorNowLine     lipgloss.Color
	colorWarning     lipgloss.Color

	// Card styles keyed by appointment type. Looking styles up by the
	// enum keeps rendering in lockstep with the type set: a new type
	// fails loudly here instead of silently falling through a switch.
	CardStyles     map[appointment.Type]lipgloss.Style
	CardPastStyles map[appointment.Type]lipgloss.Style

	// Status accents keyed by lifecycle status. Statuses without an
	// entry render with the plain card style.
	StatusAccents map[appointment.Status]lipgloss.Style

	CardSelectedStyle lipgloss.Style
	CardPreviewStyle  lipgloss.Style

	// Grid cells
	EmptyCellStyle  lipgloss.Style
	ClosedCellStyle lipgloss.Style
	CursorStyle     lipgloss.Style
	NowLineStyle    lipgloss.Style

	// Chrome
	TitleStyle          lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style
	RulerHourStyle      lipgloss.Style
	RulerSubStyle       lipgloss.Style
	StatusStyle         lipgloss.Style
	HelpStyle           lipgloss.Style
	LegendLabelStyle    lipgloss.Style

	// Modal
	ModalStyle             lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputFocusedStyle lipgloss.Style
	OptionActiveStyle      lipgloss.Style
	OptionInactiveStyle    lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgClosed = palette.BgClosed
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorNowLine = palette.NowLine
	s.colorWarning = palette.Warning

	cardBase := lipgloss.NewStyle().
		Foreground(s.colorFg).
		Bold(true)

	s.CardStyles = make(map[appointment.Type]lipgloss.Style, len(appointment.Types()))
	s.CardPastStyles = make(map[appointment.Type]lipgloss.Style, len(appointment.Types()))
	for _, typ := range appointment.Types() {
		s.CardStyles[typ] = cardBase.Background(palette.CardBg[string(typ)])
		s.CardPastStyles[typ] = lipgloss.NewStyle().
			Foreground(s.colorFg).
			Background(palette.CardPastBg[string(typ)])
	}

	s.StatusAccents = map[appointment.Status]lipgloss.Style{
		appointment.StatusCancelled: lipgloss.NewStyle().
			Foreground(palette.Cancelled).
			Background(s.colorBg).
			Strikethrough(true),
		appointment.StatusNoShow: lipgloss.NewStyle().
			Foreground(palette.NoShow).
			Background(s.colorBgClosed),
	}

	s.CardSelectedStyle = lipgloss.NewStyle().
		Background(s.colorWarning).
		Foreground(palette.TextOnWarning).
		Bold(true)

	s.CardPreviewStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(palette.TextOnAccent).
		Bold(true)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.ClosedCellStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgClosed)

	s.CursorStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	s.NowLineStyle = lipgloss.NewStyle().
		Foreground(s.colorNowLine).
		Background(s.colorBg)

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg).
		Width(defaultColWidth)

	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(s.colorAccent)

	s.RulerHourStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Width(rulerWidth)

	s.RulerSubStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Width(rulerWidth)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.LegendLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorBg).
		Foreground(s.colorFg).
		Padding(1, 2).
		Width(56)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Bold(true).
		Width(12).
		Background(s.colorBg)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.ModalInputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.colorFgMuted).
		Background(s.colorBg).
		Foreground(s.colorFg).
		Padding(0, 1).
		Width(40)

	s.ModalInputFocusedStyle = s.ModalInputStyle.
		BorderForeground(s.colorAccent)

	s.OptionActiveStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(palette.TextOnAccent).
		Bold(true).
		Padding(0, 1)

	s.OptionInactiveStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(1).
		PaddingRight(1)

	return s
}

// CardStyle returns the style for an appointment, layering status
// accents over the per-type base.
func (s *Styles) CardStyle(a *appointment.Appointment, past bool) lipgloss.Style {
	if accent, ok := s.StatusAccents[a.Status]; ok {
		return accent
	}
	if past {
		return s.CardPastStyles[a.Type]
	}
	return s.CardStyles[a.Type]
}
