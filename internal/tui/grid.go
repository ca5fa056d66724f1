package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/consulta/internal/appointment"
	"github.com/javiermolinar/consulta/internal/dateutil"
	"github.com/javiermolinar/consulta/internal/schedule"
)

// Chrome line counts around the grid pane.
const (
	headerLines = 2 // Title line plus day headers
	footerLines = 3 // Legend, status, help
	appPadTop   = 1
)

// gridHeight returns the number of terminal lines available to the
// scrollable grid body.
func (m Model) gridHeight() int {
	h := m.height - appPadTop - headerLines - footerLines
	if h < 1 {
		h = 1
	}
	return h
}

// totalLines returns the grid body height in content lines: one run
// of rowLines per bookable interval plus the closing boundary line.
func (m Model) totalLines() int {
	n := len(m.slots())
	if n == 0 {
		return 0
	}
	return (n-1)*m.rowLines + 1
}

// syncScrollTotals refreshes the scroll window after any layout or
// lattice change.
func (m *Model) syncScrollTotals() {
	m.scroll.ViewHeight = m.gridHeight()
	m.scroll.Total = m.totalLines()
	m.scroll.Clamp()
}

// originLine is the content line of displayStart:00, subtracted from
// absolute geometry offsets to get grid-local lines.
func (m Model) originLine() int {
	start, _ := m.displayHours()
	g := m.geometry()
	return start * 60 * g.SlotHeight / g.Interval
}

// cardBounds returns the grid-local top line and line height of a card.
func (m Model) cardBounds(a *appointment.Appointment) (top, height int) {
	g := m.geometry()
	top = g.TimeToTop(a.Start) - m.originLine()
	height = g.DurationToHeight(a.Duration())
	return top, height
}

// nowLine returns the grid line of the current wall-clock time, or -1
// when it falls outside the displayed window.
func (m Model) nowLine() int {
	now := m.nowFunc()
	line := m.geometry().TimeToTop(now) - m.originLine()
	if line < 0 || line >= m.totalLines() {
		return -1
	}
	return line
}

// displayedDay returns the cards to draw in one column. During a drag
// the original card is replaced by its live preview in whichever
// column the pointer is over.
func (m Model) displayedDay(date time.Time) (appts []*appointment.Appointment, previewID string) {
	appts = m.store.Day(date)

	preview := m.dragPreview()
	if preview == nil {
		return appts, ""
	}

	kept := appts[:0]
	for _, a := range appts {
		if a.ID != preview.ID {
			kept = append(kept, a)
		}
	}
	appts = kept

	if preview.SameDay(date) {
		appts = append(appts, preview)
		previewID = preview.ID
	}
	return appts, previewID
}

// dragPreview returns the in-flight card for the active drag, or nil.
func (m Model) dragPreview() *appointment.Appointment {
	if m.drag == nil {
		return nil
	}
	switch m.drag.State() {
	case schedule.DragMove:
		dates := m.visibleDates()
		if m.dragDay < 0 || m.dragDay >= len(dates) {
			return nil
		}
		return m.drag.MovePreview(dates[m.dragDay])
	case schedule.DragResize:
		return m.drag.ResizePreview()
	default:
		return nil
	}
}

// renderGrid renders the visible lines of every day column joined
// horizontally, without the ruler.
func (m Model) renderGrid() string {
	dates := m.visibleDates()
	cols := make([][]string, len(dates))
	for i, date := range dates {
		cols[i] = m.dayColumnLines(date, i)
	}

	gridH := m.gridHeight()
	lines := make([]string, gridH)
	for row := 0; row < gridH; row++ {
		parts := make([]string, len(cols))
		for i := range cols {
			parts[i] = cols[i][row]
		}
		lines[row] = strings.Join(parts, "")
	}
	return strings.Join(lines, "\n")
}

// dayColumnLines renders one column's visible lines.
func (m Model) dayColumnLines(date time.Time, dayIdx int) []string {
	slots := m.slots()
	appts, previewID := m.displayedDay(date)
	lanes := schedule.ComputeLanes(appts)

	isToday := dateutil.SameDay(date, m.nowFunc())
	nowLine := -1
	if isToday {
		nowLine = m.nowLine()
	}

	hours := m.hours.Get()
	gridH := m.gridHeight()
	total := m.totalLines()
	out := make([]string, gridH)

	for row := 0; row < gridH; row++ {
		line := m.scroll.Offset + row
		if line >= total {
			out[row] = m.styles.EmptyCellStyle.Render(strings.Repeat(" ", m.colWidth))
			continue
		}
		out[row] = m.renderColumnLine(line, slots, appts, lanes, previewID, hours, dayIdx, nowLine)
	}
	return out
}

// renderColumnLine renders a single content line of a column,
// compositing overlapping cards side by side in their lanes.
func (m Model) renderColumnLine(
	line int,
	slots []schedule.TimeSlot,
	appts []*appointment.Appointment,
	lanes map[string]schedule.Lane,
	previewID string,
	hours schedule.WorkingHours,
	dayIdx, nowLine int,
) string {
	covering := make([]*appointment.Appointment, 0, 2)
	laneTotal := 1
	for _, a := range appts {
		top, height := m.cardBounds(a)
		if line >= top && line < top+height {
			covering = append(covering, a)
			if l, ok := lanes[a.ID]; ok && l.Total > laneTotal {
				laneTotal = l.Total
			}
		}
	}

	bg := m.backgroundCell(line, slots, hours, dayIdx, nowLine)
	if len(covering) == 0 {
		return bg(m.colWidth)
	}

	// One segment per lane; lanes without a card keep the background.
	segments := make([]string, laneTotal)
	laneW := m.colWidth / laneTotal
	for i := range segments {
		w := laneW
		if i == laneTotal-1 {
			w = m.colWidth - laneW*(laneTotal-1)
		}
		segments[i] = bg(w)
	}
	for _, a := range covering {
		lane := lanes[a.ID]
		if lane.Offset >= laneTotal {
			continue
		}
		w := laneW
		if lane.Offset == laneTotal-1 {
			w = m.colWidth - laneW*(laneTotal-1)
		}
		segments[lane.Offset] = m.renderCardLine(a, line, w, previewID)
	}
	return strings.Join(segments, "")
}

// backgroundCell returns a renderer for the line's empty background,
// parameterized by width so lane gaps reuse it.
func (m Model) backgroundCell(line int, slots []schedule.TimeSlot, hours schedule.WorkingHours, dayIdx, nowLine int) func(int) string {
	slotIdx := line / m.rowLines
	if slotIdx >= len(slots) {
		slotIdx = len(slots) - 1
	}
	slot := slots[slotIdx]

	style := m.styles.EmptyCellStyle
	fill := " "
	switch {
	case line == nowLine:
		style = m.styles.NowLineStyle
		fill = "╌"
	case !hours.Contains(slot):
		style = m.styles.ClosedCellStyle
	case m.mode == ModeNormal && dayIdx == m.cursor.Day && slotIdx == m.cursor.Slot:
		style = m.styles.CursorStyle
	case slot.HourStart && line%m.rowLines == 0:
		fill = "·"
	}

	return func(w int) string {
		return style.Render(strings.Repeat(fill, w))
	}
}

// renderCardLine renders one line of an appointment card.
func (m Model) renderCardLine(a *appointment.Appointment, line, width int, previewID string) string {
	top, height := m.cardBounds(a)
	rel := line - top

	var text string
	switch {
	case rel == 0:
		text = a.PatientName
		if a.NewPatient {
			text = "+" + text
		}
	case rel == 1:
		text = fmt.Sprintf("%s-%s", a.Start.Format("15:04"), a.End.Format("15:04"))
	case rel == height-1 && height > 2:
		text = "" // bottom resize handle, left blank
	}

	style := m.cardLineStyle(a, previewID)
	return style.Render(padTruncate(" "+text, width))
}

// cardLineStyle picks the style for a card, preferring the drag
// preview and keyboard selection over the per-type base.
func (m Model) cardLineStyle(a *appointment.Appointment, previewID string) lipgloss.Style {
	switch {
	case a.ID == previewID:
		return m.styles.CardPreviewStyle
	case m.mode == ModeNormal && a.ID == m.selectedID():
		return m.styles.CardSelectedStyle
	default:
		past := a.End.Before(m.nowFunc())
		return m.styles.CardStyle(a, past)
	}
}

// selectedID returns the ID of the card under the cursor, or "".
func (m Model) selectedID() string {
	if a := m.apptAt(m.cursor.Day, m.cursor.Slot); a != nil {
		return a.ID
	}
	return ""
}

// apptAt returns the first card covering the given slot in the given
// visible column, preferring the leftmost lane.
func (m Model) apptAt(dayIdx, slotIdx int) *appointment.Appointment {
	return m.cardAtLine(dayIdx, slotIdx*m.rowLines)
}

// renderDayHeaders renders the date row above the grid.
func (m Model) renderDayHeaders() string {
	var b strings.Builder
	b.WriteString(m.styles.RulerHourStyle.Render(strings.Repeat(" ", rulerWidth)))
	now := m.nowFunc()
	for _, date := range m.visibleDates() {
		style := m.styles.DayHeaderStyle.Width(m.colWidth)
		if dateutil.SameDay(date, now) {
			style = m.styles.DayHeaderTodayStyle.Width(m.colWidth)
		}
		b.WriteString(style.Render(date.Format("Mon 02 Jan")))
	}
	return b.String()
}

// slotTime combines a calendar day with a lattice slot.
func slotTime(date time.Time, slot schedule.TimeSlot) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), slot.Hour, slot.Minute, 0, 0, date.Location())
}

// padTruncate fits s into exactly width cells, truncating runewise.
func padTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
