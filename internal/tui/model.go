package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/consulta/internal/appointment"
	"github.com/javiermolinar/consulta/internal/config"
	"github.com/javiermolinar/consulta/internal/dateutil"
	"github.com/javiermolinar/consulta/internal/schedule"
	"github.com/javiermolinar/consulta/internal/store"
	"github.com/javiermolinar/consulta/internal/tui/commands"
	"github.com/javiermolinar/consulta/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // Keyboard move of the selected card
	ModeResize      // Keyboard resize of the selected card
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalApptForm
	ModalApptDetail
	ModalConfirmDelete
	ModalHours
)

// Duration options for the appointment form, in minutes.
var durationOptions = []int{15, 30, 45, 60}

// Position represents a cursor position in the grid.
type Position struct {
	Day  int // Index into the visible dates
	Slot int // Index into the day's slot lattice
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   appointment.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// In-memory working set and validated working hours
	store *store.Store
	hours *schedule.HoursState

	// Drag interpreter; non-nil only while a pointer or keyboard
	// session is in flight.
	drag *schedule.Drag

	// State
	anchor   time.Time // First visible day
	viewDays int       // 1, 3, or 7 visible columns
	cursor   Position
	mode     Mode
	loading  bool

	// Current drop column during a move, keyboard or pointer driven.
	dragDay int

	// Modal state
	modalType      ModalType
	modalAppt      *appointment.Appointment
	formName       textinput.Model
	formPhone      textinput.Model
	formType       int   // Index into appointment.Types()
	formDurations  []int // Offered durations; includes off-preset ones when editing
	formDuration   int   // Index into formDurations
	formFocus      int
	formNewPatient bool
	formStart      time.Time
	confirmMessage string

	// Hours modal staging
	hoursStart int
	hoursEnd   int
	hoursFocus int

	// Scrolling; the grid drives, the ruler follows.
	scroll ScrollArea

	// Terminal dimensions and layout
	width    int
	height   int
	rowLines int // Terminal lines per slot (1, 2, or 3)
	colWidth int

	// Messages
	statusMsg  string
	statusTime time.Time

	// Error state
	err error

	// Injectable clock for tests
	nowFunc func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.nowFunc = now
	}
}

// WithAnchor sets the first visible day.
func WithAnchor(day time.Time) ModelOption {
	return func(m *Model) {
		m.anchor = dateutil.TruncateToDay(day)
	}
}

// New creates a new TUI model.
func New(repo appointment.Repository, cfg *config.Config, hours *schedule.HoursState, opts ...ModelOption) *Model {
	formName := textinput.New()
	formName.Placeholder = "Patient name"
	formName.CharLimit = 128
	formName.Width = 36

	formPhone := textinput.New()
	formPhone.Placeholder = "Phone (optional)"
	formPhone.CharLimit = 32
	formPhone.Width = 36

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	formName.PlaceholderStyle = styles.ModalHintStyle
	formName.TextStyle = styles.LegendLabelStyle
	formPhone.PlaceholderStyle = styles.ModalHintStyle
	formPhone.TextStyle = styles.LegendLabelStyle

	m := &Model{
		repo:      repo,
		config:    cfg,
		theme:     t,
		styles:    styles,
		store:     store.New(),
		hours:     hours,
		mode:      ModeNormal,
		viewDays:  viewDaysFor(cfg.UI.DefaultView),
		formName:  formName,
		formPhone: formPhone,
		rowLines:  1,
		colWidth:  defaultColWidth,
		loading:   true,
		nowFunc:   time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.anchor.IsZero() {
		m.anchor = m.defaultAnchor()
	}
	m.cursor = Position{Day: 0, Slot: 0}
	m.syncScrollTotals()
	m.scroll.CenterOn(m.nowLine())

	return m
}

// viewDaysFor maps a configured view name to a column count.
func viewDaysFor(view string) int {
	switch view {
	case "day":
		return 1
	case "three":
		return 3
	default:
		return 7
	}
}

// defaultAnchor picks the first visible day for the configured view:
// today for day and three-day views, Monday of the current week for
// the week view.
func (m *Model) defaultAnchor() time.Time {
	now := m.nowFunc()
	if m.viewDays == 7 {
		return dateutil.StartOfWeek(now)
	}
	return dateutil.TruncateToDay(now)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadRange(m.repo, m.anchor, m.anchor.AddDate(0, 0, m.viewDays-1))
}

// geometry returns the mapping between times and terminal lines for
// the current layout. One slot occupies rowLines lines.
func (m Model) geometry() schedule.Geometry {
	return schedule.Geometry{
		SlotHeight: m.rowLines,
		Interval:   m.config.Schedule.IntervalMinutes,
	}
}

// displayHours returns the rendered hour window: the working hours
// padded by one hour on each side so the closed edges around the day
// are visible. Slots outside working hours render muted but stay
// bookable for walk-in exceptions.
func (m Model) displayHours() (int, int) {
	h := m.hours.Get()
	start, end := h.StartHour-1, h.EndHour+1
	if start < 0 {
		start = 0
	}
	if end > 24 {
		end = 24
	}
	return start, end
}

// slots returns the day lattice shared by the ruler and every column.
// Both must call Slots with identical arguments or rows drift apart.
func (m Model) slots() []schedule.TimeSlot {
	start, end := m.displayHours()
	return schedule.Slots(start, end, m.config.Schedule.IntervalMinutes)
}

// visibleDates returns the dates of the visible columns.
func (m Model) visibleDates() []time.Time {
	dates := make([]time.Time, m.viewDays)
	for i := range dates {
		dates[i] = m.anchor.AddDate(0, 0, i)
	}
	return dates
}

// Run starts the TUI.
func Run(repo appointment.Repository, cfg *config.Config, hours *schedule.HoursState) error {
	return RunWithDebug(repo, cfg, hours, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo appointment.Repository, cfg *config.Config, hours *schedule.HoursState, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg, hours)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
