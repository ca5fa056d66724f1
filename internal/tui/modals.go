package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/consulta/internal/appointment"
	"github.com/javiermolinar/consulta/internal/schedule"
	"github.com/javiermolinar/consulta/internal/tui/commands"
)

// Form focus order: name, phone, type, duration, new-patient toggle.
const (
	focusName = iota
	focusPhone
	focusType
	focusDuration
	focusNewPatient
	formFields
)

// openCreateForm opens the appointment form for a new booking at the
// given start time.
func (m Model) openCreateForm(start time.Time) Model {
	m.mode = ModeModal
	m.modalType = ModalApptForm
	m.modalAppt = nil
	m.formStart = start
	m.formName.SetValue("")
	m.formPhone.SetValue("")
	m.formName.Focus()
	m.formPhone.Blur()
	m.formType = 0
	m.formDurations = durationOptions
	m.formDuration = 1 // 30 minutes
	m.formFocus = focusName
	m.formNewPatient = false
	return m
}

// openEditForm opens the form prefilled from an existing card.
func (m Model) openEditForm(a *appointment.Appointment) Model {
	m = m.openCreateForm(a.Start)
	m.modalAppt = a
	m.formName.SetValue(a.PatientName)
	m.formPhone.SetValue(a.PatientPhone)
	for i, typ := range appointment.Types() {
		if typ == a.Type {
			m.formType = i
		}
	}
	m.formDurations = durationsIncluding(a.Duration())
	for i, d := range m.formDurations {
		if d == a.Duration() {
			m.formDuration = i
		}
	}
	m.formNewPatient = a.NewPatient
	return m
}

// durationsIncluding returns the preset durations with the given value
// spliced in, in order. Resize drags produce durations outside the
// presets; editing such a card must not rewrite its length.
func durationsIncluding(duration int) []int {
	opts := make([]int, 0, len(durationOptions)+1)
	inserted := false
	for _, d := range durationOptions {
		if !inserted && duration <= d {
			if duration < d {
				opts = append(opts, duration)
			}
			inserted = true
		}
		opts = append(opts, d)
	}
	if !inserted {
		opts = append(opts, duration)
	}
	return opts
}

// openDetail shows a card's details.
func (m Model) openDetail(a *appointment.Appointment) Model {
	if a == nil {
		return m
	}
	m.mode = ModeModal
	m.modalType = ModalApptDetail
	m.modalAppt = a
	return m
}

// openConfirmDelete asks before removing a booking.
func (m Model) openConfirmDelete(a *appointment.Appointment) Model {
	m.mode = ModeModal
	m.modalType = ModalConfirmDelete
	m.modalAppt = a
	m.confirmMessage = fmt.Sprintf("Delete appointment for %s at %s?",
		a.PatientName, a.Start.Format("15:04"))
	return m
}

// openHoursModal stages the working hours editor.
func (m Model) openHoursModal() Model {
	m.mode = ModeModal
	m.modalType = ModalHours
	h := m.hours.Get()
	m.hoursStart = h.StartHour
	m.hoursEnd = h.EndHour
	m.hoursFocus = 0
	return m
}

// closeModal returns to the grid.
func (m Model) closeModal() Model {
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.modalAppt = nil
	m.formName.Blur()
	m.formPhone.Blur()
	return m
}

// handleModalKey routes keys to the open modal.
func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		return m.closeModal(), nil
	}

	switch m.modalType {
	case ModalApptForm:
		return m.handleFormKey(msg)
	case ModalApptDetail:
		return m.handleDetailKey(msg)
	case ModalConfirmDelete:
		return m.handleConfirmKey(msg)
	case ModalHours:
		return m.handleHoursKey(msg)
	}
	return m.closeModal(), nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = formFields - 1
		}
		m.formFocus = (m.formFocus + delta) % formFields
		m.formName.Blur()
		m.formPhone.Blur()
		switch m.formFocus {
		case focusName:
			m.formName.Focus()
		case focusPhone:
			m.formPhone.Focus()
		}
		return m, nil

	case "enter":
		return m.submitForm()

	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch m.formFocus {
		case focusType:
			n := len(appointment.Types())
			m.formType = (m.formType + delta + n) % n
			return m, nil
		case focusDuration:
			n := len(m.formDurations)
			m.formDuration = (m.formDuration + delta + n) % n
			return m, nil
		}

	case " ":
		if m.formFocus == focusNewPatient {
			m.formNewPatient = !m.formNewPatient
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case focusName:
		m.formName, cmd = m.formName.Update(msg)
	case focusPhone:
		m.formPhone, cmd = m.formPhone.Update(msg)
	}
	return m, cmd
}

// submitForm validates and writes the form into the working set.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	typ := appointment.Types()[m.formType]
	duration := m.formDurations[m.formDuration]
	end := m.formStart.Add(time.Duration(duration) * time.Minute)

	if m.modalAppt == nil {
		a, err := appointment.New(m.formName.Value(), typ, m.formStart, end, m.formNewPatient)
		if err != nil {
			return m, commands.Status("Error: " + err.Error())
		}
		a.PatientPhone = strings.TrimSpace(m.formPhone.Value())
		if err := m.store.Create(a); err != nil {
			return m, commands.Status("Error: " + err.Error())
		}
		return m.closeModal(), commands.Status("Booked " + a.PatientName)
	}

	next := *m.modalAppt
	next.PatientName = strings.TrimSpace(m.formName.Value())
	next.PatientPhone = strings.TrimSpace(m.formPhone.Value())
	next.Type = typ
	next.End = next.Start.Add(time.Duration(duration) * time.Minute)
	if err := m.store.Apply(&next); err != nil {
		return m, commands.Status("Error: " + err.Error())
	}
	return m.closeModal(), commands.Status("Updated " + next.PatientName)
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.modalAppt
	switch msg.String() {
	case "e":
		return m.openEditForm(a), nil
	case "c":
		next := a.Status.Next()
		if next == a.Status {
			return m, commands.Status("Status is final: " + string(a.Status))
		}
		if err := m.store.SetStatus(a.ID, next); err != nil {
			return m, commands.Status("Error: " + err.Error())
		}
		m.modalAppt = m.store.Get(a.ID)
		return m, nil
	case "x":
		return m.openConfirmDelete(a), nil
	case "q", "enter":
		return m.closeModal(), nil
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if err := m.store.Delete(m.modalAppt.ID); err != nil {
			return m.closeModal(), commands.Status("Error: " + err.Error())
		}
		return m.closeModal(), commands.Status("Deleted")
	case "n":
		return m.closeModal(), nil
	}
	return m, nil
}

func (m Model) handleHoursKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	adjust := func(delta int) {
		if m.hoursFocus == 0 {
			m.hoursStart = clamp(m.hoursStart+delta, 0, 23)
		} else {
			m.hoursEnd = clamp(m.hoursEnd+delta, 1, 24)
		}
	}

	switch msg.String() {
	case "tab", "left", "right", "h", "l":
		m.hoursFocus = 1 - m.hoursFocus
		return m, nil
	case "up", "k", "+":
		adjust(1)
		return m, nil
	case "down", "j", "-":
		adjust(-1)
		return m, nil
	case "enter":
		next := schedule.WorkingHours{StartHour: m.hoursStart, EndHour: m.hoursEnd}
		if err := m.hours.Set(next); err != nil {
			// Rejected: previous hours stay in effect.
			return m, commands.Status("Invalid hours: " + err.Error())
		}
		m = m.closeModal()
		m.calculateLayout()
		m.syncScrollTotals()
		return m, commands.Status(fmt.Sprintf("Hours set to %02d:00-%02d:00", m.hoursStart, m.hoursEnd))
	}
	return m, nil
}

// renderModal renders the open modal's content box.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalApptForm:
		return m.renderFormModal()
	case ModalApptDetail:
		return m.renderDetailModal()
	case ModalConfirmDelete:
		return m.styles.ModalStyle.Render(
			m.styles.ModalTitleStyle.Render("Confirm") + "\n\n" +
				m.confirmMessage + "\n\n" +
				m.styles.ModalHintStyle.Render("y confirm | n cancel"))
	case ModalHours:
		return m.renderHoursModal()
	}
	return ""
}

func (m Model) renderFormModal() string {
	title := "New appointment"
	if m.modalAppt != nil {
		title = "Edit appointment"
	}

	typeRow := make([]string, 0, len(appointment.Types()))
	for i, typ := range appointment.Types() {
		style := m.styles.OptionInactiveStyle
		if i == m.formType {
			style = m.styles.OptionActiveStyle
		}
		typeRow = append(typeRow, style.Render(string(typ)))
	}

	durRow := make([]string, 0, len(m.formDurations))
	for i, d := range m.formDurations {
		style := m.styles.OptionInactiveStyle
		if i == m.formDuration {
			style = m.styles.OptionActiveStyle
		}
		durRow = append(durRow, style.Render(fmt.Sprintf("%dm", d)))
	}

	toggle := "[ ] new patient"
	if m.formNewPatient {
		toggle = "[x] new patient"
	}
	toggleStyle := m.styles.OptionInactiveStyle
	if m.formFocus == focusNewPatient {
		toggleStyle = m.styles.OptionActiveStyle
	}

	nameBox := m.styles.ModalInputStyle
	if m.formFocus == focusName {
		nameBox = m.styles.ModalInputFocusedStyle
	}
	phoneBox := m.styles.ModalInputStyle
	if m.formFocus == focusPhone {
		phoneBox = m.styles.ModalInputFocusedStyle
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ModalTitleStyle.Render(title),
		m.styles.ModalHintStyle.Render(m.formStart.Format("Mon 02 Jan 15:04")),
		"",
		nameBox.Render(m.formName.View()),
		phoneBox.Render(m.formPhone.View()),
		m.styles.ModalLabelStyle.Render("Type")+strings.Join(typeRow, " "),
		m.styles.ModalLabelStyle.Render("Duration")+strings.Join(durRow, " "),
		toggleStyle.Render(toggle),
		"",
		m.styles.ModalHintStyle.Render("tab next | enter save | esc cancel"),
	)
	return m.styles.ModalStyle.Render(body)
}

func (m Model) renderDetailModal() string {
	a := m.modalAppt
	if a == nil {
		return ""
	}

	rows := []string{
		m.styles.ModalTitleStyle.Render(a.PatientName),
		"",
		m.styles.ModalLabelStyle.Render("When") + a.Start.Format("Mon 02 Jan 15:04") + "-" + a.End.Format("15:04"),
		m.styles.ModalLabelStyle.Render("Type") + string(a.Type),
		m.styles.ModalLabelStyle.Render("Status") + string(a.Status),
	}
	if a.PatientPhone != "" {
		rows = append(rows, m.styles.ModalLabelStyle.Render("Phone")+a.PatientPhone)
	}
	if a.NewPatient {
		rows = append(rows, m.styles.ModalHintStyle.Render("New patient"))
	}
	if a.Notes != "" {
		rows = append(rows, "", a.Notes)
	}
	rows = append(rows, "", m.styles.ModalHintStyle.Render("e edit | c status | x delete | esc close"))

	return m.styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderHoursModal() string {
	startStyle := m.styles.OptionInactiveStyle
	endStyle := m.styles.OptionInactiveStyle
	if m.hoursFocus == 0 {
		startStyle = m.styles.OptionActiveStyle
	} else {
		endStyle = m.styles.OptionActiveStyle
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ModalTitleStyle.Render("Working hours"),
		"",
		m.styles.ModalLabelStyle.Render("Open")+startStyle.Render(fmt.Sprintf("%02d:00", m.hoursStart)),
		m.styles.ModalLabelStyle.Render("Close")+endStyle.Render(fmt.Sprintf("%02d:00", m.hoursEnd)),
		"",
		m.styles.ModalHintStyle.Render("tab switch | +/- adjust | enter apply | esc cancel"),
	)
	return m.styles.ModalStyle.Render(body)
}
