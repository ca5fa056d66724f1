package ui

import (
	"fmt"

	"github.com/javiermolinar/consulta/internal/appointment"
)

// Stats holds aggregated counts for a set of appointments.
type Stats struct {
	Total      int
	Cancelled  int
	NoShows    int
	Minutes    int // booked minutes, excluding cancellations and no-shows
	ByType     map[appointment.Type]int
	NewPatient int
}

// AccumulateStats updates stats with one appointment.
func AccumulateStats(stats *Stats, a *appointment.Appointment) {
	stats.Total++
	if stats.ByType == nil {
		stats.ByType = make(map[appointment.Type]int)
	}
	stats.ByType[a.Type]++
	if a.NewPatient {
		stats.NewPatient++
	}

	switch a.Status {
	case appointment.StatusCancelled:
		stats.Cancelled++
	case appointment.StatusNoShow:
		stats.NoShows++
	default:
		stats.Minutes += a.Duration()
	}
}

// PrintStats prints the summary line after a listing.
func PrintStats(stats Stats) {
	fmt.Printf("%d appointments, %s booked", stats.Total, FormatDuration(stats.Minutes))
	if stats.NewPatient > 0 {
		fmt.Printf(", %d new patient(s)", stats.NewPatient)
	}
	if stats.Cancelled > 0 || stats.NoShows > 0 {
		fmt.Printf("  %s", formatMuted(fmt.Sprintf("(cancelled: %d, no-shows: %d)", stats.Cancelled, stats.NoShows)))
	}
	fmt.Println()
}

// PrintAppointmentRow prints a single appointment row with consistent formatting.
func PrintAppointmentRow(a *appointment.Appointment, nameWidth int) {
	symbol := statusSymbol(a.Status)
	tag := typeTag(a.Type)

	name := a.PatientName
	if a.NewPatient {
		name = "+" + name
	}
	if len(name) > nameWidth {
		name = name[:nameWidth-3] + "..."
	}

	duration := formatMuted(FormatDuration(a.Duration()))
	fmt.Printf("  %s  %s-%s  %s  %-*s  %s\n",
		symbol,
		a.Start.Format("15:04"), a.End.Format("15:04"),
		tag, nameWidth, name, duration)
}

// maxNameWidth derives the patient-name column width from the terminal.
func maxNameWidth() int {
	// Overhead: "  ○  HH:MM-HH:MM  [F]  " plus the duration suffix.
	available := termWidth() - 30
	if available < 20 {
		return 20
	}
	if available > 48 {
		return 48
	}
	return available
}

// typeTag returns the colored single-letter tag for a visit type.
func typeTag(t appointment.Type) string {
	switch t {
	case appointment.TypeFirstVisit:
		return colorFirstVisit.Sprint("[N]")
	case appointment.TypeFollowUp:
		return colorFollowUp.Sprint("[F]")
	case appointment.TypeProcedure:
		return colorProcedure.Sprint("[P]")
	case appointment.TypeEmergency:
		return colorEmergency.Sprint("[E]")
	default:
		return "[?]"
	}
}

// statusSymbol returns the status indicator for an appointment.
func statusSymbol(s appointment.Status) string {
	switch s {
	case appointment.StatusBooked:
		return "○"
	case appointment.StatusConfirmed:
		return "◐"
	case appointment.StatusArrived:
		return "●"
	case appointment.StatusStarted:
		return "▶"
	case appointment.StatusCompleted:
		return "✓"
	case appointment.StatusNoShow:
		return "⊘"
	case appointment.StatusCancelled:
		return "✗"
	default:
		return "?"
	}
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
