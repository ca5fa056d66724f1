// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/consulta/internal/appointment"
)

// RangeLoadedMsg is sent when appointments for the visible range are
// loaded.
type RangeLoadedMsg struct {
	Appts []*appointment.Appointment
}

// SavedMsg is sent when pending changes have been persisted.
type SavedMsg struct{}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Saver persists pending in-memory changes against a repository.
type Saver interface {
	SaveChanges(ctx context.Context, repo appointment.Repository) error
}

// LoadRange loads appointments between two days, inclusive.
func LoadRange(repo appointment.Repository, start, end time.Time) tea.Cmd {
	return func() tea.Msg {
		appts, err := repo.ListByDateRange(context.Background(), start, end)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading appointments: %w", err)}
		}
		return RangeLoadedMsg{Appts: appts}
	}
}

// Save persists all pending changes.
func Save(s Saver, repo appointment.Repository) tea.Cmd {
	return func() tea.Msg {
		if err := s.SaveChanges(context.Background(), repo); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving changes: %w", err)}
		}
		return SavedMsg{}
	}
}

// Status shows a temporary status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
