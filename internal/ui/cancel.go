package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/consulta/internal/appointment"
)

func (a *App) cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [appointment-id]",
		Short: "Cancel a booked appointment",
		Long: `Cancel an appointment by its ID.

The appointment stays on record with a cancelled status; the slot
becomes free for new bookings. IDs are printed by add and shown in
the detail view of the grid.

Example:
  consulta cancel 2f1c9a88-0d7e-4f7c-9b34-d41a37f2b6e1`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			appt, err := a.repo.Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("looking up appointment: %w", err)
			}
			if appt == nil {
				return appointment.ErrNotFound
			}

			if err := a.repo.UpdateStatus(ctx, appt.ID, appointment.StatusCancelled); err != nil {
				return fmt.Errorf("cancelling appointment: %w", err)
			}

			fmt.Printf("Cancelled %s\n", appt.Label())
			return nil
		},
	}
}
