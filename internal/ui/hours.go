package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/consulta/internal/schedule"
)

func (a *App) hoursCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Show or change the working hours",
		Long: `Show or change the clinic working hours.

The grid highlights slots inside working hours; slots outside are
dimmed but can still be booked for exceptional cases.

Example:
  consulta hours
  consulta hours set 8 18`,
		RunE: func(_ *cobra.Command, _ []string) error {
			hours := a.prefs.LoadWorkingHours()
			fmt.Printf("Working hours: %02d:00-%02d:00\n", hours.StartHour, hours.EndHour)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [start-hour] [end-hour]",
		Short: "Set the working hours",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid start hour %q", args[0])
			}
			end, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid end hour %q", args[1])
			}

			state := a.hoursState()
			if err := state.Set(schedule.WorkingHours{StartHour: start, EndHour: end}); err != nil {
				return err
			}

			hours := state.Get()
			fmt.Printf("Working hours set to %02d:00-%02d:00\n", hours.StartHour, hours.EndHour)
			return nil
		},
	})

	return cmd
}
