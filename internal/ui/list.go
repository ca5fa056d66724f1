package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/consulta/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments in a date range",
		Long: `List appointments scheduled within a date range.

If no dates are specified, lists today's appointments.
If only --start is specified, lists that single day.
If both --start and --end are specified, lists the range (inclusive).`,
		Example: `  consulta list
  consulta list --start=2026-09-01
  consulta list --start=2026-09-01 --end=2026-09-05`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}

			dateRange, err := dateutil.NewDateRange(startDate, endDate)
			if err != nil {
				return err
			}

			appts, err := a.repo.ListByDateRange(context.Background(), dateRange.Start, dateRange.End)
			if err != nil {
				return fmt.Errorf("listing appointments: %w", err)
			}

			if len(appts) == 0 {
				fmt.Println("No appointments found in the specified date range.")
				return nil
			}

			nameWidth := maxNameWidth()
			var stats Stats

			// Print appointments grouped by date
			var currentDate string
			for _, appt := range appts {
				date := appt.Start.Format("2006-01-02")
				if date != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Println(formatHeader(fmt.Sprintf("=== %s (%s) ===", date, appt.Start.Format("Mon"))))
					currentDate = date
				}

				PrintAppointmentRow(appt, nameWidth)
				AccumulateStats(&stats, appt)
			}

			fmt.Println()
			PrintStats(stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output (useful for piping)")

	return cmd
}
