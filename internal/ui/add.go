package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/consulta/internal/appointment"
	"github.com/javiermolinar/consulta/internal/dateutil"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date       string
		start      string
		duration   int
		visitType  string
		phone      string
		newPatient bool
	)

	cmd := &cobra.Command{
		Use:   "add [patient-name]",
		Short: "Book a new appointment",
		Long: `Book a new appointment for a patient.

Example:
  consulta add "Ana Gomez" --date=2026-09-01 --start=09:30 --duration=30 --type=follow-up`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day := time.Now()
			if date != "" {
				parsed, err := dateutil.ParseDate(date)
				if err != nil {
					return err
				}
				day = parsed
			}

			startTime, err := atTime(day, start)
			if err != nil {
				return err
			}
			if duration <= 0 {
				duration = a.config.Schedule.IntervalMinutes
			}
			endTime := startTime.Add(time.Duration(duration) * time.Minute)

			appt, err := appointment.New(args[0], appointment.Type(visitType), startTime, endTime, newPatient)
			if err != nil {
				return err
			}
			appt.PatientPhone = phone

			ctx := context.Background()
			if err := a.repo.Create(ctx, appt); err != nil {
				return fmt.Errorf("booking appointment: %w", err)
			}

			fmt.Printf("Booked %s\n", appt.Label())
			fmt.Printf("  id: %s\n", appt.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Appointment date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes (default: the configured slot interval)")
	cmd.Flags().StringVar(&visitType, "type", string(appointment.TypeFollowUp), "Visit type: first-visit, follow-up, procedure or emergency")
	cmd.Flags().StringVar(&phone, "phone", "", "Patient phone number")
	cmd.Flags().BoolVar(&newPatient, "new-patient", false, "Mark as a new patient")

	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// atTime combines a calendar day with a wall-clock "HH:MM" string.
func atTime(day time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}
