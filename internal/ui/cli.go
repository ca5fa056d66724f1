package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/consulta/internal/appointment"
	"github.com/javiermolinar/consulta/internal/config"
	"github.com/javiermolinar/consulta/internal/db"
	"github.com/javiermolinar/consulta/internal/prefs"
	"github.com/javiermolinar/consulta/internal/schedule"
	"github.com/javiermolinar/consulta/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   appointment.Repository
	config *config.Config
	prefs  *prefs.Store
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repo is opened lazily from the configured database path.
func NewApp(repo appointment.Repository, cfg *config.Config) *App {
	a := &App{
		repo:   repo,
		config: cfg,
		prefs:  prefs.NewStore(prefs.DefaultDir()),
	}

	a.root = &cobra.Command{
		Use:   "consulta",
		Short: "An appointment calendar for the clinic front desk",
		Long: `Consulta is a terminal appointment calendar for a medical office.

Run it without arguments to open the interactive schedule grid,
or use the subcommands to book, list and cancel appointments
directly from the shell.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.RunWithDebug(a.repo, a.config, a.hoursState(), a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.cancelCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.hoursCmd())

	return a
}

// ensureRepo opens the SQLite repository on first use. Commands that
// never touch storage (version, config) skip this.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return nil
}

// hoursState builds the working-hours state backed by the prefs store,
// so changes made in the TUI persist across sessions.
func (a *App) hoursState() *schedule.HoursState {
	return schedule.NewHoursState(
		a.prefs.LoadWorkingHours(),
		schedule.WithSave(a.prefs.SaveWorkingHours),
	)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("consulta %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
