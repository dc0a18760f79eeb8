package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ventlab/ventctl/internal/config"
	"github.com/ventlab/ventctl/internal/history"
	"github.com/ventlab/ventctl/internal/logging"
	"github.com/ventlab/ventctl/internal/tui"
	"github.com/ventlab/ventctl/internal/vent"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive advisor",
	Long: `Start the interactive advisor.

The advisor asks for a temperature range, then for temperature and
humidity readings, and recommends a ventilation fan power. Evaluations
are stored in the history database unless disabled.

Examples:
  ventctl run                  # Start the advisor
  ventctl run --no-history     # Don't record evaluations
  ventctl run --verbose        # Debug logging to .ventctl/logs`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	runCmd.Flags().Bool("no-history", false, "Do not record evaluations")
}

// runRun is the main entry point for the run command.
func runRun(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	cfg, err := config.NewLoader().LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	// Initialize file logging. Console output stays off so log lines
	// never corrupt the alternate screen.
	logLevel := logging.ParseLevel(cfg.Logging.Level)
	if verbose {
		logLevel = logging.LevelDebug
	}
	logConfig := &logging.Config{
		Level:       logLevel,
		LogDir:      cfg.Logging.Dir,
		MaxLogFiles: cfg.Logging.MaxFiles,
		MaxLogAge:   cfg.Logging.MaxAge,
		Console:     false,
	}
	if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: warn but continue without file logging
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		defer func() { _ = logging.CloseGlobal() }()
		logging.Info("ventctl starting", "version", Version, "verbose", verbose)
	}

	var recorder tui.Recorder
	if cfg.History.Enabled && !noHistory {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: history disabled: %v\n", err)
		} else {
			defer func() { _ = store.Close() }()
			recorder = func(s *vent.System, r vent.Reading, rec vent.Recommendation) error {
				return store.Append(history.NewRecord(s, r, rec))
			}
		}
	}

	m := tui.New(tui.Options{
		TempMin:  cfg.Temperature.Min,
		TempMax:  cfg.Temperature.Max,
		Recorder: recorder,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("advisor failed: %w", err)
	}
	return nil
}
