package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ventlab/ventctl/internal/config"
	"github.com/ventlab/ventctl/internal/launcher"
)

// launchCmd represents the launch command.
var launchCmd = &cobra.Command{
	Use:   "launch [dir]",
	Short: "Install an external program's dependencies and run it",
	Long: `Install an external program's dependencies and run it.

The launcher clears the terminal, installs dependencies from the
manifest (failures are ignored), clears again, runs the entry point
(its exit code is ignored), waits for Enter, clears once more and
exits successfully. The installer, manifest, interpreter and entry
point are all configurable in .ventctl/config.yaml.

When dir is omitted, the directory of the ventctl executable is used.

Examples:
  ventctl launch                 # Use the executable's directory
  ventctl launch /opt/vent-app   # Use an explicit base directory`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.NewLoader().LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	baseDir := ""
	if len(args) > 0 {
		baseDir = args[0]
	}

	l := launcher.New(launcher.Options{
		BaseDir:     baseDir,
		Installer:   cfg.Launcher.Installer,
		Manifest:    cfg.Launcher.Manifest,
		Interpreter: cfg.Launcher.Interpreter,
		EntryPoint:  cfg.Launcher.EntryPoint,
		Prompt:      cfg.Launcher.Prompt,
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Err:         cmd.ErrOrStderr(),
	})

	// The only failure that propagates is a base directory resolution
	// error; child process failures are swallowed by the launcher.
	return l.Run(cmd.Context())
}
