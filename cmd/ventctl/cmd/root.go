// Package cmd provides the CLI commands for ventctl.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ventctl",
	Short: "Fuzzy ventilation advisor",
	Long: `Ventctl recommends a ventilation fan power from temperature and
humidity readings using Tsukamoto fuzzy inference.

It provides an interactive terminal advisor, a one-shot evaluation mode
for scripts, an evaluation history, and a launcher that installs an
external program's dependencies and runs it.`,
	// When ventctl is called with no subcommand, start the advisor
	// (same as "ventctl run").
	RunE: runRoot,
}

// runRoot is called when ventctl is invoked with no subcommand.
// It starts the interactive advisor, same as "ventctl run".
func runRoot(cmd *cobra.Command, args []string) error {
	return runRun(cmd, args)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default .ventctl/config.yaml)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set version info here after main.go has set the variables.
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("ventctl {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
