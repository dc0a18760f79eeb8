package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ventlab/ventctl/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.NewInfo(Version, Commit, Date)
		fmt.Fprintln(cmd.OutOrStdout(), info.FullString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
