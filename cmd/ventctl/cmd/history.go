package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ventlab/ventctl/internal/config"
	"github.com/ventlab/ventctl/internal/errors"
	"github.com/ventlab/ventctl/internal/history"
)

// historyCmd represents the history command.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent evaluations",
	Long: `Show recent evaluations from the history database, newest first.

Examples:
  ventctl history                # Last 20 evaluations
  ventctl history --limit 5      # Last 5 evaluations
  ventctl history --output json  # Machine-readable output`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of evaluations to show")
	historyCmd.Flags().StringP("output", "o", "", "Output format (json)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	limit, _ := cmd.Flags().GetInt("limit")
	output, _ := cmd.Flags().GetString("output")

	if output != "" && output != "json" {
		return errors.WithSuggestion(errors.ErrInput,
			fmt.Sprintf("unknown output format: %s", output),
			"Use --output json or omit the flag for text output.")
	}

	cfg, err := config.NewLoader().LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.Recent(limit)
	if err != nil {
		return err
	}

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No evaluations recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tRANGE\tTEMP\tHUMIDITY\tFAN POWER\t")
	for _, r := range records {
		fan := fmt.Sprintf("%.2f%%", r.FanPower)
		if r.Overridden {
			fan += " (forced)"
		}
		fmt.Fprintf(w, "%s\t[%g; %g]\t%g\t%g%%\t%s\t\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.TempMin, r.TempMax, r.Temperature, r.Humidity, fan)
	}
	return w.Flush()
}
