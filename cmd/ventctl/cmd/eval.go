package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ventlab/ventctl/internal/config"
	"github.com/ventlab/ventctl/internal/errors"
	"github.com/ventlab/ventctl/internal/history"
	"github.com/ventlab/ventctl/internal/vent"
)

// evalResult is the JSON shape emitted by "eval --output json".
type evalResult struct {
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	FanPower    float64 `json:"fan_power"`
	Overridden  bool    `json:"overridden"`
}

// evalCmd represents the eval command.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a single reading",
	Long: `Evaluate a single temperature and humidity reading and print the
recommended ventilation fan power.

Examples:
  ventctl eval --temp 80 --humidity 60
  ventctl eval --temp 25 --humidity 40 --temp-min -30 --temp-max 30
  ventctl eval --temp 80 --humidity 60 --output json`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().Float64("temp", 0, "Temperature reading")
	evalCmd.Flags().Float64("humidity", 0, "Relative humidity reading (0-100)")
	evalCmd.Flags().Float64("temp-min", 0, "Lower bound of the temperature range (overrides config)")
	evalCmd.Flags().Float64("temp-max", 0, "Upper bound of the temperature range (overrides config)")
	evalCmd.Flags().StringP("output", "o", "", "Output format (json)")
	evalCmd.Flags().Bool("no-history", false, "Do not record the evaluation")

	_ = evalCmd.MarkFlagRequired("temp")
	_ = evalCmd.MarkFlagRequired("humidity")
}

func runEval(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	temp, _ := cmd.Flags().GetFloat64("temp")
	humidity, _ := cmd.Flags().GetFloat64("humidity")
	output, _ := cmd.Flags().GetString("output")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	if output != "" && output != "json" {
		return errors.WithSuggestion(errors.ErrInput,
			fmt.Sprintf("unknown output format: %s", output),
			"Use --output json or omit the flag for text output.")
	}

	cfg, err := config.NewLoader().LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	tempMin := cfg.Temperature.Min
	tempMax := cfg.Temperature.Max
	if cmd.Flags().Changed("temp-min") {
		tempMin, _ = cmd.Flags().GetFloat64("temp-min")
	}
	if cmd.Flags().Changed("temp-max") {
		tempMax, _ = cmd.Flags().GetFloat64("temp-max")
	}

	system, err := vent.NewSystem(tempMin, tempMax)
	if err != nil {
		return err
	}

	reading := vent.Reading{Temperature: temp, Humidity: humidity}
	rec, err := system.Recommend(reading)
	if err != nil {
		return err
	}

	if cfg.History.Enabled && !noHistory {
		if store, err := history.Open(cfg.History.Path); err == nil {
			_ = store.Append(history.NewRecord(system, reading, rec))
			_ = store.Close()
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: history disabled: %v\n", err)
		}
	}

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(evalResult{
			TempMin:     system.TempMin(),
			TempMax:     system.TempMax(),
			Temperature: reading.Temperature,
			Humidity:    reading.Humidity,
			FanPower:    rec.FanPower,
			Overridden:  rec.Overridden,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recommended ventilation power: %.2f%%\n", rec.FanPower)
	if rec.Overridden {
		fmt.Fprintln(cmd.OutOrStdout(), "Full power forced: temperature near the top of the range.")
	}
	return nil
}
