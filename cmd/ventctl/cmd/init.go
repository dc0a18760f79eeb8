package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ventlab/ventctl/internal/config"
	"github.com/ventlab/ventctl/internal/errors"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Create .ventctl/config.yaml in the current directory with the
default configuration.

Examples:
  ventctl init           # Create the config file
  ventctl init --force   # Overwrite an existing config file`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

// configDocument mirrors Config for serialization, rendering durations
// as strings ("168h") so the written file round-trips through the
// duration decode hook instead of serializing as nanoseconds.
type configDocument struct {
	Temperature config.TemperatureConfig `yaml:"temperature"`
	History     config.HistoryConfig     `yaml:"history"`
	Launcher    config.LauncherConfig    `yaml:"launcher"`
	Logging     loggingDocument          `yaml:"logging"`
}

type loggingDocument struct {
	Level    string `yaml:"level"`
	Dir      string `yaml:"dir"`
	MaxFiles int    `yaml:"max_files"`
	MaxAge   string `yaml:"max_age"`
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := config.DefaultConfigPath
	if flagPath, _ := cmd.Flags().GetString("config"); flagPath != "" {
		path = flagPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithSuggestion(errors.ErrConfig,
			fmt.Sprintf("config file already exists: %s", path),
			"Use --force to overwrite it.")
	}

	cfg := config.NewConfig()
	doc := configDocument{
		Temperature: cfg.Temperature,
		History:     cfg.History,
		Launcher:    cfg.Launcher,
		Logging: loggingDocument{
			Level:    cfg.Logging.Level,
			Dir:      cfg.Logging.Dir,
			MaxFiles: cfg.Logging.MaxFiles,
			MaxAge:   cfg.Logging.MaxAge.String(),
		},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to serialize default configuration")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, errors.ErrConfig,
				fmt.Sprintf("failed to create directory: %s", dir))
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrConfig,
			fmt.Sprintf("failed to write config file: %s", path))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit it to adjust the temperature range, history and launcher settings.")
	return nil
}
