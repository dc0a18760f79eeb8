// Package config provides configuration data structures for ventctl.
package config

import (
	"time"

	"github.com/ventlab/ventctl/internal/errors"
	"github.com/ventlab/ventctl/internal/launcher"
	"github.com/ventlab/ventctl/internal/vent"
)

// Config represents the complete ventctl configuration loaded from
// .ventctl/config.yaml.
type Config struct {
	Temperature TemperatureConfig `yaml:"temperature" json:"temperature"`
	History     HistoryConfig     `yaml:"history"     json:"history"`
	Launcher    LauncherConfig    `yaml:"launcher"    json:"launcher"`
	Logging     LoggingConfig     `yaml:"logging"     json:"logging"`
}

// TemperatureConfig bounds the accepted temperature readings.
type TemperatureConfig struct {
	// Min is the inclusive lower bound of the temperature range.
	Min float64 `yaml:"min" json:"min"`
	// Max is the inclusive upper bound of the temperature range.
	Max float64 `yaml:"max" json:"max"`
}

// HistoryConfig configures the evaluation history store.
type HistoryConfig struct {
	// Enabled toggles recording of evaluations (default: true).
	Enabled bool `yaml:"enabled" json:"enabled"`
	// Path is the sqlite database path (default: .ventctl/history.db).
	Path string `yaml:"path" json:"path"`
}

// LauncherConfig configures the external entry point launcher.
type LauncherConfig struct {
	// Installer is the dependency installer command; the manifest path is
	// appended as its final argument (default: "pip3 install -r").
	Installer string `yaml:"installer" json:"installer"`
	// Manifest is the dependency manifest relative to the base directory.
	Manifest string `yaml:"manifest" json:"manifest"`
	// Interpreter runs the entry point (default: python3).
	Interpreter string `yaml:"interpreter" json:"interpreter"`
	// EntryPoint is the program to run, relative to the base directory.
	EntryPoint string `yaml:"entry_point" json:"entry_point"`
	// Prompt is shown before the final pause.
	Prompt string `yaml:"prompt" json:"prompt"`
}

// LoggingConfig configures file logging.
type LoggingConfig struct {
	// Level is the minimum severity: debug, info, warn or error.
	Level string `yaml:"level" json:"level"`
	// Dir is the log directory (default: .ventctl/logs).
	Dir string `yaml:"dir" json:"dir"`
	// MaxFiles is the maximum number of log files to keep.
	MaxFiles int `yaml:"max_files" json:"max_files"`
	// MaxAge is the maximum age of log files before cleanup.
	MaxAge time.Duration `yaml:"max_age" json:"max_age"`
}

// Default values.
const (
	DefaultHistoryPath = ".ventctl/history.db"
	DefaultLogDir      = ".ventctl/logs"
	DefaultLogLevel    = "info"
	DefaultMaxLogFiles = 10
	DefaultMaxLogAge   = 7 * 24 * time.Hour
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Temperature: TemperatureConfig{
			Min: vent.DefaultTempMin,
			Max: vent.DefaultTempMax,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    DefaultHistoryPath,
		},
		Launcher: LauncherConfig{
			Installer:   launcher.DefaultInstaller,
			Manifest:    launcher.DefaultManifest,
			Interpreter: launcher.DefaultInterpreter,
			EntryPoint:  launcher.DefaultEntryPoint,
			Prompt:      launcher.DefaultPrompt,
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Dir:      DefaultLogDir,
			MaxFiles: DefaultMaxLogFiles,
			MaxAge:   DefaultMaxLogAge,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Temperature.Min == 0 && c.Temperature.Max == 0 {
		c.Temperature = defaults.Temperature
	}
	if c.History.Path == "" {
		c.History.Path = defaults.History.Path
	}
	if c.Launcher.Installer == "" {
		c.Launcher.Installer = defaults.Launcher.Installer
	}
	if c.Launcher.Manifest == "" {
		c.Launcher.Manifest = defaults.Launcher.Manifest
	}
	if c.Launcher.Interpreter == "" {
		c.Launcher.Interpreter = defaults.Launcher.Interpreter
	}
	if c.Launcher.EntryPoint == "" {
		c.Launcher.EntryPoint = defaults.Launcher.EntryPoint
	}
	if c.Launcher.Prompt == "" {
		c.Launcher.Prompt = defaults.Launcher.Prompt
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = defaults.Logging.Dir
	}
	if c.Logging.MaxFiles == 0 {
		c.Logging.MaxFiles = defaults.Logging.MaxFiles
	}
	if c.Logging.MaxAge == 0 {
		c.Logging.MaxAge = defaults.Logging.MaxAge
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Temperature.Min >= c.Temperature.Max {
		return errors.ConfigValidationError("temperature",
			"temperature.min must be below temperature.max")
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.ConfigValidationError("history.path",
			"history.path must be set when history is enabled")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.ConfigValidationError("logging.level",
			"logging.level must be one of debug, info, warn, error")
	}
	if c.Logging.MaxFiles < 0 {
		return errors.ConfigValidationError("logging.max_files",
			"logging.max_files must not be negative")
	}
	return nil
}
