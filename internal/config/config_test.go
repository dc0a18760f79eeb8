package config

import (
	"errors"
	"testing"
	"time"

	venterrors "github.com/ventlab/ventctl/internal/errors"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Temperature.Min != 0 || cfg.Temperature.Max != 100 {
		t.Errorf("temperature range = [%v; %v], want [0; 100]",
			cfg.Temperature.Min, cfg.Temperature.Max)
	}
	if !cfg.History.Enabled {
		t.Error("history not enabled by default")
	}
	if cfg.History.Path != DefaultHistoryPath {
		t.Errorf("history path = %q, want %q", cfg.History.Path, DefaultHistoryPath)
	}
	if cfg.Launcher.Installer != "pip3 install -r" {
		t.Errorf("installer = %q, want pip3 install -r", cfg.Launcher.Installer)
	}
	if cfg.Launcher.EntryPoint != "src/main.py" {
		t.Errorf("entry point = %q, want src/main.py", cfg.Launcher.EntryPoint)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Logging.Level)
	}
}

func TestNewConfigValidates(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestApplyDefaultsFillsUnsetFields(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Temperature.Max != 100 {
		t.Errorf("temperature.max = %v, want 100", cfg.Temperature.Max)
	}
	if cfg.Launcher.Interpreter != "python3" {
		t.Errorf("interpreter = %q, want python3", cfg.Launcher.Interpreter)
	}
	if cfg.Logging.MaxFiles != DefaultMaxLogFiles {
		t.Errorf("max_files = %d, want %d", cfg.Logging.MaxFiles, DefaultMaxLogFiles)
	}
	if cfg.Logging.MaxAge != DefaultMaxLogAge {
		t.Errorf("max_age = %v, want %v", cfg.Logging.MaxAge, DefaultMaxLogAge)
	}
}

func TestApplyDefaultsKeepsSetFields(t *testing.T) {
	cfg := &Config{}
	cfg.Temperature.Min = -30
	cfg.Temperature.Max = 30
	cfg.Logging.Level = "debug"
	cfg.ApplyDefaults()

	if cfg.Temperature.Min != -30 || cfg.Temperature.Max != 30 {
		t.Errorf("temperature range overwritten: [%v; %v]",
			cfg.Temperature.Min, cfg.Temperature.Max)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level overwritten: %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted temperature range", func(c *Config) {
			c.Temperature.Min = 50
			c.Temperature.Max = -50
		}},
		{"degenerate temperature range", func(c *Config) {
			c.Temperature.Min = 10
			c.Temperature.Max = 10
		}},
		{"history enabled without path", func(c *Config) {
			c.History.Enabled = true
			c.History.Path = ""
		}},
		{"unknown log level", func(c *Config) {
			c.Logging.Level = "loud"
		}},
		{"negative max files", func(c *Config) {
			c.Logging.MaxFiles = -1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, venterrors.ErrConfig) {
				t.Errorf("Validate() err = %v, want ErrConfig kind", err)
			}
		})
	}
}

func TestValidateAcceptsCustomValues(t *testing.T) {
	cfg := NewConfig()
	cfg.Temperature.Min = -30
	cfg.Temperature.Max = 30
	cfg.History.Enabled = false
	cfg.History.Path = ""
	cfg.Logging.Level = "warn"
	cfg.Logging.MaxAge = time.Hour

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
