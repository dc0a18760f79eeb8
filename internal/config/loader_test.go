package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
temperature:
  min: -30
  max: 30
history:
  enabled: false
launcher:
  interpreter: python3.12
  entry_point: app/advisor.py
logging:
  level: debug
  max_age: 48h
`)

	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Temperature.Min != -30 || cfg.Temperature.Max != 30 {
		t.Errorf("temperature range = [%v; %v], want [-30; 30]",
			cfg.Temperature.Min, cfg.Temperature.Max)
	}
	if cfg.History.Enabled {
		t.Error("history.enabled = true, want false")
	}
	if cfg.Launcher.Interpreter != "python3.12" {
		t.Errorf("interpreter = %q, want python3.12", cfg.Launcher.Interpreter)
	}
	if cfg.Launcher.EntryPoint != "app/advisor.py" {
		t.Errorf("entry_point = %q, want app/advisor.py", cfg.Launcher.EntryPoint)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.MaxAge != 48*time.Hour {
		t.Errorf("logging.max_age = %v, want 48h", cfg.Logging.MaxAge)
	}

	// Unspecified fields keep their defaults.
	if cfg.Launcher.Installer != "pip3 install -r" {
		t.Errorf("installer = %q, want default", cfg.Launcher.Installer)
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	_, err := NewLoader().LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadConfig() = nil, want error")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("err = %T, want *LoadError", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "temperature:\n\tmin: [broken")

	_, err := NewLoader().LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() = nil, want error")
	}
}

func TestLoadConfigValidationFailure(t *testing.T) {
	path := writeConfig(t, `
temperature:
  min: 50
  max: -50
`)

	_, err := NewLoader().LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() = nil, want validation error")
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := NewLoader().LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Temperature.Max != 100 {
		t.Errorf("temperature.max = %v, want default 100", cfg.Temperature.Max)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VENTCTL_TEMPERATURE_MIN", "-10")
	t.Setenv("VENTCTL_TEMPERATURE_MAX", "40")
	t.Setenv("VENTCTL_HISTORY_ENABLED", "no")
	t.Setenv("VENTCTL_LAUNCHER_INTERPRETER", "python3.13")
	t.Setenv("VENTCTL_LOGGING_LEVEL", "error")

	cfg, err := NewLoader().LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}

	if cfg.Temperature.Min != -10 || cfg.Temperature.Max != 40 {
		t.Errorf("temperature range = [%v; %v], want [-10; 40]",
			cfg.Temperature.Min, cfg.Temperature.Max)
	}
	if cfg.History.Enabled {
		t.Error("history.enabled = true, want false via env")
	}
	if cfg.Launcher.Interpreter != "python3.13" {
		t.Errorf("interpreter = %q, want python3.13", cfg.Launcher.Interpreter)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("logging.level = %q, want error", cfg.Logging.Level)
	}
}

func TestParseBool(t *testing.T) {
	for _, truthy := range []string{"true", "TRUE", "1", "yes", " Yes "} {
		if !parseBool(truthy) {
			t.Errorf("parseBool(%q) = false, want true", truthy)
		}
	}
	for _, falsy := range []string{"false", "0", "no", "", "maybe"} {
		if parseBool(falsy) {
			t.Errorf("parseBool(%q) = true, want false", falsy)
		}
	}
}
