package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestVentErrorError(t *testing.T) {
	e := New(ErrInput, "bad reading")
	if got := e.Error(); got != "bad reading" {
		t.Errorf("Error() = %q, want %q", got, "bad reading")
	}

	cause := fmt.Errorf("underlying")
	e = Wrap(cause, ErrConfig, "load failed")
	if got := e.Error(); got != "load failed: underlying" {
		t.Errorf("Error() = %q, want %q", got, "load failed: underlying")
	}
}

func TestVentErrorIs(t *testing.T) {
	e := New(ErrLaunch, "cannot resolve dir")
	if !errors.Is(e, ErrLaunch) {
		t.Error("errors.Is(e, ErrLaunch) = false, want true")
	}
	if errors.Is(e, ErrConfig) {
		t.Error("errors.Is(e, ErrConfig) = true, want false")
	}
}

func TestVentErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	e := Wrap(cause, ErrHistory, "open failed")
	if !errors.Is(e, cause) {
		t.Error("wrapped cause not found in chain")
	}
}

func TestVentErrorFormat(t *testing.T) {
	e := WithSuggestion(ErrInput, "humidity 150 is outside [0; 100]", "Use a percentage.")
	e.WithDetails("value", "150")

	out := e.Format()
	if !strings.Contains(out, "Error: humidity 150") {
		t.Errorf("Format() missing message: %q", out)
	}
	if !strings.Contains(out, "value: 150") {
		t.Errorf("Format() missing details: %q", out)
	}
	if !strings.Contains(out, "Use a percentage.") {
		t.Errorf("Format() missing suggestion: %q", out)
	}
}

func TestConstructorsCarryKinds(t *testing.T) {
	tests := []struct {
		name string
		err  *VentError
		kind error
	}{
		{"config not found", ConfigNotFound(".ventctl/config.yaml"), ErrConfig},
		{"config parse", ConfigParseError("x.yaml", fmt.Errorf("bad yaml")), ErrConfig},
		{"config validation", ConfigValidationError("temperature.min", "min above max"), ErrConfig},
		{"invalid range", InvalidTemperatureRange(30, -30), ErrInput},
		{"temp out of range", TemperatureOutOfRange(50, -30, 30), ErrInput},
		{"humidity out of range", HumidityOutOfRange(150), ErrInput},
		{"launch path", LaunchPathError(fmt.Errorf("no exe")), ErrLaunch},
		{"history open", HistoryOpenError("hist.db", fmt.Errorf("locked")), ErrHistory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.kind)
			}
		})
	}
}
