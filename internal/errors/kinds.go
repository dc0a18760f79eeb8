// Package errors provides error types for ventctl.
// This file contains the concrete error constructors.
package errors

import (
	"fmt"
	"strconv"
)

// Configuration-related error constructors.

// ConfigNotFound creates an error for missing configuration.
func ConfigNotFound(configPath string) *VentError {
	return &VentError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Create a default configuration:

  ventctl init

or point --config at an existing file.`,
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *VentError {
	return &VentError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check the file for YAML syntax errors:
  1. Use spaces, not tabs, for indentation
  2. Check for missing colons or quotes`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string) *VentError {
	return &VentError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: fmt.Sprintf("Fix the %q field in .ventctl/config.yaml", field),
	}
}

// Input-related error constructors.

// InvalidTemperatureRange creates an error for a degenerate range.
func InvalidTemperatureRange(min, max float64) *VentError {
	return &VentError{
		Kind:    ErrInput,
		Message: fmt.Sprintf("invalid temperature range: min %v must be below max %v", min, max),
		Details: map[string]string{
			"min": formatFloat(min),
			"max": formatFloat(max),
		},
		Suggestion: "Give the range as two numbers with the minimum first, e.g. -30 30.",
	}
}

// TemperatureOutOfRange creates an error for a reading outside the range.
func TemperatureOutOfRange(value, min, max float64) *VentError {
	return &VentError{
		Kind:    ErrInput,
		Message: fmt.Sprintf("temperature %v is outside [%v; %v]", value, min, max),
		Details: map[string]string{
			"value": formatFloat(value),
			"min":   formatFloat(min),
			"max":   formatFloat(max),
		},
		Suggestion: "Enter a temperature within the configured range, or widen the range.",
	}
}

// HumidityOutOfRange creates an error for a humidity outside 0..100.
func HumidityOutOfRange(value float64) *VentError {
	return &VentError{
		Kind:    ErrInput,
		Message: fmt.Sprintf("humidity %v is outside [0; 100]", value),
		Details: map[string]string{
			"value": formatFloat(value),
		},
		Suggestion: "Relative humidity is a percentage between 0 and 100.",
	}
}

// Launcher-related error constructors.

// LaunchPathError creates an error for a failed base directory resolution.
func LaunchPathError(cause error) *VentError {
	return &VentError{
		Kind:    ErrLaunch,
		Message: "failed to resolve the launcher's own directory",
		Cause:   cause,
		Suggestion: `Pass the base directory explicitly:

  ventctl launch /path/to/app`,
	}
}

// History-related error constructors.

// HistoryOpenError creates an error for a history database that cannot
// be opened.
func HistoryOpenError(path string, cause error) *VentError {
	return &VentError{
		Kind:    ErrHistory,
		Message: fmt.Sprintf("failed to open history database: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the directory exists and is writable, or disable history in .ventctl/config.yaml.",
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
