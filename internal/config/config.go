// Package config loads optional process-wide tuning for the library.
// Nothing in this module requires a config file: every field has a
// library default, and a file only overrides the fields it sets.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Tuning holds process-wide defaults consulted by callers that build
// stream processors or diagnostic sinks without their own explicit
// settings.
type Tuning struct {
	// DefaultSlidingWindowCapacity bounds how large a SlidingWindowAverage's
	// ring may be: it is the window length given to a spec that does not
	// specify one, and the cap on a spec that asks for more.
	DefaultSlidingWindowCapacity int
	// DefaultDiagnosticLevel is the minimum diagnostics.Level a default
	// sink should report.
	DefaultDiagnosticLevel string
}

// Default returns the library's built-in tuning, used whenever no
// config file is loaded.
func Default() Tuning {
	return Tuning{
		DefaultSlidingWindowCapacity: 64,
		DefaultDiagnosticLevel:       "warn",
	}
}

type fileConfig struct {
	DefaultSlidingWindowCapacity int    `toml:"default_sliding_window_capacity"`
	DefaultDiagnosticLevel       string `toml:"default_diagnostic_level"`
}

// Load reads a TOML file at path and overlays any fields it defines
// onto the library defaults. A field absent from the file keeps its
// default value rather than being zeroed.
func Load(path string) (Tuning, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	if meta.IsDefined("default_sliding_window_capacity") {
		cfg.DefaultSlidingWindowCapacity = raw.DefaultSlidingWindowCapacity
	}
	if meta.IsDefined("default_diagnostic_level") {
		cfg.DefaultDiagnosticLevel = raw.DefaultDiagnosticLevel
	}

	return cfg, nil
}
