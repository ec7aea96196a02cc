// Package config defines pipeline configuration and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors are wrapped via this package's sentinel kinds.
package config

import "runtime"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// WorkerCount sets the number of concurrent file workers.
	WorkerCount int `koanf:"worker_count"`

	// MetricsAddr, when non-empty, exposes Prometheus metrics on this
	// address for the duration of the run, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// Progress toggles the terminal progress bar.
	Progress bool `koanf:"progress"`
}

// New creates a Config with defaults. Files are I/O bound but decompression
// and parsing are not, so one worker per CPU is the sweet spot.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		WorkerCount: runtime.NumCPU(),
		MetricsAddr: "",
		Progress:    true,
	}
}
