// Package config loads nroads' process-level configuration: logging,
// trace output, and metrics reporting. None of it is persisted map or
// route state -- that is out of scope for this process's configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-decoded startup configuration. It mirrors a
// loadConfig/yamlConfig nested-struct decode, trimmed of every
// network-specific field (listen address, TLS, peers).
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error". Defaults to
	// "info".
	LogLevel string `yaml:"log_level"`

	// TraceOutputPath, if set, receives one JSON line per span. Empty
	// means tracing is a no-op.
	TraceOutputPath string `yaml:"trace_output_path"`

	// PrintMetricsOnExit, when true, dumps a Prometheus text-format
	// summary of the run's counters to stderr on a clean exit.
	PrintMetricsOnExit bool `yaml:"print_metrics_on_exit"`
}

// Default returns the configuration used when no -config file is given.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads and parses a YAML config file at path. An empty path returns
// Default() without touching the filesystem.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
