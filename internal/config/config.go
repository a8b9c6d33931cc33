// Package config holds the runtime configuration for an audit run, loaded
// from an optional YAML file on top of built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Reconcile ReconcileConfig `yaml:"reconcile" json:"reconcile"`
}

// ReconcileConfig tunes the reconciliation engine.
type ReconcileConfig struct {
	// TotalTolerance is the absolute band, in currency units, within which a
	// recalculated total is considered consistent with the billed total.
	// Zero means exact equality after two-decimal rounding. Extraction
	// rounding noise makes exact equality unreliable, hence the default of
	// one currency unit.
	TotalTolerance float64 `yaml:"total_tolerance" json:"total_tolerance"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Reconcile: ReconcileConfig{
			TotalTolerance: 1.0,
		},
	}
}

// Load reads a YAML configuration file over the defaults. Keys absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Reconcile.TotalTolerance < 0 {
		return cfg, fmt.Errorf("reconcile.total_tolerance must be non-negative, got %v", cfg.Reconcile.TotalTolerance)
	}
	return cfg, nil
}
