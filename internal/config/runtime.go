package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// RunConfiguration is the immutable record produced once at startup: the
// resolved configuration-file path plus process-level overrides. It is never
// mutated after construction.
type RunConfiguration struct {
	// ConfigPath is the configuration file loaded at engine construction
	// and on reload.
	ConfigPath string `envconfig:"CONFIG" default:""`
	// LogLevel selects the logger verbosity.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// Development switches the logger to console encoding.
	Development bool `envconfig:"LOG_DEV" default:"false"`
	// Watch re-loads the configuration when the file changes on disk.
	Watch bool `envconfig:"WATCH" default:"false"`
}

// LoadRunConfiguration populates a RunConfiguration from PROWL_* environment
// variables. CLI flags are applied on top by the caller before the record is
// handed to the engine.
func LoadRunConfiguration() (RunConfiguration, error) {
	var rc RunConfiguration
	if err := envconfig.Process("prowl", &rc); err != nil {
		return RunConfiguration{}, fmt.Errorf("failed to load run configuration: %w", err)
	}
	if rc.ConfigPath == "" {
		rc.ConfigPath = DefaultConfigPath()
	}
	return rc, nil
}

// DefaultConfigPath returns the conventional configuration file location
// under the user's config directory.
func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(base, "prowl", "config.toml")
}
