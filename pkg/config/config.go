// Package config defines core configuration types for fixlayer.
// These are pure data structures; loading and merging live in
// internal/configloader.
package config

import "time"

// OutputFormat specifies the output format for analysis results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is a known value.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// DefaultMaxInputBytes bounds per-file input size.
const DefaultMaxInputBytes = 1 << 20

// DefaultTimeout bounds one whole analyze/fix invocation. The editor
// extension path uses the same ceiling.
const DefaultTimeout = 30 * time.Second

// BackupsConfig controls backup behavior when fixing files in place.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration structure for fixlayer.
type Config struct {
	// Layers is the default layer selection. Empty means auto.
	Layers []int `yaml:"layers" validate:"dive,min=1,max=8"`

	// MaxInputBytes rejects files above this size before analysis.
	MaxInputBytes int `yaml:"max_input_bytes" validate:"min=0"`

	// Timeout bounds one whole invocation. Zero means DefaultTimeout.
	Timeout time.Duration `yaml:"timeout" validate:"min=0"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Format selects the output format.
	Format OutputFormat `yaml:"-"`

	// Fix enables rewriting of fixable issues.
	Fix bool `yaml:"-"`

	// DryRun shows what would be fixed without writing files.
	DryRun bool `yaml:"-"`

	// Strict treats warnings as errors for the exit code.
	Strict bool `yaml:"-"`

	// Jobs bounds worker concurrency for multi-file runs.
	Jobs int `yaml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		MaxInputBytes: DefaultMaxInputBytes,
		Timeout:       DefaultTimeout,
		Format:        FormatText,
		Backups:       BackupsConfig{Enabled: false},
	}
}

// EffectiveTimeout returns the configured timeout or the default.
func (c *Config) EffectiveTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
