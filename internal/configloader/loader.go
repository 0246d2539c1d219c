// Package configloader resolves the final fixlayer configuration from
// config files, environment variables, and CLI flags.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fixlayer/fixlayer/pkg/config"
)

// ConfigFileName is the project configuration file fixlayer searches for.
const ConfigFileName = ".fixlayer.yaml"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags. These take
	// highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (FIXLAYER_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.fixlayer.yaml upward search)
//  5. Defaults
func Load(_ context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	// Project or explicit config file.
	path := opts.ExplicitPath
	if path == "" {
		path = discoverProjectConfig(workDir)
	}
	if path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			if opts.ExplicitPath != "" {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
			// Discovered config that fails to parse is a warning, not
			// a hard failure.
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("ignoring unreadable config %s: %v", path, err))
		} else {
			cfg = merge(cfg, fileCfg)
			result.LoadedFrom = append(result.LoadedFrom, path)
		}
	}

	// Environment overrides.
	if !opts.IgnoreEnv {
		if err := applyEnv(cfg); err != nil {
			return nil, fmt.Errorf("environment overrides: %w", err)
		}
	}

	// CLI flags win.
	if opts.CLIConfig != nil {
		cfg = mergeCLI(cfg, opts.CLIConfig)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile parses a YAML config file.
func loadConfigFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}
