package configloader

import "github.com/fixlayer/fixlayer/pkg/config"

// merge combines two configurations, with override taking precedence over
// base. Scalars overwrite when non-zero, slices replace wholesale when
// non-nil, and unset values in override leave base untouched.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Layers != nil {
		result.Layers = override.Layers
	}
	if override.MaxInputBytes != 0 {
		result.MaxInputBytes = override.MaxInputBytes
	}
	if override.Timeout != 0 {
		result.Timeout = override.Timeout
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	// False is the bool zero value, so a config file can enable backups
	// but cannot unset a value enabled earlier in the chain.
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	return &result
}

// mergeCLI applies CLI flag values on top of the resolved configuration.
// CLI-only fields (format, fix, dry-run, strict, jobs) always transfer;
// file-backed fields transfer only when the flag was actually set.
func mergeCLI(base, cli *config.Config) *config.Config {
	if cli == nil {
		return base
	}

	result := merge(base, cli)

	if cli.Format != "" {
		result.Format = cli.Format
	}
	if cli.Fix {
		result.Fix = true
	}
	if cli.DryRun {
		result.DryRun = true
	}
	if cli.Strict {
		result.Strict = true
	}
	if cli.Jobs != 0 {
		result.Jobs = cli.Jobs
	}

	return result
}
