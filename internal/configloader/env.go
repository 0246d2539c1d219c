package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fixlayer/fixlayer/pkg/config"
)

// envVarPrefix is the prefix for all fixlayer environment variables.
const envVarPrefix = "FIXLAYER_"

// applyEnv applies environment variable overrides to the configuration.
// Variables are prefixed with FIXLAYER_ (e.g., FIXLAYER_LAYERS=2,8).
func applyEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := envValue("LAYERS"); v != "" {
		layers, err := parseLayerList(v)
		if err != nil {
			return fmt.Errorf("%sLAYERS: %w", envVarPrefix, err)
		}
		cfg.Layers = layers
	}

	if v := envValue("MAX_INPUT_BYTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_INPUT_BYTES: invalid integer %q", envVarPrefix, v)
		}
		cfg.MaxInputBytes = n
	}

	if v := envValue("TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTIMEOUT: invalid duration %q (expected e.g. 30s)", envVarPrefix, v)
		}
		cfg.Timeout = d
	}

	if v := envValue("IGNORE"); v != "" {
		cfg.Ignore = splitList(v)
	}

	if v := envValue("FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}

	if v := envValue("JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sJOBS: invalid integer %q", envVarPrefix, v)
		}
		cfg.Jobs = n
	}

	for _, b := range []struct {
		suffix string
		target *bool
	}{
		{"FIX", &cfg.Fix},
		{"DRY_RUN", &cfg.DryRun},
		{"STRICT", &cfg.Strict},
		{"BACKUPS_ENABLED", &cfg.Backups.Enabled},
	} {
		v := envValue(b.suffix)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: invalid boolean %q (expected true/false/1/0)",
				envVarPrefix, b.suffix, v)
		}
		*b.target = parsed
	}

	return nil
}

// envValue reads a prefixed environment variable.
func envValue(suffix string) string {
	return os.Getenv(envVarPrefix + suffix)
}

// parseLayerList parses a comma-separated list of layer numbers.
func parseLayerList(value string) ([]int, error) {
	parts := splitList(value)
	layers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid layer %q", part)
		}
		layers = append(layers, n)
	}
	return layers, nil
}

// splitList parses a comma-separated string, trimming whitespace and
// dropping empty elements.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
