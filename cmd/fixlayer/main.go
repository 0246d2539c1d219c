// Package main is the entry point for the fixlayer CLI.
package main

import (
	"errors"
	"os"

	"github.com/fixlayer/fixlayer/internal/cli"
	"github.com/fixlayer/fixlayer/internal/logging"

	// Import layers package to register built-in layers via init().
	_ "github.com/fixlayer/fixlayer/pkg/layer/layers"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Silent() {
				logging.Default().Error("command failed", logging.FieldError, err)
			}
			return exitErr.Code
		}
		logging.Default().Error("command failed", logging.FieldError, err)
		return cli.ExitInternalError
	}

	return 0
}
