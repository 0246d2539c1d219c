// Package cli provides the Cobra command structure for fixlayer.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fixlayer/fixlayer/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root fixlayer command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "fixlayer",
		Short: "A layered static analyzer and fixer for JavaScript and TypeScript",
		Long: `fixlayer analyzes JavaScript, TypeScript, React and Next.js sources
through eight ordered analysis layers, from configuration checks up to
security scanning. Many findings can be fixed automatically, with
conflict detection, dry-run mode, and optional backups keeping the
rewrites safe.

The same pipeline backs the CLI and the editor integrations, so results
are identical no matter where an analysis runs.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newLayersCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
