package cli

import (
	"github.com/spf13/cobra"

	"github.com/fixlayer/fixlayer/pkg/config"
)

func newFixCommand() *cobra.Command {
	var cfg config.Config
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Analyze source files and apply fixes",
		Long: `Analyze files through the layered pipeline and rewrite fixable issues
in place.

Fixes are applied in ascending line order. When two fixes target
overlapping code, the one from the earlier layer wins and the other is
reported as skipped. Files are written atomically, and a second run over
already-fixed files makes no further changes.

Examples:
  fixlayer fix                    # Fix current directory
  fixlayer fix src/               # Fix src directory
  fixlayer fix --dry-run          # Show fixes without applying
  fixlayer fix --backups          # Keep a .fixlayer.bak per modified file
  fixlayer fix --layers 2         # Only apply layer 2 fixes`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Fix = true
			return runAnalysis(cmd, args, &cfg, flags)
		},
	}

	addAnalyzeFlags(cmd, &cfg, flags)
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().BoolVar(&cfg.Backups.Enabled, "backups", false,
		"create a backup before modifying each file")

	return cmd
}
