package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fixlayer/fixlayer/internal/configloader"
	"github.com/fixlayer/fixlayer/internal/logging"
	"github.com/fixlayer/fixlayer/pkg/config"
	"github.com/fixlayer/fixlayer/pkg/core"
	_ "github.com/fixlayer/fixlayer/pkg/layer/layers" // Register built-in layers
	"github.com/fixlayer/fixlayer/pkg/reporter"
	"github.com/fixlayer/fixlayer/pkg/runner"
)

// cliPlatform tags results produced by this frontend.
const cliPlatform = "cli"

type analyzeFlags struct {
	format  string
	layers  []int
	ignore  []string
	strict  bool
	compact bool
}

func newAnalyzeCommand() *cobra.Command {
	var cfg config.Config
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Analyze source files",
		Long: `Analyze JavaScript and TypeScript files through the layered pipeline.

By default, analyzes all supported source files in the current directory
and subdirectories, with layers selected per file based on its language
and path. Specify paths to analyze specific files or directories.

Examples:
  fixlayer analyze                    # Analyze current directory
  fixlayer analyze src/               # Analyze src directory
  fixlayer analyze app/page.tsx       # Analyze single file
  fixlayer analyze --layers 2,8       # Run only layers 2 and 8
  fixlayer analyze --format json      # Output as JSON for CI
  fixlayer analyze --strict           # Treat warnings as errors`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, args, &cfg, flags)
		},
	}

	addAnalyzeFlags(cmd, &cfg, flags)

	return cmd
}

func addAnalyzeFlags(cmd *cobra.Command, cfg *config.Config, flags *analyzeFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntSliceVar(&flags.layers, "layers", nil,
		"layers to run (1-8, comma separated); default selects per file")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
}

func runAnalysis(cmd *cobra.Command, args []string, cfg *config.Config, flags *analyzeFlags) error {
	logger := logging.Default()

	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.Strict = flags.strict
	if len(flags.layers) > 0 {
		cfg.Layers = flags.layers
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return &ExitError{
			Code:    ExitConfigError,
			Message: errors.Join(errors.New("failed to load configuration"), err).Error(),
		}
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldLayers, finalCfg.Layers,
		logging.FieldFixes, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Bound the whole run the same way the editor adapter does.
	runCtx, cancel := context.WithTimeout(ctx, finalCfg.EffectiveTimeout())
	defer cancel()

	analysisRunner := runner.New(core.New())

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Layers:       finalCfg.Layers,
		Platform:     cliPlatform,
		Config:       finalCfg,
	}

	logger.Debug("starting analysis run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := analysisRunner.Run(runCtx, runOpts)
	if err != nil {
		return errors.Join(errors.New("analysis run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return &ExitError{Code: ExitInvalidUsage, Message: err.Error()}
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(runCtx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if code := ExitCodeFromResult(result, finalCfg.Strict); code != ExitSuccess {
		return &ExitError{Code: code, Message: "issues found"}
	}

	return nil
}
