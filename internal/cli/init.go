package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fixlayer/fixlayer/internal/configloader"
	"github.com/fixlayer/fixlayer/internal/logging"
)

// configFilePermissions is the file mode for configuration files.
const configFilePermissions = 0644

// configTemplate is the starter configuration written by init.
const configTemplate = `# fixlayer configuration
# Layers to run by default. Empty selects layers per file.
# layers: [1, 2, 7, 8]

# Reject files larger than this many bytes.
max_input_bytes: 1048576

# Bound one whole analyze or fix run.
timeout: 30s

# Glob patterns to skip during discovery.
ignore:
  - "**/node_modules/**"
  - "**/dist/**"

backups:
  enabled: false
`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new fixlayer configuration file",
		Long: `Create a new .fixlayer.yaml configuration file in the current
directory with sensible defaults.

Examples:
  fixlayer init                     Create .fixlayer.yaml
  fixlayer init --output custom.yaml   Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .fixlayer.yaml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ConfigFileName
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := os.WriteFile(absPath, []byte(configTemplate), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'fixlayer layers' to see all layers and rules")

	return nil
}
