package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/linesplice/internal/configloader"
	"github.com/yaklabco/linesplice/internal/logging"
	"github.com/yaklabco/linesplice/pkg/config"
	"github.com/yaklabco/linesplice/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the built-in plan",
		Long: `Create a .linesplice.yml in the current directory holding the built-in
FAQ plan. Edit the target, content and steps to splice another file.

Examples:
  linesplice init                    Create .linesplice.yml
  linesplice init --output plan.yml  Write to a custom file path
  linesplice init --force            Overwrite an existing file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigName, "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	content, err := config.GenerateTemplate()
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'linesplice plan' to check the steps before applying them")

	return nil
}
