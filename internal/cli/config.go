package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/linesplice/internal/configloader"
	"github.com/yaklabco/linesplice/internal/logging"
	"github.com/yaklabco/linesplice/pkg/config"
)

// loadConfig resolves the configuration for a command, with cliCfg on top.
// It returns the resolved config and the working directory relative paths
// are resolved against.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}

// colorMode reads the persistent --color flag.
func colorMode(cmd *cobra.Command) (string, error) {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return "", fmt.Errorf("get color flag: %w", err)
	}
	return mode, nil
}
