package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/linesplice/internal/logging"
	"github.com/yaklabco/linesplice/pkg/config"
	"github.com/yaklabco/linesplice/pkg/fsutil"
	"github.com/yaklabco/linesplice/pkg/runner"
)

// ErrNoBackup is returned by restore when the target has no backup.
var ErrNoBackup = errors.New("no backup found")

func newRestoreCommand() *cobra.Command {
	cfg := &config.Config{}
	var keep bool

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore the target from its backup",
		Long: `Copy the backup taken by "apply --backup" back over the target.
The backup is removed afterwards unless --keep is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRestore(cmd, cfg, keep)
		},
	}

	cmd.Flags().StringVar(&cfg.Target, "target", "", "file to restore (default index.html)")
	cmd.Flags().BoolVar(&keep, "keep", false, "keep the backup after restoring")

	return cmd
}

func runRestore(cmd *cobra.Command, cliCfg *config.Config, keep bool) error {
	cfg, workDir, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.NewInteractive()
	opts := runner.OptionsFromConfig(cfg, workDir)
	path := opts.TargetPath()

	// Restoring ignores whether backups are enabled for new runs.
	mode := opts.Backup.Mode
	if mode == fsutil.BackupModeNone {
		return fmt.Errorf("%w: backup mode is %q", ErrNoBackup, mode)
	}

	restored, err := fsutil.RestoreBackup(ctx, path, mode)
	if err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	if !restored {
		return fmt.Errorf("%w: %s", ErrNoBackup, fsutil.BackupPath(path, mode))
	}
	logger.Info("restored from backup", logging.FieldPath, path)

	if keep {
		return nil
	}

	if _, err := fsutil.RemoveBackup(path, mode); err != nil {
		return fmt.Errorf("remove backup: %w", err)
	}
	logger.Debug("backup removed", logging.FieldBackup, fsutil.BackupPath(path, mode))

	return nil
}
