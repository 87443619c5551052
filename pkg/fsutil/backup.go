package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupMode specifies how backups are stored.
type BackupMode string

const (
	// BackupModeSidecar stores the backup next to the file with BackupSuffix.
	BackupModeSidecar BackupMode = "sidecar"

	// BackupModeNone disables backups.
	BackupModeNone BackupMode = "none"
)

// IsValid reports whether m is a known mode.
func (m BackupMode) IsValid() bool {
	return m == BackupModeSidecar || m == BackupModeNone
}

// BackupSuffix is appended to the target path for sidecar backups.
const BackupSuffix = ".linesplice.bak"

// BackupConfig controls backup behavior.
type BackupConfig struct {
	Enabled bool
	Mode    BackupMode
}

// DefaultBackupConfig returns the default: no backup is taken, the target is
// overwritten in place.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{
		Enabled: false,
		Mode:    BackupModeSidecar,
	}
}

// BackupPath returns where the backup of path lives, or "" for BackupModeNone.
// Unknown modes fall back to sidecar.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupModeNone {
		return ""
	}
	return path + BackupSuffix
}

// CreateBackup copies path to its backup location unless a backup already
// exists. An existing backup is never overwritten, so it always holds the
// content from before the first rewrite.
// Returns true if a backup was written.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled || cfg.Mode == BackupModeNone {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}

	backupPath := BackupPath(path, cfg.Mode)
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	content, info, err := ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, info.Mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// RestoreBackup writes the backup content back over path.
// Returns false if there is no backup.
func RestoreBackup(ctx context.Context, path string, mode BackupMode) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("restore backup: %w", err)
	}

	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}

	content, info, err := ReadFile(ctx, backupPath)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read backup: %w", err)
	}

	if err := WriteAtomic(ctx, path, content, info.Mode); err != nil {
		return false, fmt.Errorf("restore from backup: %w", err)
	}
	return true, nil
}

// RemoveBackup deletes the backup of path. Returns false if none existed.
func RemoveBackup(path string, mode BackupMode) (bool, error) {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}

	if err := os.Remove(backupPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("remove backup: %w", err)
	}
	return true, nil
}

// BackupExists reports whether a backup of path exists.
func BackupExists(path string, mode BackupMode) bool {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false
	}
	_, err := os.Stat(backupPath)
	return err == nil
}
