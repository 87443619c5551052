// Package runner applies an edit plan to a single file: read, splice,
// check for concurrent modification, back up, write.
package runner

import (
	"path/filepath"

	"github.com/yaklabco/linesplice/pkg/config"
	"github.com/yaklabco/linesplice/pkg/fsutil"
	"github.com/yaklabco/linesplice/pkg/plan"
)

// Options controls a single run.
type Options struct {
	// Target is the file to splice.
	Target string

	// Content is the replacement content file for replace steps without
	// inline text. It is only read when a step needs it.
	Content string

	// WorkingDir resolves relative Target and Content paths.
	// If empty, paths are used as given.
	WorkingDir string

	// Steps is the edit plan, in any order.
	Steps []plan.Step

	// DryRun computes the result and diff without writing.
	DryRun bool

	// Backup configures the backup taken before writing.
	Backup fsutil.BackupConfig

	// StrictRaceDetection hashes the target again before writing.
	// When false, only mod time and size are compared.
	StrictRaceDetection bool
}

// DefaultOptions returns the built-in FAQ plan with backups disabled.
func DefaultOptions() Options {
	return Options{
		Target:              plan.DefaultTarget,
		Content:             plan.DefaultContent,
		Steps:               plan.FAQSteps(),
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
	}
}

// OptionsFromConfig builds run options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, workDir string) Options {
	if cfg == nil {
		opts := DefaultOptions()
		opts.WorkingDir = workDir
		return opts
	}
	return Options{
		Target:              cfg.Target,
		Content:             cfg.Content,
		WorkingDir:          workDir,
		Steps:               cfg.Steps,
		DryRun:              cfg.DryRun,
		Backup:              cfg.BackupConfig(),
		StrictRaceDetection: cfg.Strict(),
	}
}

// TargetPath returns Target resolved against WorkingDir.
func (o Options) TargetPath() string {
	return o.resolve(o.Target)
}

// ContentPath returns Content resolved against WorkingDir.
func (o Options) ContentPath() string {
	return o.resolve(o.Content)
}

func (o Options) resolve(path string) string {
	if path == "" || o.WorkingDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.WorkingDir, path)
}
