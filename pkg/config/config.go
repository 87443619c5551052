// Package config defines the configuration types for linesplice.
// These are plain data structures; loading and merging live in configloader.
package config

import (
	"github.com/yaklabco/linesplice/pkg/fsutil"
	"github.com/yaklabco/linesplice/pkg/plan"
)

// OutputFormat specifies how a run is reported.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatDiff OutputFormat = "diff"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatDiff, FormatJSON:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backups taken before the target is overwritten.
type BackupsConfig struct {
	// Enabled is a pointer so an explicit false in a later source can
	// override an earlier true.
	Enabled *bool  `yaml:"enabled,omitempty"`
	Mode    string `yaml:"mode,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	// Title is printed above the per-step confirmation lines.
	Title string `yaml:"title,omitempty"`

	// Target is the file that is read, spliced and overwritten.
	Target string `yaml:"target"`

	// Content is the file holding the replacement block for replace steps.
	Content string `yaml:"content"`

	// Steps is the edit plan. Line ranges are 0-based and half-open.
	Steps []plan.Step `yaml:"steps,omitempty"`

	Backups BackupsConfig `yaml:"backups"`

	// StrictRaceDetection re-hashes the target before writing instead of
	// comparing only size and mtime.
	StrictRaceDetection *bool `yaml:"strict_race_detection,omitempty"`

	// CLI-level options (not persisted to config files).

	DryRun    bool         `yaml:"-"`
	Format    OutputFormat `yaml:"-"`
	Yes       bool         `yaml:"-"`
	NoBackups bool         `yaml:"-"`
}

// NewConfig returns the defaults: the built-in FAQ plan against index.html,
// no backup.
func NewConfig() *Config {
	disabled := false
	strict := true
	return &Config{
		Title:   plan.FAQTitle,
		Target:  plan.DefaultTarget,
		Content: plan.DefaultContent,
		Steps:   plan.FAQSteps(),
		Backups: BackupsConfig{
			Enabled: &disabled,
			Mode:    string(fsutil.BackupModeSidecar),
		},
		StrictRaceDetection: &strict,
		Format:              FormatText,
	}
}

// BackupConfig converts the backup settings for fsutil.
// NoBackups wins over everything else.
func (c *Config) BackupConfig() fsutil.BackupConfig {
	cfg := fsutil.DefaultBackupConfig()
	if c == nil {
		return cfg
	}
	if c.Backups.Enabled != nil {
		cfg.Enabled = *c.Backups.Enabled
	}
	if c.Backups.Mode != "" {
		cfg.Mode = fsutil.BackupMode(c.Backups.Mode)
	}
	if c.NoBackups {
		cfg.Enabled = false
	}
	return cfg
}

// Strict reports whether the pre-write check should hash the file.
func (c *Config) Strict() bool {
	if c == nil || c.StrictRaceDetection == nil {
		return true
	}
	return *c.StrictRaceDetection
}
