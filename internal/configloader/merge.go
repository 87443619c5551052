package configloader

import "github.com/yaklabco/linesplice/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Strings: override overwrites base if non-empty
//   - Pointers: override overwrites base if non-nil
//   - Steps: override replaces the whole plan if non-nil
//   - CLI booleans: only a true override is applied
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Title != "" {
		result.Title = override.Title
	}
	if override.Target != "" {
		result.Target = override.Target
	}
	if override.Content != "" {
		result.Content = override.Content
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	// Plans are replaced whole. Line ranges of two plans refer to different
	// file revisions.
	if override.Steps != nil {
		result.Steps = override.Steps
	}

	if override.Backups.Enabled != nil {
		result.Backups.Enabled = override.Backups.Enabled
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.StrictRaceDetection != nil {
		result.StrictRaceDetection = override.StrictRaceDetection
	}

	if override.DryRun {
		result.DryRun = true
	}
	if override.Yes {
		result.Yes = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
