package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/linesplice/pkg/config"
	"github.com/yaklabco/linesplice/pkg/fsutil"
	"github.com/yaklabco/linesplice/pkg/plan"
	"github.com/yaklabco/linesplice/pkg/splice"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "steps[1].end").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a merged configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Target == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "target",
			Message: "target file is required",
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, diff, json", cfg.Format),
		})
	}

	validateBackups(cfg, result)
	validateSteps(cfg, result)

	if len(cfg.Steps) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "steps",
			Message: "plan has no steps; the target will be left unchanged",
		})
	} else if cfg.Content == "" && plan.NeedsContent(cfg.Steps) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "content",
			Message: "a replace step without text needs a content file",
		})
	}

	return result
}

// ValidateWithFile validates a single config file. Fields the file leaves
// unset are not reported; the result carries the file path.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	validateBackups(cfg, result)
	validateSteps(cfg, result)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

func validateBackups(cfg *config.Config, result *ValidationResult) {
	if cfg.Backups.Mode != "" && !fsutil.BackupMode(cfg.Backups.Mode).IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "backups.mode",
			Value:   cfg.Backups.Mode,
			Message: fmt.Sprintf("invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode),
		})
	}

	if cfg.Backups.Enabled != nil && *cfg.Backups.Enabled &&
		fsutil.BackupMode(cfg.Backups.Mode) == fsutil.BackupModeNone {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "backups",
			Message: "backups are enabled but mode is none; no backup will be taken",
		})
	}
}

// validateSteps checks each step and the plan as a whole. Ranges against
// the target are only known at apply time; here the steps are checked
// against each other.
func validateSteps(cfg *config.Config, result *ValidationResult) {
	for i, step := range cfg.Steps {
		if err := step.Validate(); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("steps[%d]", i),
				Value:   step.Name,
				Message: err.Error(),
			})
		}
	}
	if len(result.Errors) > 0 {
		return
	}

	resolved, err := plan.Resolve(cfg.Steps, "")
	if err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "steps",
			Message: err.Error(),
		})
		return
	}

	splice.SortDescending(resolved.Edits)
	if err := splice.DetectConflicts(resolved.Edits); err != nil {
		var conflict *splice.ConflictError
		msg := err.Error()
		if errors.As(err, &conflict) {
			msg = fmt.Sprintf("steps overlap: [%d:%d] and [%d:%d]",
				conflict.Edit1.Start, conflict.Edit1.End, conflict.Edit2.Start, conflict.Edit2.End)
		}
		result.Errors = append(result.Errors, ValidationError{
			Field:   "steps",
			Message: msg,
		})
	}
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return f.IsValid()
}

// IsValidBackupMode returns true if the backup mode is valid.
func IsValidBackupMode(mode string) bool {
	return fsutil.BackupMode(mode).IsValid()
}
