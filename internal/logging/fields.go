package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Plan fields.
	FieldTarget  = "target"
	FieldContent = "content"
	FieldStep    = "step"
	FieldSteps   = "steps"
	FieldStart   = "start"
	FieldEnd     = "end"
	FieldAction  = "action"

	// Run fields.
	FieldDryRun       = "dry_run"
	FieldBackup       = "backup"
	FieldLinesBefore  = "lines_before"
	FieldLinesAfter   = "lines_after"
	FieldBytesWritten = "bytes_written"
	FieldReason       = "reason"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
