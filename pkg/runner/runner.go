package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/linesplice/internal/logging"
	"github.com/yaklabco/linesplice/pkg/fsutil"
	"github.com/yaklabco/linesplice/pkg/langdetect"
	"github.com/yaklabco/linesplice/pkg/plan"
	"github.com/yaklabco/linesplice/pkg/splice"
)

// Error categories, usable with errors.Is.
var (
	// ErrFileNotFound indicates the target or content file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidPlan indicates the steps could not be applied to the target.
	ErrInvalidPlan = errors.New("invalid plan")

	// ErrWriteFailure indicates the target could not be written.
	ErrWriteFailure = errors.New("write failure")
)

// SkipReasonModified is the skip reason when the target changed on disk
// between read and write.
const SkipReasonModified = "file modified during processing"

// SkipReasonDeclined is the skip reason when Confirm refused the write.
const SkipReasonDeclined = "declined"

// ConfirmFunc decides whether a computed result is written.
type ConfirmFunc func(ctx context.Context, res *Result) (bool, error)

// Runner splices files.
type Runner struct {
	// Confirm, if set, is asked before the target is overwritten.
	// It sees the result with its diff.
	Confirm ConfirmFunc
}

// New creates a Runner that writes without asking.
func New() *Runner {
	return &Runner{}
}

// Run applies opts.Steps to opts.Target.
//
// The run performs the following steps:
//  1. Read and hash the target.
//  2. Read the replacement content, if a step needs it.
//  3. Resolve the plan and splice the target in memory.
//  4. Generate a diff, and stop in dry-run mode.
//  5. Ask Confirm, if set.
//  6. Check the target was not modified since step 1.
//  7. Create a backup, if enabled.
//  8. Write atomically with the original file mode.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	path := opts.TargetPath()
	ctx = logging.WithTarget(ctx, path)
	logger := logging.FromContext(ctx)

	original, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}
	logger.Debug("read target", logging.FieldPath, path, "bytes", info.Size)

	var content string
	if plan.NeedsContent(opts.Steps) {
		contentPath := opts.ContentPath()
		content, err = fsutil.ReadText(ctx, contentPath)
		if err != nil {
			return nil, fmt.Errorf("read content: %w", categorizeError(err))
		}
		logger.Debug("read content", logging.FieldContent, contentPath)
	}

	result, err := r.splice(ctx, path, original, content, opts.Steps)
	if err != nil {
		return nil, err
	}

	if !result.Modified {
		logger.Debug("target unchanged", logging.FieldPath, path)
		return result, nil
	}

	if err := result.attachDiff(original); err != nil {
		return nil, err
	}

	if opts.DryRun {
		result.DryRun = true
		return result, nil
	}

	if r.Confirm != nil {
		ok, err := r.Confirm(ctx, result)
		if err != nil {
			return nil, fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			result.Skipped = true
			result.SkipReason = SkipReasonDeclined
			return result, nil
		}
	}

	modified, err := checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, err
	}
	if modified {
		logger.Warn("target changed on disk, not writing", logging.FieldPath, path)
		result.Skipped = true
		result.SkipReason = SkipReasonModified
		return result, nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", categorizeError(err))
		}
		result.BackupCreated = created
		if created {
			result.BackupPath = fsutil.BackupPath(path, opts.Backup.Mode)
			logger.Debug("backup created", logging.FieldBackup, result.BackupPath)
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, result.Output, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	logger.Debug("target written",
		logging.FieldPath, path,
		logging.FieldLinesBefore, result.LinesBefore,
		logging.FieldLinesAfter, result.LinesAfter,
		logging.FieldBytesWritten, len(result.Output))

	return result, nil
}

// RunContent splices in-memory content. content is the replacement block.
// Nothing is read or written.
func (r *Runner) RunContent(
	ctx context.Context,
	path string,
	original []byte,
	content string,
	opts Options,
) (*Result, error) {
	result, err := r.splice(ctx, path, original, content, opts.Steps)
	if err != nil {
		return nil, err
	}

	if result.Modified {
		result.DryRun = opts.DryRun
		if err := result.attachDiff(original); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (r *Runner) splice(
	ctx context.Context,
	path string,
	original []byte,
	content string,
	steps []plan.Step,
) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
	default:
	}

	resolved, err := plan.Resolve(steps, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	doc := splice.SplitLines(original)
	out, err := splice.Apply(doc, resolved.Edits)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPlan, path, err)
	}

	logger := logging.FromContext(ctx)
	for _, s := range resolved.Steps {
		logger.Debug("step",
			logging.FieldStep, s.Name,
			logging.FieldAction, s.Action,
			logging.FieldStart, s.Start,
			logging.FieldEnd, s.End)
	}

	output := out.Bytes()
	return &Result{
		Path:        path,
		Language:    langdetect.Detect(path, original),
		Steps:       append([]plan.Step(nil), steps...),
		LinesBefore: doc.Len(),
		LinesAfter:  out.Len(),
		Output:      output,
		Modified:    !bytes.Equal(original, output),
		edits:       resolved.Edits,
	}, nil
}

// checkModified checks if a file has been modified since it was read.
func checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	var modified bool
	var err error

	if strict {
		modified, err = fsutil.CheckModified(ctx, info)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, info)
	}

	if err != nil {
		return false, fmt.Errorf("check modified: %w", categorizeError(err))
	}
	return modified, nil
}

// categorizeError wraps an error with the matching category.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsRunError reports whether err carries one of the run error categories.
func IsRunError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrInvalidPlan) ||
		errors.Is(err, ErrWriteFailure)
}
