package runner

import (
	"fmt"

	"github.com/yaklabco/linesplice/pkg/plan"
	"github.com/yaklabco/linesplice/pkg/splice"
)

// Result describes what a run did to its target.
type Result struct {
	// Path is the target file path.
	Path string

	// Language is the detected language of the target, such as "html".
	Language string

	// Steps are the applied steps in plan order.
	Steps []plan.Step

	// LinesBefore and LinesAfter count the target's lines around the splice.
	LinesBefore int
	LinesAfter  int

	// Output is the spliced content.
	Output []byte

	// Modified is true if the output differs from the original.
	Modified bool

	// Diff is set when the output differs from the original.
	Diff *splice.Diff

	// DryRun is true if nothing was meant to be written.
	DryRun bool

	// Skipped is true if the write was abandoned.
	Skipped bool

	// SkipReason explains why the write was abandoned.
	SkipReason string

	// BackupCreated is true if a backup was taken before writing.
	BackupCreated bool

	// BackupPath is where the backup lives, if one was taken.
	BackupPath string

	// Written is true if the target was overwritten.
	Written bool

	edits []splice.Edit
}

func (r *Result) attachDiff(original []byte) error {
	diff, err := splice.GenerateDiff(r.Path, splice.SplitLines(original), r.edits)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	r.Diff = diff
	return nil
}

// Summary returns a one-word account of the outcome.
func (r *Result) Summary() string {
	switch {
	case r == nil:
		return ""
	case r.Skipped:
		return "skipped: " + r.SkipReason
	case r.Written && r.BackupCreated:
		return "written (backup created)"
	case r.Written:
		return "written"
	case r.DryRun && r.Modified:
		return "changes pending"
	case !r.Modified:
		return "unchanged"
	default:
		return "not written"
	}
}

// LineDelta is the change in line count.
func (r *Result) LineDelta() int {
	if r == nil {
		return 0
	}
	return r.LinesAfter - r.LinesBefore
}

// Descriptions returns the confirmation line of each applied step, in plan
// order.
// Steps without a description are named instead.
func (r *Result) Descriptions() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		if s.Description != "" {
			out = append(out, s.Description)
			continue
		}
		out = append(out, s.Name)
	}
	return out
}
