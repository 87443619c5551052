// Package reporter writes the outcome of a splice run as text, a unified
// diff or JSON.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/linesplice/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of steps reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*DiffReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.Title == "" {
		opts.Title = defaults.Title
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
