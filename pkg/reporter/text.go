package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/linesplice/internal/ui/pretty"
	"github.com/yaklabco/linesplice/pkg/runner"
)

// TextReporter writes the confirmation lines of a run.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	switch {
	case result.Skipped:
		style := r.styles.Warning
		if result.SkipReason == runner.SkipReasonModified {
			style = r.styles.Failure
		}
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(result.Path),
			style.Render("not written: "+result.SkipReason))
		return 0, nil
	case !result.Modified:
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(result.Path),
			r.styles.Dim.Render("unchanged"))
		return 0, nil
	case result.DryRun:
		fmt.Fprintln(r.bw, r.styles.Info.Render("Dry run, "+result.Path+" not written"))
	}

	fmt.Fprint(r.bw, r.styles.FormatConfirmation(r.opts.Title, result))

	switch {
	case !r.opts.ShowSummary:
	case r.opts.Compact:
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result))
	default:
		fmt.Fprint(r.bw, r.styles.FormatSummary(result))
	}

	return len(result.Steps), nil
}
