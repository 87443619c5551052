package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/linesplice/pkg/plan"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Title heads the confirmation lines of the text format.
	Title string

	// ShowSummary adds a line count summary after the result.
	ShowSummary bool

	// Compact uses minified JSON and a one-line text summary.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		Title:       plan.FAQTitle,
		ShowSummary: true,
	}
}
