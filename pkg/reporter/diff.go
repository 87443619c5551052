package reporter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/linesplice/internal/ui/pretty"
	"github.com/yaklabco/linesplice/pkg/runner"
	"github.com/yaklabco/linesplice/pkg/splice"
)

// DiffReporter formats results as unified diffs in GitHub style.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil || !result.Diff.HasChanges() {
		return 0, nil
	}

	if err := r.writeDiff(result.Diff); err != nil {
		return 0, err
	}

	if r.opts.ShowSummary {
		if err := r.writeSummary(result.Diff.Additions, result.Diff.Deletions); err != nil {
			return 0, err
		}
	}

	return len(result.Steps), nil
}

// writeDiff outputs the diff with formatting.
func (r *DiffReporter) writeDiff(diff *splice.Diff) error {
	displayPath := relativePath(diff.Path)

	var b strings.Builder
	header := fmt.Sprintf("diff --git a/%s b/%s", displayPath, displayPath)
	b.WriteString(r.styles.DiffHeader.Render(header) + "\n")
	b.WriteString(r.styles.DiffRemove.Render("--- a/"+displayPath) + "\n")
	b.WriteString(r.styles.DiffAdd.Render("+++ b/"+displayPath) + "\n")

	for _, hunk := range diff.Hunks {
		b.WriteString(r.styles.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)) + "\n")

		for _, line := range hunk.Lines {
			b.WriteString(r.renderLine(line) + "\n")
		}
	}
	b.WriteString("\n")

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("write diff: %w", err)
	}
	return nil
}

func (r *DiffReporter) renderLine(line splice.DiffLine) string {
	switch line.Kind {
	case splice.DiffLineAdd:
		return r.styles.DiffAdd.Render("+" + line.Content)
	case splice.DiffLineRemove:
		return r.styles.DiffRemove.Render("-" + line.Content)
	default:
		return r.styles.DiffContext.Render(" " + line.Content)
	}
}

// relativePath converts an absolute path to a relative path from the current directory.
// If the relative path would require too many "../" traversals, use the basename instead.
func relativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return filepath.Base(path)
	}
	if strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return rel
}

// writeSummary writes a git-style stat line.
func (r *DiffReporter) writeSummary(additions, deletions int) error {
	parts := []string{"1 file changed"}

	if additions > 0 {
		word := "insertions"
		if additions == 1 {
			word = "insertion"
		}
		parts = append(parts, r.styles.DiffAdd.Render(fmt.Sprintf("%d %s(+)", additions, word)))
	}

	if deletions > 0 {
		word := "deletions"
		if deletions == 1 {
			word = "deletion"
		}
		parts = append(parts, r.styles.DiffRemove.Render(fmt.Sprintf("%d %s(-)", deletions, word)))
	}

	if _, err := fmt.Fprintln(r.out, strings.Join(parts, ", ")); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
