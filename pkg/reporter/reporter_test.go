package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/linesplice/pkg/plan"
	"github.com/yaklabco/linesplice/pkg/reporter"
	"github.com/yaklabco/linesplice/pkg/runner"
)

const tenLines = "L0\nL1\nL2\nL3\nL4\nL5\nL6\nL7\nL8\nL9\n"

// spliced runs the ten-line scenario in memory.
func spliced(t *testing.T, dryRun bool) *runner.Result {
	t.Helper()

	opts := runner.Options{
		Steps: []plan.Step{
			{Name: "a", Description: "Removed L7 and L8", Action: plan.ActionDelete, Start: 7, End: 9},
			{Name: "b", Description: "Replaced L2 and L3", Action: plan.ActionReplace, Start: 2, End: 4},
		},
		DryRun: dryRun,
	}
	res, err := runner.New().RunContent(context.Background(), "page.txt", []byte(tenLines), "X", opts)
	require.NoError(t, err)
	return res
}

func newReporter(t *testing.T, format reporter.Format, buf *bytes.Buffer) reporter.Reporter {
	t.Helper()
	return newReporterWith(t, format, buf, true)
}

func newReporterWith(t *testing.T, format reporter.Format, buf *bytes.Buffer, compact bool) reporter.Reporter {
	t.Helper()

	rep, err := reporter.New(reporter.Options{
		Writer:      buf,
		Format:      format,
		Color:       "never",
		Title:       "Spliced",
		ShowSummary: true,
		Compact:     compact,
	})
	require.NoError(t, err)
	return rep
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "diff", input: "diff", want: reporter.FormatDiff},
		{name: "unknown format", input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatDiff.IsValid())
	assert.True(t, reporter.FormatJSON.IsValid())
	assert.False(t, reporter.Format("").IsValid())
	assert.False(t, reporter.Format("table").IsValid())
}

func TestNew_UnsupportedFormat(t *testing.T) {
	_, err := reporter.New(reporter.Options{Format: "xml"})
	require.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	t.Run("written", func(t *testing.T) {
		var buf bytes.Buffer
		res := spliced(t, false)
		res.Written = true

		n, err := newReporter(t, reporter.FormatText, &buf).Report(context.Background(), res)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		want := "✓ Spliced\n" +
			"  - Removed L7 and L8\n" +
			"  - Replaced L2 and L3\n" +
			"page.txt: 2 steps, 10 -> 7 lines (-3), written\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("summary block", func(t *testing.T) {
		var buf bytes.Buffer
		res := spliced(t, false)
		res.Written = true

		_, err := newReporterWith(t, reporter.FormatText, &buf, false).Report(context.Background(), res)
		require.NoError(t, err)

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "✓ Spliced\n"))
		assert.Contains(t, out, "Steps applied: 2")
		assert.Contains(t, out, "Lines before:  10")
		assert.Contains(t, out, "Lines after:   7")
		assert.Contains(t, out, "Target written")
		assert.NotContains(t, out, "10 -> 7 lines")
	})

	t.Run("dry run summary block", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := newReporterWith(t, reporter.FormatText, &buf, false).Report(context.Background(), spliced(t, true))
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "Dry run, nothing written")
	})

	t.Run("dry run", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := newReporter(t, reporter.FormatText, &buf).Report(context.Background(), spliced(t, true))
		require.NoError(t, err)

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "Dry run, page.txt not written\n"))
		assert.Contains(t, out, "changes pending")
	})

	t.Run("skipped", func(t *testing.T) {
		var buf bytes.Buffer
		res := spliced(t, false)
		res.Skipped = true
		res.SkipReason = runner.SkipReasonModified

		n, err := newReporter(t, reporter.FormatText, &buf).Report(context.Background(), res)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, "page.txt: not written: file modified during processing\n", buf.String())
	})

	t.Run("nil result", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := newReporter(t, reporter.FormatText, &buf).Report(context.Background(), nil)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, buf.String())
	})
}

func TestDiffReporter(t *testing.T) {
	var buf bytes.Buffer

	n, err := newReporter(t, reporter.FormatDiff, &buf).Report(context.Background(), spliced(t, true))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := buf.String()
	assert.Contains(t, out, "diff --git a/page.txt b/page.txt\n--- a/page.txt\n+++ b/page.txt\n")
	assert.Contains(t, out, "-L2\n-L3\n+X\n")
	assert.Contains(t, out, "-L7\n-L8\n")
	assert.Contains(t, out, "1 file changed, 1 insertion(+), 4 deletions(-)")
}

func TestDiffReporter_NoChanges(t *testing.T) {
	var buf bytes.Buffer

	n, err := newReporter(t, reporter.FormatDiff, &buf).Report(context.Background(), &runner.Result{Path: "x"})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer

	_, err := newReporter(t, reporter.FormatJSON, &buf).Report(context.Background(), spliced(t, true))
	require.NoError(t, err)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "page.txt", out.Path)
	assert.Equal(t, "Spliced", out.Title)
	assert.Equal(t, 10, out.LinesBefore)
	assert.Equal(t, 7, out.LinesAfter)
	assert.True(t, out.DryRun)
	assert.False(t, out.Written)
	assert.Equal(t, 1, out.Additions)
	assert.Equal(t, 4, out.Deletions)
	assert.Contains(t, out.Diff, "+X")

	require.Len(t, out.Steps, 2)
	assert.Equal(t, reporter.JSONStep{
		Name: "a", Action: "delete", Start: 7, End: 9, Description: "Removed L7 and L8",
	}, out.Steps[0])
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer

	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON, Compact: true})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), `"title":"`+plan.FAQTitle+`"`)
	assert.Contains(t, buf.String(), `"steps":[]`)
}
