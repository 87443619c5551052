package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/linesplice/pkg/runner"
)

// jsonSchemaVersion is bumped when JSONOutput changes incompatibly.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version     string     `json:"version"`
	Path        string     `json:"path"`
	Language    string     `json:"language,omitempty"`
	Title       string     `json:"title"`
	Steps       []JSONStep `json:"steps"`
	LinesBefore int        `json:"linesBefore"`
	LinesAfter  int        `json:"linesAfter"`
	Modified    bool       `json:"modified"`
	DryRun      bool       `json:"dryRun"`
	Written     bool       `json:"written"`
	Skipped     bool       `json:"skipped,omitempty"`
	SkipReason  string     `json:"skipReason,omitempty"`
	Backup      string     `json:"backup,omitempty"`
	Additions   int        `json:"additions"`
	Deletions   int        `json:"deletions"`
	Diff        string     `json:"diff,omitempty"`
}

// JSONStep represents one applied step. Start and End are 0-based, End exclusive.
type JSONStep struct {
	Name        string `json:"name"`
	Action      string `json:"action"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Description string `json:"description,omitempty"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return len(output.Steps), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Title:   r.opts.Title,
		Steps:   make([]JSONStep, 0),
	}

	if result == nil {
		return output
	}

	output.Path = result.Path
	output.Language = result.Language
	output.LinesBefore = result.LinesBefore
	output.LinesAfter = result.LinesAfter
	output.Modified = result.Modified
	output.DryRun = result.DryRun
	output.Written = result.Written
	output.Skipped = result.Skipped
	output.SkipReason = result.SkipReason
	output.Backup = result.BackupPath

	for _, s := range result.Steps {
		output.Steps = append(output.Steps, JSONStep{
			Name:        s.Name,
			Action:      string(s.Action),
			Start:       s.Start,
			End:         s.End,
			Description: s.Description,
		})
	}

	if result.Diff.HasChanges() {
		output.Additions = result.Diff.Additions
		output.Deletions = result.Diff.Deletions
		if result.DryRun {
			output.Diff = result.Diff.FullString()
		}
	}

	return output
}
