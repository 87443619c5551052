package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/linesplice/pkg/runner"
)

const (
	summaryDividerWidth = 40
	checkmark           = "✓"
)

// FormatConfirmation renders the title and one line per applied step:
//
//	✓ Fixed duplicate FAQPage schemas
//	  - Removed FAQPage #3 (10 questions)
func (s *Styles) FormatConfirmation(title string, res *runner.Result) string {
	var builder strings.Builder

	builder.WriteString(s.Checkmark.Render(checkmark))
	builder.WriteString(" ")
	builder.WriteString(s.Bold.Render(title))
	builder.WriteString("\n")

	for _, desc := range res.Descriptions() {
		builder.WriteString("  - ")
		builder.WriteString(desc)
		builder.WriteString("\n")
	}

	return builder.String()
}

// FormatStep renders a plan step with its 0-based range.
func (s *Styles) FormatStep(name, action string, start, end int, desc string) string {
	line := fmt.Sprintf("%s %s %s",
		s.StepName.Render(name),
		action,
		s.StepRange.Render(fmt.Sprintf("[%d:%d)", start, end)))
	if desc != "" {
		line += s.Dim.Render("  " + desc)
	}
	return line + "\n"
}

// FormatSummaryOneLine formats a run as a single line.
// Example: "index.html: 3 steps, 1100 -> 897 lines (-203), written".
func (s *Styles) FormatSummaryOneLine(res *runner.Result) string {
	stepWord := "steps"
	if len(res.Steps) == 1 {
		stepWord = "step"
	}

	status := res.Summary()
	switch {
	case res.Skipped:
		status = s.Warning.Render(status)
	case res.Written:
		status = s.Success.Render(status)
	default:
		status = s.Dim.Render(status)
	}

	return fmt.Sprintf("%s: %d %s, %d -> %d lines (%s), %s\n",
		s.FilePath.Render(res.Path),
		len(res.Steps), stepWord,
		res.LinesBefore, res.LinesAfter,
		signed(res.LineDelta()),
		status)
}

// FormatSummary formats a run as a summary block.
func (s *Styles) FormatSummary(res *runner.Result) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Target:        " + s.FilePath.Render(res.Path) + "\n")
	builder.WriteString("  Steps applied: " + s.SummaryValue.Render(strconv.Itoa(len(res.Steps))) + "\n")
	builder.WriteString("  Lines before:  " + s.SummaryValue.Render(strconv.Itoa(res.LinesBefore)) + "\n")
	builder.WriteString("  Lines after:   " + s.SummaryValue.Render(strconv.Itoa(res.LinesAfter)) + "\n")

	if res.BackupCreated {
		builder.WriteString("  Backup:        " + s.Dim.Render(res.BackupPath) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case res.Skipped:
		builder.WriteString(s.Warning.Render("Not written: " + res.SkipReason))
	case res.Written:
		builder.WriteString(s.Success.Render("Target written"))
	case res.DryRun:
		builder.WriteString(s.Info.Render("Dry run, nothing written"))
	default:
		builder.WriteString(s.Dim.Render("Target unchanged"))
	}
	builder.WriteString("\n")

	return builder.String()
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
