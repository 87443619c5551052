package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/linesplice/internal/ui/pretty"
	"github.com/yaklabco/linesplice/pkg/plan"
	"github.com/yaklabco/linesplice/pkg/runner"
)

func faqResult() *runner.Result {
	return &runner.Result{
		Path:        "index.html",
		Steps:       plan.FAQSteps(),
		LinesBefore: 1100,
		LinesAfter:  897,
		Modified:    true,
		Written:     true,
	}
}

func TestFormatConfirmation(t *testing.T) {
	styles := pretty.NewStyles(false)

	got := styles.FormatConfirmation(plan.FAQTitle, faqResult())

	want := "✓ Fixed duplicate FAQPage schemas\n" +
		"  - Removed FAQPage #2 (7 questions)\n" +
		"  - Removed FAQPage #3 (10 questions)\n" +
		"  - Replaced FAQPage #1 with merged 22 questions\n"
	assert.Equal(t, want, got)
}

func TestFormatStep(t *testing.T) {
	styles := pretty.NewStyles(false)

	got := styles.FormatStep("remove-faqpage-3", "delete", 931, 1022, "Removed FAQPage #3")
	assert.Equal(t, "remove-faqpage-3 delete [931:1022)  Removed FAQPage #3\n", got)

	got = styles.FormatStep("x", "replace", 1, 2, "")
	assert.Equal(t, "x replace [1:2)\n", got)
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t,
		"index.html: 3 steps, 1100 -> 897 lines (-203), written\n",
		styles.FormatSummaryOneLine(faqResult()))

	res := faqResult()
	res.Steps = res.Steps[:1]
	res.Written = false
	res.Skipped = true
	res.SkipReason = runner.SkipReasonDeclined
	assert.Equal(t,
		"index.html: 1 step, 1100 -> 897 lines (-203), skipped: declined\n",
		styles.FormatSummaryOneLine(res))
}

func TestFormatSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		modify func(*runner.Result)
		want   []string
		absent []string
	}{
		{
			name:   "written",
			modify: func(*runner.Result) {},
			want:   []string{"Summary", "Target:        index.html", "Steps applied: 3", "Lines after:   897", "Target written"},
			absent: []string{"Backup:"},
		},
		{
			name: "backup",
			modify: func(r *runner.Result) {
				r.BackupCreated = true
				r.BackupPath = "index.html.linesplice.bak"
			},
			want: []string{"Backup:        index.html.linesplice.bak"},
		},
		{
			name: "dry run",
			modify: func(r *runner.Result) {
				r.Written = false
				r.DryRun = true
			},
			want: []string{"Dry run, nothing written"},
		},
		{
			name: "skipped",
			modify: func(r *runner.Result) {
				r.Written = false
				r.Skipped = true
				r.SkipReason = runner.SkipReasonModified
			},
			want: []string{"Not written: file modified during processing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := faqResult()
			tt.modify(res)

			got := styles.FormatSummary(res)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, a := range tt.absent {
				assert.NotContains(t, got, a)
			}
		})
	}
}
