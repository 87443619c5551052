package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/linesplice/internal/logging"
	"github.com/yaklabco/linesplice/pkg/config"
	"github.com/yaklabco/linesplice/pkg/reporter"
	"github.com/yaklabco/linesplice/pkg/runner"
)

// ErrTargetChanged is returned when the target was modified on disk while
// the plan was being applied. Nothing was written.
var ErrTargetChanged = errors.New("target changed during processing")

// applyFlags holds the apply flags that are not config fields.
type applyFlags struct {
	format  string
	backup  bool
	compact bool
}

const applyLongDescription = `Apply the edit plan to the target file.

Edits are computed in memory, checked against the target's line count, and
written atomically with the original file mode. If the target changes on
disk while the plan is applied, nothing is written.

When run in a terminal, linesplice shows the diff and asks before
overwriting the target. Use --yes to skip the prompt.

Examples:
  linesplice apply                         # Apply the built-in FAQ plan to index.html
  linesplice apply --dry-run               # Preview the result
  linesplice apply --dry-run --format diff # Print a unified diff
  linesplice apply --backup --yes          # Keep a .linesplice.bak copy, do not ask
  linesplice apply --config plan.yml       # Apply a plan from a config file`

func newApplyCommand() *cobra.Command {
	cfg := &config.Config{}
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the edit plan to the target file",
		Long:  applyLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd, cfg, flags)
		},
	}

	cmd.Flags().StringVar(&cfg.Target, "target", "", "file to rewrite (default index.html)")
	cmd.Flags().StringVar(&cfg.Content, "content", "", "replacement content file (default merged-faq.json)")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show the result without writing")
	cmd.Flags().BoolVarP(&cfg.Yes, "yes", "y", false, "write without asking")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a copy of the original before writing")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "never create a backup")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, diff, json (default text)")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")

	return cmd
}

func runApply(cmd *cobra.Command, cliCfg *config.Config, flags *applyFlags) error {
	cliCfg.Format = config.OutputFormat(flags.format)
	if cmd.Flags().Changed("backup") {
		enabled := flags.backup
		cliCfg.Backups.Enabled = &enabled
	}

	cfg, workDir, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	mode, err := colorMode(cmd)
	if err != nil {
		return err
	}

	logger := logging.Default()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	opts := runner.OptionsFromConfig(cfg, workDir)
	logger.Debug("applying plan",
		logging.FieldTarget, opts.TargetPath(),
		logging.FieldSteps, len(opts.Steps),
		logging.FieldDryRun, opts.DryRun,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       mode,
		Title:       cfg.Title,
		ShowSummary: true,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	run := runner.New()
	if !cfg.Yes && !cfg.DryRun && isInteractive(cmd.InOrStdin()) {
		preview := reporter.NewDiffReporter(reporter.Options{
			Writer:      cmd.ErrOrStderr(),
			Format:      reporter.FormatDiff,
			Color:       mode,
			ShowSummary: true,
		})
		run.Confirm = promptConfirm(cmd.InOrStdin(), cmd.ErrOrStderr(), preview)
	}

	result, err := run.Run(ctx, opts)
	if err != nil {
		return err
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if result.Skipped && result.SkipReason == runner.SkipReasonModified {
		return fmt.Errorf("%w: %s", ErrTargetChanged, result.Path)
	}

	return nil
}

// isInteractive reports whether r is a terminal.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// promptConfirm shows the pending diff and asks before the target is
// overwritten. Anything other than y or yes declines.
func promptConfirm(in io.Reader, out io.Writer, preview reporter.Reporter) runner.ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(ctx context.Context, res *runner.Result) (bool, error) {
		if preview != nil {
			if _, err := preview.Report(ctx, res); err != nil {
				return false, fmt.Errorf("preview: %w", err)
			}
		}

		if _, err := fmt.Fprintf(out, "Overwrite %s? [y/N] ", res.Path); err != nil {
			return false, fmt.Errorf("write prompt: %w", err)
		}

		answer, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
