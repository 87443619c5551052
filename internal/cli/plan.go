package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/linesplice/internal/ui/pretty"
	"github.com/yaklabco/linesplice/pkg/config"
	"github.com/yaklabco/linesplice/pkg/plan"
	"github.com/yaklabco/linesplice/pkg/runner"
)

func newPlanCommand() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the resolved edit plan",
		Long: `Show the target, the content file, and the steps that apply would run,
in application order (highest start line first). Nothing is read or written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Target, "target", "", "file to rewrite (default index.html)")
	cmd.Flags().StringVar(&cfg.Content, "content", "", "replacement content file (default merged-faq.json)")

	return cmd
}

func runPlan(cmd *cobra.Command, cliCfg *config.Config) error {
	cfg, workDir, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	mode, err := colorMode(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(mode, out))
	opts := runner.OptionsFromConfig(cfg, workDir)

	// Content is not read here, so the replacement text stays empty.
	resolved, err := plan.Resolve(opts.Steps, "")
	if err != nil {
		return fmt.Errorf("%w: %w", runner.ErrInvalidPlan, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", styles.Bold.Render("target: "), styles.FilePath.Render(opts.TargetPath()))
	if plan.NeedsContent(opts.Steps) {
		fmt.Fprintf(&b, "%s %s\n", styles.Bold.Render("content:"), styles.FilePath.Render(opts.ContentPath()))
	}
	fmt.Fprintf(&b, "%s %d\n", styles.Bold.Render("steps:  "), len(resolved.Steps))
	for _, step := range resolved.Steps {
		b.WriteString(styles.FormatStep(step.Name, string(step.Action), step.Start, step.End, step.Description))
	}

	if _, err := fmt.Fprint(out, b.String()); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	return nil
}
