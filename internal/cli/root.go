package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/linesplice/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root linesplice command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "linesplice",
		Short: "Apply a fixed plan of line-range edits to a file",
		Long: `linesplice rewrites a text file by deleting or replacing fixed,
0-based line ranges. Edits are applied from the bottom of the file up, so
every range refers to the original line numbers.

Without a configuration file it removes the duplicate FAQPage JSON-LD blocks
from index.html and swaps the first block for the merged content in
merged-faq.json.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
