package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bookkeep",
		Short:   "In-memory double-entry ledger reports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newChartCommand())

	return rootCmd
}
