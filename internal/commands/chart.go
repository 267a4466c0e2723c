package commands

import (
	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
)

func newChartCommand() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print a seed chart of accounts as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return chart.Write(cmd.OutOrStdout(), chart.Default(profile))
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "standard", "chart profile")

	return cmd
}
