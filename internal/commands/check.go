package commands

import (
	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/money"
	"github.com/bookkeep-dev/bookkeep/internal/report"
)

func newCheckCommand() *cobra.Command {
	var flags ledgerFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Replay the journal and verify the accounting equation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := flags.load()
			if err != nil {
				return err
			}
			r := report.NewRenderer(money.NewFormatter(cfg.Currency.Symbol))
			if err := r.TrialBalance(cmd.OutOrStdout(), svc.TrialBalance()); err != nil {
				return err
			}
			return svc.VerifyEquation()
		},
	}

	cmd.Flags().StringVar(&flags.journalPath, "journal", "journal.csv", "journal CSV file to replay")
	cmd.Flags().StringVar(&flags.chartPath, "chart", "", "chart of accounts CSV (defaults to the configured profile)")
	cmd.Flags().StringVar(&flags.configPath, "config", "bookkeep.yaml", "config file")

	return cmd
}
