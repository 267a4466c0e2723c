package commands

import (
	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/money"
	"github.com/bookkeep-dev/bookkeep/internal/report"
)

func newReportCommand() *cobra.Command {
	var flags ledgerFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render ledger reports from a journal file",
	}

	cmd.PersistentFlags().StringVar(&flags.journalPath, "journal", "journal.csv", "journal CSV file to replay")
	cmd.PersistentFlags().StringVar(&flags.chartPath, "chart", "", "chart of accounts CSV (defaults to the configured profile)")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "bookkeep.yaml", "config file")

	cmd.AddCommand(
		newReportAccountsCommand(&flags),
		newReportTransactionsCommand(&flags),
		newReportJournalCommand(&flags),
		newReportLedgerCommand(&flags),
		newReportBalanceSheetCommand(&flags),
	)

	return cmd
}

func newReportAccountsCommand(flags *ledgerFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts with types and balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := flags.load()
			if err != nil {
				return err
			}
			r := report.NewRenderer(money.NewFormatter(cfg.Currency.Symbol))
			return r.Accounts(cmd.OutOrStdout(), svc.Accounts())
		},
	}
}

func newReportTransactionsCommand(flags *ledgerFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "List the raw transaction log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := flags.load()
			if err != nil {
				return err
			}
			r := report.NewRenderer(money.NewFormatter(cfg.Currency.Symbol))
			return r.Transactions(cmd.OutOrStdout(), svc.Transactions())
		},
	}
}

func newReportJournalCommand(flags *ledgerFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "journal",
		Short: "Render the general journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := flags.load()
			if err != nil {
				return err
			}
			r := report.NewRenderer(money.NewFormatter(cfg.Currency.Symbol))
			return r.Journal(cmd.OutOrStdout(), svc.GeneralJournal())
		},
	}
}

func newReportLedgerCommand(flags *ledgerFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ledger <account>",
		Short: "Render one account's ledger with running balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := flags.load()
			if err != nil {
				return err
			}
			rows, err := svc.AccountLedger(args[0])
			if err != nil {
				return err
			}
			r := report.NewRenderer(money.NewFormatter(cfg.Currency.Symbol))
			return r.Ledger(cmd.OutOrStdout(), args[0], rows)
		},
	}
}

func newReportBalanceSheetCommand(flags *ledgerFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "balance-sheet",
		Short: "Render the balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := flags.load()
			if err != nil {
				return err
			}
			r := report.NewRenderer(money.NewFormatter(cfg.Currency.Symbol))
			return r.BalanceSheet(cmd.OutOrStdout(), svc.BalanceSheet())
		},
	}
}
