package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/config"
	"github.com/bookkeep-dev/bookkeep/internal/journal"
	"github.com/bookkeep-dev/bookkeep/internal/ledger"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// ledgerFlags are the inputs shared by report and check: an optional
// config file, an optional chart CSV, and the journal CSV to replay.
type ledgerFlags struct {
	configPath  string
	chartPath   string
	journalPath string
}

// load builds a ledger Service by seeding the chart and replaying the
// journal file through Post, row by row.
func (f ledgerFlags) load() (*ledger.Service, *config.Config, error) {
	cfg, err := config.LoadOrDefault(f.configPath)
	if err != nil {
		return nil, nil, err
	}

	var seed []model.Account
	if f.chartPath != "" {
		cf, err := os.Open(f.chartPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening chart: %w", err)
		}
		defer cf.Close()
		seed, err = chart.Read(cf)
		if err != nil {
			return nil, nil, err
		}
	} else {
		seed = chart.Default(cfg.Chart.Profile)
	}

	svc := ledger.NewService(seed, ledger.Options{
		AutoCreate:     cfg.Policies.AutoCreateAccounts,
		VerifyEquation: cfg.Policies.VerifyEquation,
	})

	txns, err := readJournal(f.journalPath)
	if err != nil {
		return nil, nil, err
	}
	for i, tx := range txns {
		err := svc.Post(ledger.PostParams{
			Date:          tx.Date,
			Description:   tx.Description,
			DebitAccount:  tx.Debit,
			CreditAccount: tx.Credit,
			Amount:        tx.Amount,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("journal row %d: %w", i+2, err)
		}
	}
	return svc, cfg, nil
}

func readJournal(path string) ([]model.Transaction, error) {
	if path == "" {
		return nil, nil
	}
	jf, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer jf.Close()

	return journal.ReadTransactions(jf)
}
