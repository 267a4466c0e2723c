// Package report renders ledger views as plain-text tables.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/ledger"
	"github.com/bookkeep-dev/bookkeep/internal/model"
	"github.com/bookkeep-dev/bookkeep/internal/money"
)

// Renderer writes reports using one currency formatter.
type Renderer struct {
	money money.Formatter
}

// NewRenderer creates a Renderer.
func NewRenderer(f money.Formatter) Renderer {
	return Renderer{money: f}
}

func newTab(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// Accounts renders the chart of accounts with balances.
func (r Renderer) Accounts(w io.Writer, accounts []model.Account) error {
	tw := newTab(w)
	fmt.Fprintln(tw, "ACCOUNT\tTYPE\tBALANCE")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name, strings.ToUpper(string(a.Type)), r.money.Format(a.Balance))
	}
	return tw.Flush()
}

// Transactions renders the raw transaction log.
func (r Renderer) Transactions(w io.Writer, txns []model.Transaction) error {
	tw := newTab(w)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tDEBIT\tCREDIT\tAMOUNT")
	for _, tx := range txns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			tx.Date.Format(ledger.DateFormat), tx.Description, tx.Debit, tx.Credit, r.money.Format(tx.Amount))
	}
	return tw.Flush()
}

// Journal renders the general journal, one debit and one credit line
// per transaction.
func (r Renderer) Journal(w io.Writer, lines []ledger.JournalLine) error {
	tw := newTab(w)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tACCOUNT\tDEBIT\tCREDIT")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			l.Date.Format(ledger.DateFormat), l.Description, l.Account,
			r.amountOrBlank(l.Debit), r.amountOrBlank(l.Credit))
	}
	return tw.Flush()
}

// Ledger renders a per-account ledger with running balances.
func (r Renderer) Ledger(w io.Writer, account string, rows []ledger.LedgerRow) error {
	fmt.Fprintf(w, "Ledger: %s\n", account)
	tw := newTab(w)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tDEBIT\tCREDIT\tRUNNING")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			row.Date.Format(ledger.DateFormat), row.Description,
			r.amountOrBlank(row.Debit), r.amountOrBlank(row.Credit), r.money.Format(row.Running))
	}
	return tw.Flush()
}

// BalanceSheet renders the two-sided balance sheet with totals.
func (r Renderer) BalanceSheet(w io.Writer, bs ledger.BalanceSheet) error {
	tw := newTab(w)
	fmt.Fprintln(tw, "ASSETS\tAMOUNT")
	for _, line := range bs.Assets {
		fmt.Fprintf(tw, "%s\t%s\n", line.Name, r.money.Format(line.Amount))
	}
	fmt.Fprintf(tw, "Total Assets\t%s\n", r.money.Format(bs.TotalAssets))
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "LIABILITIES & EQUITY\tAMOUNT")
	for _, line := range bs.LiabilitiesEquity {
		fmt.Fprintf(tw, "%s\t%s\n", line.Name, r.money.Format(line.Amount))
	}
	fmt.Fprintf(tw, "Total Liabilities & Equity\t%s\n", r.money.Format(bs.TotalLiabilitiesEquity))
	return tw.Flush()
}

// TrialBalance renders the accounting-equation totals.
func (r Renderer) TrialBalance(w io.Writer, tb ledger.TrialBalance) error {
	tw := newTab(w)
	fmt.Fprintf(tw, "Assets\t%s\n", r.money.Format(tb.Assets))
	fmt.Fprintf(tw, "Liabilities\t%s\n", r.money.Format(tb.Liabilities))
	fmt.Fprintf(tw, "Equity\t%s\n", r.money.Format(tb.Equity))
	fmt.Fprintf(tw, "Revenue\t%s\n", r.money.Format(tb.Revenue))
	fmt.Fprintf(tw, "Expenses\t%s\n", r.money.Format(tb.Expenses))
	fmt.Fprintf(tw, "Net income\t%s\n", r.money.Format(tb.NetIncome()))
	return tw.Flush()
}

func (r Renderer) amountOrBlank(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return r.money.Format(d)
}
