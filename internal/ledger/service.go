package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// Options controls engine policy.
type Options struct {
	// AutoCreate creates accounts named by a posting on the fly, with
	// hybrid type inference. When false, unknown names are rejected.
	AutoCreate bool
	// VerifyEquation checks the accounting equation after every replay
	// and rejects a posting that would break it.
	VerifyEquation bool
}

// Service is the ledger engine: a chart of accounts plus an append-only
// transaction log. Balances are projections of the log and are kept
// consistent by full replay, never incremental patching. The engine is
// single-writer and does no locking of its own.
type Service struct {
	accounts []*model.Account
	byName   map[string]*model.Account
	txns     []model.Transaction
	opts     Options
}

// NewService creates a Service seeded with the given chart of accounts.
// Seed entries with duplicate canonical names keep the first occurrence.
func NewService(seed []model.Account, opts Options) *Service {
	s := &Service{
		byName: make(map[string]*model.Account, len(seed)),
		opts:   opts,
	}
	for _, a := range seed {
		name := Canonicalize(a.Name)
		if name == "" {
			continue
		}
		if _, ok := s.byName[name]; ok {
			continue
		}
		t := a.Type
		if !t.Valid() {
			t = AccountTypeFromName(a.Name)
		}
		acct := &model.Account{Name: name, Type: t}
		s.accounts = append(s.accounts, acct)
		s.byName[name] = acct
	}
	return s
}

// PostParams holds the fields of a double-entry posting. DebitAccount
// and CreditAccount may carry a [TYPE] tag, which is stripped to form
// the canonical name and, when present, overrides the account type.
type PostParams struct {
	Date          time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
}

// Post validates a posting, appends it to the transaction log, and
// replays the log to refresh balances. Any rejection leaves the ledger
// untouched.
func (s *Service) Post(params PostParams) error {
	if params.Date.IsZero() {
		return fmt.Errorf("%w: date", ErrMissingField)
	}
	if params.Description == "" {
		return fmt.Errorf("%w: description", ErrMissingField)
	}
	debit := Canonicalize(params.DebitAccount)
	credit := Canonicalize(params.CreditAccount)
	if debit == "" {
		return fmt.Errorf("%w: debit account", ErrMissingField)
	}
	if credit == "" {
		return fmt.Errorf("%w: credit account", ErrMissingField)
	}
	if debit == credit {
		return fmt.Errorf("%w: %q", ErrSameAccount, debit)
	}
	if !params.Amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, params.Amount)
	}
	if !s.opts.AutoCreate {
		for _, name := range []string{debit, credit} {
			if _, ok := s.byName[name]; !ok {
				return fmt.Errorf("%w: %q", ErrUnknownAccount, name)
			}
		}
	}

	// All checks passed; resolving cannot fail from here on.
	s.resolve(params.DebitAccount)
	s.resolve(params.CreditAccount)

	s.txns = append(s.txns, model.Transaction{
		Date:        params.Date,
		Description: params.Description,
		Debit:       debit,
		Credit:      credit,
		Amount:      params.Amount,
	})
	s.RecomputeBalances()

	if s.opts.VerifyEquation {
		if err := s.VerifyEquation(); err != nil {
			s.txns = s.txns[:len(s.txns)-1]
			s.RecomputeBalances()
			return err
		}
	}
	return nil
}

// resolve ensures the account named by raw exists, creating it with
// hybrid type inference when allowed. A [TYPE] tag on an existing
// account's name updates its stored type.
func (s *Service) resolve(raw string) *model.Account {
	name := Canonicalize(raw)
	tagged := TypeFromTag(raw)

	if acct, ok := s.byName[name]; ok {
		if tagged != model.AccountTypeUnknown && acct.Type != tagged {
			acct.Type = tagged
		}
		return acct
	}

	t := tagged
	if t == model.AccountTypeUnknown {
		t = TypeFromKeywords(name)
	}
	if t == model.AccountTypeUnknown {
		t = model.AccountTypeAsset
	}
	acct := &model.Account{Name: name, Type: t}
	s.accounts = append(s.accounts, acct)
	s.byName[name] = acct
	return acct
}

// AddAccount adds an account with an explicit type. The name may carry
// a [TYPE] tag, which is stripped; the explicit type is authoritative.
func (s *Service) AddAccount(name string, t model.AccountType) error {
	canonical := Canonicalize(name)
	if canonical == "" {
		return fmt.Errorf("%w: account name", ErrMissingField)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t)
	}
	if _, ok := s.byName[canonical]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAccount, canonical)
	}
	acct := &model.Account{Name: canonical, Type: t}
	s.accounts = append(s.accounts, acct)
	s.byName[canonical] = acct
	return nil
}

// RemoveAccount deletes an account, refusing if any transaction in the
// log references it on either side.
func (s *Service) RemoveAccount(name string) error {
	canonical := Canonicalize(name)
	if _, ok := s.byName[canonical]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, canonical)
	}
	for _, tx := range s.txns {
		if tx.Debit == canonical || tx.Credit == canonical {
			return fmt.Errorf("%w: %q", ErrAccountInUse, canonical)
		}
	}
	delete(s.byName, canonical)
	for i, a := range s.accounts {
		if a.Name == canonical {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			break
		}
	}
	return nil
}

// RecomputeBalances zeroes every balance and replays the transaction
// log in insertion order. Idempotent.
func (s *Service) RecomputeBalances() {
	for _, a := range s.accounts {
		a.Balance = decimal.Zero
	}
	for _, tx := range s.txns {
		if da, ok := s.byName[tx.Debit]; ok {
			if da.Type.DebitNormal() {
				da.Balance = da.Balance.Add(tx.Amount)
			} else {
				da.Balance = da.Balance.Sub(tx.Amount)
			}
		}
		if ca, ok := s.byName[tx.Credit]; ok {
			if ca.Type.DebitNormal() {
				ca.Balance = ca.Balance.Sub(tx.Amount)
			} else {
				ca.Balance = ca.Balance.Add(tx.Amount)
			}
		}
	}
}

// LedgerRow is one line of a per-account ledger. Exactly one of Debit
// and Credit is non-zero; Running is the balance after this entry.
type LedgerRow struct {
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Running     decimal.Decimal
}

// AccountLedger returns the transactions touching one account in
// insertion order, with a running balance accumulated left to right
// under the account's normal-balance convention.
func (s *Service) AccountLedger(name string) ([]LedgerRow, error) {
	canonical := Canonicalize(name)
	acct, ok := s.byName[canonical]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccount, canonical)
	}

	var rows []LedgerRow
	running := decimal.Zero
	for _, tx := range s.txns {
		if tx.Debit == canonical {
			if acct.Type.DebitNormal() {
				running = running.Add(tx.Amount)
			} else {
				running = running.Sub(tx.Amount)
			}
			rows = append(rows, LedgerRow{
				Date:        tx.Date,
				Description: tx.Description,
				Debit:       tx.Amount,
				Running:     running,
			})
		}
		if tx.Credit == canonical {
			if acct.Type.DebitNormal() {
				running = running.Sub(tx.Amount)
			} else {
				running = running.Add(tx.Amount)
			}
			rows = append(rows, LedgerRow{
				Date:        tx.Date,
				Description: tx.Description,
				Credit:      tx.Amount,
				Running:     running,
			})
		}
	}
	return rows, nil
}

// JournalLine is one line of the general journal: each transaction
// yields a debit line followed by a credit line.
type JournalLine struct {
	Date        time.Time
	Description string
	Account     string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// GeneralJournal returns the chronological journal, two lines per
// transaction.
func (s *Service) GeneralJournal() []JournalLine {
	lines := make([]JournalLine, 0, 2*len(s.txns))
	for _, tx := range s.txns {
		lines = append(lines,
			JournalLine{Date: tx.Date, Description: tx.Description, Account: tx.Debit, Debit: tx.Amount},
			JournalLine{Date: tx.Date, Description: tx.Description, Account: tx.Credit, Credit: tx.Amount},
		)
	}
	return lines
}

// BalanceLine is one account row on a balance sheet side.
type BalanceLine struct {
	Name   string
	Amount decimal.Decimal
}

// BalanceSheet partitions accounts into the assets side and the
// liabilities & equity side, with a total per side. Revenue and expense
// accounts are excluded (no closing entries are performed).
type BalanceSheet struct {
	Assets                 []BalanceLine
	LiabilitiesEquity      []BalanceLine
	TotalAssets            decimal.Decimal
	TotalLiabilitiesEquity decimal.Decimal
}

// BalanceSheet builds the balance sheet from current balances. Accounts
// that have a zero balance and appear in no transaction are suppressed
// so unused seed accounts do not clutter the report.
func (s *Service) BalanceSheet() BalanceSheet {
	used := make(map[string]bool, len(s.txns)*2)
	for _, tx := range s.txns {
		used[tx.Debit] = true
		used[tx.Credit] = true
	}

	bs := BalanceSheet{
		TotalAssets:            decimal.Zero,
		TotalLiabilitiesEquity: decimal.Zero,
	}
	for _, a := range s.accounts {
		if !used[a.Name] && a.Balance.IsZero() {
			continue
		}
		switch a.Type {
		case model.AccountTypeAsset:
			bs.Assets = append(bs.Assets, BalanceLine{Name: a.Name, Amount: a.Balance})
			bs.TotalAssets = bs.TotalAssets.Add(a.Balance)
		case model.AccountTypeLiability, model.AccountTypeEquity:
			bs.LiabilitiesEquity = append(bs.LiabilitiesEquity, BalanceLine{Name: a.Name, Amount: a.Balance})
			bs.TotalLiabilitiesEquity = bs.TotalLiabilitiesEquity.Add(a.Balance)
		}
	}
	return bs
}

// TrialBalance holds the totals behind the accounting equation:
// assets = liabilities + equity + net income, where net income is
// revenue minus expenses (revenue and expense are never closed into
// equity here). Debit-normal accounts of unknown type count as assets.
type TrialBalance struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal
	Revenue     decimal.Decimal
	Expenses    decimal.Decimal
}

// NetIncome is revenue minus expenses.
func (t TrialBalance) NetIncome() decimal.Decimal {
	return t.Revenue.Sub(t.Expenses)
}

// Balanced reports whether assets equal liabilities + equity + net
// income.
func (t TrialBalance) Balanced() bool {
	return t.Assets.Equal(t.Liabilities.Add(t.Equity).Add(t.NetIncome()))
}

// TrialBalance totals current balances by account type.
func (s *Service) TrialBalance() TrialBalance {
	tb := TrialBalance{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Equity:      decimal.Zero,
		Revenue:     decimal.Zero,
		Expenses:    decimal.Zero,
	}
	for _, a := range s.accounts {
		switch a.Type {
		case model.AccountTypeLiability:
			tb.Liabilities = tb.Liabilities.Add(a.Balance)
		case model.AccountTypeEquity:
			tb.Equity = tb.Equity.Add(a.Balance)
		case model.AccountTypeRevenue:
			tb.Revenue = tb.Revenue.Add(a.Balance)
		case model.AccountTypeExpense:
			tb.Expenses = tb.Expenses.Add(a.Balance)
		default:
			tb.Assets = tb.Assets.Add(a.Balance)
		}
	}
	return tb
}

// VerifyEquation checks the accounting equation against current
// balances, returning a wrapped ErrEquation when the sides differ.
func (s *Service) VerifyEquation() error {
	tb := s.TrialBalance()
	if !tb.Balanced() {
		return fmt.Errorf("%w: assets %s vs liabilities+equity+income %s",
			ErrEquation, tb.Assets, tb.Liabilities.Add(tb.Equity).Add(tb.NetIncome()))
	}
	return nil
}

// Account returns a snapshot of one account by (canonicalized) name.
func (s *Service) Account(name string) (model.Account, bool) {
	acct, ok := s.byName[Canonicalize(name)]
	if !ok {
		return model.Account{}, false
	}
	return *acct, true
}

// Accounts returns a snapshot of all accounts in insertion order.
func (s *Service) Accounts() []model.Account {
	out := make([]model.Account, len(s.accounts))
	for i, a := range s.accounts {
		out[i] = *a
	}
	return out
}

// Transactions returns a copy of the transaction log.
func (s *Service) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}
