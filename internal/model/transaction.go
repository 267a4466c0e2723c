package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single double-entry posting: Amount is debited to
// the Debit account and credited to the Credit account. Debit and
// Credit hold canonical account names. Transactions are immutable once
// appended to the log.
type Transaction struct {
	Date        time.Time
	Description string
	Debit       string
	Credit      string
	Amount      decimal.Decimal
}
