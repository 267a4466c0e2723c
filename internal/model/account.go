package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
	AccountTypeUnknown   AccountType = "unknown"
)

// AccountTypes lists the five real account types, in chart order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

// Valid reports whether t is one of the five real account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// DebitNormal reports whether a debit increases the balance of an
// account of this type. Asset and expense accounts are debit-normal;
// liability, equity and revenue accounts are credit-normal. An unknown
// type falls back to debit-normal so balance arithmetic stays defined.
func (t AccountType) DebitNormal() bool {
	switch t {
	case AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue:
		return false
	}
	return true
}

// Account is one row in the chart of accounts. Name is the canonical
// account name, with any [TYPE] tag already stripped. Balance is
// derived state, recomputed by replaying the transaction log.
type Account struct {
	Name    string
	Type    AccountType
	Balance decimal.Decimal
}
