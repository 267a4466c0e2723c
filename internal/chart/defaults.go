package chart

import "github.com/bookkeep-dev/bookkeep/internal/model"

// Default returns the seed chart of accounts for a profile.
func Default(profile string) []model.Account {
	switch profile {
	case "empty":
		return nil
	default:
		return standardChart()
	}
}

func standardChart() []model.Account {
	return []model.Account{
		{Name: "Cash", Type: model.AccountTypeAsset},
		{Name: "Petty Cash", Type: model.AccountTypeAsset},
		{Name: "Accounts Receivable", Type: model.AccountTypeAsset},
		{Name: "Notes Receivable", Type: model.AccountTypeAsset},
		{Name: "Supplies", Type: model.AccountTypeAsset},
		{Name: "Inventory", Type: model.AccountTypeAsset},
		{Name: "Prepaid Rent", Type: model.AccountTypeAsset},
		{Name: "Prepaid Insurance", Type: model.AccountTypeAsset},
		{Name: "Equipment", Type: model.AccountTypeAsset},
		{Name: "Accumulated Depreciation", Type: model.AccountTypeAsset},
		{Name: "Accounts Payable", Type: model.AccountTypeLiability},
		{Name: "Notes Payable", Type: model.AccountTypeLiability},
		{Name: "Unearned Revenue", Type: model.AccountTypeLiability},
		{Name: "Owner's Capital", Type: model.AccountTypeEquity},
		{Name: "Owner's Drawings", Type: model.AccountTypeEquity},
		{Name: "Retained Earnings", Type: model.AccountTypeEquity},
		{Name: "Sales Revenue", Type: model.AccountTypeRevenue},
		{Name: "Service Revenue", Type: model.AccountTypeRevenue},
		{Name: "Salaries Expense", Type: model.AccountTypeExpense},
		{Name: "Rent Expense", Type: model.AccountTypeExpense},
		{Name: "Utilities Expense", Type: model.AccountTypeExpense},
		{Name: "Supplies Expense", Type: model.AccountTypeExpense},
		{Name: "Depreciation Expense", Type: model.AccountTypeExpense},
		{Name: "Insurance Expense", Type: model.AccountTypeExpense},
	}
}
