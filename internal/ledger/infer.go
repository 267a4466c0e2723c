package ledger

import (
	"strings"
	"time"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// DateFormat is the calendar date layout used at the API boundary.
const DateFormat = "2006-01-02"

// Canonicalize strips a trailing [TYPE] tag and surrounding whitespace
// from a raw account name. "Cash [ASSET]" -> "Cash".
func Canonicalize(raw string) string {
	r := strings.TrimSpace(raw)
	if idx := strings.Index(r, "["); idx >= 0 {
		r = strings.TrimSpace(r[:idx])
	}
	return r
}

// TypeFromTag returns the account type named by a bracketed tag in the
// raw name, or AccountTypeUnknown when no tag is present.
func TypeFromTag(raw string) model.AccountType {
	u := strings.ToUpper(raw)
	switch {
	case strings.Contains(u, "[ASSET]"):
		return model.AccountTypeAsset
	case strings.Contains(u, "[LIABILITY]"):
		return model.AccountTypeLiability
	case strings.Contains(u, "[EQUITY]"):
		return model.AccountTypeEquity
	case strings.Contains(u, "[REVENUE]"):
		return model.AccountTypeRevenue
	case strings.Contains(u, "[EXPENSE]"):
		return model.AccountTypeExpense
	}
	return model.AccountTypeUnknown
}

// Keyword rules for type inference, evaluated in order; the first set
// containing a substring of the lower-cased name wins. The asset set is
// checked first so names like "Prepaid Insurance" resolve as assets
// rather than expenses.
var keywordRules = []struct {
	typ      model.AccountType
	keywords []string
}{
	{model.AccountTypeAsset, []string{"cash", "receivable", "inventory", "equipment", "prepaid", "supplies"}},
	{model.AccountTypeLiability, []string{"payable", "note", "unearned"}},
	{model.AccountTypeEquity, []string{"capital", "owner", "retained", "draw"}},
	{model.AccountTypeRevenue, []string{"revenue", "sales", "service"}},
	{model.AccountTypeExpense, []string{"expense", "rent", "salary", "utilities", "cost", "depreciation", "insurance"}},
}

// TypeFromKeywords guesses an account type from its canonical name, or
// AccountTypeUnknown when no keyword matches.
func TypeFromKeywords(name string) model.AccountType {
	s := strings.ToLower(name)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(s, kw) {
				return rule.typ
			}
		}
	}
	return model.AccountTypeUnknown
}

// AccountTypeFromName resolves a raw account name to a type using
// hybrid inference: an explicit [TYPE] tag wins, then keyword matching,
// then the asset fallback.
func AccountTypeFromName(raw string) model.AccountType {
	if t := TypeFromTag(raw); t != model.AccountTypeUnknown {
		return t
	}
	if t := TypeFromKeywords(Canonicalize(raw)); t != model.AccountTypeUnknown {
		return t
	}
	return model.AccountTypeAsset
}

// ParseDate parses a yyyy-mm-dd date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
