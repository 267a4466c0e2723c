// Package money renders amounts for display: currency symbol, comma
// grouping, two fixed decimals, negatives in parentheses.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency symbol used when none is configured.
const DefaultSymbol = "₱"

// Formatter renders decimal amounts under the display contract.
type Formatter struct {
	Symbol string
}

// NewFormatter returns a Formatter, defaulting the symbol if empty.
func NewFormatter(symbol string) Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return Formatter{Symbol: symbol}
}

// Format renders d as e.g. "₱1,234.56"; negative amounts render as
// "(₱1,234.56)".
func (f Formatter) Format(d decimal.Decimal) string {
	s := f.Symbol + group(d.Abs().StringFixed(2))
	if d.IsNegative() {
		return "(" + s + ")"
	}
	return s
}

// group inserts thousands separators into the integer part of a fixed
// decimal string like "1234567.89".
func group(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")

	n := len(intPart)
	if n <= 3 {
		return intPart + "." + fracPart
	}

	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(intPart[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + "." + fracPart
}
