package magazyn

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file implements the tolerant numeric parsing used on invoice feeds.
// Supplier exports are locale-ambiguous: the same field can carry "12,50" or
// "12.50". The policy favors import completeness over strict validation: a
// malformed number degrades to zero instead of aborting the whole import.

// parseNumeric normalizes raw numeric text to a decimal.
// The fallback chain is: decimal literal with comma substituted by a dot,
// then a floating literal with the same substitution, then zero.
func parseNumeric(raw string) decimal.Decimal {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if d, err := decimal.NewFromString(s); err == nil {
		return d
	}
	// ParseFloat accepts "inf" and "nan", which have no decimal representation.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return decimal.NewFromFloat(f)
	}
	return decimal.Zero
}

// ParseQuantity normalizes raw text into a whole quantity of units.
// A fractional value is truncated, unparseable text yields 0.
func ParseQuantity(raw string) int {
	return int(parseNumeric(raw).IntPart())
}

// ParseAmount normalizes raw text into a money amount.
// Unparseable text yields 0.00.
func ParseAmount(raw string) Money {
	return Money{value: parseNumeric(raw)}
}
