// Package core provides money parsing and formatting utilities.
//
// This file contains the amount parser used by the interactive prompts and
// the currency formatter used by every report.
package core

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₹"

// ParseAmount converts a whole-unit integer string to Money.
//
// Surrounding whitespace and a single leading '+' are accepted. The value may
// be negative: callers decide whether a negative amount is acceptable, so a
// parsed negative is returned together with ErrNegativeAmount.
// Blank input is not handled here; callers map it to zero themselves.
//
// Examples:
//   ParseAmount("1500")  -> 1500, nil
//   ParseAmount(" +42 ") -> 42, nil
//   ParseAmount("-5")    -> -5, ErrNegativeAmount
//   ParseAmount("12.5")  -> 0, ErrInvalidAmount
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	if digits == "" {
		return 0, ErrInvalidAmount
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// out of int64 range
		return 0, ErrInvalidAmount
	}
	if v < 0 {
		return Money(v), ErrNegativeAmount
	}
	return Money(v), nil
}

// FormatCurrency renders amount as a signed, thousands-grouped currency string.
//
//   FormatCurrency(1234567) -> "₹1,234,567"
//   FormatCurrency(-500)    -> "-₹500"
func FormatCurrency(amount int64) string {
	grouped := humanize.Comma(amount)
	if rest, ok := strings.CutPrefix(grouped, "-"); ok {
		return "-" + CurrencySymbol + rest
	}
	return CurrencySymbol + grouped
}

// String implements fmt.Stringer using FormatCurrency.
func (m Money) String() string {
	return FormatCurrency(int64(m))
}
