package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyGBP is the only currency balances are held in
const CurrencyGBP = "GBP"

const (
	// MaxAmountDigits bounds the integer part: amounts must be below 10^15
	MaxAmountDigits = 15
	// MinAmountExponent bounds the fractional part to 8 decimal places
	MinAmountExponent = -8
)

// FormatGBP renders an amount as pounds with thousands separators, e.g. £48,750.00 or -£250.00
func FormatGBP(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() && !amount.Round(2).IsZero() {
		b.WriteString("-")
	}
	b.WriteString("£")

	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	b.WriteByte('.')
	b.WriteString(fraction)

	return b.String()
}

// HasAtMostTwoDecimals reports whether amount can be expressed in whole pence
func HasAtMostTwoDecimals(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(2))
}

// IsWithinAmountRange reports whether |amount| < 10^15 with at most 8 decimal
// places. It looks only at the coefficient and exponent, so values such as
// 1e100000000 are rejected without being expanded.
func IsWithinAmountRange(amount decimal.Decimal) bool {
	exp := int(amount.Exponent())
	if exp < MinAmountExponent || exp > MaxAmountDigits {
		return false
	}

	if amount.IsZero() {
		return true
	}

	return amount.NumDigits()+exp <= MaxAmountDigits
}
