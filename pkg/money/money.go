// Package money holds display-boundary helpers for monetary values. The
// simulation itself runs on float64; amounts only pass through decimals here,
// when they are rounded or rendered.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundInt rounds v to the nearest integer, halves away from zero. Report
// rows are integer-only and this is the single place that rounding happens.
func RoundInt(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}

// FormatRounded renders v as a rounded integer string for machine-readable
// rows: no symbols, no grouping separators.
func FormatRounded(v float64) string {
	return strconv.FormatInt(RoundInt(v), 10)
}

// FormatCurrency renders v for human display with a currency sign, two
// decimals and thousands grouping. Never used in the machine report.
func FormatCurrency(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + "$" + group(intPart) + "." + fracPart
}

// FormatPercentage formats a percentage value with 2 decimals.
func FormatPercentage(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// group inserts comma separators into a bare digit string.
func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
