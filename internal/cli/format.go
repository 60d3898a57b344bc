// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyCode is the only currency the allocator displays.
const CurrencyCode = "GBP"

// Locale is the BCP 47 tag the currency formatting follows.
const Locale = "en-GB"

// FormatCurrency formats an amount as pounds with two decimals, e.g.
// 1234.5 -> "£1,234.50". Rounding is half away from zero on the shortest
// decimal form of the float, so 166.665 -> "£166.67".
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	pence := decimal.NewFromFloat(amount).Round(2).Shift(2)
	if pence.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || pence.LessThan(decimal.NewFromInt(-math.MaxInt64)) {
		return formatLargeCurrency(pence.Shift(-2))
	}

	return money.New(pence.IntPart(), CurrencyCode).Display()
}

// formatLargeCurrency handles amounts whose pence overflow int64.
func formatLargeCurrency(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + "£" + groupDigits(whole) + "." + frac
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatShare describes a bucket share, e.g. "50% of income".
func FormatShare(percent int) string {
	return strconv.Itoa(percent) + "% of income"
}

// groupDigits inserts a comma every three digits from the right.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
