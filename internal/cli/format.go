// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats a dollar amount with comma separators and two decimals.
// e.g., 1234.5 -> "$1,234.50", -3 -> "-$3.00"
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// Beyond int64; skip the separators rather than lose digits.
		return sign + "$" + fixed
	}
	return sign + "$" + FormatNumber(n) + "." + frac
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
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

// Plural returns "1 transaction" / "3 transactions".
func Plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return FormatNumber(int64(n)) + " " + noun + "s"
}
