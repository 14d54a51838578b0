package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Status lines closing every summary.
const (
	StatusOverBudget   = "You have exceeded your budget."
	StatusWithinBudget = "You are within your budget."
)

const transactionsHeader = "Transactions:"

// Summary is the plain-text report of a ledger, one entry per physical line.
// The status line is always last so presentation code can style it alone.
type Summary []string

// Status returns the closing status line.
func (s Summary) Status() string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

// Body returns every line except the status line.
func (s Summary) Body() []string {
	if len(s) == 0 {
		return nil
	}
	return s[:len(s)-1]
}

// TransactionLines returns the bullet lines between the header and the
// trailing blank line.
func (s Summary) TransactionLines() []string {
	start := -1
	for i, line := range s {
		if line == transactionsHeader {
			start = i + 1
			break
		}
	}
	// header, bullets..., blank, balance, status
	if start < 0 || len(s)-3 < start {
		return nil
	}
	return s[start : len(s)-3]
}

// String joins the lines, each terminated by a newline.
func (s Summary) String() string {
	if len(s) == 0 {
		return ""
	}
	return strings.Join(s, "\n") + "\n"
}

// Summarize renders the ledger. It has no side effects, so calling it twice
// without recording in between gives identical output.
func (l *Ledger) Summarize() Summary {
	lines := make(Summary, 0, len(l.transactions)+8)
	lines = append(lines,
		"Month: "+l.period.month,
		"Budget for the month: "+FormatAmount(l.period.budget),
		"",
		transactionsHeader,
	)

	for _, t := range l.transactions {
		lines = append(lines, "• "+FormatAmount(t.Amount)+" - "+t.Description)
	}

	lines = append(lines, "", "Balance: "+FormatAmount(l.Balance()))

	if l.IsOverBudget() {
		lines = append(lines, StatusOverBudget)
	} else {
		lines = append(lines, StatusWithinBudget)
	}

	return lines
}

// FormatAmount renders an amount as dollars with two decimals, e.g. "$12.50"
// or "-$3.00".
func FormatAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
