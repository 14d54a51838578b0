// Package ledger records the transactions of one budgeting period and derives
// the balance and summary views from them.
package ledger

import "github.com/shopspring/decimal"

// Transaction is a single recorded amount. Positive amounts are expenses
// charged against the budget; negative amounts are income or refunds.
type Transaction struct {
	Amount      decimal.Decimal
	Description string
}

// Period is the budget context of a tracking session. It is fixed once built.
type Period struct {
	budget decimal.Decimal
	month  string
}

// NewPeriod returns the context for a month with the given budget.
func NewPeriod(budget decimal.Decimal, month string) Period {
	return Period{budget: budget, month: month}
}

// Budget returns the monthly budget.
func (p Period) Budget() decimal.Decimal { return p.budget }

// Month returns the month label.
func (p Period) Month() string { return p.month }

// Ledger holds the append-only transaction list for one period.
type Ledger struct {
	period       Period
	transactions []Transaction
}

// New returns an empty ledger for the period.
func New(period Period) *Ledger {
	return &Ledger{period: period}
}

// Period returns the ledger's budget context.
func (l *Ledger) Period() Period {
	return l.period
}

// Record appends a transaction. It never fails: amounts and descriptions are
// validated by the caller before they get here.
func (l *Ledger) Record(amount decimal.Decimal, description string) Transaction {
	t := Transaction{Amount: amount, Description: description}
	l.transactions = append(l.transactions, t)
	return t
}

// Transactions returns a copy of the recorded transactions in insertion order.
func (l *Ledger) Transactions() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Spent returns the sum of all recorded amounts.
func (l *Ledger) Spent() decimal.Decimal {
	total := decimal.Zero
	for _, t := range l.transactions {
		total = total.Add(t.Amount)
	}
	return total
}

// Balance returns the budget minus everything recorded so far. It is
// recomputed from the full transaction list on every call.
func (l *Ledger) Balance() decimal.Decimal {
	return l.period.budget.Sub(l.Spent())
}

// IsOverBudget reports whether the balance is below zero. A balance of
// exactly zero is still within budget.
func (l *Ledger) IsOverBudget() bool {
	return l.Balance().IsNegative()
}
