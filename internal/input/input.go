// Package input turns raw user text into the typed values the ledger accepts.
//
// Everything that can be mistyped at a prompt or on the command line is
// checked here, so the ledger itself never sees malformed input.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidChoice      = errors.New("invalid choice")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// Action is a menu entry of the interactive session.
type Action int

const (
	ActionAdd Action = iota + 1
	ActionBalance
	ActionSummary
	ActionSave
	ActionExit
)

// Actions lists the menu in display order.
var Actions = []Action{ActionAdd, ActionBalance, ActionSummary, ActionSave, ActionExit}

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "Add a transaction"
	case ActionBalance:
		return "Check your balance"
	case ActionSummary:
		return "View summary"
	case ActionSave:
		return "Save summary"
	case ActionExit:
		return "Exit"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAmount parses a money amount such as "12.50", "-3", "$1,50" or
// "-$7.25" and rounds it to whole cents. A comma is accepted only as the
// decimal separator, followed by one or two digits; thousands separators are
// rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	raw := s
	s = strings.TrimSpace(s)

	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	if sign == "+" {
		sign = ""
	}
	s = strings.TrimPrefix(s, "$")

	if whole, frac, ok := strings.Cut(s, ","); ok {
		if strings.Contains(whole, ".") || len(frac) < 1 || len(frac) > 2 || strings.ContainsAny(frac, ",.") {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
		}
		s = whole + "." + frac
	}
	if s == "" || strings.ContainsAny(s, " \t+-eE") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	d, err := decimal.NewFromString(sign + s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d.Round(2), nil
}

// ParseBudget parses the monthly budget. Any amount ParseAmount accepts is a
// valid budget.
func ParseBudget(s string) (decimal.Decimal, error) {
	return ParseAmount(s)
}

// ParseChoice maps a menu selection ("1".."5") to its action.
func ParseChoice(s string) (Action, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return ActionAdd, nil
	case "2":
		return ActionBalance, nil
	case "3":
		return ActionSummary, nil
	case "4":
		return ActionSave, nil
	case "5":
		return ActionExit, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
}

// ParseTransaction splits "amount:description" at the first colon. The
// description may be empty but the colon is required.
func ParseTransaction(s string) (decimal.Decimal, string, error) {
	amount, desc, ok := strings.Cut(s, ":")
	if !ok {
		return decimal.Zero, "", fmt.Errorf("%w: %q (want amount:description)", ErrInvalidTransaction, s)
	}

	d, err := ParseAmount(amount)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}
	return d, strings.TrimSpace(desc), nil
}
