// Package tui drives a budgeting session: it asks for the budget context,
// presents the menu, and routes each choice to the ledger and the summary
// file.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/budgetbuddy/internal/cli"
	"github.com/theirongolddev/budgetbuddy/internal/input"
	"github.com/theirongolddev/budgetbuddy/internal/ledger"
	"github.com/theirongolddev/budgetbuddy/internal/report"
)

// Options configures a Shell.
type Options struct {
	Prompter   Prompter
	Out        io.Writer
	OutputPath string
	Logger     *slog.Logger

	// Budget and Month, when set, are used as-is instead of prompting.
	Budget *decimal.Decimal
	Month  string

	// Offered at the prompts and used when the answer is left blank.
	DefaultBudget string
	DefaultMonth  string
}

// Shell is the interactive session around one ledger.
type Shell struct {
	opts   Options
	log    *slog.Logger
	ledger *ledger.Ledger
}

// NewShell returns a shell with the given options.
func NewShell(opts Options) *Shell {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.OutputPath == "" {
		opts.OutputPath = report.DefaultFile
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{opts: opts, log: logger.With("component", "shell")}
}

// Ledger returns the ledger of the running or finished session, if any.
func (s *Shell) Ledger() *ledger.Ledger {
	return s.ledger
}

// Start greets the user, establishes the budget period and runs the menu
// until the user exits.
func (s *Shell) Start(ctx context.Context) error {
	s.println(cli.RenderTitle("BudgetBuddy"))
	s.println(cli.Prompt("Welcome to BudgetBuddy, your personal finance tracker!"))
	s.println("")

	period, err := s.askPeriod(ctx)
	if err != nil {
		if errors.Is(err, ErrQuit) {
			s.goodbye()
			return nil
		}
		return err
	}

	return s.Run(ctx, ledger.New(period))
}

func (s *Shell) askPeriod(ctx context.Context) (ledger.Period, error) {
	budget := decimal.Zero
	if s.opts.Budget != nil {
		budget = *s.opts.Budget
	} else {
		for {
			if ctx.Err() != nil {
				return ledger.Period{}, ErrQuit
			}
			raw, err := s.opts.Prompter.Budget(ctx, s.opts.DefaultBudget)
			if err != nil {
				return ledger.Period{}, err
			}
			if strings.TrimSpace(raw) == "" {
				raw = s.opts.DefaultBudget
			}

			b, err := input.ParseBudget(raw)
			if err != nil {
				s.log.Debug("rejected budget", "input", raw, "err", err)
				s.println(cli.Error("Invalid budget amount. Please enter a number."))
				continue
			}
			budget = b
			break
		}
	}

	month := s.opts.Month
	if month == "" {
		if ctx.Err() != nil {
			return ledger.Period{}, ErrQuit
		}
		raw, err := s.opts.Prompter.Month(ctx, s.opts.DefaultMonth)
		if err != nil {
			return ledger.Period{}, err
		}
		month = strings.TrimSpace(raw)
		if month == "" {
			month = s.opts.DefaultMonth
		}
	}

	s.log.Debug("period set", "budget", budget.String(), "month", month)
	return ledger.NewPeriod(budget, month), nil
}

// Run shows the menu in a loop over l until the user exits, input ends, or
// ctx is cancelled. All three end the session with the goodbye line.
func (s *Shell) Run(ctx context.Context, l *ledger.Ledger) error {
	s.ledger = l

	for {
		if ctx.Err() != nil {
			s.log.Debug("session interrupted", "err", context.Cause(ctx))
			s.goodbye()
			return nil
		}

		raw, err := s.opts.Prompter.Choice(ctx)
		if err != nil {
			if errors.Is(err, ErrQuit) {
				s.goodbye()
				return nil
			}
			return err
		}

		action, err := input.ParseChoice(raw)
		if err != nil {
			s.println(cli.Error("Error! Invalid choice entered."))
			s.println("")
			continue
		}

		switch action {
		case input.ActionAdd:
			if err := s.addTransaction(ctx); err != nil {
				return err
			}
		case input.ActionBalance:
			s.showBalance()
		case input.ActionSummary:
			s.showSummary()
		case input.ActionSave:
			s.saveSummary()
		case input.ActionExit:
			s.goodbye()
			return nil
		}
	}
}

func (s *Shell) addTransaction(ctx context.Context) error {
	raw, err := s.opts.Prompter.Amount(ctx)
	if err != nil {
		if errors.Is(err, ErrQuit) {
			s.println(cli.Muted("Transaction cancelled."))
			return nil
		}
		return err
	}

	amount, err := input.ParseAmount(raw)
	if err != nil {
		s.log.Debug("rejected amount", "input", raw, "err", err)
		s.println(cli.Error("Invalid amount entered. Please try again."))
		s.println("")
		return nil
	}

	desc, err := s.opts.Prompter.Description(ctx)
	if err != nil {
		if errors.Is(err, ErrQuit) {
			s.println(cli.Muted("Transaction cancelled."))
			return nil
		}
		return err
	}

	s.ledger.Record(amount, desc)
	s.log.Debug("transaction recorded", "amount", amount.String(), "count", s.ledger.Len())
	s.println(cli.Success("Transaction added successfully!"))
	s.println("")
	return nil
}

func (s *Shell) showBalance() {
	l := s.ledger
	s.println(cli.Warn("Your current balance is: " + cli.FormatMoney(l.Balance())))
	s.println(cli.Muted(fmt.Sprintf("Spent %s of %s across %s.",
		cli.FormatMoney(l.Spent()),
		cli.FormatMoney(l.Period().Budget()),
		cli.Plural(l.Len(), "transaction"),
	)))
	s.println("")
}

func (s *Shell) showSummary() {
	s.println("")
	fmt.Fprint(s.opts.Out, cli.RenderSummary(s.ledger.Summarize(), s.ledger.IsOverBudget()))
}

func (s *Shell) saveSummary() {
	path := s.opts.OutputPath
	summary := s.ledger.Summarize()

	if err := report.Save(path, summary); err != nil {
		s.log.Error("summary save failed", "path", path, "err", err)
		s.println(cli.Error(fmt.Sprintf("Could not save summary to %s: %v", path, err)))
		s.println("")
		return
	}

	s.log.Info("summary saved", "path", path, "lines", len(summary))
	s.println(cli.Success(fmt.Sprintf("Summary saved successfully to %s!", path)))
	s.println("")
}

func (s *Shell) goodbye() {
	s.println(cli.Prompt("Thank you for using BudgetBuddy!"))
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.opts.Out, line)
}
