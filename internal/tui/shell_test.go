package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/budgetbuddy/internal/ledger"
)

type session struct {
	shell *Shell
	out   *bytes.Buffer
	logs  *bytes.Buffer
	path  string
}

// newSession wires a shell to a scripted stdin. Each answer is one line.
func newSession(t *testing.T, answers ...string) *session {
	t.Helper()
	return newSessionWith(t, Options{}, answers...)
}

func newSessionWith(t *testing.T, opts Options, answers ...string) *session {
	t.Helper()
	var out, logs bytes.Buffer

	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	opts.Prompter = NewLinePrompter(in, &out)
	opts.Out = &out
	opts.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if opts.OutputPath == "" {
		opts.OutputPath = filepath.Join(t.TempDir(), "output.txt")
	}

	return &session{shell: NewShell(opts), out: &out, logs: &logs, path: opts.OutputPath}
}

func (s *session) start(t *testing.T) {
	t.Helper()
	if err := s.shell.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v\noutput:\n%s", err, s.out.String())
	}
}

func (s *session) mustContain(t *testing.T, want string) {
	t.Helper()
	if !strings.Contains(s.out.String(), want) {
		t.Fatalf("output missing %q:\n%s", want, s.out.String())
	}
}

func TestShell_FullSession(t *testing.T) {
	s := newSession(t,
		"500", "January",
		"1", "600", "Rent",
		"2",
		"3",
		"4",
		"5",
	)
	s.start(t)

	s.mustContain(t, "Welcome to BudgetBuddy")
	s.mustContain(t, "Transaction added successfully!")
	s.mustContain(t, "Your current balance is: -$100.00")
	s.mustContain(t, "Spent $600.00 of $500.00 across 1 transaction.")
	s.mustContain(t, "• $600.00 - Rent")
	s.mustContain(t, ledger.StatusOverBudget)
	s.mustContain(t, "Summary saved successfully to "+s.path+"!")
	s.mustContain(t, "Thank you for using BudgetBuddy!")

	data, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatalf("reading saved summary: %v", err)
	}
	if want := s.shell.Ledger().Summarize().String(); string(data) != want {
		t.Fatalf("saved summary =\n%q\nwant\n%q", data, want)
	}
	if !strings.Contains(s.logs.String(), "summary saved") {
		t.Fatalf("save not logged: %s", s.logs.String())
	}
}

func TestShell_InvalidBudgetReprompts(t *testing.T) {
	s := newSession(t, "abc", "", "200", "March", "5")
	s.start(t)

	if got := strings.Count(s.out.String(), "Invalid budget amount"); got != 2 {
		t.Fatalf("invalid budget message shown %d times, want 2", got)
	}
	p := s.shell.Ledger().Period()
	if !p.Budget().Equal(decimal.NewFromInt(200)) || p.Month() != "March" {
		t.Fatalf("period = (%s, %q), want (200, March)", p.Budget(), p.Month())
	}
}

func TestShell_InvalidChoice(t *testing.T) {
	s := newSession(t, "100", "May", "9", "x", "", "5")
	s.start(t)

	if got := strings.Count(s.out.String(), "Error! Invalid choice entered."); got != 3 {
		t.Fatalf("invalid choice message shown %d times, want 3", got)
	}
	s.mustContain(t, "Thank you for using BudgetBuddy!")
}

func TestShell_InvalidAmountReturnsToMenu(t *testing.T) {
	s := newSession(t, "100", "May", "1", "ten", "5")
	s.start(t)

	s.mustContain(t, "Invalid amount entered. Please try again.")
	if strings.Contains(s.out.String(), "Enter the transaction description") {
		t.Fatal("description asked after an invalid amount")
	}
	if n := s.shell.Ledger().Len(); n != 0 {
		t.Fatalf("Len() = %d, want 0", n)
	}
}

func TestShell_EOFEndsSession(t *testing.T) {
	s := newSession(t, "100", "May", "1", "50", "Coffee")
	s.start(t)

	s.mustContain(t, "Thank you for using BudgetBuddy!")
	if n := s.shell.Ledger().Len(); n != 1 {
		t.Fatalf("Len() = %d, want 1", n)
	}
}

func TestShell_EOFDuringAmountCancels(t *testing.T) {
	var out bytes.Buffer
	sh := NewShell(Options{
		Prompter: NewLinePrompter(strings.NewReader("100\nMay\n1\n"), &out),
		Out:      &out,
	})
	if err := sh.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !strings.Contains(out.String(), "Transaction cancelled.") {
		t.Fatalf("missing cancel notice:\n%s", out.String())
	}
	if sh.Ledger().Len() != 0 {
		t.Fatalf("Len() = %d, want 0", sh.Ledger().Len())
	}
}

func TestShell_EOFBeforeBudget(t *testing.T) {
	var out bytes.Buffer
	sh := NewShell(Options{Prompter: NewLinePrompter(strings.NewReader(""), &out), Out: &out})

	if err := sh.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sh.Ledger() != nil {
		t.Fatal("ledger created without a budget")
	}
}

func TestShell_SaveFailureIsReported(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir", "output.txt")
	s := newSessionWith(t, Options{OutputPath: missing}, "100", "May", "4", "5")
	s.start(t)

	s.mustContain(t, "Could not save summary to "+missing)
	s.mustContain(t, "Thank you for using BudgetBuddy!")
	if !strings.Contains(s.logs.String(), "summary save failed") {
		t.Fatalf("save failure not logged: %s", s.logs.String())
	}
	if _, err := os.Stat(missing); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("stat %s: %v, want not exist", missing, err)
	}
}

func TestShell_DefaultsFillBlankAnswers(t *testing.T) {
	s := newSessionWith(t, Options{DefaultBudget: "300", DefaultMonth: "October"}, "", "", "5")
	s.start(t)

	s.mustContain(t, "[300]")
	s.mustContain(t, "[October]")
	p := s.shell.Ledger().Period()
	if !p.Budget().Equal(decimal.NewFromInt(300)) || p.Month() != "October" {
		t.Fatalf("period = (%s, %q), want (300, October)", p.Budget(), p.Month())
	}
}

func TestShell_PresetPeriodSkipsPrompts(t *testing.T) {
	budget := decimal.RequireFromString("1000.00")
	s := newSessionWith(t, Options{Budget: &budget, Month: "January"}, "2", "5")
	s.start(t)

	if strings.Contains(s.out.String(), "Please enter your budget") {
		t.Fatal("budget prompt shown despite preset budget")
	}
	if strings.Contains(s.out.String(), "Enter the month") {
		t.Fatal("month prompt shown despite preset month")
	}
	s.mustContain(t, "Your current balance is: $1,000.00")
}

func TestShell_ZeroAmountEmptyDescription(t *testing.T) {
	s := newSession(t, "10", "June", "1", "0", "", "3", "5")
	s.start(t)

	s.mustContain(t, "• $0.00 - \n")
	s.mustContain(t, ledger.StatusWithinBudget)
}

func TestShell_RefundSession(t *testing.T) {
	s := newSession(t, "200", "March", "1", "50", "Groceries", "1", "-20", "Refund", "2", "5")
	s.start(t)

	s.mustContain(t, "Your current balance is: $170.00")
	if s.shell.Ledger().IsOverBudget() {
		t.Fatal("IsOverBudget() = true, want false")
	}
}

func TestShell_RunHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sh := NewShell(Options{Prompter: NewLinePrompter(strings.NewReader("1\n600\nRent\n"), &out), Out: &out})
	l := ledger.New(ledger.NewPeriod(decimal.NewFromInt(1), "May"))

	if err := sh.Run(ctx, l); err != nil {
		t.Fatalf("Run err = %v, want nil", err)
	}
	if l.Len() != 0 {
		t.Fatalf("Len() = %d after cancelled run, want 0", l.Len())
	}
	if !strings.Contains(out.String(), "Thank you for using BudgetBuddy!") {
		t.Fatalf("output missing goodbye:\n%s", out.String())
	}
}

func TestShell_StartWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sh := NewShell(Options{Prompter: NewLinePrompter(strings.NewReader("100\nJan\n"), &out), Out: &out})

	if err := sh.Start(ctx); err != nil {
		t.Fatalf("Start err = %v, want nil", err)
	}
	if sh.Ledger() != nil {
		t.Fatal("ledger created after cancellation")
	}
	if !strings.Contains(out.String(), "Thank you for using BudgetBuddy!") {
		t.Fatalf("output missing goodbye:\n%s", out.String())
	}
}

func TestShell_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out syncBuffer
	sh := NewShell(Options{Prompter: NewLinePrompter(pr, &out), Out: &out})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sh.Start(ctx) }()

	if _, err := io.WriteString(pw, "100\nJan\n"); err != nil {
		t.Fatalf("writing answers: %v", err)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start err = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start still blocked after cancel")
	}
	if !strings.Contains(out.String(), "Thank you for using BudgetBuddy!") {
		t.Fatalf("output missing goodbye:\n%s", out.String())
	}
}

func TestLinePrompter_CancelDoesNotLoseLine(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	p := NewLinePrompter(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Amount(ctx); !errors.Is(err, ErrQuit) {
		t.Fatalf("Amount on cancelled ctx err = %v, want ErrQuit", err)
	}

	ctx, cancel = context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := p.Amount(ctx)
		errc <- err
	}()
	cancel()
	if err := <-errc; !errors.Is(err, ErrQuit) {
		t.Fatalf("Amount err = %v, want ErrQuit", err)
	}

	go func() { _, _ = io.WriteString(pw, "42\n") }()
	got, err := p.Amount(context.Background())
	if err != nil || got != "42" {
		t.Fatalf("Amount after cancel = %q, %v, want 42", got, err)
	}
}

// syncBuffer is a bytes.Buffer safe for the shell goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAmountValidator(t *testing.T) {
	if err := amountValidator(true)("  "); err != nil {
		t.Fatalf("blank with default allowed: %v", err)
	}
	if err := amountValidator(false)(""); err == nil {
		t.Fatal("blank amount accepted without default")
	}
	if err := amountValidator(false)("12.50"); err != nil {
		t.Fatalf("12.50 rejected: %v", err)
	}
	if err := amountValidator(false)("twelve"); err == nil {
		t.Fatal("twelve accepted")
	}
}
