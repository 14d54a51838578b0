package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/budgetbuddy/internal/cli"
	"github.com/theirongolddev/budgetbuddy/internal/input"
)

// ErrQuit is returned by a Prompter when the user ends the session (EOF on a
// pipe, ctrl+c/esc in a form, or a cancelled context).
var ErrQuit = errors.New("session ended by user")

// Prompter asks the user for raw text. It does not interpret answers beyond
// returning them; coercion happens in the shell.
type Prompter interface {
	Budget(ctx context.Context, def string) (string, error)
	Month(ctx context.Context, def string) (string, error)
	Choice(ctx context.Context) (string, error)
	Amount(ctx context.Context) (string, error)
	Description(ctx context.Context) (string, error)
}

// LinePrompter reads one answer per line. It is used for pipes and for
// terminals where full-screen forms are unwanted.
type LinePrompter struct {
	r *bufio.Reader
	w io.Writer

	// pending carries the result of a read that outlived a cancelled ask.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewLinePrompter returns a prompter reading answers from r and writing
// questions to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), w: w}
}

// ask prints question and waits for one line. The read runs in its own
// goroutine so ctx cancellation returns ErrQuit without waiting for Enter.
func (p *LinePrompter) ask(ctx context.Context, question string) (string, error) {
	if ctx.Err() != nil {
		return "", ErrQuit
	}
	fmt.Fprint(p.w, question)

	if p.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := p.r.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		p.pending = ch
	}

	var res readResult
	select {
	case <-ctx.Done():
		return "", ErrQuit
	case res = <-p.pending:
		p.pending = nil
	}

	line, err := res.line, res.err
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrQuit
			}
		} else {
			return "", fmt.Errorf("reading answer: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func withDefault(question, def string) string {
	if def == "" {
		return question
	}
	return question + "[" + def + "] "
}

// Budget implements Prompter.
func (p *LinePrompter) Budget(ctx context.Context, def string) (string, error) {
	return p.ask(ctx, cli.Prompt(withDefault("Please enter your budget for this month: $", def)))
}

// Month implements Prompter.
func (p *LinePrompter) Month(ctx context.Context, def string) (string, error) {
	return p.ask(ctx, cli.Prompt(withDefault("Enter the month you are tracking: ", def)))
}

// Choice prints the numbered menu and reads the selection.
func (p *LinePrompter) Choice(ctx context.Context) (string, error) {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(cli.Warn("What would you like to do?"))
	b.WriteString("\n")
	for i, a := range input.Actions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, a)
	}
	b.WriteString("\n")
	fmt.Fprint(p.w, b.String())

	return p.ask(ctx, cli.Prompt(fmt.Sprintf("Enter your choice (1-%d): ", len(input.Actions))))
}

// Amount implements Prompter.
func (p *LinePrompter) Amount(ctx context.Context) (string, error) {
	return p.ask(ctx, "Enter the transaction amount: $")
}

// Description implements Prompter.
func (p *LinePrompter) Description(ctx context.Context) (string, error) {
	return p.ask(ctx, "Enter the transaction description: ")
}
