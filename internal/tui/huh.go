package tui

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/budgetbuddy/internal/input"
	"github.com/theirongolddev/budgetbuddy/internal/tui/theme"
)

// HuhPrompter asks each question with a small huh form.
type HuhPrompter struct {
	in   io.Reader
	out  io.Writer
	keys *huh.KeyMap
}

// NewHuhPrompter returns a form-based prompter on the given terminal streams.
func NewHuhPrompter(in io.Reader, out io.Writer) *HuhPrompter {
	keys := huh.NewDefaultKeyMap()
	keys.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "back"),
	)
	return &HuhPrompter{in: in, out: out, keys: keys}
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(theme.Active.Huh()).
		WithKeyMap(p.keys).
		WithShowHelp(false).
		WithProgramOptions(tea.WithInput(p.in), tea.WithOutput(p.out))

	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
		return ErrQuit
	}
	return err
}

// amountValidator rejects text the shell would not be able to parse. An empty
// answer is allowed when a default will be substituted.
func amountValidator(allowEmpty bool) func(string) error {
	return func(s string) error {
		if allowEmpty && strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := input.ParseAmount(s); err != nil {
			return errors.New("please enter a number, e.g. 12.50")
		}
		return nil
	}
}

// Budget implements Prompter.
func (p *HuhPrompter) Budget(ctx context.Context, def string) (string, error) {
	var v string
	field := huh.NewInput().
		Title("Please enter your budget for this month").
		Prompt("$ ").
		Placeholder(def).
		Validate(amountValidator(def != "")).
		Value(&v)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return v, nil
}

// Month implements Prompter.
func (p *HuhPrompter) Month(ctx context.Context, def string) (string, error) {
	var v string
	field := huh.NewInput().
		Title("Enter the month you are tracking").
		Placeholder(def).
		Value(&v)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return v, nil
}

// Choice implements Prompter. The answer is the menu number as text so the
// shell parses it the same way for every prompter.
func (p *HuhPrompter) Choice(ctx context.Context) (string, error) {
	opts := make([]huh.Option[string], len(input.Actions))
	for i, a := range input.Actions {
		n := strconv.Itoa(i + 1)
		opts[i] = huh.NewOption(a.String(), n)
	}

	var v string
	field := huh.NewSelect[string]().
		Title("What would you like to do?").
		Options(opts...).
		Value(&v)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return v, nil
}

// Amount implements Prompter.
func (p *HuhPrompter) Amount(ctx context.Context) (string, error) {
	var v string
	field := huh.NewInput().
		Title("Enter the transaction amount").
		Prompt("$ ").
		Validate(amountValidator(false)).
		Value(&v)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return v, nil
}

// Description implements Prompter.
func (p *HuhPrompter) Description(ctx context.Context) (string, error) {
	var v string
	field := huh.NewInput().
		Title("Enter the transaction description").
		Value(&v)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return v, nil
}
