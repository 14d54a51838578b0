package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetbuddy/internal/config"
	"github.com/theirongolddev/budgetbuddy/internal/input"
	"github.com/theirongolddev/budgetbuddy/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues holds the wizard answers as entered.
type setupValues struct {
	budget string
	output string
	theme  string
	plain  bool
}

func newSetupValues(c config.Config) setupValues {
	v := setupValues{
		output: c.General.OutputFile,
		theme:  theme.ByName(c.Appearance.Theme).Name,
		plain:  c.General.PlainPrompts,
	}
	if c.Budget.Monthly != nil {
		v.budget = c.Budget.Monthly.StringFixed(2)
	}
	return v
}

// apply copies the answers onto c. An empty budget clears the default.
func (v setupValues) apply(c *config.Config) error {
	if strings.TrimSpace(v.budget) == "" {
		c.Budget.Monthly = nil
	} else {
		b, err := input.ParseBudget(v.budget)
		if err != nil {
			return err
		}
		c.Budget.Monthly = &b
	}

	c.General.OutputFile = strings.TrimSpace(v.output)
	c.General.PlainPrompts = v.plain
	c.Appearance.Theme = v.theme
	return nil
}

func newSetupForm(v *setupValues) *huh.Form {
	themes := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themes[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to BudgetBuddy!").
				Description("Let's set up a few defaults."),
			huh.NewInput().
				Title("Default monthly budget").
				Description("Offered when a session starts. Leave blank for none.").
				Prompt("$ ").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := input.ParseBudget(s)
					return err
				}).
				Value(&v.budget),
			huh.NewInput().
				Title("Summary file").
				Placeholder("output.txt").
				Value(&v.output),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&v.theme),
			huh.NewConfirm().
				Title("Use plain line prompts?").
				Description("Useful for screen readers and dumb terminals.").
				Value(&v.plain),
		),
	).WithTheme(theme.Active.Huh())
}

func runSetup(cmd *cobra.Command, _ []string) error {
	c, _ := config.Load()
	vals := newSetupValues(c)

	form := newSetupForm(&vals).WithAccessible(!isTerminal(os.Stdin))
	if err := form.RunWithContext(cmd.Context()); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("running setup: %w", err)
	}

	if err := vals.apply(&c); err != nil {
		return fmt.Errorf("applying setup: %w", err)
	}
	if err := config.Save(c); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	theme.SetActive(c.Appearance.Theme)

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	if c.Budget.Monthly != nil {
		fmt.Printf("  Default budget: $%s\n", c.Budget.Monthly.StringFixed(2))
	}
	fmt.Println("  Run `budgetbuddy setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
