// Package cmd implements the budgetbuddy CLI commands.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetbuddy/internal/cli"
	"github.com/theirongolddev/budgetbuddy/internal/config"
	"github.com/theirongolddev/budgetbuddy/internal/tui/theme"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}

	status := "using defaults (no config file)"
	if config.Exists() {
		status = "loaded"
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(configTable(c, status)))
	fmt.Println()
	fmt.Println("  Run `budgetbuddy setup` to reconfigure.")
	return nil
}

func configTable(c config.Config, status string) cli.Table {
	return cli.Table{
		Title:   config.ConfigPath(),
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Status", status},
			{"---"},
			{"Default budget", configuredBudget(c)},
			{"Output file", config.OutputPath(c)},
			{"Plain prompts", strconv.FormatBool(c.General.PlainPrompts)},
			{"---"},
			{"Theme", theme.ByName(config.ThemeName(c)).Name},
			{"No color", strconv.FormatBool(c.Appearance.NoColor)},
			{"Log level", config.LogLevel(c).String()},
		},
	}
}

// configuredBudget returns the default budget from config for display.
func configuredBudget(c config.Config) string {
	if c.Budget.Monthly == nil {
		return "not set"
	}
	return cli.FormatMoney(*c.Budget.Monthly)
}
