package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetbuddy/internal/cli"
	"github.com/theirongolddev/budgetbuddy/internal/config"
	"github.com/theirongolddev/budgetbuddy/internal/input"
	"github.com/theirongolddev/budgetbuddy/internal/tui"
	"github.com/theirongolddev/budgetbuddy/internal/tui/theme"
)

var (
	flagBudget  string
	flagMonth   string
	flagOutput  string
	flagPlain   bool
	flagTheme   string
	flagNoColor bool
	flagVerbose bool
	flagQuiet   bool
)

// cfg is loaded once per invocation before any command runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:               "budgetbuddy",
	Short:             "Personal monthly budget tracker",
	Long:              "Set a monthly budget, record transactions, check your balance and save a summary.",
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
	RunE:              runSession,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBudget, "budget", "b", "", "Monthly budget (skips the prompt)")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month label (skips the prompt)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Summary file (default from config, then output.txt)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme: "+strings.Join(theme.Names(), ", "))
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use line-by-line prompts instead of forms")
}

// initRuntime loads .env and config, then sets up logging, theme and color.
func initRuntime(_ *cobra.Command, _ []string) error {
	envErr := cli.LoadEnvFile()

	loaded, cfgErr := config.Load()
	cfg = loaded

	level := config.LogLevel(cfg)
	switch {
	case flagVerbose:
		level = slog.LevelDebug
	case flagQuiet:
		level = slog.LevelError
	}
	logger := cli.SetupLogger(os.Stderr, level)

	if envErr != nil {
		logger.Warn("could not read .env file", "err", envErr)
	}
	if cfgErr != nil {
		logger.Warn("config unreadable, using defaults", "path", config.ConfigPath(), "err", cfgErr)
	}

	themeName := config.ThemeName(cfg)
	if flagTheme != "" {
		themeName = flagTheme
	}
	theme.SetActive(themeName)

	if flagNoColor || cfg.Appearance.NoColor || cli.ColorDisabled() {
		cli.DisableColor()
	}
	return nil
}

func runSession(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	go func() {
		// Restore default handling so a second interrupt kills the process.
		<-ctx.Done()
		stop()
	}()

	opts := tui.Options{
		Prompter:     newPrompter(),
		Out:          os.Stdout,
		OutputPath:   outputPath(),
		Logger:       slog.Default(),
		Month:        flagMonth,
		DefaultMonth: time.Now().Month().String(),
	}
	if cfg.Budget.Monthly != nil {
		opts.DefaultBudget = cfg.Budget.Monthly.StringFixed(2)
	}
	if flagBudget != "" {
		b, err := input.ParseBudget(flagBudget)
		if err != nil {
			return fmt.Errorf("--budget: %w", err)
		}
		opts.Budget = &b
	}

	err := tui.NewShell(opts).Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newPrompter picks huh forms for interactive terminals and plain line
// prompts for pipes or when asked to.
func newPrompter() tui.Prompter {
	if flagPlain || cfg.General.PlainPrompts || !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return tui.NewLinePrompter(os.Stdin, os.Stdout)
	}
	return tui.NewHuhPrompter(os.Stdin, os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// outputPath resolves the summary file: flag, then env/config.
func outputPath() string {
	if flagOutput != "" {
		return flagOutput
	}
	return config.OutputPath(cfg)
}
