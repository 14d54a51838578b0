package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetbuddy/internal/cli"
	"github.com/theirongolddev/budgetbuddy/internal/input"
	"github.com/theirongolddev/budgetbuddy/internal/ledger"
	"github.com/theirongolddev/budgetbuddy/internal/report"
)

var (
	flagTx   []string
	flagSave bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a budget in one shot, without prompts",
	Example: `  budgetbuddy report --budget 500 --month January --tx 600:Rent
  budgetbuddy report -b 200 --tx 50:Groceries --tx=-20:Refund --save`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringArrayVarP(&flagTx, "tx", "t", nil, "Transaction as amount:description (repeatable)")
	reportCmd.Flags().BoolVarP(&flagSave, "save", "s", false, "Also save the summary to the output file")
	rootCmd.AddCommand(reportCmd)
}

var errNoBudget = errors.New("a budget is required: pass --budget or set budget.monthly in the config")

// buildLedger records each amount:description pair in order.
func buildLedger(rawBudget, month string, txs []string) (*ledger.Ledger, error) {
	budget, err := input.ParseBudget(rawBudget)
	if err != nil {
		return nil, fmt.Errorf("--budget: %w", err)
	}

	l := ledger.New(ledger.NewPeriod(budget, month))
	for i, raw := range txs {
		amount, desc, err := input.ParseTransaction(raw)
		if err != nil {
			return nil, fmt.Errorf("--tx #%d: %w", i+1, err)
		}
		l.Record(amount, desc)
	}
	return l, nil
}

func runReport(cmd *cobra.Command, _ []string) error {
	rawBudget := flagBudget
	if rawBudget == "" {
		if cfg.Budget.Monthly == nil {
			return errNoBudget
		}
		rawBudget = cfg.Budget.Monthly.String()
	}

	month := flagMonth
	if month == "" {
		month = time.Now().Month().String()
	}

	l, err := buildLedger(rawBudget, month, flagTx)
	if err != nil {
		return err
	}
	slog.Debug("report built", "month", month, "transactions", l.Len())

	out := cmd.OutOrStdout()
	summary := l.Summarize()
	fmt.Fprintln(out, cli.RenderTitle("BudgetBuddy · "+month))
	fmt.Fprint(out, cli.RenderSummary(summary, l.IsOverBudget()))

	if !flagSave {
		return nil
	}

	path := outputPath()
	if err := report.Save(path, summary); err != nil {
		slog.Error("summary save failed", "path", path, "err", err)
		return fmt.Errorf("saving summary: %w", err)
	}
	slog.Info("summary saved", "path", path, "lines", len(summary))
	if !flagQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n  %s\n", cli.Success("Summary saved to "+path))
	}
	return nil
}
