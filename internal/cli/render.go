package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/budgetbuddy/internal/ledger"
	"github.com/theirongolddev/budgetbuddy/internal/tui/theme"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Success renders a confirmation message.
func Success(msg string) string { return fg(theme.Active.Success).Render(msg) }

// Error renders a user-facing error message.
func Error(msg string) string { return fg(theme.Active.Danger).Render(msg) }

// Warn renders a highlighted notice such as the balance readout.
func Warn(msg string) string { return fg(theme.Active.Menu).Render(msg) }

// Prompt renders a question or greeting.
func Prompt(msg string) string { return fg(theme.Active.Prompt).Render(msg) }

// Muted renders secondary text.
func Muted(msg string) string { return fg(theme.Active.TextMuted).Render(msg) }

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	t := theme.Active
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.TextPrimary)

	return border.Render(titleStyle.Render(title))
}

// RenderSummary renders summary lines for the terminal. Body lines are left
// untouched; only the status line is colored, green within budget and red
// when over.
func RenderSummary(s ledger.Summary, over bool) string {
	var b strings.Builder
	for _, line := range s.Body() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	status := s.Status()
	if status == "" {
		return b.String()
	}
	if over {
		b.WriteString(Error(status))
	} else {
		b.WriteString(Success(status))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	th := theme.Active
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(th.Accent)
	valueStyle := fg(th.TextPrimary)
	dimStyle := fg(th.TextDim)

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var tableLines []string
	rule := func(left, mid, right string) {
		line := dimStyle.Render(left)
		for i, w := range widths {
			line += dimStyle.Render(strings.Repeat("─", w+2))
			if i < numCols-1 {
				line += dimStyle.Render(mid)
			}
		}
		line += dimStyle.Render(right)
		tableLines = append(tableLines, line)
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	// Header row
	if len(t.Headers) > 0 {
		line := dimStyle.Render("│")
		for i, h := range t.Headers {
			line += headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h))
			if i < numCols-1 {
				line += dimStyle.Render("│")
			}
		}
		line += dimStyle.Render("│")
		tableLines = append(tableLines, line)

		rule("├", "┼", "┤")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		line := dimStyle.Render("│")
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}

			// Right-align value columns (all except first)
			var padded string
			if i == 0 {
				padded = " " + cell + strings.Repeat(" ", pad) + " "
			} else {
				padded = " " + strings.Repeat(" ", pad) + cell + " "
			}
			line += valueStyle.Render(padded)
			if i < numCols-1 {
				line += dimStyle.Render("│")
			}
		}
		line += dimStyle.Render("│")
		tableLines = append(tableLines, line)
	}

	rule("╰", "┴", "╯")

	for _, line := range tableLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
