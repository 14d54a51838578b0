// Package theme defines the color themes for budgetbuddy's terminal output.
package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color roles used for prompts, messages and summaries.
type Theme struct {
	Name        string
	Border      lipgloss.Color // Table and title borders
	TextDim     lipgloss.Color // Lowest contrast text (hints)
	TextMuted   lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary lipgloss.Color // Primary content text
	Accent      lipgloss.Color // Headers, table titles
	Prompt      lipgloss.Color // Questions asked of the user
	Menu        lipgloss.Color // Menu heading and balance readout
	Success     lipgloss.Color // Within budget, saved, added
	Danger      lipgloss.Color // Over budget, errors

	form func() *huh.Theme
}

// Huh returns the form theme matching this palette.
func (t Theme) Huh() *huh.Theme {
	if t.form == nil {
		return huh.ThemeBase()
	}
	return t.form()
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Border:      lipgloss.Color("#403E3C"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Prompt:      lipgloss.Color("#4385BE"),
	Menu:        lipgloss.Color("#D0A215"),
	Success:     lipgloss.Color("#879A39"),
	Danger:      lipgloss.Color("#D14D41"),
	form:        huh.ThemeCharm,
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:        "catppuccin-mocha",
	Border:      lipgloss.Color("#585B70"),
	TextDim:     lipgloss.Color("#6C7086"),
	TextMuted:   lipgloss.Color("#A6ADC8"),
	TextPrimary: lipgloss.Color("#CDD6F4"),
	Accent:      lipgloss.Color("#89B4FA"),
	Prompt:      lipgloss.Color("#89B4FA"),
	Menu:        lipgloss.Color("#F9E2AF"),
	Success:     lipgloss.Color("#A6E3A1"),
	Danger:      lipgloss.Color("#F38BA8"),
	form:        huh.ThemeCatppuccin,
}

// TokyoNight is a cool blue/purple theme inspired by Tokyo city lights.
var TokyoNight = Theme{
	Name:        "tokyo-night",
	Border:      lipgloss.Color("#565F89"),
	TextDim:     lipgloss.Color("#565F89"),
	TextMuted:   lipgloss.Color("#A9B1D6"),
	TextPrimary: lipgloss.Color("#C0CAF5"),
	Accent:      lipgloss.Color("#7AA2F7"),
	Prompt:      lipgloss.Color("#7AA2F7"),
	Menu:        lipgloss.Color("#E0AF68"),
	Success:     lipgloss.Color("#9ECE6A"),
	Danger:      lipgloss.Color("#F7768E"),
	form:        huh.ThemeDracula,
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:        "terminal",
	Border:      lipgloss.Color("8"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Prompt:      lipgloss.Color("12"),
	Menu:        lipgloss.Color("11"),
	Success:     lipgloss.Color("10"),
	Danger:      lipgloss.Color("9"),
	form:        huh.ThemeBase16,
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names returns the names of all themes in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}
