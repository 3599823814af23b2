// Package ui provides themed terminal output for the binding generator:
// a lipgloss color theme, headless-mode detection, a spinner with an
// interactive and a plain implementation, and message printers.
package ui

import "github.com/charmbracelet/lipgloss"

// ThemeColors holds the color palette as lipgloss-compatible hex strings.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme bundles the palette with derived lipgloss styles.
// When NoColor is set, styles render as plain text.
type Theme struct {
	Colors  ThemeColors
	NoColor bool

	title    lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	errStyle lipgloss.Style
	muted    lipgloss.Style
}

// NewTheme creates the default theme.
func NewTheme(noColor bool) *Theme {
	t := &Theme{
		Colors: ThemeColors{
			Primary:   "#7C3AED",
			Secondary: "#06B6D4",
			Success:   "#22C55E",
			Warning:   "#EAB308",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
		NoColor: noColor,
	}
	if !noColor {
		t.title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Colors.Primary))
		t.success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success))
		t.warning = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
		t.errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Error))
		t.muted = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Muted))
	}
	return t
}

// Title renders s in the title style.
func (t *Theme) Title(s string) string { return t.title.Render(s) }

// Success renders s in the success style.
func (t *Theme) Success(s string) string { return t.success.Render(s) }

// Warning renders s in the warning style.
func (t *Theme) Warning(s string) string { return t.warning.Render(s) }

// Error renders s in the error style.
func (t *Theme) Error(s string) string { return t.errStyle.Render(s) }

// Muted renders s in the muted style.
func (t *Theme) Muted(s string) string { return t.muted.Render(s) }
