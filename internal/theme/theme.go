package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the TUI chrome.
// Panels hold a *Theme pointer so in-place mutations (e.g. after the active
// palette changes) are visible on the next View() call.
type Theme struct {
	Bg       lipgloss.Color
	Accent   lipgloss.Color
	Subtle   lipgloss.Color
	Text     lipgloss.Color
	Dim      lipgloss.Color
	Border   lipgloss.Color
	StatusBg lipgloss.Color
	StatusFg lipgloss.Color
	Error    lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Light    lipgloss.Color // mode badge
	Dark     lipgloss.Color // mode badge
}

// DefaultTheme returns the default chrome colors (catppuccin-inspired).
func DefaultTheme() Theme {
	return Theme{
		Bg:       lipgloss.Color("#1e1e2e"),
		Accent:   lipgloss.Color("#cba6f7"),
		Subtle:   lipgloss.Color("#6c7086"),
		Text:     lipgloss.Color("#cdd6f4"),
		Dim:      lipgloss.Color("#585b70"),
		Border:   lipgloss.Color("#45475a"),
		StatusBg: lipgloss.Color("#313244"),
		StatusFg: lipgloss.Color("#cdd6f4"),
		Error:    lipgloss.Color("#f38ba8"),
		Success:  lipgloss.Color("#a6e3a1"),
		Warning:  lipgloss.Color("#f9e2af"),
		Light:    lipgloss.Color("#f9e2af"),
		Dark:     lipgloss.Color("#89b4fa"),
	}
}
