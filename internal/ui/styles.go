package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	darkText  = "#111111"
	lightText = "#FAFAFA"
)

// ValidHex reports whether s parses as a hex color.
func ValidHex(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

// ReadableOn returns a text color that stays legible on bg. Invalid
// backgrounds get light text.
func ReadableOn(bg string) lipgloss.Color {
	c, err := colorful.Hex(bg)
	if err != nil {
		return lipgloss.Color(lightText)
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return lipgloss.Color(darkText)
	}
	return lipgloss.Color(lightText)
}

// Swatch renders label on a block of the given color. Values that are not
// colors render as a hatched placeholder so bad input stays visible.
func Swatch(hex, label string, width int) string {
	style := lipgloss.NewStyle().Width(width).Padding(0, 1)
	if !ValidHex(hex) {
		return style.
			Foreground(lipgloss.Color(lightText)).
			Background(lipgloss.Color("240")).
			Render(label + " ?")
	}
	return style.
		Foreground(ReadableOn(hex)).
		Background(lipgloss.Color(hex)).
		Render(label)
}

// Chip renders a short solid block of color, for inline use in lists.
func Chip(hex string) string {
	if !ValidHex(hex) {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("··")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
