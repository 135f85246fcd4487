package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pfassina/colorcraft/internal/palette"
)

// FromPalette maps the active palette's roles onto the chrome.
// Roles holding something that is not a hex color keep the base value.
func FromPalette(p palette.Palette, base Theme) Theme {
	t := base
	c := p.Colors

	set(&t.Bg, c.Background)
	set(&t.Text, c.Foreground)
	set(&t.Accent, c.Primary)
	set(&t.Subtle, c.Muted)
	set(&t.Dim, c.Muted)
	set(&t.Border, c.Border)
	set(&t.StatusBg, c.Surface)
	set(&t.StatusFg, c.Foreground)
	set(&t.Error, c.Error)
	set(&t.Success, c.Success)
	set(&t.Warning, c.Warning)
	set(&t.Light, c.Warm)
	set(&t.Dark, c.Cool)

	return t
}

func set(dst *lipgloss.Color, hex string) {
	if _, err := colorful.Hex(hex); err == nil {
		*dst = lipgloss.Color(hex)
	}
}
