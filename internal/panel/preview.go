package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/colorcraft/internal/palette"
	"github.com/pfassina/colorcraft/internal/ui"
)

// Preview renders a small mock interface painted with the active palette.
type Preview struct {
	palette palette.Palette
	width   int
	height  int
}

func NewPreview() Preview {
	return Preview{}
}

func (p *Preview) SetPalette(pal palette.Palette) {
	p.palette = pal
}

func (p *Preview) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// paint returns hex as a lipgloss color, or no color when hex is not one.
func paint(hex string) lipgloss.TerminalColor {
	if ui.ValidHex(hex) {
		return lipgloss.Color(hex)
	}
	return lipgloss.NoColor{}
}

func (p Preview) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	c := p.palette.Colors
	inner := p.width - 4
	if inner < 20 {
		inner = 20
	}

	base := lipgloss.NewStyle().
		Background(paint(c.Background)).
		Foreground(paint(c.Foreground))
	muted := base.Foreground(paint(c.Muted))

	title := base.Bold(true).Foreground(paint(c.Primary)).
		Width(inner).Align(lipgloss.Center).
		Render(p.palette.Name)
	desc := muted.Width(inner).Align(lipgloss.Center).
		Render(p.palette.Description)

	navItems := []string{"Home", "About", "Services", "Contact"}
	for i, item := range navItems {
		navItems[i] = lipgloss.NewStyle().
			Background(paint(c.Surface)).
			Foreground(paint(c.Muted)).
			Padding(0, 2).
			Render(item)
	}
	nav := lipgloss.NewStyle().
		Background(paint(c.Surface)).
		Border(lipgloss.NormalBorder()).
		BorderForeground(paint(c.Border)).
		BorderBackground(paint(c.Background)).
		Width(inner - 2).
		Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, navItems...))

	cardWidth := (inner - 6) / 2
	primary := p.card(cardWidth, "Primary Action",
		"This demonstrates how primary elements look with this color palette.",
		"Get Started", c.Primary)
	secondary := p.card(cardWidth, "Secondary Action",
		"This shows how accent colors work within the overall design system.",
		"Learn More", c.Accent)
	gap := base.Render("  ")
	cards := lipgloss.JoinHorizontal(lipgloss.Top, primary, gap, secondary)

	statuses := []struct {
		label, icon, hex string
	}{
		{"Success", "✓", c.Success},
		{"Warning", "⚠", c.Warning},
		{"Error", "✗", c.Error},
		{"Info", "i", c.Info},
	}
	badgeWidth := (inner - 6) / 4
	var badges []string
	for i, s := range statuses {
		if i > 0 {
			badges = append(badges, base.Render("  "))
		}
		badges = append(badges, lipgloss.NewStyle().
			Background(paint(c.Background)).
			Foreground(paint(s.hex)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(paint(s.hex)).
			BorderBackground(paint(c.Background)).
			Width(badgeWidth-2).
			Align(lipgloss.Center).
			Render(s.icon+" "+s.label))
	}
	status := lipgloss.JoinHorizontal(lipgloss.Top, badges...)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title, desc, "", nav, "", cards, "", status)

	return base.Padding(1, 2).Width(p.width).Render(body)
}

func (p Preview) card(width int, heading, text, button, buttonHex string) string {
	c := p.palette.Colors
	surface := lipgloss.NewStyle().
		Background(paint(c.Surface)).
		Foreground(paint(c.Foreground))

	btn := lipgloss.NewStyle().
		Background(paint(buttonHex)).
		Foreground(ui.ReadableOn(buttonHex)).
		Bold(true).
		Padding(0, 2).
		Render(button)

	lines := []string{
		surface.Bold(true).Render(heading),
		surface.Foreground(paint(c.Muted)).Width(width - 4).Render(text),
		"",
		btn,
	}

	return surface.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(paint(c.Border)).
		BorderBackground(paint(c.Background)).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}
