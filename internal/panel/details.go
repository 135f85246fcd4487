package panel

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pfassina/colorcraft/internal/palette"
	"github.com/pfassina/colorcraft/internal/theme"
	"github.com/pfassina/colorcraft/internal/ui"
)

// CopyRequestMsg asks the app to put Text on the clipboard.
type CopyRequestMsg struct {
	Label string
	Text  string
}

// Details lists the active palette's colors and its CSS export.
type Details struct {
	palette palette.Palette
	cursor  int
	showCSS bool
	width   int
	height  int
	focused bool
	theme   *theme.Theme
}

func NewDetails() Details {
	return Details{}
}

// SetTheme sets the color theme for the details panel.
func (d *Details) SetTheme(th *theme.Theme) { d.theme = th }

func (d *Details) SetPalette(p palette.Palette) {
	d.palette = p
}

// Role returns the role under the cursor.
func (d Details) Role() palette.Role {
	return palette.Roles[d.cursor]
}

func (d Details) Update(msg tea.Msg) (Details, tea.Cmd) {
	if !d.focused {
		return d, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch key.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(palette.Roles)-1 {
			d.cursor++
		}
	case "enter", "c":
		role := d.Role()
		value := d.palette.Colors.Get(role)
		return d, func() tea.Msg {
			return CopyRequestMsg{Label: string(role), Text: value}
		}
	case "y":
		css := d.palette.CSS()
		return d, func() tea.Msg {
			return CopyRequestMsg{Label: "CSS", Text: css}
		}
	case "s":
		d.showCSS = !d.showCSS
	}
	return d, nil
}

func (d Details) View() string {
	if d.width == 0 || d.height == 0 {
		return ""
	}

	th := d.theme
	titleColor := th.Dim
	if d.focused {
		titleColor = th.Accent
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(titleColor).Padding(0, 1)
	dim := lipgloss.NewStyle().Foreground(th.Dim)

	var b strings.Builder
	title := "Colors"
	if d.showCSS {
		title = "CSS"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')

	inner := d.width - 2
	if d.showCSS {
		for _, line := range strings.Split(strings.TrimRight(d.palette.CSS(), "\n"), "\n") {
			b.WriteString(" " + ansi.Truncate(line, inner, "…") + "\n")
		}
		return b.String()
	}

	swatchWidth := 14
	for i, role := range palette.Roles {
		value := d.palette.Colors.Get(role)
		prefix := "  "
		if i == d.cursor && d.focused {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s %s", prefix, ui.Swatch(value, string(role), swatchWidth), dim.Render(value))
		b.WriteString(ansi.Truncate(line, inner, "…"))
		b.WriteByte('\n')
	}

	return b.String()
}

func (d *Details) SetSize(width, height int) {
	d.width = width
	d.height = height
}

func (d *Details) SetFocused(focused bool) {
	d.focused = focused
}
