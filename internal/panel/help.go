package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/colorcraft/internal/theme"
)

// HelpEntry represents a single key binding for display.
type HelpEntry struct {
	Key   string
	Label string
}

// Help renders a popup listing the available bindings in two columns.
type Help struct {
	entries []HelpEntry
	title   string
	width   int
	visible bool
	theme   *theme.Theme
}

func NewHelp(title string, entries []HelpEntry) Help {
	return Help{title: title, entries: entries}
}

// SetTheme sets the color theme for the popup.
func (h *Help) SetTheme(th *theme.Theme) { h.theme = th }

func (h *Help) SetWidth(width int) {
	h.width = width
}

func (h *Help) Toggle() {
	h.visible = !h.visible
}

func (h *Help) Hide() {
	h.visible = false
}

func (h Help) Visible() bool {
	return h.visible
}

func (h Help) View() string {
	if !h.visible || len(h.entries) == 0 {
		return ""
	}

	th := h.theme
	width := h.width
	if width == 0 {
		width = 60
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Accent).
		Padding(0, 1).
		Width(width - 4)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(th.Accent)

	keyStyle := lipgloss.NewStyle().
		Foreground(th.Success).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(th.Text)

	lines := []string{titleStyle.Render(h.title)}

	// Render entries in columns
	colWidth := (width - 4) / 2
	if colWidth < 20 {
		colWidth = width - 4
	}

	for i := 0; i < len(h.entries); i += 2 {
		left := fmt.Sprintf("%s %s",
			keyStyle.Render(fmt.Sprintf("%-7s", h.entries[i].Key)),
			labelStyle.Render(h.entries[i].Label),
		)

		if i+1 < len(h.entries) && colWidth < width-4 {
			right := fmt.Sprintf("%s %s",
				keyStyle.Render(fmt.Sprintf("%-7s", h.entries[i+1].Key)),
				labelStyle.Render(h.entries[i+1].Label),
			)
			leftPad := colWidth - lipgloss.Width(left)
			if leftPad < 1 {
				leftPad = 1
			}
			lines = append(lines, left+strings.Repeat(" ", leftPad)+right)
		} else {
			lines = append(lines, left)
		}
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}
