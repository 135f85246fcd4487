package panel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/colorcraft/internal/theme"
)

// ConfirmResultMsg is sent when the confirm dialog closes.
type ConfirmResultMsg struct {
	Action string
	OK     bool
}

// Confirm is a centered overlay yes/no dialog.
type Confirm struct {
	action  string
	title   string
	body    string
	width   int
	height  int
	visible bool
	theme   *theme.Theme
}

func NewConfirm() Confirm {
	return Confirm{}
}

// SetTheme sets the color theme for the dialog.
func (c *Confirm) SetTheme(th *theme.Theme) { c.theme = th }

// Show opens the dialog; action is echoed back in ConfirmResultMsg.
func (c *Confirm) Show(action, title, body string) {
	c.visible = true
	c.action = action
	c.title = title
	c.body = body
}

func (c *Confirm) Hide() {
	c.visible = false
}

func (c Confirm) Visible() bool {
	return c.visible
}

func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	if !c.visible {
		return c, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	action := c.action
	switch key.String() {
	case "y", "Y", "enter":
		c.visible = false
		return c, func() tea.Msg { return ConfirmResultMsg{Action: action, OK: true} }
	case "n", "N", "esc", "ctrl+c", "q":
		c.visible = false
		return c, func() tea.Msg { return ConfirmResultMsg{Action: action, OK: false} }
	}
	return c, nil
}

func (c Confirm) View() string {
	if !c.visible {
		return ""
	}

	th := c.theme
	width := c.width
	if width == 0 {
		width = 60
	}
	innerWidth := width/2 - 6
	if innerWidth < 30 {
		innerWidth = 30
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Error).
		Padding(0, 1).
		Width(innerWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(th.Error)

	dimStyle := lipgloss.NewStyle().
		Foreground(th.Dim)

	var lines []string
	lines = append(lines, titleStyle.Render(c.title))
	if c.body != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(th.Text).Render(c.body))
	}
	lines = append(lines, "")
	lines = append(lines, dimStyle.Render("y to confirm, n or Esc to cancel"))

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func (c *Confirm) SetSize(width, height int) {
	c.width = width
	c.height = height
}
