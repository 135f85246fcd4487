package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/colorcraft/internal/theme"
)

// Status is the status bar at the bottom.
type Status struct {
	width     int
	dark      bool
	viewing   string
	message   string
	clipboard string
	errMsg    string
	persisted bool
	theme     *theme.Theme
}

func NewStatus() Status {
	return Status{}
}

// SetTheme sets the color theme for the status bar.
func (s *Status) SetTheme(th *theme.Theme) { s.theme = th }

func (s *Status) SetDarkMode(dark bool) {
	s.dark = dark
}

func (s *Status) SetViewing(name string) {
	s.viewing = name
}

// SetPersisted records whether custom palettes reach durable storage.
func (s *Status) SetPersisted(ok bool) {
	s.persisted = ok
}

func (s *Status) SetWidth(width int) {
	s.width = width
}

func (s *Status) SetClipboard(label string) {
	s.clipboard = label
}

func (s *Status) SetMessage(msg string) {
	s.message = msg
	s.errMsg = ""
}

func (s *Status) SetError(msg string) {
	s.errMsg = msg
}

func (s *Status) ClearError() {
	s.errMsg = ""
}

// ModeLabel is the header text for the current mode.
func (s Status) ModeLabel() string {
	if s.dark {
		return "Mode: Dark"
	}
	return "Mode: Light"
}

func (s Status) View() string {
	if s.width == 0 {
		return ""
	}

	th := s.theme
	bgStyle := lipgloss.NewStyle().Background(th.StatusBg)

	modeColor := th.Light
	if s.dark {
		modeColor = th.Dark
	}
	modeStyle := lipgloss.NewStyle().
		Background(modeColor).
		Foreground(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 1)

	textStyle := lipgloss.NewStyle().
		Background(th.StatusBg).
		Foreground(th.StatusFg).
		Padding(0, 1)

	mode := modeStyle.Render(strings.ToUpper(strings.TrimPrefix(s.ModeLabel(), "Mode: ")))

	var middle string
	switch {
	case s.errMsg != "":
		middle = textStyle.Foreground(th.Error).Render(s.errMsg)
	case s.message != "":
		middle = textStyle.Render(s.message)
	default:
		middle = textStyle.Render(fmt.Sprintf("Currently viewing: %s", s.viewing))
	}

	left := fmt.Sprintf("%s %s", mode, middle)

	var rightParts []string
	if s.clipboard != "" {
		rightParts = append(rightParts, textStyle.Foreground(th.Success).Render(s.clipboard))
	}
	if !s.persisted {
		rightParts = append(rightParts, textStyle.Foreground(th.Warning).Render("not saving"))
	}
	rightParts = append(rightParts, textStyle.Foreground(th.Dim).Render("? help"))
	right := strings.Join(rightParts, "")

	padLen := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padLen < 0 {
		padLen = 0
	}
	padding := bgStyle.Render(strings.Repeat(" ", padLen))

	return left + padding + right
}
