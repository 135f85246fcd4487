package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pfassina/colorcraft/internal/editor"
	"github.com/pfassina/colorcraft/internal/palette"
	"github.com/pfassina/colorcraft/internal/theme"
	"github.com/pfassina/colorcraft/internal/ui"
)

// FormSaveMsg is sent when the user asks to save the draft.
type FormSaveMsg struct{}

// FormCancelMsg is sent when the user abandons the draft.
type FormCancelMsg struct{}

type formRow struct {
	label  string
	path   string // empty for the dark toggle
	toggle bool
}

func formRows() []formRow {
	rows := []formRow{
		{label: "Name", path: editor.FieldName},
		{label: "ID", path: editor.FieldID},
		{label: "Description", path: editor.FieldDescription},
		{label: "Dark variant", toggle: true},
	}
	for _, r := range palette.Roles {
		rows = append(rows, formRow{label: string(r), path: editor.ColorField(r)})
	}
	return rows
}

// Form is the palette editor overlay bound to an editor session.
type Form struct {
	session *editor.Session
	rows    []formRow
	side    editor.Side
	cursor  int
	offset  int
	editing bool
	input   textinput.Model
	errMsg  string
	width   int
	height  int
	visible bool
	theme   *theme.Theme
}

func NewForm() Form {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 30
	ti.Prompt = ""

	return Form{input: ti, rows: formRows()}
}

// SetTheme sets the color theme for the form.
func (f *Form) SetTheme(th *theme.Theme) { f.theme = th }

// Open binds the form to s and shows it.
func (f *Form) Open(s *editor.Session) {
	f.session = s
	f.side = editor.Light
	f.cursor = 0
	f.offset = 0
	f.editing = false
	f.errMsg = ""
	f.visible = true
	f.input.Blur()
}

func (f *Form) Hide() {
	f.visible = false
	f.editing = false
	f.session = nil
	f.input.Blur()
}

func (f Form) Visible() bool {
	return f.visible
}

// Side returns which draft the form is editing.
func (f Form) Side() editor.Side {
	return f.side
}

// Editing reports whether a field's text input is active.
func (f Form) Editing() bool {
	return f.editing
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if !f.visible || f.session == nil {
		return f, nil
	}

	key, isKey := msg.(tea.KeyMsg)

	if f.editing {
		if isKey {
			switch key.String() {
			case "enter":
				row := f.rows[f.cursor]
				if err := f.session.SetField(f.side, row.path, f.input.Value()); err != nil {
					f.errMsg = err.Error()
				}
				f.editing = false
				f.input.Blur()
				return f, nil
			case "esc":
				f.editing = false
				f.input.Blur()
				return f, nil
			}
		}
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}

	if !isKey {
		return f, nil
	}

	switch key.String() {
	case "up", "k":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "j":
		if f.cursor < len(f.rows)-1 {
			f.cursor++
		}
	case "tab", "shift+tab":
		if f.side == editor.Light && f.session.DarkEnabled() {
			f.side = editor.Dark
		} else {
			f.side = editor.Light
		}
	case "enter", " ":
		row := f.rows[f.cursor]
		if row.toggle {
			on := !f.session.DarkEnabled()
			if err := f.session.SetDarkEnabled(on); err != nil {
				f.errMsg = err.Error()
			}
			if !on {
				f.side = editor.Light
			}
			return f, nil
		}
		value, _ := f.session.Get(f.side, row.path)
		f.input.SetValue(value)
		f.input.CursorEnd()
		f.editing = true
		f.errMsg = ""
		return f, f.input.Focus()
	case "ctrl+s":
		return f, func() tea.Msg { return FormSaveMsg{} }
	case "esc", "q":
		return f, func() tea.Msg { return FormCancelMsg{} }
	}

	f.scroll()
	return f, nil
}

// SetError shows msg under the fields, e.g. when saving was refused.
func (f *Form) SetError(msg string) {
	f.errMsg = msg
}

func (f *Form) scroll() {
	visible := f.visibleRows()
	if f.cursor < f.offset {
		f.offset = f.cursor
	}
	if f.cursor >= f.offset+visible {
		f.offset = f.cursor - visible + 1
	}
}

func (f Form) visibleRows() int {
	// title, tabs, blank, blank, hint, error, border
	n := f.height - 10
	if n < 5 {
		n = 5
	}
	return n
}

func (f Form) View() string {
	if !f.visible || f.session == nil {
		return ""
	}

	th := f.theme
	width := f.width
	if width == 0 {
		width = 60
	}
	innerWidth := width*2/3 - 4
	if innerWidth < 44 {
		innerWidth = 44
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Accent).
		Padding(0, 1).
		Width(innerWidth)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(th.Accent)
	dim := lipgloss.NewStyle().Foreground(th.Dim)
	text := lipgloss.NewStyle().Foreground(th.Text)
	active := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)

	title := "Create Palette"
	if f.session.Mode() == editor.ModeEdit {
		title = "Edit Palette"
	}

	lightTab, darkTab := active.Render("[Light]"), dim.Render(" Dark ")
	if f.side == editor.Dark {
		lightTab, darkTab = dim.Render(" Light "), active.Render("[Dark]")
	}
	if !f.session.DarkEnabled() {
		darkTab = dim.Render(" (dark off)")
	}

	lines := []string{
		titleStyle.Render(title),
		lightTab + " " + darkTab,
		"",
	}

	end := f.offset + f.visibleRows()
	if end > len(f.rows) {
		end = len(f.rows)
	}
	for i := f.offset; i < end; i++ {
		row := f.rows[i]
		prefix := "  "
		style := text
		if i == f.cursor {
			prefix = "> "
			style = active
		}

		label := style.Render(fmt.Sprintf("%-13s", row.label))
		var value string
		switch {
		case row.toggle:
			value = "[ ]"
			if f.session.DarkEnabled() {
				value = "[x]"
			}
		case i == f.cursor && f.editing:
			value = f.input.View()
		default:
			v, _ := f.session.Get(f.side, row.path)
			value = v
			if strings.HasPrefix(row.path, "colors.") {
				value = ui.Chip(v) + " " + v
			}
		}

		lines = append(lines, ansi.Truncate(prefix+label+" "+value, innerWidth-2, "…"))
	}

	lines = append(lines, "")
	if f.errMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(th.Error).Render(f.errMsg))
	}
	hint := "enter edit · tab light/dark · ctrl+s save · esc cancel"
	if f.editing {
		hint = "enter apply · esc discard"
	}
	lines = append(lines, dim.Render(hint))

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func (f *Form) SetSize(width, height int) {
	f.width = width
	f.height = height
}
