package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pfassina/colorcraft/internal/catalog"
	"github.com/pfassina/colorcraft/internal/palette"
	"github.com/pfassina/colorcraft/internal/theme"
	"github.com/pfassina/colorcraft/internal/ui"
)

// SelectorSelectMsg is sent when a palette is picked from the list.
type SelectorSelectMsg struct {
	ID string
}

// BrowseFunc returns one page of palettes matching query.
type BrowseFunc func(query string, page, perPage int) catalog.Page

// SelectedFunc reports whether p is the current selection.
type SelectedFunc func(p palette.Palette) bool

// Selector is the searchable, paginated palette list.
type Selector struct {
	input     textinput.Model
	pager     paginator.Model
	browse    BrowseFunc
	selected  SelectedFunc
	query     string
	result    catalog.Page
	cursor    int
	searching bool
	width     int
	height    int
	focused   bool
	theme     *theme.Theme
}

// SetTheme sets the color theme for the selector panel.
func (s *Selector) SetTheme(th *theme.Theme) { s.theme = th }

func NewSelector(perPage int) Selector {
	if perPage <= 0 {
		perPage = catalog.DefaultPerPage
	}

	ti := textinput.New()
	ti.Placeholder = "Search palettes..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 24

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.PerPage = perPage
	pg.ActiveDot = "●"
	pg.InactiveDot = "○"

	return Selector{input: ti, pager: pg}
}

func (s *Selector) SetBrowseFunc(fn BrowseFunc) { s.browse = fn }

func (s *Selector) SetSelectedFunc(fn SelectedFunc) { s.selected = fn }

// Refresh re-runs the current query against the catalog.
func (s *Selector) Refresh() {
	if s.browse == nil {
		return
	}
	s.result = s.browse(s.query, s.pager.Page, s.pager.PerPage)
	s.pager.TotalPages = max(s.result.Pages, 1)
	s.pager.Page = s.result.Page
	if s.cursor >= len(s.result.Items) {
		s.cursor = len(s.result.Items) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// Query returns the active search text.
func (s Selector) Query() string { return s.query }

// Searching reports whether the search input has focus.
func (s Selector) Searching() bool { return s.searching }

// Current returns the palette under the cursor.
func (s Selector) Current() (palette.Palette, bool) {
	if s.cursor < len(s.result.Items) {
		return s.result.Items[s.cursor], true
	}
	return palette.Palette{}, false
}

// Result returns the page on screen.
func (s Selector) Result() catalog.Page { return s.result }

func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.focused {
		return s, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if s.searching {
		if ok {
			switch key.String() {
			case "esc", "enter":
				s.searching = false
				s.input.Blur()
				return s, nil
			}
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if v := s.input.Value(); v != s.query {
			s.query = v
			s.pager.Page = 0
			s.cursor = 0
			s.Refresh()
		}
		return s, cmd
	}

	if !ok {
		return s, nil
	}

	switch key.String() {
	case "/":
		s.searching = true
		return s, s.input.Focus()

	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}

	case "down", "j":
		if s.cursor < len(s.result.Items)-1 {
			s.cursor++
		}

	case "left", "h", "pgup":
		if !s.pager.OnFirstPage() {
			s.pager.PrevPage()
			s.cursor = 0
			s.Refresh()
		}

	case "right", "l", "pgdown":
		if !s.pager.OnLastPage() {
			s.pager.NextPage()
			s.cursor = 0
			s.Refresh()
		}

	case "enter", " ":
		if p, ok := s.Current(); ok {
			id := p.ID
			return s, func() tea.Msg { return SelectorSelectMsg{ID: id} }
		}
	}

	return s, nil
}

func (s Selector) View() string {
	if s.width == 0 || s.height == 0 {
		return ""
	}

	th := s.theme
	inner := s.width - 2

	titleColor := th.Dim
	if s.focused {
		titleColor = th.Accent
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(titleColor).Padding(0, 1)
	dim := lipgloss.NewStyle().Foreground(th.Dim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Palettes"))
	b.WriteByte('\n')

	if s.searching || s.query != "" {
		b.WriteString(" " + s.input.View())
		b.WriteByte('\n')
	}

	if len(s.result.Items) == 0 {
		b.WriteString(dim.Render(" No palettes match"))
		b.WriteByte('\n')
	}

	for i, p := range s.result.Items {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(th.Text)
		if s.selected != nil && s.selected(p) {
			marker = "● "
			style = style.Bold(true)
		}
		if i == s.cursor && s.focused {
			style = style.Foreground(th.Accent)
			if marker == "  " {
				marker = "> "
			}
		}

		name := p.Name
		if p.HasDark() {
			name += " ◐"
		}
		if p.IsCustom() {
			name += dim.Render(" *")
		}

		line := fmt.Sprintf("%s%s %s", marker, ui.Chip(p.Colors.Primary), style.Render(name))
		b.WriteString(" " + ansi.Truncate(line, inner, "…"))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if s.result.Pages > 1 {
		b.WriteString(" " + s.pager.View() + "\n")
	}
	b.WriteString(dim.Render(fmt.Sprintf(" showing %d of %d", len(s.result.Items), s.result.Total)))

	return b.String()
}

func (s *Selector) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.Width = width - 6
}

func (s *Selector) SetFocused(focused bool) {
	s.focused = focused
	if !focused {
		s.searching = false
		s.input.Blur()
	}
}
