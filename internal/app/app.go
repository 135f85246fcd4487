package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/pfassina/colorcraft/internal/clipboard"
	"github.com/pfassina/colorcraft/internal/config"
	"github.com/pfassina/colorcraft/internal/panel"
	"github.com/pfassina/colorcraft/internal/studio"
	"github.com/pfassina/colorcraft/internal/theme"
)

type focusedPanel int

const (
	focusSelector focusedPanel = iota
	focusDetails
)

const (
	selectorWidth = 34
	detailsWidth  = 40
)

type App struct {
	cfg      config.Config
	studio   *studio.Studio
	clip     clipboard.Writer
	logger   zerolog.Logger
	selector panel.Selector
	preview  panel.Preview
	details  panel.Details
	status   panel.Status
	help     panel.Help
	form     panel.Form
	confirm  panel.Confirm
	theme    theme.Theme
	width    int
	height   int
	focused  focusedPanel

	showDetails bool
	bindings    map[string]Binding

	// clipSeq invalidates stale clear timers when copies happen back to back.
	clipSeq int
}

// New builds the TUI around st. clip may be nil, in which case copy actions
// report an error in the status bar.
func New(cfg config.Config, st *studio.Studio, clip clipboard.Writer, persisted bool, logger zerolog.Logger) App {
	a := App{
		cfg:         cfg,
		studio:      st,
		clip:        clip,
		logger:      logger,
		selector:    panel.NewSelector(cfg.PerPage),
		preview:     panel.NewPreview(),
		details:     panel.NewDetails(),
		status:      panel.NewStatus(),
		form:        panel.NewForm(),
		confirm:     panel.NewConfirm(),
		theme:       theme.DefaultTheme(),
		focused:     focusSelector,
		showDetails: true,
	}
	a.initBindings()
	a.status.SetPersisted(persisted)
	return a
}

func (a *App) Init() tea.Cmd {
	// Panels hold *Theme; a must be at its final address before this point.
	a.selector.SetTheme(&a.theme)
	a.details.SetTheme(&a.theme)
	a.status.SetTheme(&a.theme)
	a.help.SetTheme(&a.theme)
	a.form.SetTheme(&a.theme)
	a.confirm.SetTheme(&a.theme)

	a.selector.SetBrowseFunc(a.studio.Browse)
	a.selector.SetSelectedFunc(a.studio.IsSelected)
	a.setFocus(focusSelector)
	a.sync()

	a.logger.Info().Str("active", a.studio.State().SelectedID).Msg("session started")
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.Close()
			return a, tea.Quit
		}

		// Overlays take priority when visible
		if a.confirm.Visible() {
			var cmd tea.Cmd
			a.confirm, cmd = a.confirm.Update(msg)
			return a, cmd
		}
		if a.form.Visible() {
			var cmd tea.Cmd
			a.form, cmd = a.form.Update(msg)
			return a, cmd
		}
		if a.help.Visible() {
			a.help.Hide()
			return a, nil
		}

		// Typing into the search box must not trigger bindings
		if a.focused == focusSelector && a.selector.Searching() {
			break
		}

		if msg.String() == "esc" && a.focused == focusDetails {
			a.setFocus(focusSelector)
			return a, nil
		}

		if consumed, cmd := a.handleBinding(msg.String()); consumed {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		// Some terminals send transient 0x0 sizes during live resizes; ignore them.
		if msg.Width <= 0 || msg.Height <= 0 {
			return a, nil
		}
		a.width = msg.Width
		a.height = msg.Height
		a.form.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)

		minW, minH := a.minWindowSize()
		if a.width < minW || a.height < minH {
			return a, tea.ClearScreen
		}
		a.updateLayout()
		return a, tea.ClearScreen

	case panel.SelectorSelectMsg:
		a.studio.SelectPalette(msg.ID)
		a.status.SetMessage("")
		a.sync()
		return a, nil

	case panel.CopyRequestMsg:
		return a, a.copyText(msg.Label, msg.Text)

	case copyDoneMsg:
		if msg.err != nil {
			a.logger.Warn().Err(msg.err).Str("what", msg.label).Msg("clipboard write failed")
			a.status.SetError(fmt.Sprintf("Copy failed: %v", msg.err))
			return a, nil
		}
		a.clipSeq++
		a.status.SetClipboard(fmt.Sprintf("copied %s", msg.label))
		return a, clearClipboardAfter(a.clipSeq)

	case clearClipboardMsg:
		if msg.seq == a.clipSeq {
			a.status.SetClipboard("")
		}
		return a, nil

	case StoreChangedMsg:
		if err := a.studio.Reload(); err != nil {
			a.logger.Warn().Err(err).Msg("reload after store change failed")
			return a, nil
		}
		a.sync()
		a.status.SetMessage("Palettes reloaded")
		return a, nil

	case panel.FormSaveMsg:
		a.saveForm()
		return a, nil

	case panel.FormCancelMsg:
		a.cancelForm()
		return a, nil

	case panel.ConfirmResultMsg:
		if msg.Action == "delete" && msg.OK {
			a.deleteSelected()
		}
		return a, nil
	}

	// Route key events based on focus
	var cmd tea.Cmd
	switch a.focused {
	case focusDetails:
		a.details, cmd = a.details.Update(msg)
	default:
		a.selector, cmd = a.selector.Update(msg)
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	minW, minH := a.minWindowSize()
	if a.width < minW || a.height < minH {
		msg := fmt.Sprintf("Window too small (%dx%d)\nMinimum supported: %dx%d", a.width, a.height, minW, minH)
		style := lipgloss.NewStyle().
			Foreground(a.theme.Text).
			Padding(1, 2)
		box := style.Render(msg)

		base := strings.Repeat("\n", max(a.height, 1))
		return overlayCenter(base, box, a.width, a.height)
	}

	layout := ComputeLayout(a.width, a.height, a.showDetails, selectorWidth, detailsWidth)

	var columns []string

	sw := max(layout.SelectorWidth-1, 0)
	columns = append(columns, lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, false, false).
		BorderForeground(a.theme.Border).
		Width(sw).
		Height(layout.Height).
		Render(a.selector.View()))

	columns = append(columns, lipgloss.NewStyle().
		Width(layout.PreviewWidth).
		Height(layout.Height).
		MaxHeight(layout.Height).
		Render(a.preview.View()))

	if a.showDetails {
		dw := max(layout.DetailsWidth-1, 0)
		columns = append(columns, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, false, false, true).
			BorderForeground(a.theme.Border).
			Width(dw).
			Height(layout.Height).
			Render(a.details.View()))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	result := a.header() + "\n" + main + "\n" + a.status.View()

	for _, overlay := range []string{a.help.View(), a.form.View(), a.confirm.View()} {
		if overlay != "" {
			result = overlayCenter(result, overlay, a.width, a.height)
		}
	}

	return result
}

// Close logs the end of the session. Persistence is synchronous, so there is
// nothing to flush.
func (a *App) Close() {
	a.logger.Info().Msg("session closed")
}

// sync pushes the studio's active palette into every panel.
func (a *App) sync() {
	active := a.studio.Active()
	a.theme = theme.FromPalette(active, theme.DefaultTheme())

	a.preview.SetPalette(active)
	a.details.SetPalette(active)
	a.status.SetViewing(active.Name)
	a.status.SetDarkMode(a.studio.State().DarkMode)
	a.selector.Refresh()
}

func (a *App) header() string {
	st := a.studio.State()
	active := a.studio.Active()

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.theme.Accent).
		Padding(0, 1).
		Render("colorcraft")
	viewing := lipgloss.NewStyle().
		Foreground(a.theme.Text).
		Render("Currently viewing: " + active.Name)

	mode := "Mode: Light"
	modeColor := a.theme.Light
	if st.DarkMode {
		mode = "Mode: Dark"
		modeColor = a.theme.Dark
	}
	badge := lipgloss.NewStyle().Foreground(modeColor).Bold(true).Padding(0, 1).Render(mode)

	left := title + " " + viewing
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(badge)
	if gap < 1 {
		return ansi.Truncate(left+" "+badge, a.width, "…")
	}
	return left + strings.Repeat(" ", gap) + badge
}

func (a *App) minWindowSize() (minW, minH int) {
	return 80, 24
}

func (a *App) updateLayout() {
	layout := ComputeLayout(a.width, a.height, a.showDetails, selectorWidth, detailsWidth)

	a.selector.SetSize(layout.SelectorWidth, layout.Height)
	a.preview.SetSize(layout.PreviewWidth, layout.Height)
	a.details.SetSize(layout.DetailsWidth, layout.Height)
	a.status.SetWidth(a.width)
	a.help.SetWidth(a.width / 2)
}

func (a *App) setFocus(target focusedPanel) {
	a.selector.SetFocused(target == focusSelector)
	a.details.SetFocused(target == focusDetails)
	a.focused = target
}

func (a *App) cycleFocus() {
	if a.focused == focusSelector && a.showDetails {
		a.setFocus(focusDetails)
		return
	}
	a.setFocus(focusSelector)
}

// ToggleDetails shows or hides the colors panel.
func (a *App) ToggleDetails() {
	a.showDetails = !a.showDetails
	if !a.showDetails && a.focused == focusDetails {
		a.setFocus(focusSelector)
	}
	a.updateLayout()
}

func overlayCenter(base, overlay string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		w := lipgloss.Width(line)
		if w > overlayWidth {
			overlayWidth = w
		}
	}

	startRow := (height - len(overlayLines)) / 2
	startCol := (width - overlayWidth) / 2
	if startRow < 0 {
		startRow = 0
	}
	if startCol < 0 {
		startCol = 0
	}

	padToCol := func(s string, col int) string {
		// Pad with spaces based on *visible* width (handles ANSI strings safely).
		for lipgloss.Width(s) < col {
			s += " "
		}
		return s
	}

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(baseLines) {
			break
		}

		baseLine := padToCol(baseLines[row], startCol)

		// Keep the left part of the base line, replace the middle with overlay,
		// and keep the right tail of the base line.
		left := ansi.Cut(baseLine, 0, startCol)
		right := ansi.Cut(baseLine, startCol+overlayWidth, width)

		line := left + overlayLine + right
		baseLines[row] = ansi.Truncate(line, width, "")
	}

	return strings.Join(baseLines, "\n")
}
