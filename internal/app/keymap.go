package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pfassina/colorcraft/internal/panel"
)

// Binding represents a top-level key binding.
type Binding struct {
	Key    string
	Label  string
	Action func(a *App) tea.Cmd
}

func newBindings() []Binding {
	return []Binding{
		{Key: "d", Label: "Toggle dark mode", Action: func(a *App) tea.Cmd {
			a.ToggleDarkMode()
			return nil
		}},
		{Key: "n", Label: "New palette", Action: func(a *App) tea.Cmd {
			a.CreatePalette()
			return nil
		}},
		{Key: "e", Label: "Edit palette", Action: func(a *App) tea.Cmd {
			a.EditPalette()
			return nil
		}},
		{Key: "x", Label: "Delete palette", Action: func(a *App) tea.Cmd {
			a.RequestDelete()
			return nil
		}},
		{Key: "v", Label: "Toggle colors", Action: func(a *App) tea.Cmd {
			a.ToggleDetails()
			return nil
		}},
		{Key: "tab", Label: "Switch panel", Action: func(a *App) tea.Cmd {
			a.cycleFocus()
			return nil
		}},
		{Key: "?", Label: "Toggle help", Action: func(a *App) tea.Cmd {
			a.help.Toggle()
			return nil
		}},
		{Key: "q", Label: "Quit", Action: func(a *App) tea.Cmd {
			a.Close()
			return tea.Quit
		}},
	}
}

// panelHelp lists the keys handled by the focused panels themselves.
var panelHelp = []panel.HelpEntry{
	{Key: "/", Label: "Search palettes"},
	{Key: "j/k", Label: "Move"},
	{Key: "h/l", Label: "Previous / next page"},
	{Key: "enter", Label: "Select palette"},
	{Key: "c", Label: "Copy color"},
	{Key: "y", Label: "Copy CSS"},
	{Key: "s", Label: "Colors / CSS"},
}

func (a *App) initBindings() {
	a.bindings = make(map[string]Binding)
	var entries []panel.HelpEntry
	for _, b := range newBindings() {
		a.bindings[b.Key] = b
		entries = append(entries, panel.HelpEntry{Key: b.Key, Label: b.Label})
	}
	entries = append(entries, panelHelp...)
	a.help = panel.NewHelp("Keys", entries)
}

// handleBinding runs the binding for key, if any.
func (a *App) handleBinding(key string) (consumed bool, cmd tea.Cmd) {
	b, ok := a.bindings[key]
	if !ok {
		return false, nil
	}
	return true, b.Action(a)
}
