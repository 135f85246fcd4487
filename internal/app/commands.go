package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pfassina/colorcraft/internal/catalog"
	"github.com/pfassina/colorcraft/internal/studio"
)

// copyText writes text to the clipboard off the update loop.
func (a *App) copyText(label, text string) tea.Cmd {
	clip := a.clip
	return func() tea.Msg {
		if clip == nil {
			return copyDoneMsg{label: label, err: errors.New("no clipboard")}
		}
		return copyDoneMsg{label: label, err: clip.WriteText(text)}
	}
}

// CreatePalette opens the editor form on a fresh draft.
func (a *App) CreatePalette() {
	a.form.Open(a.studio.CreatePalette())
	a.status.ClearError()
}

// EditPalette opens the editor form on the selected palette.
func (a *App) EditPalette() {
	sess := a.studio.EditPalette()
	a.form.Open(sess)
	if !a.studio.ActiveOwner().IsCustom() {
		a.status.SetMessage("Builtin palettes are copied before editing")
	}
}

// RequestDelete asks for confirmation before deleting the selection.
func (a *App) RequestDelete() {
	if !a.studio.CanDelete() {
		a.status.SetError("Builtin palettes cannot be deleted")
		return
	}
	owner := a.studio.ActiveOwner()
	body := ""
	if owner.HasDark() {
		body = "Its dark variant is deleted too."
	}
	a.confirm.Show("delete", fmt.Sprintf("Delete %q?", owner.Name), body)
}

// ToggleDarkMode flips between light and dark.
func (a *App) ToggleDarkMode() {
	a.studio.ToggleDarkMode(!a.studio.State().DarkMode)
	a.sync()
}

func (a *App) saveForm() {
	p, err := a.studio.CommitEditor()
	switch {
	case errors.Is(err, studio.ErrBuiltin):
		a.form.SetError("That id belongs to a builtin palette")
		return
	case errors.Is(err, studio.ErrIDTaken):
		a.form.SetError("That id is already used by another palette")
		return
	case err != nil:
		a.form.SetError(err.Error())
		return
	}
	a.form.Hide()
	a.sync()
	a.status.SetMessage(fmt.Sprintf("Saved %s", p.Name))
}

func (a *App) cancelForm() {
	a.studio.CancelEditor()
	a.form.Hide()
}

func (a *App) deleteSelected() {
	name := a.studio.ActiveOwner().Name
	if err := a.studio.DeletePalette(); err != nil {
		switch {
		case errors.Is(err, catalog.ErrLastRecord):
			a.status.SetError("Cannot delete the last palette")
		case errors.Is(err, studio.ErrBuiltin):
			a.status.SetError("Builtin palettes cannot be deleted")
		default:
			a.status.SetError(err.Error())
		}
		return
	}
	a.sync()
	a.status.SetMessage(fmt.Sprintf("Deleted %s", name))
}
