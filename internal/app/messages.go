package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// copyDoneMsg reports the outcome of a clipboard write.
type copyDoneMsg struct {
	label string
	err   error
}

// StoreChangedMsg tells the app the palette store was written by someone
// else and the catalog should be reloaded.
type StoreChangedMsg struct{}

// clearClipboardMsg hides the clipboard label after a short delay.
type clearClipboardMsg struct{ seq int }

const clipboardLabelTTL = 2 * time.Second

func clearClipboardAfter(seq int) tea.Cmd {
	return tea.Tick(clipboardLabelTTL, func(time.Time) tea.Msg {
		return clearClipboardMsg{seq: seq}
	})
}
