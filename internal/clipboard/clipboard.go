// Package clipboard copies text for the user. Locally it uses the system
// clipboard; over SSH it emits an OSC 52 sequence the client terminal
// applies.
package clipboard

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Writer copies text to some clipboard.
type Writer interface {
	WriteText(text string) error
}

// System writes to the local system clipboard.
type System struct{}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("system clipboard unsupported")
	}
	return clipboard.WriteAll(text)
}

// OSC52 writes an OSC 52 escape sequence to Out, typically an SSH session.
type OSC52 struct {
	Out io.Writer
}

func (o OSC52) WriteText(text string) error {
	if o.Out == nil {
		return fmt.Errorf("no terminal to write to")
	}
	_, err := osc52.New(text).WriteTo(o.Out)
	return err
}

// Func adapts a plain function to Writer.
type Func func(text string) error

func (f Func) WriteText(text string) error { return f(text) }
