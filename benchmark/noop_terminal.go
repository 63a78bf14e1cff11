// Package benchmark measures conlog against itself and against other
// Go logging libraries writing to equivalent discarding sinks.
package benchmark

import (
	"github.com/fatih/color"

	"github.com/philipp01105/conlog/terminal"
)

// noopTerminal accepts and discards everything. It reports colour
// support so the prefix colour path is measured too.
type noopTerminal struct {
	colored bool
}

func newNoopTerminal(colored bool) terminal.Terminal {
	return &noopTerminal{colored: colored}
}

func (t *noopTerminal) WriteRaw(terminal.Stream, []byte) error {
	return nil
}

func (t *noopTerminal) SetAttribute(terminal.Stream, terminal.Attribute) error {
	return nil
}

func (t *noopTerminal) DefaultAttribute(terminal.Stream) (terminal.Attribute, bool) {
	if !t.colored {
		return terminal.NeutralAttribute, false
	}
	return color.Reset, true
}

func (t *noopTerminal) Allocate() error {
	return nil
}
