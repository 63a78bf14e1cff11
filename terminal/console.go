package terminal

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Console is the Terminal backed by the process's standard streams.
type Console struct {
	streams [2]consoleStream
}

type consoleStream struct {
	file  *os.File
	w     io.Writer
	color bool
}

// NewConsole returns a Console writing to os.Stdout and os.Stderr.
func NewConsole() *Console {
	return newConsole(os.Stdout, os.Stderr)
}

func newConsole(out, errOut *os.File) *Console {
	c := &Console{}
	c.attach(Stdout, out)
	c.attach(Stderr, errOut)
	return c
}

// attach binds f to stream s. A nil file is kept as is: attribute calls
// on it are skipped and writes fail the way (*os.File).Write does.
func (c *Console) attach(s Stream, f *os.File) {
	st := &c.streams[s]
	st.file = f
	st.w = nil
	st.color = false
	if f == nil {
		return
	}
	st.w = colorable.NewColorable(f)
	st.color = supportsColor(f)
}

// supportsColor reports whether f is a terminal that should receive
// colour sequences.
func supportsColor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WriteRaw writes p to the stream. Writes to *os.File are unbuffered,
// so the bytes reach the OS before WriteRaw returns.
func (c *Console) WriteRaw(s Stream, p []byte) error {
	st := &c.streams[s]
	if st.w == nil {
		_, err := st.file.Write(p)
		return err
	}
	_, err := st.w.Write(p)
	return err
}

// SetAttribute emits the SGR sequence for attr on colour-capable streams.
func (c *Console) SetAttribute(s Stream, attr Attribute) error {
	st := &c.streams[s]
	if !st.color {
		return nil
	}
	ew := &errWriter{w: st.w}
	seq := color.New(attr)
	// Stream capability is decided per stream above, not by the
	// package-wide color.NoColor which only looks at stdout.
	seq.EnableColor()
	seq.SetWriter(ew)
	return ew.err
}

// DefaultAttribute reports color.Reset for terminals, which restores
// whatever the user's terminal is configured to show.
func (c *Console) DefaultAttribute(s Stream) (Attribute, bool) {
	if !c.streams[s].color {
		return NeutralAttribute, false
	}
	return color.Reset, true
}

// Allocate attaches the process to a terminal and points both streams,
// and os.Stdout/os.Stderr, at it.
func (c *Console) Allocate() error {
	f, err := openTerminal()
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	c.attach(Stdout, f)
	c.attach(Stderr, f)
	return nil
}

// errWriter records the first write error; color.SetWriter discards it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
