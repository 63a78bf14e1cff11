// Package terminal abstracts the console surface the logger writes to.
//
// A Terminal exposes exactly the capabilities the logger needs: raw
// writes to one of two streams, setting a display attribute, reporting
// the attribute a stream started with, and attaching a terminal when
// the process has none.
//
// Console is the real implementation backed by os.Stdout and os.Stderr.
// Colour is emitted as ANSI SGR sequences (translated to console API
// calls on Windows by go-colorable) and only on streams that are
// attached to a terminal. Memory is an in-memory implementation used by
// tests and benchmarks; it records every byte and every attribute
// change so callers can assert on ordering and colour state.
//
// Display attributes are fatih/color attributes. Foreground builds one
// from red, green and blue channel flags plus a brightness flag:
//
//	terminal.Foreground(false, true, false, true) // color.FgHiGreen
package terminal
