package terminal

import (
	"errors"

	"github.com/fatih/color"
)

// ErrNoTerminal is returned by Allocate when no terminal can be attached.
var ErrNoTerminal = errors.New("terminal: no terminal available")

// Stream identifies one of the two conventional output streams.
type Stream uint8

const (
	// Stdout is standard output.
	Stdout Stream = iota
	// Stderr is standard error.
	Stderr
)

// String returns the string representation of the stream
func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// Attribute is a display attribute applied to subsequently written text.
type Attribute = color.Attribute

// NeutralAttribute is reported for streams whose attribute cannot be
// queried (output redirected to a file or pipe).
var NeutralAttribute = Foreground(true, true, true, false)

// Foreground returns the foreground colour attribute for the given
// channel flags. The result is one of the color.Fg* attributes, or the
// color.FgHi* variant when bright is set.
func Foreground(r, g, b, bright bool) Attribute {
	v := color.FgBlack
	if r {
		v++
	}
	if g {
		v += 2
	}
	if b {
		v += 4
	}
	if bright {
		v += color.FgHiBlack - color.FgBlack
	}
	return v
}

// Terminal is the capability set the logger needs from a console.
//
// Implementations are not required to be safe for concurrent use; the
// logger serializes every call under its own lock.
type Terminal interface {
	// WriteRaw writes p to the stream and does not return until the
	// bytes have been handed to the operating system.
	WriteRaw(s Stream, p []byte) error

	// SetAttribute applies attr to text subsequently written to s.
	// It is a no-op on streams without colour support.
	SetAttribute(s Stream, attr Attribute) error

	// DefaultAttribute reports the attribute the stream is currently
	// using. ok is false when the stream does not support attributes,
	// in which case NeutralAttribute is returned.
	DefaultAttribute(s Stream) (attr Attribute, ok bool)

	// Allocate attaches a fresh terminal and redirects both streams to
	// it. It returns an error wrapping ErrNoTerminal when the host has
	// none to offer.
	Allocate() error
}
