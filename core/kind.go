package core

import (
	"github.com/philipp01105/conlog/terminal"
)

// Kind identifies one of the logging operations
type Kind uint8

const (
	// PrintKind writes the message to stdout without a prefix
	PrintKind Kind = iota
	// SuccessKind writes "[+] " in bright green to stdout
	SuccessKind
	// InfoKind writes "[*] " in bright cyan to stdout
	InfoKind
	// ErrorKind writes "[-] " in bright red to stderr
	ErrorKind
)

type kindSpec struct {
	name   string
	stream terminal.Stream
	prefix string
	color  terminal.Attribute
}

var kinds = [...]kindSpec{
	PrintKind:   {"PRINT", terminal.Stdout, "", 0},
	SuccessKind: {"SUCCESS", terminal.Stdout, "[+] ", terminal.Foreground(false, true, false, true)},
	InfoKind:    {"INFO", terminal.Stdout, "[*] ", terminal.Foreground(false, true, true, true)},
	ErrorKind:   {"ERROR", terminal.Stderr, "[-] ", terminal.Foreground(true, false, false, true)},
}

// Kinds lists every kind in declaration order.
var Kinds = []Kind{PrintKind, SuccessKind, InfoKind, ErrorKind}

// String returns the string representation of the kind
func (k Kind) String() string {
	if int(k) < len(kinds) {
		return kinds[k].name
	}
	return "UNKNOWN"
}

// Stream returns the stream the kind writes to.
func (k Kind) Stream() terminal.Stream {
	if int(k) < len(kinds) {
		return kinds[k].stream
	}
	return terminal.Stdout
}

// Prefix returns the prefix literal, or "" for kinds without one.
func (k Kind) Prefix() string {
	if int(k) < len(kinds) {
		return kinds[k].prefix
	}
	return ""
}

// PrefixColor returns the attribute the prefix is written in. It is
// meaningless when Prefix is empty.
func (k Kind) PrefixColor() terminal.Attribute {
	if int(k) < len(kinds) {
		return kinds[k].color
	}
	return 0
}
