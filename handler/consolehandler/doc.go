// Package consolehandler provides the handler that writes log records
// to a terminal.Terminal (default: the process's stdout and stderr).
//
// A write is one critical section: timestamp, prefix in its colour,
// restore of the stream's default attribute, message, newline. Both
// streams share the lock because they usually end up on the same
// terminal. The default attribute of each stream is captured once when
// the handler is built; if the terminal cannot report one (output
// redirected to a file or pipe) colour changes are skipped entirely and
// the text is written plain.
package consolehandler
