package logger

import (
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/handler"
	"github.com/philipp01105/conlog/handler/consolehandler"
	"github.com/philipp01105/conlog/terminal"
)

// Console is the narrow interface components depend on to log. *Logger
// implements it; tests can substitute their own.
type Console interface {
	Print(format string, args ...interface{}) error
	Success(format string, args ...interface{}) error
	Info(format string, args ...interface{}) error
	Error(format string, args ...interface{}) error
}

var _ Console = (*Logger)(nil)

// Logger is the console logger (immutable)
type Logger struct {
	handler     handler.Handler
	fastHandler handler.FastHandler
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler      handler.Handler
	term         terminal.Terminal
	timestamps   bool
	forceConsole bool
	clock        core.Clock
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHandler sets the handler. When set, the terminal, timestamp,
// force-console and clock settings are ignored.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithTerminal sets the terminal the console handler writes to
func (b *Builder) WithTerminal(t terminal.Terminal) *Builder {
	b.term = t
	return b
}

// WithTimestamps enables the "[HH:MM:SS.mmm] " line prefix
func (b *Builder) WithTimestamps(enabled bool) *Builder {
	b.timestamps = enabled
	return b
}

// WithForceConsole requires a freshly attached terminal
func (b *Builder) WithForceConsole(enabled bool) *Builder {
	b.forceConsole = enabled
	return b
}

// WithClock sets the timestamp source
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// Build creates the Logger instance. It fails only when a console is
// forced and none can be attached; the error then wraps
// ErrConsoleUnavailable.
func (b *Builder) Build() (*Logger, error) {
	h := b.handler
	if h == nil {
		ch, err := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Terminal:     b.term,
			Timestamps:   b.timestamps,
			ForceConsole: b.forceConsole,
			Clock:        b.clock,
		})
		if err != nil {
			return nil, err
		}
		h = ch
	}

	l := &Logger{handler: h}
	// Cache FastHandler for pool-free hot path
	l.fastHandler, _ = h.(handler.FastHandler)
	return l, nil
}

// log formats the call and hands it to the handler
func (l *Logger) log(kind core.Kind, format string, args []interface{}) error {
	if l.handler == nil {
		return nil
	}

	if l.fastHandler != nil {
		return l.fastHandler.HandleLog(kind, format, args)
	}

	msg, err := formatter.Sprintf(format, args...)
	if err != nil {
		return err
	}
	r := core.GetRecord(kind, msg)
	err = l.handler.Handle(r)
	core.PutRecord(r)
	return err
}

// Print writes a message to stdout without a prefix
func (l *Logger) Print(format string, args ...interface{}) error {
	return l.log(core.PrintKind, format, args)
}

// Success writes a "[+] " message to stdout
func (l *Logger) Success(format string, args ...interface{}) error {
	return l.log(core.SuccessKind, format, args)
}

// Info writes a "[*] " message to stdout
func (l *Logger) Info(format string, args ...interface{}) error {
	return l.log(core.InfoKind, format, args)
}

// Error writes a "[-] " message to stderr
func (l *Logger) Error(format string, args ...interface{}) error {
	return l.log(core.ErrorKind, format, args)
}

// Stats returns the handler's statistics, if it keeps any
func (l *Logger) Stats() (handler.Snapshot, bool) {
	sp, ok := l.handler.(handler.StatsProvider)
	if !ok {
		return handler.Snapshot{}, false
	}
	return sp.Stats(), true
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
