package logger

import (
	"errors"
	"sync"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/handler"
	"github.com/philipp01105/conlog/terminal"
)

// ErrConsoleUnavailable is returned when a console is forced and none
// can be attached.
var ErrConsoleUnavailable = handler.ErrConsoleUnavailable

// ErrAlreadyInitialized is returned by Configure once the process-wide
// logger exists.
var ErrAlreadyInitialized = errors.New("logger: instance already initialized")

// Options configures the process-wide logger. Zero values select the
// process's stdout and stderr, no timestamps and the system clock.
type Options struct {
	Terminal     terminal.Terminal
	Timestamps   bool
	ForceConsole bool
	Clock        core.Clock
}

var (
	defaultMu   sync.Mutex
	defaultOpts Options
	initialized bool
	instance    = sync.OnceValues(newDefault)
)

func newDefault() (*Logger, error) {
	defaultMu.Lock()
	initialized = true
	opts := defaultOpts
	defaultMu.Unlock()

	return NewBuilder().
		WithTerminal(opts.Terminal).
		WithTimestamps(opts.Timestamps).
		WithForceConsole(opts.ForceConsole).
		WithClock(opts.Clock).
		Build()
}

// Configure sets the options the process-wide logger is built with.
// It must be called before the first Instance call.
func Configure(opts Options) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if initialized {
		return ErrAlreadyInitialized
	}
	defaultOpts = opts
	return nil
}

// Instance returns the process-wide logger, building it on first use.
// Every call returns the same logger, or the same error if building it
// failed.
func Instance() (*Logger, error) {
	return instance()
}

// Default returns the process-wide logger. It panics if the logger
// could not be built.
func Default() *Logger {
	l, err := Instance()
	if err != nil {
		panic(err)
	}
	return l
}

// Package-level convenience functions using the default logger

// Print writes a message to stdout using the default logger
func Print(format string, args ...interface{}) error {
	return Default().Print(format, args...)
}

// Success writes a "[+] " message using the default logger
func Success(format string, args ...interface{}) error {
	return Default().Success(format, args...)
}

// Info writes a "[*] " message using the default logger
func Info(format string, args ...interface{}) error {
	return Default().Info(format, args...)
}

// Error writes a "[-] " message to stderr using the default logger
func Error(format string, args ...interface{}) error {
	return Default().Error(format, args...)
}
