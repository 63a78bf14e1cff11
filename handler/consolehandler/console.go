package consolehandler

import (
	"fmt"
	"sync"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/handler"
	"github.com/philipp01105/conlog/terminal"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Terminal to write to (default: terminal.NewConsole())
	Terminal terminal.Terminal
	// Timestamps prefixes every line with "[HH:MM:SS.mmm] " (default: false)
	Timestamps bool
	// ForceConsole requires a freshly attached terminal; construction
	// fails with handler.ErrConsoleUnavailable if none is available
	ForceConsole bool
	// Clock supplies timestamps (default: core.SystemClock)
	Clock core.Clock
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Terminal == nil {
		cfg.Terminal = terminal.NewConsole()
	}
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock
	}
}

// ConsoleHandler writes records to a terminal. Every record is written
// under a single lock shared by both streams, so lines from concurrent
// callers never interleave, not even across stdout and stderr.
type ConsoleHandler struct {
	term       terminal.Terminal
	timestamps bool
	clock      core.Clock
	// default attribute per stream, captured once at construction
	defaults [2]terminal.Attribute
	colored  [2]bool
	stats    *handler.Stats
	mu       sync.Mutex // serializes every write sequence
	scratch  []byte     // guarded by mu
}

// NewConsoleHandler creates a new console handler. With ForceConsole set
// it attaches a terminal first and returns an error wrapping
// handler.ErrConsoleUnavailable when that fails.
func NewConsoleHandler(cfg ConsoleConfig) (*ConsoleHandler, error) {
	applyConsoleDefaults(&cfg)

	if cfg.ForceConsole {
		if err := cfg.Terminal.Allocate(); err != nil {
			return nil, fmt.Errorf("%w: %w", handler.ErrConsoleUnavailable, err)
		}
	}

	h := &ConsoleHandler{
		term:       cfg.Terminal,
		timestamps: cfg.Timestamps,
		clock:      cfg.Clock,
		stats:      handler.NewStats(),
		scratch:    make([]byte, 0, 256),
	}
	for _, s := range []terminal.Stream{terminal.Stdout, terminal.Stderr} {
		h.defaults[s], h.colored[s] = cfg.Terminal.DefaultAttribute(s)
	}
	return h, nil
}

// HandleLog formats and writes a log call. A template that does not
// match its arguments is rejected before anything is written.
func (h *ConsoleHandler) HandleLog(kind core.Kind, format string, args []interface{}) error {
	msg, err := formatter.Sprintf(format, args...)
	if err != nil {
		h.stats.IncrementRejected()
		return err
	}
	r := core.GetRecord(kind, msg)
	err = h.Handle(r)
	core.PutRecord(r)
	return err
}

// Handle writes a record: optional timestamp, optional coloured prefix,
// then the message and a newline. A record for a stream other than
// stdout or stderr is rejected with handler.ErrUnknownStream.
func (h *ConsoleHandler) Handle(r *core.Record) error {
	if int(r.Stream) >= len(h.defaults) {
		h.stats.IncrementRejected()
		return fmt.Errorf("%w: %v", handler.ErrUnknownStream, r.Stream)
	}

	h.mu.Lock()
	err := h.write(r)
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementWritten(r.Kind)
	return nil
}

// write must be called with mu held.
func (h *ConsoleHandler) write(r *core.Record) error {
	s := r.Stream

	if h.timestamps {
		r.Time = h.clock()
		h.scratch = formatter.AppendTimestamp(h.scratch[:0], r.Time)
		if err := h.term.WriteRaw(s, h.scratch); err != nil {
			return err
		}
	}

	if r.Prefix != "" {
		if err := h.writePrefix(s, r.Prefix, r.PrefixColor); err != nil {
			return err
		}
	}

	h.scratch = append(h.scratch[:0], r.Message...)
	if r.Newline {
		h.scratch = append(h.scratch, '\n')
	}
	return h.term.WriteRaw(s, h.scratch)
}

// writePrefix writes prefix in attr and restores the stream's default
// attribute, even when the prefix write fails.
func (h *ConsoleHandler) writePrefix(s terminal.Stream, prefix string, attr terminal.Attribute) error {
	h.scratch = append(h.scratch[:0], prefix...)
	if !h.colored[s] {
		return h.term.WriteRaw(s, h.scratch)
	}
	if err := h.term.SetAttribute(s, attr); err != nil {
		return err
	}
	werr := h.term.WriteRaw(s, h.scratch)
	rerr := h.term.SetAttribute(s, h.defaults[s])
	if werr != nil {
		return werr
	}
	return rerr
}

// DefaultAttribute returns the attribute captured for s at construction.
func (h *ConsoleHandler) DefaultAttribute(s terminal.Stream) terminal.Attribute {
	return h.defaults[s]
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op. The underlying streams belong to the process and
// stay open.
func (h *ConsoleHandler) Close() error {
	return nil
}
