package handler

import (
	"errors"

	"github.com/philipp01105/conlog/core"
)

// ErrConsoleUnavailable is returned when a handler is configured to
// require a terminal and none could be attached. A logger in that mode
// has nowhere to write; callers are expected to stop.
var ErrConsoleUnavailable = errors.New("console unavailable")

// ErrUnknownStream is returned for a record addressed to a stream the
// terminal does not have.
var ErrUnknownStream = errors.New("unknown stream")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle writes a formatted record
	Handle(r *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// FastHandler is an optional interface that handlers can implement
// to format and write a log call without the caller preparing a Record.
type FastHandler interface {
	HandleLog(kind core.Kind, format string, args []interface{}) error
}

// StatsProvider is implemented by handlers that track statistics.
type StatsProvider interface {
	Stats() Snapshot
}
