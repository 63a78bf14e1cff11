// Package handler provides the Handler interface that log calls are
// dispatched to, and the Stats type handlers use to count what they do.
//
// Handlers are synchronous: Handle returns once the record has been
// written and flushed. There is no queue and no background goroutine.
//
// The console implementation lives in handler/consolehandler. It also
// implements FastHandler, which lets the logger pass the raw template
// and arguments through so formatting, validation and the write share
// one pooled Record.
//
// Handlers that implement StatsProvider report how many records were
// written per kind, how many writes failed at the terminal, and how many
// calls were rejected before anything was written, because their
// template did not match the arguments or they named an unknown stream.
package handler
