// Package core defines the shared types used across conlog.
//
// Kind names the four logging operations (print, success, info, error)
// and carries everything that distinguishes them: the target stream,
// the prefix literal and the prefix colour. Adding behaviour to a kind
// is a matter of extending its table entry, not of branching in the
// write path.
//
// Record is a single log call after its message has been formatted.
// Records are pooled via sync.Pool; callers get one with GetRecord and
// return it with PutRecord once the handler has written it. A Record
// never outlives the call that produced it.
//
// Clock abstracts the wall-clock source used for timestamps so tests
// can render deterministic output.
package core
