package handler

import (
	"sync/atomic"

	"github.com/philipp01105/conlog/core"
)

// Stats tracks handler statistics
type Stats struct {
	// Separate atomic counters per kind
	written [4]atomic.Uint64
	// failed counts writes the terminal rejected
	failed atomic.Uint64
	// rejected counts calls refused before anything was written: a
	// template that did not match its arguments or an unknown stream
	rejected atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter for a kind
func (s *Stats) IncrementWritten(kind core.Kind) {
	if int(kind) < len(s.written) {
		s.written[kind].Add(1)
	}
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// IncrementRejected atomically increments the rejected counter
func (s *Stats) IncrementRejected() {
	s.rejected.Add(1)
}

// GetWritten returns the written count for a kind
func (s *Stats) GetWritten(kind core.Kind) uint64 {
	if int(kind) < len(s.written) {
		return s.written[kind].Load()
	}
	return 0
}

// GetTotalWritten returns the total written across all kinds
func (s *Stats) GetTotalWritten() uint64 {
	var n uint64
	for i := range s.written {
		n += s.written[i].Load()
	}
	return n
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.written {
		s.written[i].Store(0)
	}
	s.failed.Store(0)
	s.rejected.Store(0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	Written       map[core.Kind]uint64
	WrittenTotal  uint64
	FailedTotal   uint64
	RejectedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	written := make(map[core.Kind]uint64, len(core.Kinds))
	for _, k := range core.Kinds {
		written[k] = s.GetWritten(k)
	}
	return Snapshot{
		Written:       written,
		WrittenTotal:  s.GetTotalWritten(),
		FailedTotal:   s.failed.Load(),
		RejectedTotal: s.rejected.Load(),
	}
}
