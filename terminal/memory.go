package terminal

import (
	"bytes"
	"sync"

	"github.com/fatih/color"
)

// Event is one operation observed by a Memory terminal.
type Event struct {
	Stream Stream
	// Attr is set for attribute changes; Data is set for writes.
	Attr Attribute
	Data string
	// IsAttr distinguishes attribute changes from writes.
	IsAttr bool
}

// Memory is an in-memory Terminal. It is safe for concurrent use, but
// only each individual call is atomic.
type Memory struct {
	// Unsupported makes the terminal behave like redirected output:
	// DefaultAttribute reports false and SetAttribute does nothing.
	Unsupported bool
	// WriteErr, if set, is returned by every WriteRaw call.
	WriteErr error
	// AllocErr, if set, is returned by Allocate.
	AllocErr error

	mu          sync.Mutex
	bufs        [2]bytes.Buffer
	attrs       [2]Attribute
	transcript  bytes.Buffer
	events      []Event
	queries     int
	allocations int
}

// NewMemory returns a Memory whose streams start with color.Reset.
func NewMemory() *Memory {
	return &Memory{attrs: [2]Attribute{color.Reset, color.Reset}}
}

// WriteRaw appends p to the stream's buffer and the transcript, or
// returns WriteErr when set.
func (m *Memory) WriteRaw(s Stream, p []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.bufs[s].Write(p)
	m.transcript.Write(p)
	m.events = append(m.events, Event{Stream: s, Data: string(p)})
	return nil
}

// SetAttribute records attr as the stream's current attribute. It is a
// no-op when Unsupported is set.
func (m *Memory) SetAttribute(s Stream, attr Attribute) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Unsupported {
		return nil
	}
	m.attrs[s] = attr
	m.events = append(m.events, Event{Stream: s, Attr: attr, IsAttr: true})
	return nil
}

// DefaultAttribute returns the stream's current attribute and counts
// the query. With Unsupported set it reports NeutralAttribute, false.
func (m *Memory) DefaultAttribute(s Stream) (Attribute, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries++
	if m.Unsupported {
		return NeutralAttribute, false
	}
	return m.attrs[s], true
}

// Allocate counts the call and returns AllocErr.
func (m *Memory) Allocate() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allocations++
	return m.AllocErr
}

// String returns everything written to s.
func (m *Memory) String(s Stream) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bufs[s].String()
}

// Transcript returns everything written to either stream, in order.
func (m *Memory) Transcript() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transcript.String()
}

// Attribute returns the attribute currently applied to s.
func (m *Memory) Attribute(s Stream) Attribute {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attrs[s]
}

// Events returns a copy of the recorded operations.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Queries returns how many times DefaultAttribute was called.
func (m *Memory) Queries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queries
}

// Allocations returns how many times Allocate was called.
func (m *Memory) Allocations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allocations
}

// Reset discards recorded output and events. Attributes are kept.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bufs[Stdout].Reset()
	m.bufs[Stderr].Reset()
	m.transcript.Reset()
	m.events = nil
}
