package core

import (
	"sync"
	"time"

	"github.com/philipp01105/conlog/terminal"
)

// Record is a formatted log call ready to be written
type Record struct {
	Kind        Kind
	Time        time.Time
	Stream      terminal.Stream
	Prefix      string
	PrefixColor terminal.Attribute
	Message     string
	Newline     bool
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool, filled in for kind k.
func GetRecord(k Kind, msg string) *Record {
	r := recordPool.Get().(*Record)
	r.Kind = k
	r.Stream = k.Stream()
	r.Prefix = k.Prefix()
	r.PrefixColor = k.PrefixColor()
	r.Message = msg
	r.Newline = true
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	*r = Record{}
	recordPool.Put(r)
}
