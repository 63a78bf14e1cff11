package formatter

import (
	"bytes"
	"fmt"
	"sync"
	"time"
)

// TimestampLayout renders wall-clock time as HH:MM:SS.mmm.
const TimestampLayout = "15:04:05.000"

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Sprintf formats the message body. It returns a *FormatError, and no
// message, if format and args disagree.
func Sprintf(format string, args ...interface{}) (string, error) {
	if len(args) == 0 && !hasDirective(format) {
		return format, nil
	}
	if err := Validate(format, args...); err != nil {
		return "", err
	}
	buf := getBuffer()
	fmt.Fprintf(buf, format, args...)
	msg := buf.String()
	putBuffer(buf)
	return msg, nil
}

// AppendTimestamp appends "[HH:MM:SS.mmm] " for t to dst.
func AppendTimestamp(dst []byte, t time.Time) []byte {
	dst = append(dst, '[')
	dst = t.AppendFormat(dst, TimestampLayout)
	return append(dst, ']', ' ')
}

func hasDirective(format string) bool {
	for i := 0; i < len(format); i++ {
		if format[i] == '%' {
			return true
		}
	}
	return false
}
