// Package formatter turns a printf-style template and its arguments
// into a message body, and renders timestamps.
//
// The fmt package never fails: a verb that does not fit its operand,
// a missing operand or a surplus one is reported inline as "%!d(string=x)",
// "%!s(MISSING)" or "%!(EXTRA ...)". Sprintf runs the template through
// Validate first and returns a *FormatError instead, so a malformed log
// call produces no output at all. Validate follows fmt's own directive
// grammar: flags, explicit argument indexes, '*' width and precision,
// and "%%".
//
// Messages are rendered into a pooled bytes.Buffer. Buffers larger than
// 64 KiB are not returned to the pool to prevent a single large log line
// from permanently inflating memory usage.
package formatter
