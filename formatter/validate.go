package formatter

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrBadFormat is matched by every *FormatError.
var ErrBadFormat = errors.New("formatter: template does not match arguments")

// FormatError describes the first directive that does not fit the
// arguments it was given.
type FormatError struct {
	Format string
	// Offset is the byte offset of the offending directive, or the end
	// of the template for surplus arguments.
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatter: %s at offset %d in %q", e.Reason, e.Offset, e.Format)
}

func (e *FormatError) Unwrap() error {
	return ErrBadFormat
}

// Validate reports whether format can be applied to args without fmt
// emitting an inline error marker.
func Validate(format string, args ...interface{}) error {
	v := validator{format: format, args: args}
	return v.run()
}

type validator struct {
	format    string
	args      []interface{}
	argNum    int
	reordered bool
	goodIndex bool
}

func (v *validator) fail(offset int, reason string) error {
	return &FormatError{Format: v.format, Offset: offset, Reason: reason}
}

func (v *validator) run() error {
	end := len(v.format)
	for i := 0; i < end; {
		if v.format[i] != '%' {
			i++
			continue
		}
		start := i
		i++
		v.goodIndex = true

		flagStart := i
		for i < end && strings.IndexByte("#0+- ", v.format[i]) >= 0 {
			i++
		}
		flags := v.format[flagStart:i]

		var afterIndex bool
		i, afterIndex = v.argIndex(i)

		// width
		if i < end && v.format[i] == '*' {
			i++
			if !v.intArg(false) {
				return v.fail(start, "bad width")
			}
			afterIndex = false
		} else {
			n := digits(v.format, i)
			if afterIndex && n > 0 {
				v.goodIndex = false
			}
			i += n
		}

		// precision
		if i < end && v.format[i] == '.' {
			i++
			if afterIndex {
				v.goodIndex = false
			}
			i, afterIndex = v.argIndex(i)
			if i < end && v.format[i] == '*' {
				i++
				if !v.intArg(true) {
					return v.fail(start, "bad precision")
				}
				afterIndex = false
			} else {
				i += digits(v.format, i)
			}
		}

		if !afterIndex {
			i, _ = v.argIndex(i)
		}

		if i >= end {
			return v.fail(start, "missing verb")
		}
		verb, size := utf8.DecodeRuneInString(v.format[i:])
		i += size

		switch {
		case verb == '%':
			continue
		case !v.goodIndex:
			return v.fail(start, "bad argument index")
		case v.argNum >= len(v.args):
			return v.fail(start, "missing argument for %"+string(verb))
		}
		arg := v.args[v.argNum]
		v.argNum++
		if badVerb(flags, verb, arg) {
			return v.fail(start, fmt.Sprintf("bad verb %%%c for %T", verb, arg))
		}
	}

	if !v.reordered && v.argNum < len(v.args) {
		return v.fail(end, fmt.Sprintf("%d extra argument(s)", len(v.args)-v.argNum))
	}
	return nil
}

// argIndex consumes an explicit "[n]" argument index at i.
func (v *validator) argIndex(i int) (int, bool) {
	if i >= len(v.format) || v.format[i] != '[' {
		return i, false
	}
	v.reordered = true
	closing := strings.IndexByte(v.format[i:], ']')
	if closing < 0 {
		v.goodIndex = false
		return i + 1, false
	}
	num := v.format[i+1 : i+closing]
	if num == "" || digits(num, 0) != len(num) {
		v.goodIndex = false
		return i + 1, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 || n > len(v.args) {
		v.goodIndex = false
		return i + closing + 1, true
	}
	v.argNum = n - 1
	return i + closing + 1, true
}

// intArg consumes the operand of a '*' width or precision. A negative
// width left-justifies; a negative precision is an error.
func (v *validator) intArg(precision bool) bool {
	if v.argNum >= len(v.args) {
		return false
	}
	a := v.args[v.argNum]
	v.argNum++
	const limit = 1e6
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if precision {
			return 0 <= n && n <= limit
		}
		return -limit <= n && n <= limit
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() <= limit
	default:
		return false
	}
}

// badVerb formats arg alone with the directive and looks for fmt's
// "%!verb(" marker. Composite operands are formatted element by element,
// so the marker may appear anywhere in their output.
func badVerb(flags string, verb rune, arg interface{}) bool {
	marker := "%!" + string(verb) + "("
	out := fmt.Sprintf("%"+flags+string(verb), arg)
	if strings.HasPrefix(out, marker) {
		return true
	}
	return composite(arg) && strings.Contains(out, marker)
}

// composite reports whether fmt prints arg by walking its elements
// rather than through a method of its own.
func composite(arg interface{}) bool {
	switch arg.(type) {
	case fmt.Formatter, fmt.Stringer, error:
		return false
	}
	rv := reflect.ValueOf(arg)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Array, reflect.Slice, reflect.Map, reflect.Struct:
		return true
	}
	return false
}

func digits(s string, i int) int {
	n := 0
	for i+n < len(s) && '0' <= s[i+n] && s[i+n] <= '9' {
		n++
	}
	return n
}
