package formatter

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestSprintf_Valid(t *testing.T) {
	type named int
	tests := []struct {
		name   string
		format string
		args   []interface{}
		want   string
	}{
		{"no args", "Allocated console!", nil, "Allocated console!"},
		{"empty", "", nil, ""},
		{"percent literal", "100%% done", nil, "100% done"},
		{"string", "hello %s", []interface{}{"world"}, "hello world"},
		{"int and quoted", "%d files in %q", []interface{}{3, "dir"}, `3 files in "dir"`},
		{"flags width precision", "%-6.2f|", []interface{}{3.14159}, "3.14  |"},
		{"star width", "%*d", []interface{}{4, 7}, "   7"},
		{"star precision", "%.*f", []interface{}{1, 2.71}, "2.7"},
		{"negative star width", "%*d|", []interface{}{-3, 7}, "7  |"},
		{"string slice", "%s", []interface{}{[]string{"a", "b"}}, "[a b]"},
		{"stringer in slice", "%s", []interface{}{[]error{errors.New("x")}}, "[x]"},
		{"named int width", "%*d", []interface{}{named(3), 1}, "  1"},
		{"explicit index", "%[2]s %[1]s", []interface{}{"a", "b"}, "b a"},
		{"reuse index", "%[1]d %[1]x", []interface{}{255}, "255 ff"},
		{"value verb", "%v %+v", []interface{}{[]int{1}, struct{ A int }{2}}, "[1] {A:2}"},
		{"error operand", "failed: %v", []interface{}{errors.New("boom")}, "failed: boom"},
		{"type verb", "%T", []interface{}{1.5}, "float64"},
		{"unicode", "→ %s ←", []interface{}{"ok"}, "→ ok ←"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sprintf(tt.format, tt.args...)
			if err != nil {
				t.Fatalf("Sprintf() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Sprintf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSprintf_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []interface{}
		reason string
	}{
		{"missing argument", "%s and %s", []interface{}{"a"}, "missing argument"},
		{"extra argument", "hello", []interface{}{"a"}, "extra argument"},
		{"extra after verbs", "%d", []interface{}{1, 2}, "extra argument"},
		{"bad verb", "%d", []interface{}{"str"}, "bad verb"},
		{"nil operand", "%d", []interface{}{nil}, "bad verb"},
		{"no verb", "100%", nil, "missing verb"},
		{"bad width", "%*d", []interface{}{"x", 1}, "bad width"},
		{"huge width", "%*d", []interface{}{10_000_000, 1}, "bad width"},
		{"bad precision", "%.*f", []interface{}{1.5, 1.0}, "bad precision"},
		{"negative precision", "%.*d", []interface{}{-1, 5}, "bad precision"},
		{"bad slice element", "%s", []interface{}{[]interface{}{1, "a"}}, "bad verb"},
		{"bad map value", "%d", []interface{}{map[string]string{"k": "v"}}, "bad verb"},
		{"bad struct field", "%s", []interface{}{struct{ N int }{1}}, "bad verb"},
		{"index out of range", "%[3]d", []interface{}{1}, "bad argument index"},
		{"index not a number", "%[x]d", []interface{}{1}, "bad argument index"},
		{"unterminated index", "%[1d", []interface{}{1}, "bad argument index"},
		{"wrap verb", "%w", []interface{}{errors.New("e")}, "bad verb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sprintf(tt.format, tt.args...)
			if err == nil {
				t.Fatalf("Sprintf() = %q, expected error", got)
			}
			if got != "" {
				t.Errorf("Expected no message on error, got %q", got)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("Expected *FormatError, got %T", err)
			}
			if !strings.Contains(fe.Reason, tt.reason) {
				t.Errorf("Reason = %q, want it to contain %q", fe.Reason, tt.reason)
			}
			if !errors.Is(err, ErrBadFormat) {
				t.Error("Expected errors.Is(err, ErrBadFormat)")
			}
		})
	}
}

func TestFormatError_Offset(t *testing.T) {
	err := Validate("ok %d then %s", 1)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected *FormatError, got %v", err)
	}
	if fe.Offset != 11 {
		t.Errorf("Offset = %d, want 11", fe.Offset)
	}
	if !strings.Contains(fe.Error(), `"ok %d then %s"`) {
		t.Errorf("Error() should quote the template, got %s", fe.Error())
	}
}

func TestAppendTimestamp(t *testing.T) {
	ts := time.Date(2026, 2, 18, 9, 5, 7, 42_000_000, time.UTC)
	got := string(AppendTimestamp(nil, ts))
	if got != "[09:05:07.042] " {
		t.Errorf("AppendTimestamp() = %q, want %q", got, "[09:05:07.042] ")
	}

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\.\d{3}\] $`)
	for _, ts := range []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 23, 59, 59, 999_999_999, time.UTC),
		time.Now(),
	} {
		if out := AppendTimestamp(nil, ts); !pattern.Match(out) {
			t.Errorf("AppendTimestamp(%v) = %q, does not match %s", ts, out, pattern)
		}
	}
}

func TestAppendTimestamp_Appends(t *testing.T) {
	buf := []byte("x")
	buf = AppendTimestamp(buf, time.Date(2026, 1, 1, 1, 2, 3, 0, time.UTC))
	if string(buf) != "x[01:02:03.000] " {
		t.Errorf("Expected timestamp appended to existing bytes, got %q", buf)
	}
}

func BenchmarkSprintf(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Sprintf("request %s took %d ms", "/api/users", 150)
	}
}

func BenchmarkSprintfNoArgs(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Sprintf("static message")
	}
}
