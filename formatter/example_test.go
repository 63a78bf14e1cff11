package formatter_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/philipp01105/conlog/formatter"
)

func ExampleSprintf() {
	msg, err := formatter.Sprintf("listening on %s:%d", "localhost", 8080)
	fmt.Println(msg, err)

	format := "listening on %d"
	_, err = formatter.Sprintf(format, "localhost")
	fmt.Println(errors.Is(err, formatter.ErrBadFormat))
	// Output:
	// listening on localhost:8080 <nil>
	// true
}

func ExampleAppendTimestamp() {
	ts := time.Date(2026, 1, 15, 12, 0, 0, 250_000_000, time.UTC)
	fmt.Printf("%s|\n", formatter.AppendTimestamp(nil, ts))
	// Output:
	// [12:00:00.250] |
}
