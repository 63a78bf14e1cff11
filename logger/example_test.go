package logger_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/logger"
	"github.com/philipp01105/conlog/terminal"
)

// Create a Logger with the Builder pattern.
func ExampleNewBuilder() {
	mem := terminal.NewMemory()
	log, err := logger.NewBuilder().
		WithTerminal(mem).
		WithTimestamps(true).
		WithClock(core.FixedClock(time.Date(2026, 1, 15, 9, 30, 0, 5_000_000, time.Local))).
		Build()
	if err != nil {
		return
	}
	defer log.Close()

	_ = log.Success("ready on port %d", 8080)
	fmt.Print(mem.String(terminal.Stdout))
	// Output:
	// [09:30:00.005] [+] ready on port 8080
}

// Errors go to stderr; a mismatched template is reported instead of written.
func ExampleLogger_Error() {
	mem := terminal.NewMemory()
	log, _ := logger.NewBuilder().WithTerminal(mem).Build()

	_ = log.Error("open %s: %v", "config.yaml", "permission denied")
	err := log.Error("open %s")
	fmt.Print(mem.String(terminal.Stderr))
	fmt.Println(err != nil)
	// Output:
	// [-] open config.yaml: permission denied
	// true
}
