// Package logger is the public API of conlog. Most users only need to
// import this package.
//
// A Logger writes four kinds of line:
//
//	log.Print("plain %s", "text")      // stdout, no prefix
//	log.Success("listening on %d", 80) // stdout, "[+] " in bright green
//	log.Info("loading %s", name)       // stdout, "[*] " in bright cyan
//	log.Error("failed: %v", err)       // stderr, "[-] " in bright red
//
// Each call is written and flushed before it returns, as one unit with
// respect to every other call on either stream. A template that does
// not match its arguments is returned as an error and nothing is
// written.
//
// Loggers are built explicitly with the Builder and handed to the code
// that needs them, ideally through the Console interface:
//
//	log, err := logger.NewBuilder().
//	    WithTimestamps(true).
//	    Build()
//
// The process-wide logger returned by Instance is meant for the program
// entry point. It is built once, on first use, from the Options passed
// to Configure. When ForceConsole is set and no terminal can be
// attached, Instance returns an error wrapping ErrConsoleUnavailable;
// the caller decides how to terminate.
package logger
