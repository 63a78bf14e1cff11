//go:build windows

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

var procAllocConsole = windows.NewLazySystemDLL("kernel32.dll").NewProc("AllocConsole")

// openTerminal allocates a new console for the process and opens its
// output buffer. AllocConsole fails when a console is already attached.
func openTerminal() (*os.File, error) {
	if err := procAllocConsole.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	if r, _, err := procAllocConsole.Call(); r == 0 {
		return nil, fmt.Errorf("%w: AllocConsole: %v", ErrNoTerminal, err)
	}
	f, err := os.OpenFile("CONOUT$", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	return f, nil
}
