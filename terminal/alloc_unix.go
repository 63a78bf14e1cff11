//go:build !windows

package terminal

import (
	"fmt"
	"os"
)

// openTerminal opens the controlling terminal of the process.
func openTerminal() (*os.File, error) {
	f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	return f, nil
}
