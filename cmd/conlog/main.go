// Command conlog brings up the process-wide console logger and reports
// that the requested functionality is not implemented yet.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipp01105/conlog/config"
	"github.com/philipp01105/conlog/logger"
	"github.com/philipp01105/conlog/terminal"
)

const (
	exitOK            = 0
	exitUnimplemented = 1
	// exitAbort is the status a shell reports for a process killed by SIGABRT.
	exitAbort = 134
)

var errUnimplemented = errors.New("unimplemented")

func main() {
	os.Exit(actualMain(os.Args[1:], nil, os.Stderr))
}

// actualMain runs the command. term overrides the process terminal when
// non-nil; stderr receives errors that cannot go through the logger.
func actualMain(args []string, term terminal.Terminal, stderr io.Writer) int {
	rootCmd := newRootCmd(term)
	rootCmd.SetArgs(args)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	code := exitCode(err)
	if err != nil && !errors.Is(err, errUnimplemented) {
		_, _ = fmt.Fprintln(stderr, err)
	}
	return code
}

func newRootCmd(term terminal.Terminal) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "conlog",
		Short:         "Start the console logger",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg, term)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(cfg *config.Config, term terminal.Terminal) error {
	err := logger.Configure(logger.Options{
		Terminal:     term,
		Timestamps:   cfg.Timestamps,
		ForceConsole: cfg.ForceConsole,
	})
	if err != nil {
		return err
	}

	log, err := logger.Instance()
	if err != nil {
		return err
	}

	msg := "Console ready!"
	if cfg.ForceConsole {
		msg = "Allocated console!"
	}
	if err := log.Success(msg); err != nil {
		return err
	}

	if err := log.Error("Unimplemented!"); err != nil {
		return err
	}
	return errUnimplemented
}

// exitCode maps the command's error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, logger.ErrConsoleUnavailable):
		return exitAbort
	default:
		return exitUnimplemented
	}
}
