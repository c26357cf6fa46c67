// Command snapassert inspects the snapshot files written by snapshot
// assertions: it lists them, unpacks directory snapshots and checks a
// directory against a stored snapshot outside of go test.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// exitError carries a failure that is not a usage error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func fail(format string, args ...any) error {
	return &exitError{code: exitFailure, err: fmt.Errorf(format, args...)}
}

// errMismatch reports a failed verification whose details are already printed.
var errMismatch = &exitError{code: exitFailure, err: errors.New("snapshot does not match")}

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// run executes the CLI and returns the exit code.
// It is separated from main() to enable testing.
func run(args, environ []string, stdout, stderr io.Writer) int {
	app := &app{environ: environ, stdout: stdout, stderr: stderr}
	root := app.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee != errMismatch {
			fmt.Fprintln(stderr, "Error:", ee.err)
		}
		return ee.code
	}
	fmt.Fprintln(stderr, "Error:", err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.CommandPath())
	return exitUsage
}

// app holds what every subcommand needs.
type app struct {
	environ []string
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	logger  *slog.Logger
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "snapassert",
		Short: "Inspect snapshot files",
		Long: `Inspect the snapshot files written by snapshot assertions.

Examples:
  snapassert list ./...               # List every snapshot below the current directory
  snapassert files dir.snapshot       # List the files stored in a directory snapshot
  snapassert verify dir.snapshot out  # Check a directory against its snapshot`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug details to stderr")

	root.AddCommand(
		a.listCmd(),
		a.filesCmd(),
		a.extractCmd(),
		a.verifyCmd(),
		a.configCmd(),
	)
	return root
}
