// Package interactive asks the developer running the tests whether a
// stale snapshot should be refreshed.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Facility asks yes/no questions.
type Facility interface {
	// Enabled reports whether a human can answer.
	Enabled() bool

	// Confirm prints question and reports whether the answer was yes.
	Confirm(question string) bool
}

// Terminal asks questions on a terminal. It is enabled only when its
// input is a TTY, so go test runs in CI never block.
type Terminal struct {
	fd  int
	in  *bufio.Reader
	out io.Writer
	mu  sync.Mutex
}

// NewTerminal creates a facility reading answers from in.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return newTerminal(int(in.Fd()), in, out)
}

func newTerminal(fd int, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{fd: fd, in: bufio.NewReader(in), out: out}
}

var (
	stdio     *Terminal
	stdioOnce sync.Once
)

// Stdio returns the process-wide terminal facility on stdin and stdout.
func Stdio() *Terminal {
	stdioOnce.Do(func() {
		stdio = NewTerminal(os.Stdin, os.Stdout)
	})
	return stdio
}

// Enabled implements Facility.
func (t *Terminal) Enabled() bool {
	return term.IsTerminal(t.fd)
}

// Confirm implements Facility. An empty answer counts as yes.
func (t *Terminal) Confirm(question string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprint(t.out, question)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return IsYes(line)
}

// IsYes interprets an answer typed at a prompt.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true
	}
	return false
}

// Disabled never asks and never confirms.
type Disabled struct{}

// Enabled implements Facility.
func (Disabled) Enabled() bool { return false }

// Confirm implements Facility.
func (Disabled) Confirm(string) bool { return false }
