package interactive

import (
	"bytes"
	"strings"
	"testing"
)

func TestIsYes(t *testing.T) {
	cases := map[string]bool{
		"":        true,
		"\n":      true,
		"y\n":     true,
		"Y":       true,
		" yes ":   true,
		"YES\r\n": true,
		"n\n":     false,
		"no":      false,
		"maybe":   false,
	}
	for in, want := range cases {
		if got := IsYes(in); got != want {
			t.Errorf("IsYes(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTerminalConfirm(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(-1, strings.NewReader("n\n\nyes\n"), &out)

	q := "Should we update snapshot with fresh data? (Y/n) "
	got := []bool{term.Confirm(q), term.Confirm(q), term.Confirm(q), term.Confirm(q)}
	want := []bool{false, true, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("answer %d = %v, want %v", i, got[i], want[i])
		}
	}
	if n := strings.Count(out.String(), q); n != 4 {
		t.Errorf("question printed %d times, want 4", n)
	}
}

func TestTerminalDisabledWithoutTTY(t *testing.T) {
	if newTerminal(-1, strings.NewReader(""), &bytes.Buffer{}).Enabled() {
		t.Error("invalid descriptor reported as a terminal")
	}
}

func TestDisabled(t *testing.T) {
	var f Facility = Disabled{}
	if f.Enabled() || f.Confirm("?") {
		t.Error("Disabled facility answered")
	}
}
