package diff

import (
	"strings"
	"testing"
)

func TestUnifiedProducesHunks(t *testing.T) {
	body := Unified("snapshot", "current", "line1\nline2\n", "line1\nline3\n", Options{Context: 3})

	for _, want := range []string{"--- snapshot", "+++ current", "@@", "-line2", "+line3", " line1"} {
		if !strings.Contains(body, want) {
			t.Errorf("diff missing %q:\n%s", want, body)
		}
	}
}

func TestUnifiedMarksMissingFinalNewline(t *testing.T) {
	body := Unified("a", "b", "foo\n", "foo", Options{})
	if !strings.Contains(body, "No newline at end of file") {
		t.Fatalf("expected a missing-newline marker:\n%s", body)
	}
}

func TestUnifiedEqualInputsIsEmpty(t *testing.T) {
	if body := Unified("a", "b", "same\n", "same\n", Options{}); body != "" {
		t.Fatalf("expected empty diff, got %q", body)
	}
}

func TestUnifiedOversize(t *testing.T) {
	body := Unified("a", "b", strings.Repeat("x", 20), strings.Repeat("y", 20), Options{MaxBytes: 10})
	if !strings.Contains(body, "diff omitted") {
		t.Fatalf("expected placeholder, got %q", body)
	}
}

func TestLines(t *testing.T) {
	body := Lines("/a.txt (snapshot)", "/a.txt (current)", []string{"one", "two"}, []string{"one", "three"}, Options{})
	if !strings.Contains(body, "-two\n") || !strings.Contains(body, "+three\n") {
		t.Fatalf("unexpected diff:\n%s", body)
	}
}
