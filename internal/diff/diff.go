// Package diff renders unified diffs for snapshot failures.
// It uses github.com/pmezard/go-difflib/difflib to produce classic unified
// patches (---/+++ headers, @@ hunks, lines prefixed with ' ', '-', '+').
package diff

import (
	"fmt"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// Options controls patch generation behavior.
type Options struct {
	// MaxBytes is a guardrail on input size (old+new). When exceeded,
	// a placeholder is returned. 0 means "no limit".
	MaxBytes int

	// Context is the number of context lines in hunks. If 0, defaults to 3.
	Context int
}

// DefaultOptions is used by the snapshot engine.
var DefaultOptions = Options{MaxBytes: 4 << 20, Context: 3}

// Unified produces a unified patch turning a into b.
func Unified(aName, bName, a, b string, opt Options) string {
	if opt.MaxBytes > 0 && len(a)+len(b) > opt.MaxBytes {
		return omitted(aName, bName)
	}
	return render(aName, bName, splitLinesKeepNL(a), splitLinesKeepNL(b), opt)
}

// Lines produces a unified patch for two line slices without line terminators.
func Lines(aName, bName string, a, b []string, opt Options) string {
	if opt.MaxBytes > 0 && size(a)+size(b) > opt.MaxBytes {
		return omitted(aName, bName)
	}
	return render(aName, bName, withNL(a), withNL(b), opt)
}

func render(aName, bName string, a, b []string, opt Options) string {
	ctx := opt.Context
	if ctx <= 0 {
		ctx = 3
	}
	u := difflib.UnifiedDiff{
		A:        a,
		B:        b,
		FromFile: aName,
		ToFile:   bName,
		Context:  ctx,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return omitted(aName, bName)
	}
	return s
}

// splitLinesKeepNL splits into lines and keeps newline characters,
// which produces better unified hunks. A missing final newline is marked
// so that it shows up in the patch.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if last := lines[len(lines)-1]; last == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] = last + "\n\\ No newline at end of file\n"
	}
	return lines
}

func withNL(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}

func size(lines []string) int {
	n := 0
	for _, l := range lines {
		n += len(l) + 1
	}
	return n
}

// omitted returns a compact placeholder when size limits are exceeded.
func omitted(aName, bName string) string {
	return fmt.Sprintf("--- %s\n+++ %s\n@@\n# diff omitted (oversize)\n", aName, bName)
}
