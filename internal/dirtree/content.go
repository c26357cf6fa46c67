package dirtree

import (
	"fmt"
	"io"
	"os"

	"snapassert/internal/diff"
	"snapassert/internal/drift"
	"snapassert/internal/snaperr"
)

// Extension is the file extension of directory snapshots.
const Extension = "snapshot"

// FileVisitor is called once per file before its lines are compared. It
// receives the root-relative path plus the current and stored lines and
// returns the lines to compare.
type FileVisitor func(path string, current, stored []string) ([]string, []string)

// Content is a directory under snapshot.
type Content struct {
	root    string
	visitor FileVisitor
	diffOpt diff.Options
}

// NewContent checks that root is an existing directory.
func NewContent(root string) (*Content, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q must be an existing directory", snaperr.ErrInvalidInput, root)
	}
	return &Content{root: TrimRoot(root), diffOpt: diff.DefaultOptions}, nil
}

// Root returns the directory under snapshot.
func (c *Content) Root() string { return c.root }

// Extension implements snapshot.Content.
func (c *Content) Extension() string { return Extension }

// Empty implements snapshot.Content. A directory is never the failure
// sentinel; an empty directory has an empty, valid snapshot.
func (c *Content) Empty() bool { return false }

// AllowsEmptySnapshot implements snapshot.Content.
func (c *Content) AllowsEmptySnapshot() bool { return true }

// Dump implements snapshot.Content.
func (c *Content) Dump(w io.Writer) error {
	return Serialize(w, c.root)
}

// SetFileVisitor installs the per-file visitor.
func (c *Content) SetFileVisitor(v FileVisitor) {
	c.visitor = v
}

// Compare checks the file set first, then each file's lines in
// case-insensitive path order.
func (c *Content) Compare(snapshotPath string) error {
	stored, err := ListFiles(snapshotPath)
	if err != nil {
		return err
	}
	entries, err := Walk(c.root)
	if err != nil {
		return err
	}
	current := make([]string, len(entries))
	for i, e := range entries {
		current[i] = e.Rel
	}

	if !equalLines(stored, current) {
		report := drift.Detect(stored, current)
		detail := drift.FormatCLI(report)
		if detail == "" {
			// same set, different multiplicity: a path is listed twice
			detail = diff.Lines("snapshot", "directory", stored, current, c.diffOpt)
		}
		return &snaperr.ComparisonError{
			Path:    snapshotPath,
			Message: "Directory snapshot and current directory do not have the same files.",
			Diff:    detail,
		}
	}

	for i, rel := range stored {
		expected, err := ExtractFile(snapshotPath, rel)
		if err != nil {
			return err
		}
		actual, err := ReadLines(entries[i].Abs)
		if err != nil {
			return err
		}
		if c.visitor != nil {
			actual, expected = c.visitor(rel, actual, expected)
		}

		if !equalLines(expected, actual) {
			return &snaperr.ComparisonError{
				Path:    snapshotPath,
				Message: fmt.Sprintf("Current content of %s does not match the snapshot content.", rel),
				Diff:    diff.Lines(rel+" (snapshot)", rel+" (current)", expected, actual, c.diffOpt),
			}
		}
	}
	return nil
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
