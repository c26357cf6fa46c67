// Package snapshot runs snapshot assertions: it resolves the snapshot file,
// creates it on first use, compares it on later runs and refreshes it on
// request. Content kinds live in the content and dirtree packages.
package snapshot

import (
	"io"
	"time"

	"snapassert/internal/naming"
)

// Dumper writes a value in its stored form.
type Dumper interface {
	Dump(w io.Writer) error
}

// Content is a value under snapshot.
type Content interface {
	Dumper

	// Extension is the file extension of the snapshot, without a leading dot.
	Extension() string

	// Empty reports whether the current value is the failure sentinel.
	Empty() bool

	// AllowsEmptySnapshot reports whether a zero-length stored snapshot is valid.
	AllowsEmptySnapshot() bool

	// Compare checks the current value against the snapshot file. A mismatch
	// is reported as a *snaperr.ComparisonError.
	Compare(path string) error
}

// Summary is a lightweight view of a stored snapshot file for listing.
type Summary struct {
	naming.Name `yaml:",inline"`
	Path        string    `json:"path" yaml:"path"`
	Size        int64     `json:"size" yaml:"size"`
	ModTime     time.Time `json:"modTime" yaml:"modTime"`
}
