// Package naming builds, and parses back, snapshot file names.
//
// Layout: <test dir>/__snapshots__/<Suite>__[<version>__]<Method>[__<dataset>]__<index>.<ext>
package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"snapassert/internal/counter"
	"snapassert/internal/identity"
)

// DirName is the directory, next to the test file, holding snapshots.
const DirName = "__snapshots__"

// ExtensionRoot starts every snapshot file extension.
const ExtensionRoot = "snapshot"

// ErrNotSnapshot is returned by Parse for files that are not snapshots.
var ErrNotSnapshot = errors.New("not a snapshot file name")

// Name holds every component of a snapshot file name.
type Name struct {
	Suite     string `json:"suite" yaml:"suite"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	Method    string `json:"method" yaml:"method"`
	DataSet   string `json:"dataSet,omitempty" yaml:"dataSet,omitempty"`
	Index     int    `json:"index" yaml:"index"`
	Extension string `json:"extension" yaml:"extension"`
}

// String renders the base file name.
func (n Name) String() string {
	var sb strings.Builder
	sb.WriteString(n.Suite)
	sb.WriteString("__")
	if n.Version != "" {
		sb.WriteString(n.Version)
		sb.WriteString("__")
	}
	sb.WriteString(n.Method)
	if n.DataSet != "" {
		sb.WriteString("__")
		sb.WriteString(n.DataSet)
	}
	fmt.Fprintf(&sb, "__%d.%s", n.Index, n.Extension)
	return sb.String()
}

// Key returns the counter key for an identity.
func Key(id identity.Identity) counter.Key {
	return counter.Key{Suite: id.Suite, Call: id.Method + id.DataSetFragment()}
}

// Resolve returns the absolute snapshot path for id at the given index.
func Resolve(id identity.Identity, index int, ext, version string) string {
	n := Name{
		Suite:     id.SuiteBase(),
		Version:   version,
		Method:    id.Method,
		DataSet:   id.DataSet,
		Index:     index,
		Extension: ext,
	}
	return filepath.Join(id.Dir, DirName, n.String())
}

// IsSnapshotFile reports whether base looks like a snapshot file name.
func IsSnapshotFile(base string) bool {
	_, err := Parse(base)
	return err == nil
}

// Parse splits a base file name into its components. Test function names
// start with Test, Fuzz or Example; that is how a version tag is told apart
// from the method when only one of them could be present.
func Parse(base string) (Name, error) {
	stem, ext, ok := strings.Cut(base, "."+ExtensionRoot)
	if !ok || (ext != "" && !strings.HasPrefix(ext, ".")) {
		return Name{}, fmt.Errorf("%w: %s", ErrNotSnapshot, base)
	}

	parts := strings.Split(stem, "__")
	if len(parts) < 3 {
		return Name{}, fmt.Errorf("%w: %s", ErrNotSnapshot, base)
	}
	index, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || index < 0 {
		return Name{}, fmt.Errorf("%w: bad index in %s", ErrNotSnapshot, base)
	}

	n := Name{
		Suite:     parts[0],
		Index:     index,
		Extension: ExtensionRoot + ext,
	}
	middle := parts[1 : len(parts)-1]
	switch {
	case len(middle) == 1:
		n.Method = middle[0]
	case len(middle) == 2 && isTestFunc(middle[0]):
		n.Method, n.DataSet = middle[0], middle[1]
	case len(middle) == 2:
		n.Version, n.Method = middle[0], middle[1]
	default:
		n.Version, n.Method = middle[0], middle[1]
		n.DataSet = strings.Join(middle[2:], "__")
		if isTestFunc(middle[0]) && !isTestFunc(middle[1]) {
			n.Version, n.Method = "", middle[0]
			n.DataSet = strings.Join(middle[1:], "__")
		}
	}
	return n, nil
}

func isTestFunc(s string) bool {
	for _, p := range []string{"Test", "Fuzz", "Example", "Benchmark"} {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
