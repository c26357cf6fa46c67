// Package identity works out which test asked for a snapshot.
//
// The test function is the frame invoked directly by the testing runner.
// Engine code and any number of custom assertion helpers always sit below
// that frame, so they never get attributed a snapshot.
package identity

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"snapassert/internal/snaperr"
)

const maxDepth = 128

// runners are the testing package functions that invoke test bodies.
var runners = map[string]bool{
	"testing.tRunner": true,
	"testing.fRunner": true,
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Identity is the test a snapshot belongs to.
type Identity struct {
	Suite   string // import path of the package declaring the test
	Method  string // top-level test function name
	DataSet string // slug of the parameter-set label, may be empty
	Dir     string // directory of the file declaring the test
}

// SuiteBase returns the last element of the suite import path.
func (id Identity) SuiteBase() string {
	return path.Base(id.Suite)
}

// DataSetFragment returns "__<dataset>" or "" when there is no data set.
func (id Identity) DataSetFragment() string {
	if id.DataSet == "" {
		return ""
	}
	return "__" + id.DataSet
}

// Named is the part of testing.TB the resolver relies on.
type Named interface {
	Name() string
}

// DataNamer is implemented by harnesses exposing the current parameter-set label.
type DataNamer interface {
	DataName() string
}

// Resolve derives the identity of the test currently running tb.
func Resolve(tb Named) (Identity, error) {
	return FromFrames(tb, callers())
}

// FromFrames derives an identity from an explicit list of frames, innermost first.
func FromFrames(tb Named, frames []runtime.Frame) (Identity, error) {
	test, err := testFrame(frames)
	if err != nil {
		return Identity{}, err
	}

	name := ""
	if tb != nil {
		name = tb.Name()
	}
	method, label := splitTestName(name)
	if method == "" {
		method = functionName(test.Function)
	}
	if dn, ok := tb.(DataNamer); ok {
		if l := dn.DataName(); l != "" {
			label = l
		}
	}

	return Identity{
		Suite:   packagePath(test.Function),
		Method:  method,
		DataSet: Slug(label),
		Dir:     filepath.Dir(test.File),
	}, nil
}

// CallerDir returns the directory of the running test's source file.
func CallerDir() (string, error) {
	test, err := testFrame(callers())
	if err != nil {
		return "", err
	}
	return filepath.Dir(test.File), nil
}

// Slug normalizes a data-set label for use in a file name.
func Slug(label string) string {
	label = strings.TrimSpace(label)
	label = whitespaceRe.ReplaceAllString(label, "_")
	label = strings.ReplaceAll(label, "/", "_")
	return strings.ReplaceAll(label, `\`, "_")
}

func callers() []runtime.Frame {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(3, pcs)
	it := runtime.CallersFrames(pcs[:n])

	var frames []runtime.Frame
	for {
		f, more := it.Next()
		frames = append(frames, f)
		if !more {
			break
		}
	}
	return frames
}

func testFrame(frames []runtime.Frame) (runtime.Frame, error) {
	for i, f := range frames {
		if !runners[f.Function] {
			continue
		}
		if i == 0 {
			break
		}
		return frames[i-1], nil
	}
	return runtime.Frame{}, fmt.Errorf("%w: snapshot requested outside a test goroutine", snaperr.ErrNoCallerFound)
}

// splitTestName splits "TestFoo/case/sub" into "TestFoo" and "case/sub".
func splitTestName(name string) (string, string) {
	method, label, _ := strings.Cut(name, "/")
	return method, label
}

// packagePath extracts "example.com/pkg" from "example.com/pkg.TestFoo.func1".
func packagePath(fn string) string {
	slash := strings.LastIndex(fn, "/")
	dot := strings.Index(fn[slash+1:], ".")
	if dot < 0 {
		return fn
	}
	return fn[:slash+1+dot]
}

// functionName extracts "TestFoo" from "example.com/pkg.TestFoo.func1".
func functionName(fn string) string {
	rest := strings.TrimPrefix(fn, packagePath(fn)+".")
	name, _, _ := strings.Cut(rest, ".")
	return name
}
