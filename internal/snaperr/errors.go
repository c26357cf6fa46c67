// Package snaperr defines the error taxonomy shared by every snapshot
// component. Fatal conditions are sentinels; the recoverable comparison
// failure carries its own type so the engine can offer a refresh.
package snaperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCallerFound is returned when no running test can be found in the call stack.
	ErrNoCallerFound = errors.New("no test case found in the call stack")

	// ErrContentNotFound is returned when the current value or a stored snapshot is empty.
	ErrContentNotFound = errors.New("snapshot content not found")

	// ErrComparisonFailed is the normal test-failure path.
	ErrComparisonFailed = errors.New("snapshot comparison failed")

	// ErrInvalidVisitor is returned when a data visitor does not fit the snapshot kind.
	ErrInvalidVisitor = errors.New("invalid data visitor")

	// ErrInvalidInput is returned when a value of an unsupported kind is handed to a normalizer.
	ErrInvalidInput = errors.New("invalid snapshot input")

	// ErrIO marks filesystem failures.
	ErrIO = errors.New("snapshot i/o error")
)

// ComparisonError describes a mismatch between a stored snapshot and the
// current value. Diff is empty when diff display is disabled.
type ComparisonError struct {
	Path    string
	Message string
	Diff    string
}

func (e *ComparisonError) Error() string {
	if e.Diff == "" {
		return e.Message
	}
	return e.Message + "\n\n" + e.Diff
}

// Is makes errors.Is(err, ErrComparisonFailed) hold for every ComparisonError.
func (e *ComparisonError) Is(target error) bool {
	return target == ErrComparisonFailed
}

// Plain returns a copy of the error without the diff.
func (e *ComparisonError) Plain() *ComparisonError {
	return &ComparisonError{Path: e.Path, Message: e.Message}
}

// IOError wraps a filesystem error with the operation and offending path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrIO) hold for every IOError.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// IO wraps err as an IOError. A nil err stays nil.
func IO(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}
