package snapassert

import "snapassert/internal/snaperr"

// Errors reported by snapshot assertions. Test them with errors.Is.
var (
	ErrNoCallerFound    = snaperr.ErrNoCallerFound
	ErrContentNotFound  = snaperr.ErrContentNotFound
	ErrComparisonFailed = snaperr.ErrComparisonFailed
	ErrInvalidVisitor   = snaperr.ErrInvalidVisitor
	ErrInvalidInput     = snaperr.ErrInvalidInput
	ErrIO               = snaperr.ErrIO
)

// ComparisonError describes a snapshot mismatch.
type ComparisonError = snaperr.ComparisonError

// IOError describes a failed filesystem operation.
type IOError = snaperr.IOError
