package snapshot

import (
	"errors"

	"snapassert/internal/snaperr"
)

// VerifyResult contains the result of comparing content with a stored
// snapshot, without creating or refreshing anything.
type VerifyResult struct {
	Valid    bool                     // Whether the content matches the snapshot
	Missing  bool                     // The snapshot file does not exist
	Empty    bool                     // The snapshot file is empty and the kind forbids it
	Mismatch *snaperr.ComparisonError // Details of a failed comparison
}

// Verify compares c with the snapshot at path. Only unexpected failures
// are returned as errors.
func Verify(path string, c Content) (VerifyResult, error) {
	exists, size, err := Stat(path)
	if err != nil {
		return VerifyResult{}, err
	}
	if !exists {
		return VerifyResult{Missing: true}, nil
	}
	if size == 0 && !c.AllowsEmptySnapshot() {
		return VerifyResult{Empty: true}, nil
	}

	err = c.Compare(path)
	if err == nil {
		return VerifyResult{Valid: true}, nil
	}
	var cmpErr *snaperr.ComparisonError
	if errors.As(err, &cmpErr) {
		return VerifyResult{Mismatch: cmpErr}, nil
	}
	return VerifyResult{}, err
}
