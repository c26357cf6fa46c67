package snaperr

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestComparisonErrorIsComparisonFailed(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &ComparisonError{Message: "differs", Diff: "--- a\n+++ b\n"})

	if !errors.Is(err, ErrComparisonFailed) {
		t.Fatalf("expected ErrComparisonFailed, got %v", err)
	}
	if errors.Is(err, ErrContentNotFound) {
		t.Fatalf("comparison error must not match ErrContentNotFound")
	}
}

func TestComparisonErrorMessage(t *testing.T) {
	withDiff := &ComparisonError{Message: "differs", Diff: "@@ -1 +1 @@"}
	if got := withDiff.Error(); !strings.HasPrefix(got, "differs\n\n@@") {
		t.Errorf("unexpected message with diff: %q", got)
	}

	plain := withDiff.Plain()
	if got := plain.Error(); got != "differs" {
		t.Errorf("plain message = %q, want %q", got, "differs")
	}
	if withDiff.Diff == "" {
		t.Errorf("Plain must not mutate the receiver")
	}
}

func TestIOErrorUnwraps(t *testing.T) {
	err := IO("open", "/tmp/missing", os.ErrNotExist)

	if !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected underlying os.ErrNotExist")
	}
	if !strings.Contains(err.Error(), "/tmp/missing") {
		t.Errorf("message should carry the path: %q", err.Error())
	}
	if IO("open", "x", nil) != nil {
		t.Errorf("nil error must stay nil")
	}
}
