package dirtree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeTree creates files under root; keys are slash-separated relative paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func rels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Rel
	}
	return out
}

func TestWalkSortsCaseInsensitively(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b.txt":     "b",
		"A.txt":     "a",
		"a2.txt":    "a2",
		"sub/c.txt": "c",
		"Sub2/d":    "d",
	})

	entries, err := Walk(root)
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}

	want := []string{"/A.txt", "/a2.txt", "/b.txt", "/sub/c.txt", "/Sub2/d"}
	if diff := cmp.Diff(want, rels(entries)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if entries[0].Abs != filepath.Join(root, "A.txt") {
		t.Errorf("Abs = %q", entries[0].Abs)
	}
}

func TestWalkToleratesTrailingSeparator(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"one": "1", "dir/two": "2"})

	plain, err := Walk(root)
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
	slashed, err := Walk(root + string(filepath.Separator))
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
	if diff := cmp.Diff(rels(plain), rels(slashed)); diff != "" {
		t.Fatalf("trailing separator changed the listing:\n%s", diff)
	}
}

func TestWalkCurrentDirectoryKeepsDotfiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{".env": "secret", "env": "plain", "sub/.hidden": "h"})

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	want := []string{"/.env", "/env", "/sub/.hidden"}
	for _, dir := range []string{".", "./"} {
		entries, err := Walk(dir)
		if err != nil {
			t.Fatalf("Walk(%q) error: %v", dir, err)
		}
		if diff := cmp.Diff(want, rels(entries)); diff != "" {
			t.Fatalf("Walk(%q) mismatch (-want +got):\n%s", dir, diff)
		}
		for _, e := range entries {
			data, err := os.ReadFile(e.Abs)
			if err != nil {
				t.Fatal(err)
			}
			if e.Rel == "/env" && string(data) != "plain" {
				t.Errorf("%s points at %s", e.Rel, e.Abs)
			}
		}
	}
}

func TestWalkSkipsSymlinks(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"real.txt": "x", "dir/inner.txt": "y"})
	if err := os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "dir"), filepath.Join(root, "linkdir")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	entries, err := Walk(root)
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
	want := []string{"/dir/inner.txt", "/real.txt"}
	if diff := cmp.Diff(want, rels(entries)); diff != "" {
		t.Fatalf("symlinks must be skipped (-want +got):\n%s", diff)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	if _, err := Walk(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected an error for a missing root")
	}
}

func TestRelative(t *testing.T) {
	cases := []struct{ root, path, want string }{
		{"/a/b", "/a/b/c/d.txt", "/c/d.txt"},
		{".", ".env", "/.env"},
		{".", "sub/x", "/sub/x"},
		{"dir", "dir/.env", "/.env"},
	}
	for _, tc := range cases {
		if got := Relative(tc.root, tc.path); got != tc.want {
			t.Errorf("Relative(%q, %q) = %q, want %q", tc.root, tc.path, got, tc.want)
		}
	}
}

func TestSortFold(t *testing.T) {
	paths := []string{"/b", "/B", "/a", "/C"}
	SortFold(paths)
	want := []string{"/a", "/B", "/b", "/C"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("SortFold mismatch (-want +got):\n%s", diff)
	}
}
