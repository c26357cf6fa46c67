// Package dirtree serializes a directory into a single text snapshot and
// compares a directory against such a snapshot file by file.
//
// Snapshot body:
//
//	>>> /relative/path/one >>>
//	<raw file bytes>
//	<<< /relative/path/one <<<
//
//	>>> /relative/path/two >>>
//	...
//
// Symlinks and other non-regular files are skipped.
package dirtree

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"snapassert/internal/snaperr"
)

// Entry is a regular file found under a root.
type Entry struct {
	Rel string // root-relative path with forward slashes and a leading "/"
	Abs string // filesystem path
}

// Walk returns every regular file under root in case-insensitive path order.
func Walk(root string) ([]Entry, error) {
	root = TrimRoot(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, snaperr.IO("stat", root, err)
	}
	if !info.IsDir() {
		return nil, snaperr.IO("walk", root, fs.ErrInvalid)
	}

	var entries []Entry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return snaperr.IO("walk", path, err)
		}
		if d.Type()&fs.ModeSymlink != 0 || d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		entries = append(entries, Entry{Rel: Relative(root, path), Abs: path})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return lessFold(entries[i].Rel, entries[j].Rel)
	})
	return entries, nil
}

// TrimRoot drops trailing separators so that "dir" and "dir/" walk alike.
func TrimRoot(root string) string {
	trimmed := strings.TrimRight(root, `/\`)
	if trimmed == "" {
		return root
	}
	return filepath.Clean(trimmed)
}

// Relative strips root from path by literal prefix removal. WalkDir
// yields paths below "." without a "./" prefix, so they are kept whole.
func Relative(root, path string) string {
	if root != "." {
		path = strings.TrimPrefix(path, root)
	}
	rel := filepath.ToSlash(path)
	return "/" + strings.TrimLeft(rel, "/")
}

// SortFold sorts paths case-insensitively, ties broken byte-wise.
func SortFold(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return lessFold(paths[i], paths[j])
	})
}

func lessFold(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
