package snapshot

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"snapassert/internal/naming"
	"snapassert/internal/snaperr"
)

// Stat reports whether the snapshot file exists and its size.
func Stat(path string) (exists bool, size int64, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, snaperr.IO("stat", path, err)
	}
	return true, info.Size(), nil
}

// Save writes the stored form of c to path. The file is replaced
// atomically: readers see either the old or the new snapshot.
func Save(path string, c Dumper) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return snaperr.IO("mkdir", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return snaperr.IO("create", path, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := c.Dump(w); err != nil {
		tmp.Close()
		return snaperr.IO("write", path, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return snaperr.IO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return snaperr.IO("write", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return snaperr.IO("chmod", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return snaperr.IO("rename", path, err)
	}
	return nil
}

// Store lists the snapshot files below a directory tree.
type Store struct {
	Dir string // Root searched for __snapshots__ directories
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// List returns every snapshot file found in a __snapshots__ directory
// below the store root, sorted by path. Foreign files are skipped.
func (s *Store) List() ([]Summary, error) {
	summaries := []Summary{}
	err := filepath.WalkDir(s.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Base(filepath.Dir(path)) != naming.DirName {
			return nil
		}
		name, err := naming.Parse(d.Name())
		if err != nil {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		summaries = append(summaries, Summary{
			Name:    name,
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime().UTC(),
		})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return []Summary{}, nil
		}
		return nil, snaperr.IO("walk", s.Dir, err)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Path < summaries[j].Path
	})
	return summaries, nil
}
