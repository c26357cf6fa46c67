// Package snapassert compares test output with snapshot files stored
// next to the test.
//
// The first run of an assertion writes the current value to
// __snapshots__/<package>__<Test>[__<dataset>]__<n>.<ext> in the test's
// directory; later runs compare against that file and fail the test on
// any difference. Strings, HTML, JSON, source code and whole directory
// trees are supported:
//
//	func TestRender(t *testing.T) {
//		snapassert.MatchesHTML(t, render())
//	}
//
// Stale snapshots are overwritten with WithRefresh(true), or after a
// confirmation on the terminal when SNAPSHOT_REFRESH is set.
package snapassert

import (
	"errors"
	"os"
	"testing"

	"snapassert/internal/config"
	"snapassert/internal/content"
	"snapassert/internal/counter"
	"snapassert/internal/dirtree"
	"snapassert/internal/identity"
	"snapassert/internal/interactive"
	"snapassert/internal/snapshot"
)

// Snapshot is one snapshot file bound to a current value.
type Snapshot = snapshot.Snapshot

// MatchesString asserts that v, converted to text, matches its snapshot.
func MatchesString(tb testing.TB, v any, opts ...Option) bool {
	tb.Helper()
	s, err := String(tb, v, opts...)
	return check(tb, s, err)
}

// MatchesHTML asserts that an HTML fragment matches its snapshot,
// ignoring formatting.
func MatchesHTML(tb testing.TB, html string, opts ...Option) bool {
	tb.Helper()
	s, err := HTML(tb, html, opts...)
	return check(tb, s, err)
}

// MatchesJSON asserts that a JSON document matches its snapshot, as text.
func MatchesJSON(tb testing.TB, json string, opts ...Option) bool {
	tb.Helper()
	s, err := JSON(tb, json, opts...)
	return check(tb, s, err)
}

// MatchesCode asserts that source code matches its snapshot. The language
// given with WithLanguage becomes the file extension.
func MatchesCode(tb testing.TB, code string, opts ...Option) bool {
	tb.Helper()
	s, err := Code(tb, code, opts...)
	return check(tb, s, err)
}

// MatchesDirectory asserts that every file below path matches its snapshot.
func MatchesDirectory(tb testing.TB, path string, opts ...Option) bool {
	tb.Helper()
	s, err := Directory(tb, path, opts...)
	return check(tb, s, err)
}

// String returns a string snapshot of v for the running test.
func String(tb testing.TB, v any, opts ...Option) (*Snapshot, error) {
	c, err := content.NewString(v)
	if err != nil {
		return nil, err
	}
	return build(tb, c, newSettings(opts))
}

// HTML returns an HTML snapshot for the running test.
func HTML(tb testing.TB, html string, opts ...Option) (*Snapshot, error) {
	return build(tb, content.NewHTML(html), newSettings(opts))
}

// JSON returns a JSON snapshot for the running test.
func JSON(tb testing.TB, json string, opts ...Option) (*Snapshot, error) {
	return build(tb, content.NewJSON(json), newSettings(opts))
}

// Code returns a source code snapshot for the running test.
func Code(tb testing.TB, code string, opts ...Option) (*Snapshot, error) {
	s := newSettings(opts)
	return build(tb, content.NewCode(code, s.language), s)
}

// Directory returns a directory snapshot for the running test.
func Directory(tb testing.TB, path string, opts ...Option) (*Snapshot, error) {
	c, err := dirtree.NewContent(path)
	if err != nil {
		return nil, err
	}
	return build(tb, c, newSettings(opts))
}

func build(tb testing.TB, c snapshot.Content, s settings) (*Snapshot, error) {
	id, err := resolveIdentity(tb, s)
	if err != nil {
		return nil, err
	}

	cfg := config.Default.Get(id.Dir)
	if s.config != nil {
		cfg = *s.config
	}

	opts := snapshot.Options{
		Identity:       id,
		Registry:       s.registry,
		Version:        cfg.Version,
		Refresh:        s.refresh,
		RefreshAllowed: cfg.Refresh,
		Interactive:    s.interactive,
		NoDiff:         s.noDiff,
		Logger:         s.logger,
	}
	if opts.Registry == nil {
		opts.Registry = counter.Default
	}
	if opts.Interactive == nil {
		opts.Interactive = interactive.Stdio()
	}
	if opts.Logger == nil {
		opts.Logger = newTestLogger(tb, cfg.Debug)
	}

	snap := snapshot.New(c, opts)
	if s.visitor != nil {
		if err := snap.SetDataVisitor(s.visitor); err != nil {
			return nil, err
		}
	}
	if s.fileVisitor != nil {
		if err := snap.SetFileVisitor(s.fileVisitor); err != nil {
			return nil, err
		}
	}
	if s.fileName != "" {
		snap.SetFileName(s.fileName)
	}
	return snap, nil
}

func resolveIdentity(tb testing.TB, s settings) (Identity, error) {
	var id Identity
	if s.identity != nil {
		id = *s.identity
		if id.Dir == "" {
			dir, err := identity.CallerDir()
			if err != nil {
				if dir, err = os.Getwd(); err != nil {
					return Identity{}, err
				}
			}
			id.Dir = dir
		}
	} else {
		var err error
		if id, err = identity.Resolve(tb); err != nil {
			return Identity{}, err
		}
	}
	if s.dataSet != nil {
		id.DataSet = identity.Slug(*s.dataSet)
	}
	return id, nil
}

// check runs the assertion and reports the outcome on tb. A mismatch
// fails the test; any other error stops it.
func check(tb testing.TB, s *Snapshot, err error) bool {
	tb.Helper()
	if err == nil {
		err = s.Assert()
	}
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrComparisonFailed):
		tb.Errorf("%v", err)
	default:
		tb.Fatalf("%v", err)
	}
	return false
}
