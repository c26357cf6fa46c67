package snapshot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"snapassert/internal/content"
	"snapassert/internal/counter"
	"snapassert/internal/dirtree"
	"snapassert/internal/identity"
	"snapassert/internal/interactive"
	"snapassert/internal/naming"
	"snapassert/internal/snaperr"
)

// RefreshQuestion is asked before a stale snapshot is overwritten.
const RefreshQuestion = "Should we update snapshot with fresh data? (Y/n) "

// Options configures a Snapshot.
type Options struct {
	Identity identity.Identity
	Registry *counter.Registry // counter.Default when nil
	Version  string            // Optional tag inserted after the suite name

	// Refresh, when set, decides alone whether a stale snapshot is
	// overwritten. Otherwise RefreshAllowed and an enabled Interactive
	// facility together let the developer decide.
	Refresh        *bool
	RefreshAllowed bool
	Interactive    interactive.Facility

	NoDiff bool         // Report mismatches without a diff
	Logger *slog.Logger // Discards when nil
}

// Snapshot ties a content value to its snapshot file.
type Snapshot struct {
	content Content
	opts    Options
	key     counter.Key
	path    string // fixed by the first Assert or by SetFileName
}

// New creates a snapshot of c.
func New(c Content, opts Options) *Snapshot {
	if opts.Registry == nil {
		opts.Registry = counter.Default
	}
	if opts.Interactive == nil {
		opts.Interactive = interactive.Disabled{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Snapshot{content: c, opts: opts, key: naming.Key(opts.Identity)}
}

// Content returns the value under snapshot.
func (s *Snapshot) Content() Content { return s.content }

// FileExtension returns the extension of the snapshot file.
func (s *Snapshot) FileExtension() string { return s.content.Extension() }

// FileName returns the snapshot path. Until the snapshot is asserted or
// overridden the path names the next free index without reserving it.
func (s *Snapshot) FileName() string {
	if s.path != "" {
		return s.path
	}
	return s.resolve(s.opts.Registry.Peek(s.key))
}

// SetFileName makes the snapshot use path instead of a resolved name.
func (s *Snapshot) SetFileName(path string) {
	s.path = path
}

// PutContents writes data to the snapshot file without comparing.
func (s *Snapshot) PutContents(data string) error {
	path := s.FileName()
	if err := Save(path, rawData(data)); err != nil {
		return err
	}
	s.opts.Logger.Debug("snapshot contents written", "path", path)
	return nil
}

// SetDataVisitor installs a visitor for scalar content kinds.
func (s *Snapshot) SetDataVisitor(v content.Visitor) error {
	c, ok := s.content.(interface{ SetVisitor(content.Visitor) })
	if !ok {
		return fmt.Errorf("%w: %s snapshots take a file visitor", snaperr.ErrInvalidVisitor, s.content.Extension())
	}
	c.SetVisitor(v)
	return nil
}

// SetFileVisitor installs a visitor for directory snapshots.
func (s *Snapshot) SetFileVisitor(v dirtree.FileVisitor) error {
	c, ok := s.content.(interface{ SetFileVisitor(dirtree.FileVisitor) })
	if !ok {
		return fmt.Errorf("%w: %s snapshots take a data visitor", snaperr.ErrInvalidVisitor, s.content.Extension())
	}
	c.SetFileVisitor(v)
	return nil
}

// Assert creates the snapshot file on first use and otherwise compares
// the current value with it. The first Assert of a snapshot reserves its
// index, whatever the outcome.
func (s *Snapshot) Assert() error {
	if s.path == "" {
		s.path = s.resolve(s.opts.Registry.Next(s.key))
	}
	path := s.path
	log := s.opts.Logger.With("path", path)

	if s.content.Empty() {
		return fmt.Errorf("%w: current value is empty", snaperr.ErrContentNotFound)
	}

	exists, size, err := Stat(path)
	if err != nil {
		return err
	}
	if !exists {
		if err := Save(path, s.content); err != nil {
			return err
		}
		log.Debug("snapshot created")
		return nil
	}
	if size == 0 && !s.content.AllowsEmptySnapshot() {
		return fmt.Errorf("%w: stored snapshot %s is empty", snaperr.ErrContentNotFound, path)
	}

	err = s.content.Compare(path)
	if err == nil {
		log.Debug("data matches snapshot")
		return nil
	}

	var cmpErr *snaperr.ComparisonError
	if !errors.As(err, &cmpErr) {
		return err
	}

	if s.shouldRefresh() {
		if err := Save(path, s.content); err != nil {
			return err
		}
		log.Info("snapshot data updated")
		return nil
	}

	log.Debug("snapshot assertion failed")
	if s.opts.NoDiff {
		return cmpErr.Plain()
	}
	return cmpErr
}

func (s *Snapshot) shouldRefresh() bool {
	if s.opts.Refresh != nil {
		return *s.opts.Refresh
	}
	if !s.opts.RefreshAllowed || !s.opts.Interactive.Enabled() {
		return false
	}
	return s.opts.Interactive.Confirm(RefreshQuestion)
}

func (s *Snapshot) resolve(index int) string {
	return naming.Resolve(s.opts.Identity, index, s.content.Extension(), s.opts.Version)
}

type rawData string

func (d rawData) Dump(w io.Writer) error {
	_, err := io.WriteString(w, string(d))
	return err
}
