package snapassert

import (
	"log/slog"

	"snapassert/internal/config"
	"snapassert/internal/content"
	"snapassert/internal/counter"
	"snapassert/internal/dirtree"
	"snapassert/internal/identity"
	"snapassert/internal/interactive"
)

type (
	// Identity names the test a snapshot belongs to.
	Identity = identity.Identity

	// Config holds the version tag and the refresh and debug switches.
	Config = config.Config

	// Registry hands out snapshot indices.
	Registry = counter.Registry

	// Visitor rewrites current and stored text before a scalar comparison.
	Visitor = content.Visitor

	// FileVisitor rewrites the current and stored lines of one file in a
	// directory snapshot.
	FileVisitor = dirtree.FileVisitor

	// Facility asks the developer whether to refresh a snapshot.
	Facility = interactive.Facility
)

// NewRegistry returns an empty registry, for tests that need their own
// snapshot numbering.
func NewRegistry() *Registry { return counter.New() }

// Option customizes a single snapshot.
type Option func(*settings)

type settings struct {
	visitor     Visitor
	fileVisitor FileVisitor
	refresh     *bool
	noDiff      bool
	dataSet     *string
	identity    *Identity
	registry    *Registry
	config      *Config
	language    string
	interactive Facility
	logger      *slog.Logger
	fileName    string
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithVisitor installs a visitor on a string, HTML, JSON or code snapshot.
func WithVisitor(v Visitor) Option {
	return func(s *settings) { s.visitor = v }
}

// WithFileVisitor installs a visitor on a directory snapshot.
func WithFileVisitor(v FileVisitor) Option {
	return func(s *settings) { s.fileVisitor = v }
}

// WithRefresh forces (true) or forbids (false) overwriting a stale snapshot.
func WithRefresh(refresh bool) Option {
	return func(s *settings) { s.refresh = &refresh }
}

// WithoutDiff reports mismatches without a diff.
func WithoutDiff() Option {
	return func(s *settings) { s.noDiff = true }
}

// WithDataSet sets the data-set label instead of the subtest name.
func WithDataSet(label string) Option {
	return func(s *settings) { s.dataSet = &label }
}

// WithIdentity skips call stack inspection. An empty Dir defaults to the
// directory of the running test.
func WithIdentity(id Identity) Option {
	return func(s *settings) { s.identity = &id }
}

// WithRegistry numbers snapshots with r instead of the process-wide registry.
func WithRegistry(r *Registry) Option {
	return func(s *settings) { s.registry = r }
}

// WithConfig replaces the configuration found next to the test.
func WithConfig(c Config) Option {
	return func(s *settings) { s.config = &c }
}

// WithLanguage sets the extension of a code snapshot.
func WithLanguage(lang string) Option {
	return func(s *settings) { s.language = lang }
}

// WithInteractive replaces the terminal prompt.
func WithInteractive(f Facility) Option {
	return func(s *settings) { s.interactive = f }
}

// WithLogger replaces the logger writing to the test log.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithFileName makes the snapshot use path instead of a resolved name.
func WithFileName(path string) Option {
	return func(s *settings) { s.fileName = path }
}
