// Package content holds the scalar snapshot kinds: plain strings, HTML,
// JSON and source code. Each kind knows its file extension, how to dump
// itself and how to compare itself with a stored snapshot file.
package content

import (
	"fmt"
	"io"
	"os"
	"strings"

	"snapassert/internal/diff"
	"snapassert/internal/snaperr"
)

// Kind identifies a scalar snapshot kind.
type Kind int

const (
	KindString Kind = iota
	KindHTML
	KindJSON
	KindCode
)

func (k Kind) String() string {
	switch k {
	case KindHTML:
		return "html"
	case KindJSON:
		return "json"
	case KindCode:
		return "code"
	default:
		return "string"
	}
}

// DefaultLanguage is the extension suffix of code snapshots without a language.
const DefaultLanguage = "code"

// Visitor rewrites the current and stored text before they are compared.
type Visitor func(current, stored string) (string, string)

// Text is a scalar value under snapshot.
type Text struct {
	kind    Kind
	value   string
	ext     string
	visitor Visitor
	diffOpt diff.Options
}

// NewString stringifies v into a string snapshot.
func NewString(v any) (*Text, error) {
	s, err := Stringify(v)
	if err != nil {
		return nil, err
	}
	return newText(KindString, s, "txt"), nil
}

// NewHTML wraps an HTML fragment. Comparison ignores formatting.
func NewHTML(s string) *Text {
	return newText(KindHTML, s, "html")
}

// NewJSON wraps a JSON document. It is compared as raw text.
func NewJSON(s string) *Text {
	return newText(KindJSON, s, "json")
}

// NewCode wraps a piece of source code. The language becomes the last
// extension segment.
func NewCode(s, language string) *Text {
	language = strings.Trim(language, ".")
	if language == "" {
		language = DefaultLanguage
	}
	return newText(KindCode, s, language)
}

func newText(kind Kind, value, ext string) *Text {
	return &Text{kind: kind, value: value, ext: "snapshot." + ext, diffOpt: diff.DefaultOptions}
}

// Kind reports the snapshot kind.
func (t *Text) Kind() Kind { return t.kind }

// Value returns the current text.
func (t *Text) Value() string { return t.value }

// Extension implements snapshot.Content.
func (t *Text) Extension() string { return t.ext }

// Empty implements snapshot.Content.
func (t *Text) Empty() bool { return t.value == "" }

// AllowsEmptySnapshot implements snapshot.Content.
func (t *Text) AllowsEmptySnapshot() bool { return false }

// Dump implements snapshot.Content.
func (t *Text) Dump(w io.Writer) error {
	_, err := io.WriteString(w, t.value)
	return err
}

// SetVisitor installs the data visitor.
func (t *Text) SetVisitor(v Visitor) {
	t.visitor = v
}

// Compare implements snapshot.Content.
func (t *Text) Compare(snapshotPath string) error {
	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		return snaperr.IO("read", snapshotPath, err)
	}

	current, stored := t.value, string(data)
	if t.visitor != nil {
		current, stored = t.visitor(current, stored)
	}
	if t.kind == KindHTML {
		if current, err = Indent(current); err != nil {
			return fmt.Errorf("%w: current html: %v", snaperr.ErrInvalidInput, err)
		}
		if stored, err = Indent(stored); err != nil {
			return fmt.Errorf("%w: stored html: %v", snaperr.ErrInvalidInput, err)
		}
	}

	if current == stored {
		return nil
	}
	return &snaperr.ComparisonError{
		Path:    snapshotPath,
		Message: fmt.Sprintf("Current %s value does not match the snapshot content.", t.kind),
		Diff:    diff.Unified("snapshot", "current", stored, current, t.diffOpt),
	}
}
