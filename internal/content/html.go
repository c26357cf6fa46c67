package content

import (
	"errors"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const indentUnit = "    "

var spaceRe = regexp.MustCompile(`\s+`)

// inlineElements stay on the line of their surroundings; every other
// element gets lines of its own.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "acronym": true, "b": true, "bdo": true, "big": true,
	"br": true, "cite": true, "code": true, "dfn": true, "em": true, "i": true,
	"img": true, "kbd": true, "samp": true, "small": true, "span": true,
	"strong": true, "sub": true, "sup": true, "tt": true, "var": true,
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "param": true,
	"source": true, "track": true, "wbr": true,
}

// rawElements keep their content untouched.
var rawElements = map[string]bool{
	"pre": true, "textarea": true, "script": true, "style": true,
}

// Indent re-formats an HTML fragment so that markup differing only in
// whitespace and attribute quoting renders identically.
func Indent(src string) (string, error) {
	in := &indenter{}
	z := html.NewTokenizer(strings.NewReader(src))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			in.flush()
			return strings.Join(in.lines, "\n"), nil
		}

		raw := string(z.Raw())
		tok := z.Token()

		if in.raw != "" {
			if tt == html.EndTagToken && tok.Data == in.raw {
				in.flushRaw()
				in.raw = ""
				in.closeBlock(tok.String())
				continue
			}
			in.line.WriteString(raw)
			continue
		}

		switch tt {
		case html.TextToken:
			in.line.WriteString(spaceRe.ReplaceAllString(raw, " "))
		case html.StartTagToken:
			switch {
			case inlineElements[tok.Data]:
				in.line.WriteString(tok.String())
			case voidElements[tok.Data]:
				in.flush()
				in.emit(tok.String())
			default:
				in.openBlock(tok.String())
				if rawElements[tok.Data] {
					in.raw = tok.Data
				}
			}
		case html.EndTagToken:
			if inlineElements[tok.Data] {
				in.line.WriteString(tok.String())
				continue
			}
			in.closeBlock(tok.String())
		case html.SelfClosingTagToken:
			if inlineElements[tok.Data] {
				in.line.WriteString(tok.String())
				continue
			}
			in.flush()
			in.emit(tok.String())
		case html.CommentToken, html.DoctypeToken:
			in.flush()
			in.emit(strings.TrimSpace(raw))
		}
	}
}

type indenter struct {
	lines []string
	line  strings.Builder
	depth int
	raw   string
}

func (in *indenter) openBlock(tag string) {
	in.flush()
	in.emit(tag)
	in.depth++
}

func (in *indenter) closeBlock(tag string) {
	in.flush()
	if in.depth > 0 {
		in.depth--
	}
	in.emit(tag)
}

func (in *indenter) flush() {
	s := strings.TrimSpace(in.line.String())
	in.line.Reset()
	if s != "" {
		in.emit(s)
	}
}

// flushRaw emits preserved content without trimming or indentation.
func (in *indenter) flushRaw() {
	s := in.line.String()
	in.line.Reset()
	if s != "" {
		in.lines = append(in.lines, s)
	}
}

func (in *indenter) emit(s string) {
	in.lines = append(in.lines, strings.Repeat(indentUnit, in.depth)+s)
}
