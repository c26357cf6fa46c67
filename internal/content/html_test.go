package content

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestIndentNestedBlocks(t *testing.T) {
	got, err := Indent("<ul><li>one</li><li>two</li></ul>")
	if err != nil {
		t.Fatalf("Indent failed: %v", err)
	}
	want := "<ul>\n    <li>\n        one\n    </li>\n    <li>\n        two\n    </li>\n</ul>"
	if got != want {
		t.Errorf("Indent() =\n%s\nwant\n%s", got, want)
	}
}

func TestIndentIgnoresFormatting(t *testing.T) {
	compact := `<div class=box><p>Hello <b>there</b></p></div>`
	spread := "<div class=\"box\">\n  <p>\n    Hello   <b>there</b>\n  </p>\n</div>\n"

	a, err := Indent(compact)
	if err != nil {
		t.Fatalf("Indent(compact) failed: %v", err)
	}
	b, err := Indent(spread)
	if err != nil {
		t.Fatalf("Indent(spread) failed: %v", err)
	}
	if a != b {
		t.Errorf("formatting changed the result:\n%s\n---\n%s", a, b)
	}
}

func TestIndentKeepsTextDifferences(t *testing.T) {
	a, _ := Indent("<p>Hello there</p>")
	b, _ := Indent("<p>Hello world</p>")
	if a == b {
		t.Errorf("different text indented to the same output %q", a)
	}
}

func TestIndentVoidAndPreformatted(t *testing.T) {
	got, err := Indent("<div><hr><pre>  a\n   b</pre></div>")
	if err != nil {
		t.Fatalf("Indent failed: %v", err)
	}
	want := "<div>\n    <hr>\n    <pre>\n  a\n   b\n    </pre>\n</div>"
	if got != want {
		t.Errorf("Indent() =\n%q\nwant\n%q", got, want)
	}
}

func TestIndentComment(t *testing.T) {
	got, err := Indent("<div><!-- note --><span>x</span></div>")
	if err != nil {
		t.Fatalf("Indent failed: %v", err)
	}
	want := "<div>\n    <!-- note -->\n    <span>x</span>\n</div>"
	if got != want {
		t.Errorf("Indent() =\n%q\nwant\n%q", got, want)
	}
}

// Property: indenting is idempotent.
func TestIndentIdempotentProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	tags := gen.OneConstOf("div", "p", "ul", "li", "span", "b", "section")

	properties.Property("Indent(Indent(x)) == Indent(x)", prop.ForAll(
		func(outer, inner string, text string) bool {
			src := "<" + outer + "><" + inner + ">" + text + "</" + inner + "></" + outer + ">"
			once, err := Indent(src)
			if err != nil {
				return false
			}
			twice, err := Indent(once)
			if err != nil {
				return false
			}
			return once == twice
		},
		tags,
		tags,
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
