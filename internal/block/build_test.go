package block

import (
	"errors"
	"testing"

	"github.com/dgallion1/mdsite/internal/htmlnode"
	"github.com/dgallion1/mdsite/internal/inline"
)

func render(t *testing.T, block string) string {
	t.Helper()
	n, err := Build(block)
	if err != nil {
		t.Fatalf("Build(%q): unexpected error: %v", block, err)
	}
	html, err := htmlnode.Render(n)
	if err != nil {
		t.Fatalf("Render(%q): unexpected error: %v", block, err)
	}
	return html
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  string
	}{
		{"paragraph", "This is **bolded** paragraph\ntext in a p\ntag here", "<p>This is <b>bolded</b> paragraph text in a p tag here</p>"},
		{"h1", "# this is an h1", "<h1>this is an h1</h1>"},
		{"h6", "###### deep *one*", "<h6>deep <i>one</i></h6>"},
		{"code", "```\ncode\n```", "<pre><code>code</code></pre>"},
		{"empty code", "```\n```", "<pre><code></code></pre>"},
		{"multiline code", "```\nfirst\nsecond\n```", "<pre><code>first\nsecond</code></pre>"},
		{"code with blank last line", "```\nx\n\n```", "<pre><code>x\n</code></pre>"},
		{"quote", "> This is a\n> blockquote block", "<blockquote>This is a blockquote block</blockquote>"},
		{"nested quote marker", ">> deeper\n>  spaced", "<blockquote>deeper spaced</blockquote>"},
		{"unordered", "- item one\n- item *two*", "<ul><li>item one</li><li>item <i>two</i></li></ul>"},
		{"unordered star", "* a\n* b", "<ul><li>a</li><li>b</li></ul>"},
		{"ordered", "1. This is an `ordered` list\n2. with items\n3. and more items", "<ol><li>This is an <code>ordered</code> list</li><li>with items</li><li>and more items</li></ol>"},
		{"link paragraph", "see [docs](https://go.dev)", `<p>see <a href="https://go.dev">docs</a></p>`},
	}
	for _, tt := range tests {
		if got := render(t, tt.block); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestBuild_OrderedListPastNine(t *testing.T) {
	block := "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i\n10. j"
	want := "<ol><li>a</li><li>b</li><li>c</li><li>d</li><li>e</li><li>f</li><li>g</li><li>h</li><li>i</li><li>j</li></ol>"
	if got := render(t, block); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name  string
		block string
		kind  Kind
		want  error
	}{
		{"heading without title", "#", Heading, ErrMalformedHeading},
		{"heading marker only", "###", Heading, ErrMalformedHeading},
		{"heading too deep", "####### seven", Heading, ErrMalformedHeading},
		{"heading without space", "#tag", Heading, ErrMalformedHeading},
		{"code without closing fence", "```\ncode", Code, ErrMalformedCodeBlock},
		{"code too short", "``````", Code, ErrMalformedCodeBlock},
		{"quote line without marker", "> a\nb", Quote, ErrMalformedQuote},
		{"unterminated bold", "a **b", Paragraph, inline.ErrUnterminatedEmphasis},
	}
	for _, tt := range tests {
		_, err := BuildKind(tt.block, tt.kind)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestHeadingLevel(t *testing.T) {
	for block, want := range map[string]int{"# a": 1, "### c": 3, "plain": 0, "######x": 6} {
		if got := HeadingLevel(block); got != want {
			t.Errorf("HeadingLevel(%q): expected %d, got %d", block, want, got)
		}
	}
}
