package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/dgallion1/mdsite/internal/block"
	"github.com/dgallion1/mdsite/internal/inline"
)

func TestRenderDocument(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{
			name: "paragraph",
			md: `
This is **bolded** paragraph
text in a p
tag here

`,
			want: "<div><p>This is <b>bolded</b> paragraph text in a p tag here</p></div>",
		},
		{
			name: "paragraphs",
			md: `
This is **bolded** paragraph
text in a p
tag here

This is another paragraph with *italic* text and ` + "`code`" + ` here

`,
			want: "<div><p>This is <b>bolded</b> paragraph text in a p tag here</p><p>This is another paragraph with <i>italic</i> text and <code>code</code> here</p></div>",
		},
		{
			name: "lists",
			md: `
- This is a list
- with items
- and *more* items

1. This is an ` + "`ordered`" + ` list
2. with items
3. and more items

`,
			want: "<div><ul><li>This is a list</li><li>with items</li><li>and <i>more</i> items</li></ul><ol><li>This is an <code>ordered</code> list</li><li>with items</li><li>and more items</li></ol></div>",
		},
		{
			name: "headings",
			md: `
# this is an h1

this is paragraph text

## this is an h2
`,
			want: "<div><h1>this is an h1</h1><p>this is paragraph text</p><h2>this is an h2</h2></div>",
		},
		{
			name: "blockquote",
			md: `
> This is a
> blockquote block

this is paragraph text

`,
			want: "<div><blockquote>This is a blockquote block</blockquote><p>this is paragraph text</p></div>",
		},
		{
			name: "heading and paragraph",
			md:   "# this is an h1\n\nthis is paragraph text",
			want: "<div><h1>this is an h1</h1><p>this is paragraph text</p></div>",
		},
		{
			name: "unordered with italic",
			md:   "- item one\n- item *two*",
			want: "<div><ul><li>item one</li><li>item <i>two</i></li></ul></div>",
		},
		{
			name: "code block",
			md:   "```\ncode\n```",
			want: "<div><pre><code>code</code></pre></div>",
		},
		{
			name: "image",
			md:   "![alt](http://x/y.png)",
			want: `<div><p><img src="http://x/y.png" alt="alt"></p></div>`,
		},
		{
			name: "empty document",
			md:   "\n\n",
			want: "<div></div>",
		},
	}
	for _, tt := range tests {
		got, err := RenderDocument(tt.md)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s:\nexpected %q\n     got %q", tt.name, tt.want, got)
		}
	}
}

func TestToTree_OneChildPerBlock(t *testing.T) {
	md := "# Title\n\npara\n\n> quote\n\n* a\n* b\n\n1. x\n\n```\nc\n```"
	root, err := ToTree(md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Tag() != RootTag {
		t.Errorf("expected root tag %q, got %q", RootTag, root.Tag())
	}
	want := []string{"h1", "p", "blockquote", "ul", "ol", "pre"}
	if len(root.Children()) != len(want) {
		t.Fatalf("expected %d children, got %d", len(want), len(root.Children()))
	}
	for i, tag := range want {
		if got := root.Children()[i].Tag(); got != tag {
			t.Errorf("child %d: expected %q, got %q", i, tag, got)
		}
	}
}

func TestRenderDocument_BlockError(t *testing.T) {
	md := "# Title\n\nfine paragraph\n\nbroken **bold"
	_, err := RenderDocument(md)
	if !errors.Is(err, inline.ErrUnterminatedEmphasis) {
		t.Fatalf("expected ErrUnterminatedEmphasis, got %v", err)
	}
	var be *BlockError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BlockError, got %T", err)
	}
	if be.Index != 2 {
		t.Errorf("expected failing block 2, got %d", be.Index)
	}
	if be.Kind != block.Paragraph {
		t.Errorf("expected paragraph, got %v", be.Kind)
	}
}

func TestRenderDocument_MalformedHeading(t *testing.T) {
	_, err := RenderDocument("####### too deep")
	if !errors.Is(err, block.ErrMalformedHeading) {
		t.Errorf("expected ErrMalformedHeading, got %v", err)
	}
}

func TestRenderDocument_Structure(t *testing.T) {
	md := `# Welcome

Read the [guide](/guide.html) or **skip** it.

> Quoted *words*

1. first
2. second
3. third
`
	html, err := RenderDocument(md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}
	if got := doc.Find("div > h1").Text(); got != "Welcome" {
		t.Errorf("expected h1 %q, got %q", "Welcome", got)
	}
	if href, _ := doc.Find("div > p > a").Attr("href"); href != "/guide.html" {
		t.Errorf("expected link href %q, got %q", "/guide.html", href)
	}
	if got := doc.Find("blockquote i").Text(); got != "words" {
		t.Errorf("expected italic %q, got %q", "words", got)
	}
	if n := doc.Find("ol > li").Length(); n != 3 {
		t.Errorf("expected 3 list items, got %d", n)
	}
}

func TestRenderDocument_Idempotent(t *testing.T) {
	md := "# T\n\n*a* **b** `c`"
	first, err := RenderDocument(md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := RenderDocument(md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("expected identical renders, got %q and %q", first, second)
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		md   string
		want string
	}{
		{"# Hello", "Hello"},
		{"#   Spaced Title   \n\nbody", "Spaced Title"},
		{"\n\n## Second level\n\ntext", "Second level"},
		{"# Tolkien Fan Club\nsubtitle line", "Tolkien Fan Club"},
		{"# C# in depth", "C# in depth"},
	}
	for _, tt := range tests {
		got, err := ExtractTitle(tt.md)
		if err != nil {
			t.Fatalf("ExtractTitle(%q): unexpected error: %v", tt.md, err)
		}
		if got != tt.want {
			t.Errorf("ExtractTitle(%q): expected %q, got %q", tt.md, tt.want, got)
		}
	}
}

func TestExtractTitle_Missing(t *testing.T) {
	for _, md := range []string{"no heading here", "", "para\n\n# late heading"} {
		if _, err := ExtractTitle(md); !errors.Is(err, ErrMissingTitle) {
			t.Errorf("ExtractTitle(%q): expected ErrMissingTitle, got %v", md, err)
		}
	}
}
