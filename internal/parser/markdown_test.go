package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/mdsite/internal/markdown"
)

func TestMarkdownParser_Page(t *testing.T) {
	input := "# Tolkien Fan Club\n\n**I like Tolkien**. Read my [first post](/majesty).\n"
	p := &MarkdownParser{}
	pg, err := p.Parse(strings.NewReader(input), "index.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pg.Title != "Tolkien Fan Club" {
		t.Errorf("expected title %q, got %q", "Tolkien Fan Club", pg.Title)
	}
	want := `<div><h1>Tolkien Fan Club</h1><p><b>I like Tolkien</b>. Read my <a href="/majesty">first post</a>.</p></div>`
	if pg.Body != want {
		t.Errorf("expected body %q, got %q", want, pg.Body)
	}
}

func TestMarkdownParser_MissingTitle(t *testing.T) {
	p := &MarkdownParser{}
	_, err := p.Parse(strings.NewReader("no heading here"), "notes.md")
	if !errors.Is(err, markdown.ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got %v", err)
	}
	if !IsRenderError(err) {
		t.Error("expected a render error")
	}
}

func TestMarkdownParser_RenderFailure(t *testing.T) {
	p := &MarkdownParser{}
	_, err := p.Parse(strings.NewReader("# Title\n\nbroken *italic"), "broken.md")
	if err == nil {
		t.Fatal("expected error")
	}
	var be *markdown.BlockError
	if !errors.As(err, &be) {
		t.Fatalf("expected *markdown.BlockError, got %T", err)
	}
	if !strings.Contains(err.Error(), "broken.md") {
		t.Errorf("expected filename in error, got %q", err)
	}
}

func TestCommonMarkParser_Page(t *testing.T) {
	input := "# API Reference\n\nSome *intro*.\n"
	p := NewCommonMarkParser()
	pg, err := p.Parse(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pg.Title != "API Reference" {
		t.Errorf("expected title %q, got %q", "API Reference", pg.Title)
	}
	if !strings.HasPrefix(pg.Body, "<div>") || !strings.HasSuffix(pg.Body, "</div>") {
		t.Errorf("expected body wrapped in div, got %q", pg.Body)
	}
	if !strings.Contains(pg.Body, "<em>intro</em>") {
		t.Errorf("expected goldmark emphasis, got %q", pg.Body)
	}
}

func TestCommonMarkParser_MissingTitle(t *testing.T) {
	_, err := NewCommonMarkParser().Parse(strings.NewReader("just text"), "plain.md")
	if !errors.Is(err, markdown.ErrMissingTitle) {
		t.Errorf("expected ErrMissingTitle, got %v", err)
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		renderer string
		want     string
	}{
		{"readme.md", "", "*parser.MarkdownParser"},
		{"notes.markdown", RendererCore, "*parser.MarkdownParser"},
		{"guide.MD", RendererCommonMark, "*parser.CommonMarkParser"},
		{"about.html", RendererCore, "*parser.HTMLParser"},
		{"legacy.htm", RendererCommonMark, "*parser.HTMLParser"},
	}
	for _, tt := range tests {
		p, err := ForFile(tt.filename, tt.renderer)
		if err != nil {
			t.Fatalf("ForFile(%q): unexpected error: %v", tt.filename, err)
		}
		if got := typeName(p); got != tt.want {
			t.Errorf("ForFile(%q): expected %s, got %s", tt.filename, tt.want, got)
		}
	}
}

func TestForFile_Errors(t *testing.T) {
	if _, err := ForFile("image.png", RendererCore); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if _, err := ForFile("page.md", "pandoc"); err == nil {
		t.Error("expected error for unknown renderer")
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"index.md", "index.html"},
		{"blog/post.markdown", "blog/post.html"},
		{"about.html", "about.html"},
		{"md/readme.md", "md/readme.html"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.in); got != tt.want {
			t.Errorf("OutputName(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func typeName(p Parser) string {
	switch p.(type) {
	case *MarkdownParser:
		return "*parser.MarkdownParser"
	case *CommonMarkParser:
		return "*parser.CommonMarkParser"
	case *HTMLParser:
		return "*parser.HTMLParser"
	}
	return "unknown"
}

func TestCommonMarkParser_RawHTML(t *testing.T) {
	pg, err := NewCommonMarkParser().Parse(strings.NewReader("# T\n\n<span class=\"x\">raw</span>\n"), "t.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(pg.Body, `<span class="x">raw</span>`) {
		t.Errorf("expected raw HTML to pass through, got %q", pg.Body)
	}
}
