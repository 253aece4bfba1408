package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/mdsite/internal/markdown"
	"github.com/dgallion1/mdsite/internal/page"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser renders Markdown with the built-in block/inline pipeline.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*page.Page, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	body, err := markdown.RenderDocument(string(src))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", filename, err)
	}
	title, err := markdown.ExtractTitle(string(src))
	if err != nil {
		return nil, fmt.Errorf("title %s: %w", filename, err)
	}
	return &page.Page{Title: title, Body: body}, nil
}

// CommonMarkParser renders Markdown with goldmark. The title rule matches
// MarkdownParser: the document must open with a heading.
type CommonMarkParser struct {
	md goldmark.Markdown
}

func NewCommonMarkParser() *CommonMarkParser {
	// Page sources are trusted, so raw HTML passes through like the core renderer.
	return &CommonMarkParser{md: goldmark.New(goldmark.WithRendererOptions(gmhtml.WithUnsafe()))}
}

func (p *CommonMarkParser) Parse(r io.Reader, filename string) (*page.Page, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := p.md.Parser().Parse(text.NewReader(src))
	heading, ok := doc.FirstChild().(*ast.Heading)
	if !ok {
		return nil, fmt.Errorf("title %s: %w", filename, markdown.ErrMissingTitle)
	}

	var buf bytes.Buffer
	buf.WriteString("<" + markdown.RootTag + ">")
	if err := p.md.Renderer().Render(&buf, src, doc); err != nil {
		return nil, fmt.Errorf("render %s: %w", filename, err)
	}
	buf.WriteString("</" + markdown.RootTag + ">")

	return &page.Page{
		Title: headingText(heading, src),
		Body:  buf.String(),
	}, nil
}

// headingText gets the plain text of a goldmark heading.
func headingText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			continue
		}
		buf.WriteString(headingText(c, src))
	}
	return strings.TrimSpace(buf.String())
}

// IsRenderError reports whether err came from converting page content, as
// opposed to reading it.
func IsRenderError(err error) bool {
	var be *markdown.BlockError
	return errors.As(err, &be) || errors.Is(err, markdown.ErrMissingTitle)
}
