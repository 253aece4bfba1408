package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/mdsite/internal/markdown"
	"github.com/dgallion1/mdsite/internal/page"
	"golang.org/x/net/html"
)

// HTMLParser passes hand-written HTML pages through to the template.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*page.Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := findTitle(doc)
	if title == "" {
		if h1 := findElement(doc, "h1"); h1 != nil {
			title = textContent(h1)
		}
	}
	if title == "" {
		return nil, fmt.Errorf("title %s: %w", filename, markdown.ErrMissingTitle)
	}

	var buf bytes.Buffer
	if body := findElement(doc, "body"); body != nil {
		for c := body.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return nil, fmt.Errorf("render html: %w", err)
			}
		}
	}

	return &page.Page{
		Title: title,
		Body:  strings.TrimSpace(buf.String()),
	}, nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if t := findElement(n, "title"); t != nil {
		return textContent(t)
	}
	return ""
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if e := findElement(c, tag); e != nil {
			return e
		}
	}
	return nil
}
