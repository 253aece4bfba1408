package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/mdsite/internal/page"
)

// Renderer names accepted by ForFile.
const (
	RendererCore       = "core"
	RendererCommonMark = "commonmark"
)

var ErrUnsupported = errors.New("unsupported file extension")

// Parser converts raw source bytes into a Page.
type Parser interface {
	Parse(r io.Reader, filename string) (*page.Page, error)
}

// SupportedExtensions lists source extensions that produce pages.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// ForFile returns the appropriate parser for a filename. renderer selects
// the markdown implementation and defaults to the core one.
func ForFile(filename, renderer string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		switch renderer {
		case "", RendererCore:
			return &MarkdownParser{}, nil
		case RendererCommonMark:
			return NewCommonMarkParser(), nil
		default:
			return nil, fmt.Errorf("unknown renderer: %s", renderer)
		}
	case ".html", ".htm":
		return &HTMLParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// OutputName maps a source filename onto the name of the page it produces.
func OutputName(filename string) string {
	ext := filepath.Ext(filename)
	switch strings.ToLower(ext) {
	case ".md", ".markdown":
		return strings.TrimSuffix(filename, ext) + ".html"
	}
	return filename
}
