package block

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgallion1/mdsite/internal/htmlnode"
	"github.com/dgallion1/mdsite/internal/inline"
)

var (
	ErrMalformedHeading   = errors.New("malformed heading")
	ErrMalformedCodeBlock = errors.New("malformed code block")
	ErrMalformedQuote     = errors.New("malformed quote")
)

// Build classifies block and converts it into a parent node.
func Build(block string) (*htmlnode.Parent, error) {
	return BuildKind(block, Classify(block))
}

// BuildKind converts block using the builder for kind.
func BuildKind(block string, kind Kind) (*htmlnode.Parent, error) {
	switch kind {
	case Heading:
		return buildHeading(block)
	case Code:
		return buildCode(block)
	case Quote:
		return buildQuote(block)
	case UnorderedList:
		return buildList(block, "ul", unorderedItemText)
	case OrderedList:
		return buildList(block, "ol", orderedItemText)
	default:
		return buildParagraph(block)
	}
}

func buildParagraph(block string) (*htmlnode.Parent, error) {
	text := strings.Join(strings.Split(block, "\n"), " ")
	children, err := inline.Children(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("p", children), nil
}

// HeadingLevel counts the leading '#' run of block.
func HeadingLevel(block string) int {
	return len(block) - len(strings.TrimLeft(block, headingMarker))
}

func buildHeading(block string) (*htmlnode.Parent, error) {
	level := HeadingLevel(block)
	if level < 1 || level > MaxHeadingLevel {
		return nil, fmt.Errorf("%w: level %d", ErrMalformedHeading, level)
	}
	if level+1 >= len(block) {
		return nil, fmt.Errorf("%w: no title after %q", ErrMalformedHeading, block[:level])
	}
	if block[level] != ' ' {
		return nil, fmt.Errorf("%w: missing space after %q", ErrMalformedHeading, block[:level])
	}
	children, err := inline.Children(block[level+1:])
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(fmt.Sprintf("h%d", level), children), nil
}

func buildCode(block string) (*htmlnode.Parent, error) {
	// Opening fence plus newline, then the closing fence.
	const openLen, closeLen = len(fenceMarker) + 1, len(fenceMarker)
	if len(block) < openLen+closeLen ||
		!strings.HasPrefix(block, fenceMarker) ||
		!strings.HasSuffix(block, fenceMarker) {
		return nil, ErrMalformedCodeBlock
	}
	// The newline before the closing fence is not part of the code.
	text := block[openLen:]
	if trimmed, ok := strings.CutSuffix(text, "\n"+fenceMarker); ok {
		text = trimmed
	} else {
		text = text[:len(text)-closeLen]
	}
	children, err := inline.Children(text)
	if err != nil {
		return nil, err
	}
	code := htmlnode.NewParent("code", children)
	return htmlnode.NewParent("pre", []htmlnode.Node{code}), nil
}

func buildQuote(block string) (*htmlnode.Parent, error) {
	lines := strings.Split(block, "\n")
	stripped := make([]string, 0, len(lines))
	for i, line := range lines {
		if !strings.HasPrefix(line, quoteMarker) {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedQuote, i+1)
		}
		stripped = append(stripped, strings.TrimSpace(strings.TrimLeft(line, quoteMarker)))
	}
	children, err := inline.Children(strings.Join(stripped, " "))
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("blockquote", children), nil
}

// buildList wraps the text of every line in an li.
func buildList(block, tag string, itemText func(i int, line string) string) (*htmlnode.Parent, error) {
	lines := strings.Split(block, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for i, line := range lines {
		children, err := inline.Children(itemText(i, line))
		if err != nil {
			return nil, err
		}
		items = append(items, htmlnode.NewParent("li", children))
	}
	return htmlnode.NewParent(tag, items), nil
}

// unorderedItemText drops the two byte "* " or "- " marker.
func unorderedItemText(_ int, line string) string {
	if len(line) < 2 {
		return ""
	}
	return line[2:]
}

// orderedItemText strips the "N. " marker Classify validated for line i,
// which is wider than three bytes once N reaches 10.
func orderedItemText(i int, line string) string {
	return strings.TrimPrefix(line, orderedMarker(i))
}
