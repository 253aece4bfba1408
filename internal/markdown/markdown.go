// Package markdown turns a small, fixed subset of Markdown into an HTML tree.
//
// A document is split into blocks on blank lines. Every block is classified
// by its shape (heading, code, quote, list, paragraph) and converted into a
// parent node whose children come from the inline tokenizer. The resulting
// nodes are wrapped in a single div.
package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgallion1/mdsite/internal/block"
	"github.com/dgallion1/mdsite/internal/htmlnode"
)

// RootTag wraps every converted document.
const RootTag = "div"

var ErrMissingTitle = errors.New("document must start with a heading")

// BlockError reports the block that stopped a conversion.
type BlockError struct {
	Index int // zero-based block position in the document
	Kind  block.Kind
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

// ToTree converts a document into its root node. The first failing block
// aborts the conversion.
func ToTree(document string) (*htmlnode.Parent, error) {
	blocks := block.Split(document)
	children := make([]htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		kind := block.Classify(b)
		n, err := block.BuildKind(b, kind)
		if err != nil {
			return nil, &BlockError{Index: i, Kind: kind, Err: err}
		}
		children = append(children, n)
	}
	return htmlnode.NewParent(RootTag, children), nil
}

// RenderDocument converts a document and serializes it to HTML.
func RenderDocument(document string) (string, error) {
	root, err := ToTree(document)
	if err != nil {
		return "", err
	}
	return htmlnode.Render(root)
}

// ExtractTitle returns the text of the heading that opens the document.
func ExtractTitle(document string) (string, error) {
	blocks := block.Split(document)
	if len(blocks) == 0 || block.Classify(blocks[0]) != block.Heading {
		return "", ErrMissingTitle
	}
	first, _, _ := strings.Cut(blocks[0], "\n")
	return strings.TrimSpace(strings.TrimLeft(first, "#")), nil
}
