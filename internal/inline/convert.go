package inline

import (
	"fmt"

	"github.com/dgallion1/mdsite/internal/htmlnode"
)

// ToNode maps a span onto a leaf node.
func ToNode(s Span) (*htmlnode.Leaf, error) {
	switch s.Kind {
	case Plain:
		return htmlnode.NewLeaf("", s.Text), nil
	case Bold:
		return htmlnode.NewLeaf("b", s.Text), nil
	case Italic:
		return htmlnode.NewLeaf("i", s.Text), nil
	case Code:
		return htmlnode.NewLeaf("code", s.Text), nil
	case Link:
		return htmlnode.NewLeaf("a", s.Text, htmlnode.Attr{Key: "href", Value: s.Target}), nil
	case Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Value: s.Target},
			htmlnode.Attr{Key: "alt", Value: s.Text},
		), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidSpanKind, s.Kind)
}

// Children tokenizes text and converts every span into a node.
func Children(text string) ([]htmlnode.Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		n, err := ToNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
