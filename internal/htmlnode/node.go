package htmlnode

import "errors"

var (
	ErrEmptyValue      = errors.New("leaf node has no value")
	ErrMissingTag      = errors.New("parent node has no tag")
	ErrMissingChildren = errors.New("parent node has no children")
)

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Attributes keeps attributes in insertion order.
type Attributes []Attr

// Get returns the value for key and whether it was present.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Node is an element of the output tree. It is either a *Leaf or a *Parent.
type Node interface {
	Tag() string
	Attrs() Attributes
	render(buf *[]byte) error
}

// Leaf is a node without children. An empty tag renders the value verbatim.
type Leaf struct {
	tag      string
	value    string
	hasValue bool
	attrs    Attributes
}

func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{tag: tag, value: value, hasValue: true, attrs: attrs}
}

func (l *Leaf) Tag() string       { return l.tag }
func (l *Leaf) Value() string     { return l.value }
func (l *Leaf) Attrs() Attributes { return l.attrs }

// Parent wraps an ordered list of children inside an element.
type Parent struct {
	tag      string
	children []Node
	attrs    Attributes
}

// NewParent builds a parent node. A nil children slice is reported as
// ErrMissingChildren at render time; an empty one renders an empty element.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	return &Parent{tag: tag, children: children, attrs: attrs}
}

func (p *Parent) Tag() string       { return p.tag }
func (p *Parent) Children() []Node  { return p.children }
func (p *Parent) Attrs() Attributes { return p.attrs }
