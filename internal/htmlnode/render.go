package htmlnode

import "fmt"

// voidElements never carry content or a closing tag.
var voidElements = map[string]bool{
	"br":  true,
	"hr":  true,
	"img": true,
}

// Render serializes n depth-first. Values and attributes are written as-is,
// nothing is escaped.
func Render(n Node) (string, error) {
	var buf []byte
	if err := n.render(&buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (l *Leaf) render(buf *[]byte) error {
	if !l.hasValue {
		return ErrEmptyValue
	}
	if l.tag == "" {
		*buf = append(*buf, l.value...)
		return nil
	}
	*buf = appendOpen(*buf, l.tag, l.attrs)
	if voidElements[l.tag] {
		return nil
	}
	*buf = append(*buf, l.value...)
	*buf = appendClose(*buf, l.tag)
	return nil
}

func (p *Parent) render(buf *[]byte) error {
	if p.tag == "" {
		return ErrMissingTag
	}
	if p.children == nil {
		return fmt.Errorf("<%s>: %w", p.tag, ErrMissingChildren)
	}
	*buf = appendOpen(*buf, p.tag, p.attrs)
	for i, c := range p.children {
		if isNil(c) {
			return fmt.Errorf("<%s> child %d: %w", p.tag, i, ErrMissingChildren)
		}
		if err := c.render(buf); err != nil {
			return err
		}
	}
	*buf = appendClose(*buf, p.tag)
	return nil
}

func appendOpen(buf []byte, tag string, attrs Attributes) []byte {
	buf = append(buf, '<')
	buf = append(buf, tag...)
	buf = appendAttrs(buf, attrs)
	return append(buf, '>')
}

func appendClose(buf []byte, tag string) []byte {
	buf = append(buf, "</"...)
	buf = append(buf, tag...)
	return append(buf, '>')
}

func appendAttrs(buf []byte, attrs Attributes) []byte {
	for _, a := range attrs {
		buf = append(buf, ' ')
		buf = append(buf, a.Key...)
		buf = append(buf, `="`...)
		buf = append(buf, a.Value...)
		buf = append(buf, '"')
	}
	return buf
}

// isNil also catches a nil *Leaf or *Parent stored in a Node, which compares
// unequal to nil. Node's unexported method keeps the set of types closed.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Leaf:
		return v == nil
	case *Parent:
		return v == nil
	}
	return false
}
