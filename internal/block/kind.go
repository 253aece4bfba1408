package block

// Kind is the structural type of a block.
type Kind int

const (
	Paragraph Kind = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	}
	return "unknown"
}

// Markers that introduce each kind. Ordered list markers are generated per
// line by orderedMarker.
const (
	headingMarker = "#"
	fenceMarker   = "```"
	quoteMarker   = ">"
)

var unorderedMarkers = []string{"* ", "- "}

// MaxHeadingLevel is the deepest heading that can be rendered (h6).
const MaxHeadingLevel = 6
