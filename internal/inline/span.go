package inline

import "errors"

var (
	ErrUnterminatedEmphasis    = errors.New("unterminated emphasis")
	ErrUnterminatedLinkOrImage = errors.New("unterminated link or image")
	ErrInvalidSpanKind         = errors.New("invalid span kind")
)

// Kind identifies the styling of a Span.
type Kind int

const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	}
	return "unknown"
}

// Span is a run of inline text with a single kind. Target holds the URL of
// a Link or Image and is empty for every other kind.
type Span struct {
	Text   string
	Kind   Kind
	Target string
}

func PlainSpan(text string) Span { return Span{Text: text, Kind: Plain} }

func Styled(text string, kind Kind) Span { return Span{Text: text, Kind: kind} }

func LinkSpan(label, url string) Span { return Span{Text: label, Kind: Link, Target: url} }

func ImageSpan(alt, url string) Span { return Span{Text: alt, Kind: Image, Target: url} }
