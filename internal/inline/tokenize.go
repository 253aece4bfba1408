package inline

import (
	"fmt"
	"regexp"
	"strings"
)

// Delimiters, in the order they are applied.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "*"
	CodeDelimiter   = "`"
)

var (
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Tokenize splits text into spans. Bold, italic and code delimiters are
// resolved first, then images, then links. Each stage only rewrites Plain
// spans and passes the others through.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{PlainSpan(text)}
	var err error
	for _, d := range []struct {
		delim string
		kind  Kind
	}{
		{BoldDelimiter, Bold},
		{ItalicDelimiter, Italic},
		{CodeDelimiter, Code},
	} {
		if spans, err = SplitDelimiter(spans, d.delim, d.kind); err != nil {
			return nil, err
		}
	}
	if spans, err = SplitPattern(spans, imagePattern, Image); err != nil {
		return nil, err
	}
	if spans, err = SplitPattern(spans, linkPattern, Link); err != nil {
		return nil, err
	}
	return spans, nil
}

// SplitDelimiter rewrites every Plain span by scanning for delim. The scan
// starts in the plain state and toggles between plain and kind at each
// delimiter, so a delimiter count that leaves the scan in the styled state
// is an error. Empty pieces are dropped.
func SplitDelimiter(spans []Span, delim string, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}
		styled := false
		rest := s.Text
		for {
			piece, after, found := strings.Cut(rest, delim)
			if piece != "" {
				if styled {
					out = append(out, Styled(piece, kind))
				} else {
					out = append(out, PlainSpan(piece))
				}
			}
			if !found {
				break
			}
			styled = !styled
			rest = after
		}
		if styled {
			return nil, fmt.Errorf("%w: odd number of %q in %q", ErrUnterminatedEmphasis, delim, s.Text)
		}
	}
	return out, nil
}

// SplitPattern extracts every match of re from Plain spans. The first
// submatch becomes the span text and the second its target.
func SplitPattern(spans []Span, re *regexp.Regexp, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}
		matches := re.FindAllStringSubmatch(s.Text, -1)
		if len(matches) == 0 {
			out = append(out, s)
			continue
		}
		rest := s.Text
		for _, m := range matches {
			before, after, found := strings.Cut(rest, m[0])
			if !found {
				return nil, fmt.Errorf("%w: %q", ErrUnterminatedLinkOrImage, m[0])
			}
			if before != "" {
				out = append(out, PlainSpan(before))
			}
			out = append(out, Span{Text: m[1], Kind: kind, Target: m[2]})
			rest = after
		}
		if rest != "" {
			out = append(out, PlainSpan(rest))
		}
	}
	return out, nil
}

// ExtractImages returns (alt, url) pairs for every image in text.
func ExtractImages(text string) [][2]string {
	return extract(imagePattern, text)
}

// ExtractLinks returns (label, url) pairs for every link in text.
func ExtractLinks(text string) [][2]string {
	return extract(linkPattern, text)
}

func extract(re *regexp.Regexp, text string) [][2]string {
	var pairs [][2]string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		pairs = append(pairs, [2]string{m[1], m[2]})
	}
	return pairs
}
