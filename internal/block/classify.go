package block

import (
	"strconv"
	"strings"
)

// Classify reports the kind of a block from its shape alone. Rules are
// checked in priority order. A quote or list whose lines do not all carry
// the expected marker is a Paragraph.
func Classify(block string) Kind {
	lines := strings.Split(block, "\n")
	switch {
	case strings.HasPrefix(block, headingMarker):
		return Heading
	case len(lines) > 1 &&
		strings.HasPrefix(lines[0], fenceMarker) &&
		strings.HasPrefix(lines[len(lines)-1], fenceMarker):
		return Code
	case strings.HasPrefix(block, quoteMarker):
		if allHavePrefix(lines, quoteMarker) {
			return Quote
		}
		return Paragraph
	}

	for _, m := range unorderedMarkers {
		if strings.HasPrefix(block, m) {
			if allHavePrefix(lines, m) {
				return UnorderedList
			}
			return Paragraph
		}
	}

	if strings.HasPrefix(block, orderedMarker(0)) {
		for i, line := range lines {
			if !strings.HasPrefix(line, orderedMarker(i)) {
				return Paragraph
			}
		}
		return OrderedList
	}
	return Paragraph
}

// orderedMarker is the prefix expected on line i of an ordered list.
func orderedMarker(i int) string {
	return strconv.Itoa(i+1) + ". "
}

func allHavePrefix(lines []string, prefix string) bool {
	for _, l := range lines {
		if !strings.HasPrefix(l, prefix) {
			return false
		}
	}
	return true
}
