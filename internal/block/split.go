package block

import "strings"

// Separator divides blocks in a document.
const Separator = "\n\n"

// Split breaks a document into trimmed, non-empty blocks in document order.
func Split(document string) []string {
	parts := strings.Split(document, Separator)
	blocks := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			blocks = append(blocks, p)
		}
	}
	return blocks
}
