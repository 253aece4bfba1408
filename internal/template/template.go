package template

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Placeholders substituted into a page template.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

var ErrMissingPlaceholder = errors.New("template placeholder missing")

// Template is a page layout with one title and one content placeholder.
type Template struct {
	lines []string
}

// Parse validates src and splits it into lines, keeping line endings.
func Parse(src string) (*Template, error) {
	for _, ph := range []string{TitlePlaceholder, ContentPlaceholder} {
		if !strings.Contains(src, ph) {
			return nil, fmt.Errorf("%w: %s", ErrMissingPlaceholder, ph)
		}
	}
	return &Template{lines: strings.SplitAfter(src, "\n")}, nil
}

// Load reads and parses a template file.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	t, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Execute substitutes title and content line by line. A line holding the
// title placeholder only gets the title.
func (t *Template) Execute(title, content string) string {
	var sb strings.Builder
	for _, line := range t.lines {
		switch {
		case strings.Contains(line, TitlePlaceholder):
			sb.WriteString(strings.ReplaceAll(line, TitlePlaceholder, title))
		case strings.Contains(line, ContentPlaceholder):
			sb.WriteString(strings.ReplaceAll(line, ContentPlaceholder, content))
		default:
			sb.WriteString(line)
		}
	}
	return sb.String()
}
