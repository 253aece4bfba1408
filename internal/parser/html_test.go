package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/mdsite/internal/markdown"
)

func TestHTMLParser_TitleAndBody(t *testing.T) {
	input := `<html><head><title>Contact</title></head><body><h1>Contact us</h1><p>Write <b>soon</b>.</p></body></html>`
	pg, err := (&HTMLParser{}).Parse(strings.NewReader(input), "contact.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pg.Title != "Contact" {
		t.Errorf("expected title %q, got %q", "Contact", pg.Title)
	}
	want := "<h1>Contact us</h1><p>Write <b>soon</b>.</p>"
	if pg.Body != want {
		t.Errorf("expected body %q, got %q", want, pg.Body)
	}
}

func TestHTMLParser_FallsBackToH1(t *testing.T) {
	input := `<body><h1> Fragment page </h1><p>x</p></body>`
	pg, err := (&HTMLParser{}).Parse(strings.NewReader(input), "fragment.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pg.Title != "Fragment page" {
		t.Errorf("expected title %q, got %q", "Fragment page", pg.Title)
	}
}

func TestHTMLParser_MissingTitle(t *testing.T) {
	_, err := (&HTMLParser{}).Parse(strings.NewReader("<p>untitled</p>"), "x.html")
	if !errors.Is(err, markdown.ErrMissingTitle) {
		t.Errorf("expected ErrMissingTitle, got %v", err)
	}
}
