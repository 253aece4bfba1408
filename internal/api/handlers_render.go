package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dgallion1/mdsite/internal/markdown"
	"github.com/dgallion1/mdsite/internal/parser"
)

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	var html string
	err := s.stats.Time(func() error {
		var err error
		html, err = markdown.RenderDocument(doc)
		return err
	})
	if err != nil {
		s.renderError(w, err)
		return
	}

	// A page fragment without a leading heading still renders.
	title, err := markdown.ExtractTitle(doc)
	if err != nil && !errors.Is(err, markdown.ErrMissingTitle) {
		s.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"title": title,
		"html":  html,
	})
}

func (s *Server) handleTitle(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	title, err := markdown.ExtractTitle(doc)
	if err != nil {
		s.renderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"title": title})
}

// readDocument reads the raw Markdown request body, bounded by MaxUploadBytes.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("document exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return "", false
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return "", false
	}
	return string(data), true
}

// renderError maps conversion failures to 422 and anything else to 500.
func (s *Server) renderError(w http.ResponseWriter, err error) {
	if parser.IsRenderError(err) {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.log.Error("render failed", "error", err)
	jsonError(w, "internal error", http.StatusInternalServerError)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
