package service

import (
	"bytes"
	"testing"

	"file-converter/internal/domain"
)

func TestPDFRenderer_TextDocument(t *testing.T) {
	r := NewPDFRenderer(&mockLogger{})

	out, err := r.Render(domain.NewTextDocument([]string{"first", "second"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:min(8, len(out))])
	}
}

func TestPDFRenderer_TabularDocument(t *testing.T) {
	r := NewPDFRenderer(&mockLogger{})

	doc := domain.NewTabularDocument(
		[]string{"name", "age"},
		[][]string{{"alice", "30"}, {"bob", "41"}},
	)
	out, err := r.Render(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestPDFRenderer_EmptyDocument(t *testing.T) {
	r := NewPDFRenderer(&mockLogger{})

	out, err := r.Render(domain.NewTabularDocument(nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected a valid empty page")
	}
}
