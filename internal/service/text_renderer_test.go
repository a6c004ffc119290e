package service

import (
	"strings"
	"testing"

	"file-converter/internal/domain"
)

func TestTextRenderer_Paragraphs(t *testing.T) {
	r := NewTextRenderer(&mockLogger{})

	doc := domain.NewTextDocument([]string{"first", "second"})
	out, err := r.Render(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(out) != "first\nsecond\n" {
		t.Fatalf("expected one line per paragraph, got %q", out)
	}
}

func TestTextRenderer_SingleParagraph(t *testing.T) {
	r := NewTextRenderer(&mockLogger{})

	out, err := r.Render(domain.NewTextDocument([]string{"only"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "only\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestTextRenderer_TabularAligned(t *testing.T) {
	r := NewTextRenderer(&mockLogger{})

	doc := domain.NewTabularDocument(
		[]string{"name", "n"},
		[][]string{{"alice", "1"}, {"bo", "22"}},
	)
	out, err := r.Render(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	// Second column starts at the same offset on every line.
	offset := strings.Index(lines[1], "1")
	if offset < 0 {
		t.Fatalf("missing cell in %q", lines[1])
	}
	if strings.Index(lines[2], "22") != offset {
		t.Fatalf("columns not aligned:\n%s", out)
	}
}

func TestTextRenderer_Empty(t *testing.T) {
	r := NewTextRenderer(&mockLogger{})

	out, err := r.Render(domain.NewTextDocument(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %q", out)
	}
}
