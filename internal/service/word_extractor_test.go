package service

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"file-converter/internal/domain"
)

const minimalDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
    <w:p></w:p>
    <w:p><w:r><w:t>Split</w:t></w:r><w:r><w:tab/><w:t>run</w:t></w:r></w:p>
  </w:body>
</w:document>`

func stageDocx(t *testing.T, documentXML string) *domain.StagedFile {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to build archive: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("failed to build archive: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to build archive: %v", err)
	}

	path := filepath.Join(t.TempDir(), "letter.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("failed to write archive: %v", err)
	}
	return &domain.StagedFile{ID: "test", Path: path, OriginalName: "letter.docx"}
}

func TestWordExtractor_Paragraphs(t *testing.T) {
	e := NewWordExtractor(&mockLogger{})

	doc, err := e.Extract(stageDocx(t, minimalDocumentXML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Kind != domain.KindText {
		t.Fatalf("expected text document, got %s", doc.Kind)
	}
	want := []string{"First paragraph", "Split run"}
	if !reflect.DeepEqual(doc.Text.Paragraphs, want) {
		t.Fatalf("expected %v, got %v", want, doc.Text.Paragraphs)
	}
}

func TestWordExtractor_NotAnArchive(t *testing.T) {
	e := NewWordExtractor(&mockLogger{})

	staged := stageTempFile(t, "legacy.doc", "this is not a zip")
	_, err := e.Extract(staged)

	var convErr *domain.ConversionError
	if !errors.As(err, &convErr) || convErr.Kind != domain.ErrKindExtractionFailed {
		t.Fatalf("expected extraction_failed, got %v", err)
	}
}

func TestWordExtractor_MissingDocumentXML(t *testing.T) {
	e := NewWordExtractor(&mockLogger{})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, _ := zw.Create("other.xml")
	f.Write([]byte("<x/>"))
	zw.Close()

	path := filepath.Join(t.TempDir(), "odd.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("failed to write archive: %v", err)
	}

	_, err := e.Extract(&domain.StagedFile{ID: "test", Path: path})
	var convErr *domain.ConversionError
	if !errors.As(err, &convErr) || convErr.Kind != domain.ErrKindExtractionFailed {
		t.Fatalf("expected extraction_failed, got %v", err)
	}
}
