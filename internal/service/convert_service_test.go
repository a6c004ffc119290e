package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"file-converter/internal/domain"
)

func newTestConverter(t *testing.T, d *Dispatcher) (*DocumentConverter, string) {
	t.Helper()
	dir := t.TempDir()
	stager, err := NewFileStager(dir, &mockLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewDocumentConverter(d, stager, &mockLogger{}), dir
}

func TestDocumentConverter_Success(t *testing.T) {
	extractor := &countingExtractor{doc: domain.NewTextDocument([]string{"hello"})}
	renderer := &stubRenderer{out: []byte("rendered")}

	d := NewDispatcher(&mockLogger{})
	d.Register(domain.FormatTXT, domain.FormatCSV, extractor, renderer)

	converter, stagingDir := newTestConverter(t, d)

	result, err := converter.Convert(context.Background(), "notes.txt", strings.NewReader("hello"), "csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(result.Bytes) != "rendered" {
		t.Errorf("unexpected bytes: %q", result.Bytes)
	}
	if result.Filename != "notes_converted.csv" {
		t.Errorf("expected notes_converted.csv, got %s", result.Filename)
	}
	if result.MediaType != "text/csv" {
		t.Errorf("expected text/csv, got %s", result.MediaType)
	}
	if extractor.calls != 1 || renderer.calls != 1 {
		t.Errorf("expected one extract and one render, got %d and %d", extractor.calls, renderer.calls)
	}

	entries, _ := os.ReadDir(stagingDir)
	if len(entries) != 0 {
		t.Errorf("expected staged file to be released, found %d entries", len(entries))
	}
}

func TestDocumentConverter_IdenticalFormatsBeforeStaging(t *testing.T) {
	extractor := &countingExtractor{doc: domain.NewTextDocument(nil)}
	d := NewDispatcher(&mockLogger{})
	d.Register(domain.FormatTXT, domain.FormatCSV, extractor, &stubRenderer{})

	converter, stagingDir := newTestConverter(t, d)

	_, err := converter.Convert(context.Background(), "notes.txt", strings.NewReader("x"), "txt")
	var convErr *domain.ConversionError
	if !errors.As(err, &convErr) || convErr.Kind != domain.ErrKindIdenticalFormats {
		t.Fatalf("expected identical_formats, got %v", err)
	}
	if extractor.calls != 0 {
		t.Errorf("expected no extraction, got %d calls", extractor.calls)
	}
	entries, _ := os.ReadDir(stagingDir)
	if len(entries) != 0 {
		t.Errorf("expected nothing staged, found %d entries", len(entries))
	}
}

func TestDocumentConverter_UnrecognizedSource(t *testing.T) {
	converter, _ := newTestConverter(t, NewDefaultDispatcher(&mockLogger{}))

	_, err := converter.Convert(context.Background(), "photo.png", strings.NewReader("x"), "pdf")
	var convErr *domain.ConversionError
	if !errors.As(err, &convErr) || convErr.Kind != domain.ErrKindFormatUnrecognized {
		t.Fatalf("expected format_unrecognized, got %v", err)
	}
}

func TestDocumentConverter_ExtractionFailureReleasesFile(t *testing.T) {
	extractor := &countingExtractor{err: domain.NewExtractionError(domain.FormatTXT, errors.New("corrupt"))}
	d := NewDispatcher(&mockLogger{})
	d.Register(domain.FormatTXT, domain.FormatCSV, extractor, &stubRenderer{})

	converter, stagingDir := newTestConverter(t, d)

	_, err := converter.Convert(context.Background(), "notes.txt", strings.NewReader("x"), "csv")
	var convErr *domain.ConversionError
	if !errors.As(err, &convErr) || convErr.Kind != domain.ErrKindExtractionFailed {
		t.Fatalf("expected extraction_failed, got %v", err)
	}

	entries, _ := os.ReadDir(stagingDir)
	if len(entries) != 0 {
		t.Errorf("expected staged file to be released after failure, found %d entries", len(entries))
	}
}

func TestDocumentConverter_RenderFailureReleasesFile(t *testing.T) {
	extractor := &countingExtractor{doc: domain.NewTextDocument([]string{"hello"})}
	renderer := &stubRenderer{err: domain.NewRenderError(domain.FormatCSV, errors.New("boom"))}
	d := NewDispatcher(&mockLogger{})
	d.Register(domain.FormatTXT, domain.FormatCSV, extractor, renderer)

	converter, stagingDir := newTestConverter(t, d)

	_, err := converter.Convert(context.Background(), "notes.txt", strings.NewReader("x"), "csv")
	var convErr *domain.ConversionError
	if !errors.As(err, &convErr) || convErr.Kind != domain.ErrKindRenderFailed {
		t.Fatalf("expected render_failed, got %v", err)
	}

	entries, _ := os.ReadDir(stagingDir)
	if len(entries) != 0 {
		t.Errorf("expected staged file to be released after failure, found %d entries", len(entries))
	}
}

func TestConvertedFilename(t *testing.T) {
	cases := []struct {
		original string
		target   domain.Format
		want     string
	}{
		{"report.pdf", domain.FormatCSV, "report_converted.csv"},
		{"data.v2.xlsx", domain.FormatWord, "data.v2_converted.docx"},
		{"dir/inner.txt", domain.FormatPDF, "inner_converted.pdf"},
		{".csv", domain.FormatTXT, "document_converted.txt"},
	}
	for _, c := range cases {
		if got := convertedFilename(c.original, c.target); got != c.want {
			t.Errorf("%s -> %s: expected %s, got %s", c.original, c.target, c.want, got)
		}
	}
}
