package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"file-converter/internal/domain"
)

// Mock logger used by service package tests.
type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// stageTempFile writes content to a temp file and wraps it as a staged
// file for extractor tests.
func stageTempFile(t *testing.T, name, content string) *domain.StagedFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return &domain.StagedFile{
		ID:           "test",
		Path:         path,
		OriginalName: name,
		CreatedAt:    time.Now(),
	}
}

// countingExtractor records how often Extract is called.
type countingExtractor struct {
	calls int
	doc   *domain.CanonicalDocument
	err   error
}

func (e *countingExtractor) Extract(staged *domain.StagedFile) (*domain.CanonicalDocument, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.doc, nil
}

// stubRenderer returns fixed bytes.
type stubRenderer struct {
	calls int
	out   []byte
	err   error
}

func (r *stubRenderer) Render(doc *domain.CanonicalDocument) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.out, nil
}
