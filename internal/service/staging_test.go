package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStager_StageAndRelease(t *testing.T) {
	dir := t.TempDir()
	stager, err := NewFileStager(dir, &mockLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	staged, err := stager.Stage("report.pdf", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if staged.OriginalName != "report.pdf" {
		t.Errorf("expected original name to be kept, got %s", staged.OriginalName)
	}
	if filepath.Ext(staged.Path) != ".pdf" {
		t.Errorf("expected staged path to keep the extension, got %s", staged.Path)
	}
	if strings.Contains(filepath.Base(staged.Path), "report") {
		t.Errorf("expected generated name, got %s", staged.Path)
	}

	data, err := os.ReadFile(staged.Path)
	if err != nil {
		t.Fatalf("staged file not readable: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("unexpected staged content: %s", data)
	}

	stager.Release(staged)

	if _, err := os.Stat(staged.Path); !os.IsNotExist(err) {
		t.Fatalf("expected staged file to be removed")
	}
}

func TestFileStager_NoFileSurvives(t *testing.T) {
	dir := t.TempDir()
	stager, err := NewFileStager(dir, &mockLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"a.csv", "b.txt", "c.docx"} {
		staged, err := stager.Stage(name, strings.NewReader("x"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stager.Release(staged)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty staging dir, found %d entries", len(entries))
	}
}

func TestFileStager_ReleaseTwice(t *testing.T) {
	stager, err := NewFileStager(t.TempDir(), &mockLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	staged, err := stager.Stage("a.txt", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stager.Release(staged)
	stager.Release(staged)
	stager.Release(nil)
}
