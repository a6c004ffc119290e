package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"file-converter/internal/domain"

	"github.com/google/uuid"
)

// FileStager persists upload bytes under a private temp directory with
// generated names. The user-supplied filename never reaches the
// filesystem, which rules out path traversal and collisions; only the
// recognized extension is carried over so extractors can rely on it.
type FileStager struct {
	dir    string
	logger domain.Logger
}

// NewFileStager creates a stager rooted at dir, creating it if needed.
func NewFileStager(dir string, logger domain.Logger) (*FileStager, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create staging dir %s: %w", dir, err)
	}
	return &FileStager{dir: dir, logger: logger}, nil
}

// Stage writes the upload to a uniquely named file and returns its handle.
func (s *FileStager) Stage(originalName string, content io.Reader) (*domain.StagedFile, error) {
	id := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.dir, id+ext)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, domain.NewStagingError(err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		return nil, domain.NewStagingError(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, domain.NewStagingError(err)
	}

	return &domain.StagedFile{
		ID:           id,
		Path:         path,
		OriginalName: filepath.Base(originalName),
		CreatedAt:    time.Now(),
	}, nil
}

// Release deletes the staged file. Deletion errors are logged and
// swallowed; cleanup must never escalate into the response.
func (s *FileStager) Release(staged *domain.StagedFile) {
	if staged == nil || staged.Path == "" {
		return
	}
	if err := os.Remove(staged.Path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("Failed to remove staged file", "path", staged.Path, "error", err)
	}
}
