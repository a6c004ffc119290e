package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"file-converter/internal/domain"
)

// LocalSheetStorage writes generated sheets to the media directory
// served at /media. Used whenever Supabase credentials are absent.
type LocalSheetStorage struct {
	dir    string
	logger domain.Logger
}

// NewLocalSheetStorage creates a disk-backed sheet store rooted at dir.
func NewLocalSheetStorage(dir string, logger domain.Logger) (*LocalSheetStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory %s: %w", dir, err)
	}
	return &LocalSheetStorage{dir: dir, logger: logger}, nil
}

// Save writes the sheet under the media root and returns its serving path.
func (s *LocalSheetStorage) Save(ctx context.Context, name string, content []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write sheet %s: %w", path, err)
	}
	s.logger.Debug("sheet written to media directory", "path", path)
	return "/media/" + filepath.Base(name), nil
}
