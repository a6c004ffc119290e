package service

import (
	"path/filepath"
	"strings"

	"file-converter/internal/domain"
)

// DetectFormat maps an uploaded file name to a known format using only
// its final extension. The filename may be attacker-controlled; nothing
// beyond the extension substring is trusted. No content sniffing is
// performed, so a mislabeled file surfaces later as an extraction
// failure rather than a detection failure.
func DetectFormat(filename string) (domain.Format, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	if ext == "" {
		return "", domain.NewFormatUnrecognizedError(filename)
	}
	info, ok := domain.LookupExtension(ext)
	if !ok {
		return "", domain.NewFormatUnrecognizedError(filename)
	}
	return info.Name, nil
}

// ParseTargetFormat resolves a caller-specified target identifier
// (case-insensitive, one of pdf/csv/excel/word/txt) to a format.
func ParseTargetFormat(name string) (domain.Format, error) {
	info, ok := domain.LookupFormat(name)
	if !ok {
		return "", domain.NewTargetUnsupportedError(name)
	}
	return info.Name, nil
}
