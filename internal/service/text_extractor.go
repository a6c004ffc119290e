package service

import (
	"bytes"
	"os"
	"strings"

	"file-converter/internal/domain"
)

// TextExtractor splits plain text on newlines; non-blank lines become
// canonical paragraphs. Whether those paragraphs later become rows is a
// renderer decision, not an extraction one.
type TextExtractor struct {
	logger domain.Logger
}

// NewTextExtractor creates a new plain-text extractor
func NewTextExtractor(logger domain.Logger) *TextExtractor {
	return &TextExtractor{logger: logger}
}

// Extract reads the staged file and returns its non-blank lines.
func (e *TextExtractor) Extract(staged *domain.StagedFile) (*domain.CanonicalDocument, error) {
	raw, err := os.ReadFile(staged.Path)
	if err != nil {
		return nil, domain.NewExtractionError(domain.FormatTXT, err)
	}

	text := string(bytes.ToValidUTF8(raw, []byte{}))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paragraphs = append(paragraphs, line)
		}
	}

	return domain.NewTextDocument(paragraphs), nil
}
