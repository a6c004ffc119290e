package service

import (
	"os"
	"strings"

	"file-converter/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// PDFExtractor pulls per-page text content from a page-layout document
// in page order. Purely graphical pages contribute nothing; blank
// paragraphs are dropped.
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

// Extract reads the staged PDF and produces a text view, one paragraph
// per detected text block, pages concatenated in order.
func (e *PDFExtractor) Extract(staged *domain.StagedFile) (*domain.CanonicalDocument, error) {
	pdfBytes, err := os.ReadFile(staged.Path)
	if err != nil {
		return nil, domain.NewExtractionError(domain.FormatPDF, err)
	}

	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, domain.NewExtractionError(domain.FormatPDF, err)
	}
	defer doc.Close()

	var paragraphs []string
	numPages := doc.NumPage()
	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", err)
			continue
		}
		paragraphs = append(paragraphs, splitIntoParagraphs(text)...)
	}

	return domain.NewTextDocument(paragraphs), nil
}

// splitIntoParagraphs splits extracted text into paragraphs on double
// newlines; single newlines within a paragraph become spaces.
func splitIntoParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(strings.ReplaceAll(para, "\n", " "))
		if para != "" {
			result = append(result, para)
		}
	}
	return result
}
