package service

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"

	"file-converter/internal/domain"
)

// WordExtractor walks the document body of a .docx archive in paragraph
// order by streaming word/document.xml. Each non-blank paragraph's
// visible text becomes one canonical paragraph; blank paragraphs are
// skipped. Formatting (bold, italic, fonts) is not preserved.
type WordExtractor struct {
	logger domain.Logger
}

// NewWordExtractor creates a new rich-text document extractor
func NewWordExtractor(logger domain.Logger) *WordExtractor {
	return &WordExtractor{logger: logger}
}

// Extract parses the staged document into a text view. Legacy binary
// .doc files are not a ZIP archive and fail here with ExtractionFailed.
func (e *WordExtractor) Extract(staged *domain.StagedFile) (*domain.CanonicalDocument, error) {
	r, err := zip.OpenReader(staged.Path)
	if err != nil {
		return nil, domain.NewExtractionError(domain.FormatWord, fmt.Errorf("open archive: %w", err))
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, domain.NewExtractionError(domain.FormatWord, fmt.Errorf("word/document.xml not found in archive"))
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, domain.NewExtractionError(domain.FormatWord, fmt.Errorf("open document.xml: %w", err))
	}
	defer rc.Close()

	paragraphs, err := decodeDocumentXML(rc)
	if err != nil {
		return nil, domain.NewExtractionError(domain.FormatWord, err)
	}

	return domain.NewTextDocument(paragraphs), nil
}

// decodeDocumentXML streams WordprocessingML and collects the visible
// text of each w:p element. Tabs and breaks inside runs become spaces.
func decodeDocumentXML(rc interface{ Read([]byte) (int, error) }) ([]string, error) {
	decoder := xml.NewDecoder(rc)
	var paragraphs []string
	var current strings.Builder
	var inParagraph, inText bool

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = inParagraph
			case "tab", "br":
				if inParagraph {
					current.WriteByte(' ')
				}
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					inParagraph = false
					if text := strings.TrimSpace(current.String()); text != "" {
						paragraphs = append(paragraphs, text)
					}
				}
			}
		}
	}

	return paragraphs, nil
}
