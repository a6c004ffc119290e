package service

import (
	"encoding/csv"
	"fmt"
	"os"

	"file-converter/internal/domain"
)

// CSVExtractor parses one header row plus data rows. Standard quoting
// rules apply: embedded delimiters and newlines inside quotes are
// preserved as single cells.
type CSVExtractor struct {
	logger domain.Logger
}

// NewCSVExtractor creates a new delimited-text extractor
func NewCSVExtractor(logger domain.Logger) *CSVExtractor {
	return &CSVExtractor{logger: logger}
}

// Extract parses the staged CSV file into a tabular view.
func (e *CSVExtractor) Extract(staged *domain.StagedFile) (*domain.CanonicalDocument, error) {
	f, err := os.Open(staged.Path)
	if err != nil {
		return nil, domain.NewExtractionError(domain.FormatCSV, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Short rows are tolerated on read and padded to the header below;
	// rows wider than the header are rejected there.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.NewExtractionError(domain.FormatCSV, err)
	}

	if len(records) == 0 {
		return domain.NewTabularDocument(nil, nil), nil
	}

	header := records[0]
	rows := make([][]string, 0, len(records)-1)
	for i, record := range records[1:] {
		aligned, err := alignRow(record, len(header))
		if err != nil {
			return nil, domain.NewExtractionError(domain.FormatCSV,
				fmt.Errorf("row %d: %w", i+2, err))
		}
		rows = append(rows, aligned)
	}

	return domain.NewTabularDocument(header, rows), nil
}
