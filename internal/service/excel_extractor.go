package service

import (
	"fmt"

	"file-converter/internal/domain"

	"github.com/xuri/excelize/v2"
)

// ExcelExtractor reads the first sheet of a spreadsheet into a tabular
// view. The first row becomes the header; every cell is captured as its
// formatted display string, so the rest of the pipeline never reasons
// about numeric or date types.
type ExcelExtractor struct {
	logger domain.Logger
}

// NewExcelExtractor creates a new spreadsheet extractor
func NewExcelExtractor(logger domain.Logger) *ExcelExtractor {
	return &ExcelExtractor{logger: logger}
}

// Extract parses the staged workbook and returns its first sheet.
func (e *ExcelExtractor) Extract(staged *domain.StagedFile) (*domain.CanonicalDocument, error) {
	f, err := excelize.OpenFile(staged.Path)
	if err != nil {
		return nil, domain.NewExtractionError(domain.FormatExcel, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewExtractionError(domain.FormatExcel, fmt.Errorf("workbook has no sheets"))
	}

	// GetRows returns formatted cell values, which is exactly the
	// display-string capture the canonical model requires.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, domain.NewExtractionError(domain.FormatExcel, err)
	}

	if len(rows) == 0 {
		return domain.NewTabularDocument(nil, nil), nil
	}

	header := rows[0]
	data := make([][]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		aligned, err := alignRow(row, len(header))
		if err != nil {
			return nil, domain.NewExtractionError(domain.FormatExcel,
				fmt.Errorf("row %d: %w", i+2, err))
		}
		data = append(data, aligned)
	}

	return domain.NewTabularDocument(header, data), nil
}

// alignRow pads a row to the header width. Spreadsheet libraries omit
// trailing empty cells, so short rows are filled with blanks. A row
// wider than the header contradicts the header and is rejected rather
// than truncated.
func alignRow(row []string, width int) ([]string, error) {
	if width == 0 || len(row) == width {
		out := make([]string, len(row))
		copy(out, row)
		return out, nil
	}
	if len(row) > width {
		return nil, fmt.Errorf("has %d cells but the header has %d columns", len(row), width)
	}
	out := make([]string, width)
	copy(out, row)
	return out, nil
}
