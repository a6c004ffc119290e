package service

import (
	"file-converter/internal/domain"

	"github.com/xuri/excelize/v2"
)

// ExcelRenderer writes a single-sheet workbook. Tabular documents map
// directly onto the grid with a bold header row; text documents are
// synthesized into a one-column table under a "Content" header, one row
// per paragraph.
type ExcelRenderer struct {
	logger domain.Logger
}

// NewExcelRenderer creates a new spreadsheet renderer
func NewExcelRenderer(logger domain.Logger) *ExcelRenderer {
	return &ExcelRenderer{logger: logger}
}

// Render produces the workbook bytes for the canonical document.
func (r *ExcelRenderer) Render(doc *domain.CanonicalDocument) ([]byte, error) {
	header, rows := tabularize(doc)

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	if err := r.writeRow(f, sheet, 1, header); err != nil {
		return nil, domain.NewRenderError(domain.FormatExcel, err)
	}
	for i, row := range rows {
		if err := r.writeRow(f, sheet, i+2, row); err != nil {
			return nil, domain.NewRenderError(domain.FormatExcel, err)
		}
	}

	if len(header) > 0 {
		if err := r.boldHeader(f, sheet, len(header)); err != nil {
			return nil, domain.NewRenderError(domain.FormatExcel, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, domain.NewRenderError(domain.FormatExcel, err)
	}
	return buf.Bytes(), nil
}

func (r *ExcelRenderer) writeRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *ExcelRenderer) boldHeader(f *excelize.File, sheet string, width int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	first, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(width, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

// tabularize returns the header and rows of a canonical document as seen
// by grid-shaped targets. Text documents become a one-column table.
func tabularize(doc *domain.CanonicalDocument) ([]string, [][]string) {
	if doc.Kind == domain.KindTabular {
		return doc.Tabular.Header, doc.Tabular.Rows
	}
	rows := make([][]string, 0, len(doc.Text.Paragraphs))
	for _, para := range doc.Text.Paragraphs {
		rows = append(rows, []string{para})
	}
	return []string{"Content"}, rows
}
