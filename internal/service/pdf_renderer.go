package service

import (
	"bytes"

	"file-converter/internal/domain"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer lays canonical content onto A4 pages. Tabular documents
// become a bordered grid with a shaded header row; text documents become
// one styled paragraph block per canonical paragraph. Both are preceded
// by a title line. Pagination is delegated to the page engine; content
// is emitted in order and nothing is truncated.
type PDFRenderer struct {
	logger domain.Logger
}

// NewPDFRenderer creates a new PDF renderer
func NewPDFRenderer(logger domain.Logger) *PDFRenderer {
	return &PDFRenderer{logger: logger}
}

// Render produces the PDF bytes for the canonical document.
func (r *PDFRenderer) Render(doc *domain.CanonicalDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	switch doc.Kind {
	case domain.KindTabular:
		r.renderTable(pdf, doc.Tabular)
	case domain.KindText:
		r.renderParagraphs(pdf, doc.Text)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, domain.NewRenderError(domain.FormatPDF, err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) renderTable(pdf *fpdf.Fpdf, view *domain.TabularView) {
	writeTitle(pdf, "Converted Data")

	cols := len(view.Header)
	if cols == 0 {
		for _, row := range view.Rows {
			if len(row) > cols {
				cols = len(row)
			}
		}
	}
	if cols == 0 {
		return
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(cols)

	if len(view.Header) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(220, 220, 220)
		for _, cell := range view.Header {
			pdf.CellFormat(colW, 8, cell, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range view.Rows {
		for i := 0; i < cols; i++ {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colW, 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func (r *PDFRenderer) renderParagraphs(pdf *fpdf.Fpdf, view *domain.TextView) {
	writeTitle(pdf, "Converted Document")

	pdf.SetFont("Helvetica", "", 11)
	for _, para := range view.Paragraphs {
		pdf.MultiCell(0, 6, para, "", "L", false)
		pdf.Ln(3)
	}
}

func writeTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)
}
