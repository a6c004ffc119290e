package service

import (
	"bytes"

	"file-converter/internal/domain"

	"github.com/fumiama/go-docx"
)

// WordRenderer builds a .docx document. Tabular documents become a real
// table with a bold first row; text documents become a bold heading
// followed by one paragraph per canonical paragraph.
type WordRenderer struct {
	logger domain.Logger
}

// NewWordRenderer creates a new rich-text document renderer
func NewWordRenderer(logger domain.Logger) *WordRenderer {
	return &WordRenderer{logger: logger}
}

// Render produces the document bytes for the canonical document.
func (r *WordRenderer) Render(doc *domain.CanonicalDocument) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	switch doc.Kind {
	case domain.KindTabular:
		r.renderTable(w, doc.Tabular)
	case domain.KindText:
		r.renderParagraphs(w, doc.Text)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, domain.NewRenderError(domain.FormatWord, err)
	}
	return buf.Bytes(), nil
}

func (r *WordRenderer) renderTable(w *docx.Docx, view *domain.TabularView) {
	heading := w.AddParagraph()
	heading.AddText("Converted Data").Size("32").Bold()

	rowCount := len(view.Rows)
	colCount := len(view.Header)
	if colCount > 0 {
		rowCount++
	} else {
		for _, row := range view.Rows {
			if len(row) > colCount {
				colCount = len(row)
			}
		}
	}
	if colCount == 0 {
		return
	}

	tbl := w.AddTable(rowCount, colCount, 8400, nil)

	next := 0
	if len(view.Header) > 0 {
		for c, cell := range view.Header {
			tbl.TableRows[0].TableCells[c].AddParagraph().AddText(cell).Bold()
		}
		next = 1
	}
	for i, row := range view.Rows {
		for c := 0; c < colCount && c < len(row); c++ {
			tbl.TableRows[next+i].TableCells[c].AddParagraph().AddText(row[c])
		}
	}
}

func (r *WordRenderer) renderParagraphs(w *docx.Docx, view *domain.TextView) {
	heading := w.AddParagraph()
	heading.AddText("Converted Document").Size("32").Bold()

	for _, para := range view.Paragraphs {
		w.AddParagraph().AddText(para)
	}
}
