package service

import (
	"strings"

	"file-converter/internal/domain"
)

// TextRenderer emits UTF-8 plain text with LF line endings. Text
// documents become one line per paragraph; tabular documents are
// flattened into column-aligned rows so the grid stays readable in a
// fixed-width view.
type TextRenderer struct {
	logger domain.Logger
}

// NewTextRenderer creates a new plain-text renderer
func NewTextRenderer(logger domain.Logger) *TextRenderer {
	return &TextRenderer{logger: logger}
}

// Render produces the plain-text bytes for the canonical document.
func (r *TextRenderer) Render(doc *domain.CanonicalDocument) ([]byte, error) {
	var b strings.Builder

	switch doc.Kind {
	case domain.KindText:
		for _, para := range doc.Text.Paragraphs {
			b.WriteString(para)
			b.WriteString("\n")
		}
	case domain.KindTabular:
		r.renderAligned(&b, doc.Tabular)
	}

	return []byte(b.String()), nil
}

// renderAligned pads every cell to its column's widest value, two
// spaces between columns.
func (r *TextRenderer) renderAligned(b *strings.Builder, view *domain.TabularView) {
	widths := columnWidths(view)
	if len(widths) == 0 {
		return
	}

	if len(view.Header) > 0 {
		writeAlignedRow(b, view.Header, widths)
	}
	for _, row := range view.Rows {
		writeAlignedRow(b, row, widths)
	}
}

func columnWidths(view *domain.TabularView) []int {
	cols := len(view.Header)
	for _, row := range view.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	measure(view.Header)
	for _, row := range view.Rows {
		measure(row)
	}
	return widths
}

func writeAlignedRow(b *strings.Builder, row []string, widths []int) {
	for i, width := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		b.WriteString(cell)
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", width-len([]rune(cell))+2))
		}
	}
	b.WriteString("\n")
}
