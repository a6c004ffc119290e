package service

import (
	"bytes"
	"encoding/csv"

	"file-converter/internal/domain"
)

// CSVRenderer emits a header row followed by data rows. Quoting is left
// to the encoder, so cells holding delimiters or newlines survive a
// round trip. Text documents are flattened to a one-column table under a
// "Content" header.
type CSVRenderer struct {
	logger domain.Logger
}

// NewCSVRenderer creates a new delimited-text renderer
func NewCSVRenderer(logger domain.Logger) *CSVRenderer {
	return &CSVRenderer{logger: logger}
}

// Render produces the CSV bytes for the canonical document.
func (r *CSVRenderer) Render(doc *domain.CanonicalDocument) ([]byte, error) {
	header, rows := tabularize(doc)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if len(header) > 0 {
		if err := w.Write(header); err != nil {
			return nil, domain.NewRenderError(domain.FormatCSV, err)
		}
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, domain.NewRenderError(domain.FormatCSV, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, domain.NewRenderError(domain.FormatCSV, err)
	}
	return buf.Bytes(), nil
}
