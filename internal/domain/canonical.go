package domain

// CanonicalKind tags the variant held by a CanonicalDocument.
type CanonicalKind string

const (
	// KindTabular marks a document captured as header + rows.
	KindTabular CanonicalKind = "tabular"
	// KindText marks a document captured as ordered paragraphs.
	KindText CanonicalKind = "text"
)

// TabularView is the tabular variant of the canonical representation.
// Cells hold display strings only; numeric and date values are captured
// as the text a user would see, never re-typed. When Header is non-empty
// every row has exactly len(Header) cells.
type TabularView struct {
	Header []string
	Rows   [][]string
}

// TextView is the paragraph variant of the canonical representation.
// Blank paragraphs are dropped during extraction.
type TextView struct {
	Paragraphs []string
}

// CanonicalDocument is the format-neutral intermediate representation
// every conversion passes through. Exactly one of Tabular or Text is set,
// indicated by Kind. A CanonicalDocument is owned by the conversion call
// that produced it and must not be retained after rendering.
type CanonicalDocument struct {
	Kind    CanonicalKind
	Tabular *TabularView
	Text    *TextView
}

// NewTabularDocument wraps header and rows into a canonical document.
func NewTabularDocument(header []string, rows [][]string) *CanonicalDocument {
	return &CanonicalDocument{
		Kind:    KindTabular,
		Tabular: &TabularView{Header: header, Rows: rows},
	}
}

// NewTextDocument wraps paragraphs into a canonical document.
func NewTextDocument(paragraphs []string) *CanonicalDocument {
	return &CanonicalDocument{
		Kind:    KindText,
		Text:    &TextView{Paragraphs: paragraphs},
	}
}

// IsEmpty reports whether the document holds no extractable units.
func (d *CanonicalDocument) IsEmpty() bool {
	switch d.Kind {
	case KindTabular:
		return d.Tabular == nil || (len(d.Tabular.Header) == 0 && len(d.Tabular.Rows) == 0)
	case KindText:
		return d.Text == nil || len(d.Text.Paragraphs) == 0
	}
	return true
}
