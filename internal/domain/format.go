package domain

import "strings"

// Format identifies one of the supported file kinds.
type Format string

const (
	// FormatPDF is the page-layout document format.
	FormatPDF Format = "pdf"
	// FormatExcel is the tabular spreadsheet format.
	FormatExcel Format = "excel"
	// FormatCSV is the delimited-text format.
	FormatCSV Format = "csv"
	// FormatWord is the rich-text document format.
	FormatWord Format = "word"
	// FormatTXT is the plain-text format.
	FormatTXT Format = "txt"
)

// FormatInfo describes a registered format: its recognized extensions,
// the media type its output is served with, and the extension used for
// generated files.
type FormatInfo struct {
	Name       Format
	Extensions []string
	MediaType  string
	OutputExt  string
}

// formatTable is the static registry of known formats. It is immutable
// after process start and safe for concurrent readers. Extension sets
// are pairwise disjoint; every format has at least one extension.
var formatTable = []FormatInfo{
	{
		Name:       FormatPDF,
		Extensions: []string{".pdf"},
		MediaType:  "application/pdf",
		OutputExt:  ".pdf",
	},
	{
		Name:       FormatExcel,
		Extensions: []string{".xlsx", ".xls"},
		MediaType:  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		OutputExt:  ".xlsx",
	},
	{
		Name:       FormatCSV,
		Extensions: []string{".csv"},
		MediaType:  "text/csv",
		OutputExt:  ".csv",
	},
	{
		Name:       FormatWord,
		Extensions: []string{".docx", ".doc"},
		MediaType:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		OutputExt:  ".docx",
	},
	{
		Name:       FormatTXT,
		Extensions: []string{".txt"},
		MediaType:  "text/plain",
		OutputExt:  ".txt",
	},
}

// AllFormats returns the registered formats in declaration order.
func AllFormats() []FormatInfo {
	out := make([]FormatInfo, len(formatTable))
	copy(out, formatTable)
	return out
}

// LookupFormat finds a format by its canonical name (case-insensitive).
func LookupFormat(name string) (FormatInfo, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, info := range formatTable {
		if string(info.Name) == name {
			return info, true
		}
	}
	return FormatInfo{}, false
}

// LookupExtension finds the format that claims the given extension.
// The extension must include the leading dot; matching is case-insensitive.
func LookupExtension(ext string) (FormatInfo, bool) {
	ext = strings.ToLower(ext)
	for _, info := range formatTable {
		for _, e := range info.Extensions {
			if e == ext {
				return info, true
			}
		}
	}
	return FormatInfo{}, false
}

// Info returns the registry entry for the format. Unknown formats return
// a zero FormatInfo.
func (f Format) Info() FormatInfo {
	info, _ := LookupFormat(string(f))
	return info
}

// MediaType returns the output media type for the format.
func (f Format) MediaType() string {
	return f.Info().MediaType
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// ConversionPair is an ordered (source, target) format combination. Only
// explicitly registered pairs are convertible; there is no transitive
// chaining.
type ConversionPair struct {
	Source Format
	Target Format
}
