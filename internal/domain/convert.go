package domain

import (
	"context"
	"io"
	"time"
)

// StagedFile is an owned temporary byte resource created for a single
// request. It is destroyed unconditionally when the request completes,
// whether by success, conversion failure, or transport failure.
type StagedFile struct {
	ID           string
	Path         string
	OriginalName string
	CreatedAt    time.Time
}

// Stager persists upload bytes to durable-but-temporary storage under
// collision-resistant generated names and releases them afterwards.
type Stager interface {
	Stage(originalName string, content io.Reader) (*StagedFile, error)
	// Release deletes the staged file. Best-effort: errors are logged,
	// never surfaced to the response.
	Release(staged *StagedFile)
}

// Extractor converts a staged source file into a canonical document.
type Extractor interface {
	Extract(staged *StagedFile) (*CanonicalDocument, error)
}

// Renderer converts a canonical document into output bytes for one
// target format. Renderers never reopen the original staged file.
type Renderer interface {
	Render(doc *CanonicalDocument) ([]byte, error)
}

// ConversionResult is the download-ready output of a conversion.
type ConversionResult struct {
	Bytes     []byte
	MediaType string
	Filename  string
}

// ConversionService runs the full upload-to-download pipeline.
type ConversionService interface {
	Convert(ctx context.Context, originalName string, content io.Reader, targetName string) (*ConversionResult, error)
}
